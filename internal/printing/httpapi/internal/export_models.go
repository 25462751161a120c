package internal

import (
	"scout-server/internal/printing/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

// ExportRequest lists the exported field ids and the text filters keyed by
// field id.
type ExportRequest struct {
	FieldIDs []string          `json:"field_ids"`
	Filters  map[string]string `json:"filters"`
}

func (r ExportRequest) ToInput() usecases.ExportRequest {
	input := usecases.ExportRequest{
		FieldIDs: make([]shareddomain.ID, len(r.FieldIDs)),
		Filters:  make(map[shareddomain.ID]string, len(r.Filters)),
	}
	for i, id := range r.FieldIDs {
		input.FieldIDs[i] = shareddomain.ID(id)
	}
	for id, text := range r.Filters {
		input.Filters[shareddomain.ID(id)] = text
	}
	return input
}
