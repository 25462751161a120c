package internal

import (
	"fmt"
	"strconv"
	"time"

	"scout-server/internal/records/domain"
)

// RecordRequest accepts values as JSON strings, numbers, booleans or null.
type RecordRequest struct {
	Values map[string]any `json:"values"`
}

type RecordResponse struct {
	ID                string         `json:"id"`
	TableID           string         `json:"table_id"`
	CreatedBy         string         `json:"created_by"`
	CreatedByUsername string         `json:"created_by_username"`
	CreatedAt         time.Time      `json:"created_at"`
	ModifiedAt        time.Time      `json:"modified_at"`
	Values            map[string]any `json:"values"`
}

type VisibilityResponse struct {
	AllAccess bool     `json:"all_access"`
	RecordIDs []string `json:"record_ids"`
}

// RawValues turns the request values into the untyped input of a write.
func (r RecordRequest) RawValues() domain.RawValues {
	values := make(domain.RawValues, len(r.Values))
	for name, value := range r.Values {
		switch v := value.(type) {
		case nil:
			values[name] = nil
		case string:
			values[name] = &v
		case float64:
			text := strconv.FormatFloat(v, 'f', -1, 64)
			values[name] = &text
		default:
			text := fmt.Sprint(v)
			values[name] = &text
		}
	}
	return values
}

func ToRecordResponse(view domain.RecordView) RecordResponse {
	return RecordResponse{
		ID:                view.ID.String(),
		TableID:           view.TableID.String(),
		CreatedBy:         view.CreatedBy.String(),
		CreatedByUsername: view.CreatedByUsername,
		CreatedAt:         view.CreatedAt,
		ModifiedAt:        view.ModifiedAt,
		Values:            view.Values,
	}
}

func ToRecordResponses(views []domain.RecordView) []RecordResponse {
	responses := make([]RecordResponse, len(views))
	for i, view := range views {
		responses[i] = ToRecordResponse(view)
	}
	return responses
}

func ToVisibilityResponse(visibility domain.Visibility) VisibilityResponse {
	response := VisibilityResponse{
		AllAccess: visibility.All,
		RecordIDs: []string{},
	}
	for _, id := range visibility.IDs() {
		response.RecordIDs = append(response.RecordIDs, id.String())
	}
	return response
}
