package internal

import (
	"time"

	"scout-server/internal/records/domain"
)

type TableRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

type TableResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FieldRequest carries dropdown options as text, one option per line.
type FieldRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	FieldType   string `json:"field_type"`
	Required    bool   `json:"required"`
	Unique      bool   `json:"unique"`
	Options     string `json:"options"`
}

type FieldResponse struct {
	ID          string   `json:"id"`
	TableID     string   `json:"table_id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	FieldType   string   `json:"field_type"`
	Required    bool     `json:"required"`
	Unique      bool     `json:"unique"`
	Options     []string `json:"options"`
	Order       int      `json:"order"`
}

type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
}

type FieldOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type ReorderFieldsRequest struct {
	Fields []FieldOrder `json:"fields"`
}

func ToTableResponse(table domain.Table) TableResponse {
	return TableResponse{
		ID:          table.ID.String(),
		Name:        table.Name,
		DisplayName: table.DisplayName,
		Description: table.Description,
		CreatedAt:   table.CreatedAt,
		ModifiedAt:  table.ModifiedAt,
	}
}

func ToTableListResponse(tables []domain.Table) TableListResponse {
	response := TableListResponse{Tables: make([]TableResponse, len(tables))}
	for i, table := range tables {
		response.Tables[i] = ToTableResponse(table)
	}
	return response
}

func ToFieldResponse(field domain.Field) FieldResponse {
	options := field.Options
	if options == nil {
		options = []string{}
	}

	return FieldResponse{
		ID:          field.ID.String(),
		TableID:     field.TableID.String(),
		Name:        field.Name,
		DisplayName: field.DisplayName,
		FieldType:   field.Type.String(),
		Required:    field.Required,
		Unique:      field.Unique,
		Options:     options,
		Order:       field.Order,
	}
}

func ToFieldListResponse(fields []domain.Field) FieldListResponse {
	response := FieldListResponse{Fields: make([]FieldResponse, len(fields))}
	for i, field := range fields {
		response.Fields[i] = ToFieldResponse(field)
	}
	return response
}
