package domain

import (
	"time"

	"scout-server/internal/infra/utils"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type Record struct {
	ID         shareddomain.ID
	TableID    shareddomain.ID
	CreatedBy  shareddomain.ID
	CreatedAt  time.Time
	ModifiedAt time.Time
}

func NewRecord(tableID, createdBy shareddomain.ID) Record {
	now := utils.Now()
	return Record{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		TableID:    tableID,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// RawValues is the untyped input of a record write keyed by field name.
// A missing key and a nil entry both mean no value.
type RawValues map[string]*string

// FieldValue pairs a coerced value with the field it belongs to.
type FieldValue struct {
	Field Field
	Value Value
}

// RecordView is the flat presentation of a record: interpreted values keyed
// by field name plus metadata. Fields without a stored value map to nil.
type RecordView struct {
	ID                shareddomain.ID
	TableID           shareddomain.ID
	CreatedBy         shareddomain.ID
	CreatedByUsername string
	CreatedAt         time.Time
	ModifiedAt        time.Time
	Values            map[string]any
}

// NewRecordView projects stored values through the fields' current types.
func NewRecordView(record Record, fields []Field, values map[shareddomain.ID]Value, creator string) RecordView {
	view := RecordView{
		ID:                record.ID,
		TableID:           record.TableID,
		CreatedBy:         record.CreatedBy,
		CreatedByUsername: creator,
		CreatedAt:         record.CreatedAt,
		ModifiedAt:        record.ModifiedAt,
		Values:            make(map[string]any, len(fields)),
	}

	for _, field := range fields {
		value, ok := values[field.ID]
		if !ok {
			view.Values[field.Name] = nil
			continue
		}
		view.Values[field.Name] = field.Interpret(value)
	}

	return view
}
