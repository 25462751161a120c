package internal

import (
	"time"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type Record struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	TableID    string    `json:"table_id" gorm:"index;not null"`
	CreatedBy  string    `json:"created_by" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	ModifiedAt time.Time `json:"modified_at"`
}

func (Record) TableName() string {
	return "records"
}

func (s Record) ToDomain() domain.Record {
	return domain.Record{
		ID:         shareddomain.ID(s.ID),
		TableID:    shareddomain.ID(s.TableID),
		CreatedBy:  shareddomain.ID(s.CreatedBy),
		CreatedAt:  s.CreatedAt,
		ModifiedAt: s.ModifiedAt,
	}
}

func FromRecord(value domain.Record) Record {
	return Record{
		ID:         value.ID.String(),
		TableID:    value.TableID.String(),
		CreatedBy:  value.CreatedBy.String(),
		CreatedAt:  value.CreatedAt,
		ModifiedAt: value.ModifiedAt,
	}
}

// RecordValue holds one slot per primitive type. Which slot is meaningful
// depends on the field's type when the row is read.
type RecordValue struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	RecordID    string     `json:"record_id" gorm:"index;not null"`
	FieldID     string     `json:"field_id" gorm:"index;not null"`
	TextValue   *string    `json:"text_value"`
	NumberValue *float64   `json:"number_value"`
	DateValue   *time.Time `json:"date_value" gorm:"type:date"`
}

func (RecordValue) TableName() string {
	return "record_values"
}

func (s RecordValue) ToDomain() domain.Value {
	return domain.Value{
		Text:   s.TextValue,
		Number: s.NumberValue,
		Date:   s.DateValue,
	}
}

// Assign overwrites every slot so a value never keeps data from an earlier write.
func (s *RecordValue) Assign(value domain.Value) {
	s.TextValue = value.Text
	s.NumberValue = value.Number
	s.DateValue = value.Date
}
