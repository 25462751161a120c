package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	shareddomain "scout-server/internal/shared_kernel/domain"
)

const DateLayout = "2006-01-02"

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeDropdown FieldType = "dropdown"
)

// Slot names the typed column a field type reads and writes.
type Slot int

const (
	SlotText Slot = iota
	SlotNumber
	SlotDate
)

// Value is one stored record value. Only the slot of the owning field's type
// is meaningful; all nil means no value was entered.
type Value struct {
	Text   *string
	Number *float64
	Date   *time.Time
}

type fieldTypeBehavior struct {
	slot        Slot
	hasOptions  bool
	coerce      func(raw *string) (Value, error)
	interpret   func(value Value) any
	formatValue func(value any) string
}

var _fieldTypes = map[FieldType]fieldTypeBehavior{
	FieldTypeText: {
		slot:        SlotText,
		coerce:      coerceText,
		interpret:   interpretText,
		formatValue: formatText,
	},
	FieldTypeDropdown: {
		slot:        SlotText,
		hasOptions:  true,
		coerce:      coerceText,
		interpret:   interpretText,
		formatValue: formatText,
	},
	FieldTypeNumber: {
		slot:   SlotNumber,
		coerce: coerceNumber,
		interpret: func(value Value) any {
			if value.Number == nil {
				return nil
			}
			return *value.Number
		},
		formatValue: func(value any) string {
			number, ok := value.(float64)
			if !ok {
				return ""
			}
			return strconv.FormatFloat(number, 'f', -1, 64)
		},
	},
	FieldTypeDate: {
		slot: SlotDate,
		coerce: func(raw *string) (Value, error) {
			if raw == nil || strings.TrimSpace(*raw) == "" {
				return Value{}, nil
			}
			date, err := time.Parse(DateLayout, strings.TrimSpace(*raw))
			if err != nil {
				return Value{}, err
			}
			return Value{Date: &date}, nil
		},
		interpret: func(value Value) any {
			if value.Date == nil {
				return nil
			}
			return value.Date.Format(DateLayout)
		},
		formatValue: formatText,
	},
}

var errNotDecimal = errors.New("not a finite decimal number")

// coerceNumber accepts plain decimal notation only. NaN, infinities and hex
// floats parse but cannot be rendered as JSON numbers.
func coerceNumber(raw *string) (Value, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return Value{}, nil
	}

	text := strings.TrimSpace(*raw)
	unsigned := strings.ToLower(strings.TrimLeft(text, "+-"))
	if strings.HasPrefix(unsigned, "0x") {
		return Value{}, errNotDecimal
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, err
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return Value{}, errNotDecimal
	}
	return Value{Number: &number}, nil
}

func coerceText(raw *string) (Value, error) {
	if raw == nil {
		return Value{}, nil
	}
	text := *raw
	return Value{Text: &text}, nil
}

func interpretText(value Value) any {
	if value.Text == nil {
		return nil
	}
	return *value.Text
}

func formatText(value any) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return text
}

func FieldTypes() []FieldType {
	return []FieldType{FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeDropdown}
}

func ParseFieldType(value string) (FieldType, error) {
	fieldType := FieldType(value)
	if !fieldType.IsValid() {
		return "", fmt.Errorf("%w: unknown field type '%s'", shareddomain.ErrInvalidInput, value)
	}
	return fieldType, nil
}

func (t FieldType) String() string {
	return string(t)
}

func (t FieldType) IsValid() bool {
	_, ok := _fieldTypes[t]
	return ok
}

func (t FieldType) Slot() Slot {
	return _fieldTypes[t].slot
}

// HasOptions is true only for types that carry a list of choices.
func (t FieldType) HasOptions() bool {
	return _fieldTypes[t].hasOptions
}

// Coerce turns raw input into the slot of this type. A nil result slot stores NULL.
func (t FieldType) Coerce(raw *string) (Value, error) {
	behavior, ok := _fieldTypes[t]
	if !ok {
		return Value{}, fmt.Errorf("unknown field type '%s'", t)
	}
	return behavior.coerce(raw)
}

// Interpret reads the slot selected by this type, ignoring the others. A value
// written under a different type therefore reads back as nil.
func (t FieldType) Interpret(value Value) any {
	behavior, ok := _fieldTypes[t]
	if !ok {
		return nil
	}
	return behavior.interpret(value)
}

// Format renders an interpreted value for documents and spreadsheets.
func (t FieldType) Format(value any) string {
	behavior, ok := _fieldTypes[t]
	if !ok || value == nil {
		return ""
	}
	return behavior.formatValue(value)
}
