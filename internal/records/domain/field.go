package domain

import (
	"fmt"
	"strings"

	"scout-server/internal/infra/utils"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type Field struct {
	ID          shareddomain.ID
	TableID     shareddomain.ID
	Name        string
	DisplayName string
	Type        FieldType
	Required    bool
	Unique      bool
	Options     []string
	Order       int
}

// ParseOptions reads one dropdown option per line, trimming each and
// dropping blank lines.
func ParseOptions(text string) []string {
	var options []string
	for _, line := range strings.Split(text, "\n") {
		if option := strings.TrimSpace(line); option != "" {
			options = append(options, option)
		}
	}
	return options
}

// IsBlank is the required-field test: absent or whitespace only.
func IsBlank(raw *string) bool {
	return raw == nil || strings.TrimSpace(*raw) == ""
}

func (f Field) Coerce(raw *string) (Value, error) {
	value, err := f.Type.Coerce(raw)
	if err != nil {
		return Value{}, &shareddomain.TypeCoercionError{
			Field:     f.DisplayName,
			FieldType: f.Type.String(),
			Value:     *raw,
		}
	}
	return value, nil
}

func (f Field) Interpret(value Value) any {
	return f.Type.Interpret(value)
}

func NewFieldBuilder() *fieldBuilder {
	return &fieldBuilder{}
}

type fieldBuilder struct {
	actions []fieldHandler
}

type fieldHandler func(f *Field) error

func (b *fieldBuilder) WithID(id shareddomain.ID) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.ID = id
		return nil
	})
	return b
}

func (b *fieldBuilder) WithTableID(tableID shareddomain.ID) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.TableID = tableID
		return nil
	})
	return b
}

func (b *fieldBuilder) WithName(name string) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Name = strings.TrimSpace(name)
		return nil
	})
	return b
}

func (b *fieldBuilder) WithDisplayName(displayName string) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.DisplayName = strings.TrimSpace(displayName)
		return nil
	})
	return b
}

func (b *fieldBuilder) WithType(fieldType FieldType) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		if fieldType == "" {
			return nil
		}
		if !fieldType.IsValid() {
			return fmt.Errorf("%w: unknown field type '%s'", shareddomain.ErrInvalidInput, fieldType)
		}
		f.Type = fieldType
		return nil
	})
	return b
}

func (b *fieldBuilder) WithRequired(required bool) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Required = required
		return nil
	})
	return b
}

func (b *fieldBuilder) WithUnique(unique bool) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Unique = unique
		return nil
	})
	return b
}

func (b *fieldBuilder) WithOptions(options []string) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Options = append([]string(nil), options...)
		return nil
	})
	return b
}

func (b *fieldBuilder) WithOrder(order int) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Order = order
		return nil
	})
	return b
}

func (b *fieldBuilder) Build() (Field, error) {
	result := Field{
		ID:   shareddomain.ID(utils.GenerateUUID()),
		Type: FieldTypeText,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Field{}, err
		}
	}

	if result.TableID == "" {
		return Field{}, fmt.Errorf("%w: field table is required", shareddomain.ErrInvalidInput)
	}
	if result.Name == "" {
		return Field{}, fmt.Errorf("%w: field name is required", shareddomain.ErrInvalidInput)
	}
	if result.DisplayName == "" {
		result.DisplayName = result.Name
	}
	if !result.Type.HasOptions() {
		result.Options = nil
	}

	return result, nil
}
