package domain

import (
	"fmt"
	"strings"
	"time"

	"scout-server/internal/infra/utils"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type Table struct {
	ID          shareddomain.ID
	Name        string
	DisplayName string
	Description string
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

func (t *Table) Update(name, displayName, description string) error {
	updated, err := NewTableBuilder().
		WithID(t.ID).
		WithName(name).
		WithDisplayName(displayName).
		WithDescription(description).
		Build()
	if err != nil {
		return err
	}

	t.Name = updated.Name
	t.DisplayName = updated.DisplayName
	t.Description = updated.Description
	t.ModifiedAt = utils.Now()
	return nil
}

func NewTableBuilder() *tableBuilder {
	return &tableBuilder{}
}

type tableBuilder struct {
	actions []tableHandler
}

type tableHandler func(t *Table) error

func (b *tableBuilder) WithID(id shareddomain.ID) *tableBuilder {
	b.actions = append(b.actions, func(t *Table) error {
		t.ID = id
		return nil
	})
	return b
}

func (b *tableBuilder) WithName(name string) *tableBuilder {
	b.actions = append(b.actions, func(t *Table) error {
		t.Name = strings.TrimSpace(name)
		return nil
	})
	return b
}

func (b *tableBuilder) WithDisplayName(displayName string) *tableBuilder {
	b.actions = append(b.actions, func(t *Table) error {
		t.DisplayName = strings.TrimSpace(displayName)
		return nil
	})
	return b
}

func (b *tableBuilder) WithDescription(description string) *tableBuilder {
	b.actions = append(b.actions, func(t *Table) error {
		t.Description = strings.TrimSpace(description)
		return nil
	})
	return b
}

func (b *tableBuilder) Build() (Table, error) {
	now := utils.Now()
	result := Table{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		CreatedAt:  now,
		ModifiedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Table{}, err
		}
	}

	if result.Name == "" {
		return Table{}, fmt.Errorf("%w: table name is required", shareddomain.ErrInvalidInput)
	}
	if result.DisplayName == "" {
		result.DisplayName = result.Name
	}

	return result, nil
}
