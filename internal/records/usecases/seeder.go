package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scout-server/internal/records/domain"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

type SeedConfig struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func NewSeeder(schema SchemaRepository, users sharedusecases.UserService, config SeedConfig) *Seeder {
	return &Seeder{
		schema: schema,
		users:  users,
		config: config,
	}
}

// Seeder reconciles the database with the default tables and account. It is
// safe to run on every start.
type Seeder struct {
	schema SchemaRepository
	users  sharedusecases.UserService
	config SeedConfig
}

func (s *Seeder) Reconcile(ctx context.Context) error {
	for _, template := range domain.DefaultTables() {
		if err := s.ensureTable(ctx, template); err != nil {
			return err
		}
	}

	created, err := s.users.EnsureDefaultAdmin(ctx, sharedusecases.UserInput{
		Username: s.config.AdminUsername,
		Email:    s.config.AdminEmail,
		Password: s.config.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("seeding default admin: %w", err)
	}
	if created {
		slog.Info("default admin created", slog.String("username", s.config.AdminUsername))
	}

	return nil
}

func (s *Seeder) ensureTable(ctx context.Context, template domain.TableTemplate) error {
	_, err := s.schema.GetTableByName(ctx, template.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrTableNotFound) {
		return fmt.Errorf("looking up table %s: %w", template.Name, err)
	}

	table, fields, err := template.Build()
	if err != nil {
		return fmt.Errorf("building table %s: %w", template.Name, err)
	}

	if err := s.schema.CreateTable(ctx, table, fields); err != nil {
		return fmt.Errorf("seeding table %s: %w", template.Name, err)
	}

	slog.Info("default table created", slog.String("name", table.Name), slog.Int("fields", len(fields)))
	return nil
}
