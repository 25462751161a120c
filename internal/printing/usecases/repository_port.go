package usecases

import (
	"context"
	"fmt"
	"time"

	"scout-server/internal/printing/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/printing/usecases/repository_port_mock.go -package=usecases -mock_names=TemplateRepository=MockTemplateRepository,GenericTextRepository=MockGenericTextRepository

var (
	ErrTemplateNotFound      = fmt.Errorf("print template %w", shareddomain.ErrNotFound)
	ErrGenericTextNotFound   = fmt.Errorf("generic text %w", shareddomain.ErrNotFound)
	ErrGenericTextDuplicated = fmt.Errorf("a text with this name already exists: %w", shareddomain.ErrConflict)
)

// CacheTTL bounds how long templates and generic texts are served from cache.
type CacheTTL time.Duration

type TemplateRepository interface {
	GetDefault(ctx context.Context) (domain.PrintTemplate, error)
	GetByID(ctx context.Context, id shareddomain.ID) (domain.PrintTemplate, error)
	List(ctx context.Context) ([]domain.PrintTemplate, error)
	Create(ctx context.Context, template domain.PrintTemplate) error
	Update(ctx context.Context, template domain.PrintTemplate) error
}

type GenericTextRepository interface {
	GetByName(ctx context.Context, name string) (domain.GenericText, error)
	Create(ctx context.Context, text domain.GenericText) error
	Update(ctx context.Context, text domain.GenericText) error
}
