package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"scout-server/internal/infra/cache"
	"scout-server/internal/printing/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

const _defaultTemplateKey = "print_template:default"

func NewTemplateService(repository TemplateRepository, c cache.Cache, ttl CacheTTL) *SimpleTemplateService {
	return &SimpleTemplateService{
		repository: repository,
		cache:      c,
		ttl:        time.Duration(ttl),
	}
}

var _ TemplateService = &SimpleTemplateService{}

type SimpleTemplateService struct {
	repository TemplateRepository
	cache      cache.Cache
	ttl        time.Duration
}

// GetDefault returns the designated template, creating it with placeholder
// header and footer the first time it is asked for.
func (s *SimpleTemplateService) GetDefault(ctx context.Context) (domain.PrintTemplate, error) {
	return cache.Load(ctx, s.cache, _defaultTemplateKey, s.ttl, func() (domain.PrintTemplate, error) {
		template, err := s.repository.GetDefault(ctx)
		if err == nil {
			return template, nil
		}
		if !errors.Is(err, ErrTemplateNotFound) {
			return domain.PrintTemplate{}, fmt.Errorf("getting default template: %w", err)
		}

		template = domain.DefaultPrintTemplate()
		if err := s.repository.Create(ctx, template); err != nil {
			slog.Error("creating default template", slog.String("error", err.Error()))
			return domain.PrintTemplate{}, fmt.Errorf("creating default template: %w", err)
		}

		slog.Info("default print template created", slog.String("id", template.ID.String()))
		return template, nil
	})
}

func (s *SimpleTemplateService) List(ctx context.Context) ([]domain.PrintTemplate, error) {
	if _, err := s.GetDefault(ctx); err != nil {
		return nil, err
	}

	templates, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	return templates, nil
}

func (s *SimpleTemplateService) Update(ctx context.Context, id shareddomain.ID, input TemplateInput) (domain.PrintTemplate, error) {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return domain.PrintTemplate{}, err
	}

	template.Update(input.HeaderHTML, input.FooterHTML, input.CSS, input.LogoURL)
	if err := s.repository.Update(ctx, template); err != nil {
		slog.Error("updating template", slog.String("error", err.Error()))
		return domain.PrintTemplate{}, fmt.Errorf("updating template: %w", err)
	}
	s.cache.Delete(ctx, _defaultTemplateKey)

	slog.Info("print template updated", slog.String("id", id.String()))
	return template, nil
}
