package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"scout-server/internal/infra/cache"
	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/render"
)

const _genericTextKeyPrefix = "generic_text:"

func NewGenericTextService(
	repository GenericTextRepository,
	templates TemplateService,
	c cache.Cache,
	ttl CacheTTL,
	location *time.Location,
) *SimpleGenericTextService {
	if location == nil {
		location = time.UTC
	}

	return &SimpleGenericTextService{
		repository: repository,
		templates:  templates,
		cache:      c,
		ttl:        time.Duration(ttl),
		location:   location,
		now:        time.Now,
	}
}

var _ GenericTextService = &SimpleGenericTextService{}

type SimpleGenericTextService struct {
	repository GenericTextRepository
	templates  TemplateService
	cache      cache.Cache
	ttl        time.Duration
	location   *time.Location
	now        func() time.Time
}

func (s *SimpleGenericTextService) WithClock(now func() time.Time) *SimpleGenericTextService {
	s.now = now
	return s
}

// Get returns the named text, storing its default content when it does not
// exist yet.
func (s *SimpleGenericTextService) Get(ctx context.Context, name string) (domain.GenericText, error) {
	fresh, err := domain.NewGenericText(name)
	if err != nil {
		return domain.GenericText{}, err
	}

	return cache.Load(ctx, s.cache, _genericTextKeyPrefix+fresh.Name, s.ttl, func() (domain.GenericText, error) {
		text, err := s.repository.GetByName(ctx, fresh.Name)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrGenericTextNotFound) {
			return domain.GenericText{}, fmt.Errorf("getting generic text: %w", err)
		}

		err = s.repository.Create(ctx, fresh)
		if errors.Is(err, ErrGenericTextDuplicated) {
			// another instance created it first
			return s.repository.GetByName(ctx, fresh.Name)
		}
		if err != nil {
			slog.Error("creating generic text", slog.String("error", err.Error()))
			return domain.GenericText{}, fmt.Errorf("creating generic text: %w", err)
		}

		slog.Info("generic text created", slog.String("name", fresh.Name))
		return fresh, nil
	})
}

func (s *SimpleGenericTextService) Update(ctx context.Context, name, content string) (domain.GenericText, error) {
	text, err := s.Get(ctx, name)
	if err != nil {
		return domain.GenericText{}, err
	}

	text.Content = content
	if err := s.repository.Update(ctx, text); err != nil {
		slog.Error("updating generic text", slog.String("error", err.Error()))
		return domain.GenericText{}, fmt.Errorf("updating generic text: %w", err)
	}
	s.cache.Delete(ctx, _genericTextKeyPrefix+text.Name)

	slog.Info("generic text updated", slog.String("name", text.Name))
	return text, nil
}

// Print renders the text inside the default template, titled with the
// organization name.
func (s *SimpleGenericTextService) Print(ctx context.Context, name string) ([]byte, error) {
	text, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	template, err := s.templates.GetDefault(ctx)
	if err != nil {
		return nil, err
	}

	return render.HTML(domain.Document{
		Title:    domain.OrganizationTitle,
		Template: template,
		Date:     s.now().In(s.location),
		Content:  text.Content,
	})
}
