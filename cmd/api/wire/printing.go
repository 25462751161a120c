//go:build wireinject
// +build wireinject

package wire

import (
	"scout-server/internal/printing/httpapi"
	"scout-server/internal/printing/persistence"
	"scout-server/internal/printing/usecases"

	"github.com/google/wire"
)

var TemplateServiceSet = wire.NewSet(
	provideCache,
	provideCacheTTL,
	persistence.NewTemplateRepository,
	wire.Bind(new(usecases.TemplateRepository), new(*persistence.SimpleTemplateRepository)),
	usecases.NewTemplateService,
	wire.Bind(new(usecases.TemplateService), new(*usecases.SimpleTemplateService)),
)

func InitializeTemplateController() (*httpapi.TemplateController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		UserServiceSet,
		TemplateServiceSet,
		httpapi.NewTemplateController,
	)
	return nil, nil
}

func InitializeGenericTextController() (*httpapi.GenericTextController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideLocation,
		UserServiceSet,
		TemplateServiceSet,
		persistence.NewGenericTextRepository,
		wire.Bind(new(usecases.GenericTextRepository), new(*persistence.SimpleGenericTextRepository)),
		usecases.NewGenericTextService,
		wire.Bind(new(usecases.GenericTextService), new(*usecases.SimpleGenericTextService)),
		httpapi.NewGenericTextController,
	)
	return nil, nil
}

func InitializeExportController() (*httpapi.ExportController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideLocation,
		UserServiceSet,
		RecordsRepositorySet,
		SchemaServiceSet,
		RecordServiceSet,
		TemplateServiceSet,
		usecases.NewExportService,
		wire.Bind(new(usecases.ExportService), new(*usecases.SimpleExportService)),
		httpapi.NewExportController,
	)
	return nil, nil
}
