//go:build wireinject
// +build wireinject

package wire

import (
	"scout-server/internal/records/httpapi"
	"scout-server/internal/records/persistence"
	"scout-server/internal/records/usecases"

	"github.com/google/wire"
)

var RecordsRepositorySet = wire.NewSet(
	persistence.NewSchemaRepository,
	wire.Bind(new(usecases.SchemaRepository), new(*persistence.SimpleSchemaRepository)),
	persistence.NewValueStore,
	wire.Bind(new(usecases.ValueStore), new(*persistence.SimpleValueStore)),
	persistence.NewRecordRepository,
	wire.Bind(new(usecases.RecordRepository), new(*persistence.SimpleRecordRepository)),
	persistence.NewPermissionRepository,
	wire.Bind(new(usecases.PermissionRepository), new(*persistence.SimplePermissionRepository)),
)

var SchemaServiceSet = wire.NewSet(
	usecases.NewSchemaService,
	wire.Bind(new(usecases.SchemaService), new(*usecases.SimpleSchemaService)),
)

var PermissionServiceSet = wire.NewSet(
	usecases.NewPermissionService,
	wire.Bind(new(usecases.PermissionService), new(*usecases.SimplePermissionService)),
)

var RecordServiceSet = wire.NewSet(
	PermissionServiceSet,
	usecases.NewRecordService,
	wire.Bind(new(usecases.RecordService), new(*usecases.SimpleRecordService)),
)

func InitializeTableController() (*httpapi.TableController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		UserServiceSet,
		RecordsRepositorySet,
		SchemaServiceSet,
		httpapi.NewTableController,
	)
	return nil, nil
}

func InitializeRecordController() (*httpapi.RecordController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		UserServiceSet,
		RecordsRepositorySet,
		RecordServiceSet,
		httpapi.NewRecordController,
	)
	return nil, nil
}

func InitializePermissionController() (*httpapi.PermissionController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		UserServiceSet,
		RecordsRepositorySet,
		PermissionServiceSet,
		httpapi.NewPermissionController,
	)
	return nil, nil
}

func InitializeDashboardController() (*httpapi.DashboardController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideLocation,
		UserServiceSet,
		RecordsRepositorySet,
		PermissionServiceSet,
		usecases.NewDashboardService,
		wire.Bind(new(usecases.DashboardService), new(*usecases.SimpleDashboardService)),
		httpapi.NewDashboardController,
	)
	return nil, nil
}

func InitializeSeeder() (*usecases.Seeder, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideSeedConfig,
		UserServiceSet,
		persistence.NewSchemaRepository,
		wire.Bind(new(usecases.SchemaRepository), new(*persistence.SimpleSchemaRepository)),
		usecases.NewSeeder,
	)
	return nil, nil
}
