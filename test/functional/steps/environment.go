package steps

import (
	"context"
	"fmt"
	"net/http/httptest"
	"time"

	"scout-server/internal/infra/cache"
	"scout-server/internal/infra/httpserver"
	"scout-server/internal/infra/sql"
	printinghttpapi "scout-server/internal/printing/httpapi"
	printingpersistence "scout-server/internal/printing/persistence"
	printingusecases "scout-server/internal/printing/usecases"
	recordshttpapi "scout-server/internal/records/httpapi"
	recordspersistence "scout-server/internal/records/persistence"
	recordsusecases "scout-server/internal/records/usecases"
	sharedhttpapi "scout-server/internal/shared_kernel/httpapi"
	sharedpersistence "scout-server/internal/shared_kernel/persistence"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

const (
	_adminUsername = "admin"
	_adminPassword = "admin123"
)

// environment is a full server on a private in-memory database.
type environment struct {
	server  *httptest.Server
	adminID string
}

func startEnvironment(ctx context.Context) (*environment, error) {
	orm, err := sql.NewMemoryORM()
	if err != nil {
		return nil, err
	}

	userRepository, err := sharedpersistence.NewUserRepository(orm)
	if err != nil {
		return nil, err
	}
	schemaRepository, err := recordspersistence.NewSchemaRepository(orm)
	if err != nil {
		return nil, err
	}
	recordRepository, err := recordspersistence.NewRecordRepository(orm)
	if err != nil {
		return nil, err
	}
	valueStore, err := recordspersistence.NewValueStore(orm)
	if err != nil {
		return nil, err
	}
	permissionRepository, err := recordspersistence.NewPermissionRepository(orm)
	if err != nil {
		return nil, err
	}
	templateRepository, err := printingpersistence.NewTemplateRepository(orm)
	if err != nil {
		return nil, err
	}
	genericTextRepository, err := printingpersistence.NewGenericTextRepository(orm)
	if err != nil {
		return nil, err
	}
	templateCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, err
	}

	location := time.UTC
	ttl := printingusecases.CacheTTL(time.Minute)

	users := sharedusecases.NewUserService(userRepository)
	schema := recordsusecases.NewSchemaService(schemaRepository)
	permissions := recordsusecases.NewPermissionService(permissionRepository, schemaRepository, valueStore, users)
	records := recordsusecases.NewRecordService(schemaRepository, recordRepository, valueStore, permissions, users)
	dashboard := recordsusecases.NewDashboardService(schemaRepository, recordRepository, permissions, users, location)
	templates := printingusecases.NewTemplateService(templateRepository, templateCache, ttl)
	texts := printingusecases.NewGenericTextService(genericTextRepository, templates, templateCache, ttl, location)
	exports := printingusecases.NewExportService(schema, records, valueStore, templates, location)

	seeder := recordsusecases.NewSeeder(schemaRepository, users, recordsusecases.SeedConfig{
		AdminUsername: _adminUsername,
		AdminEmail:    "admin@example.com",
		AdminPassword: _adminPassword,
	})
	if err := seeder.Reconcile(ctx); err != nil {
		return nil, fmt.Errorf("seeding: %w", err)
	}
	admin, err := userRepository.GetByUsername(ctx, _adminUsername)
	if err != nil {
		return nil, fmt.Errorf("loading seeded admin: %w", err)
	}

	server := httpserver.NewServer(
		httpserver.Options{Readiness: orm},
		sharedhttpapi.NewUserController(users),
		recordshttpapi.NewTableController(schema, users),
		recordshttpapi.NewRecordController(records, permissions, users),
		recordshttpapi.NewPermissionController(permissions, users),
		recordshttpapi.NewDashboardController(dashboard, users),
		printinghttpapi.NewTemplateController(templates, users),
		printinghttpapi.NewGenericTextController(texts, users),
		printinghttpapi.NewExportController(exports, users),
	)

	return &environment{
		server:  httptest.NewServer(server.Handler()),
		adminID: admin.ID.String(),
	}, nil
}

func (e *environment) close() {
	if e != nil && e.server != nil {
		e.server.Close()
	}
}
