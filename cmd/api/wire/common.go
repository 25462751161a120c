//go:build wireinject
// +build wireinject

package wire

import (
	"fmt"
	"sync"
	"time"

	"scout-server/cmd/config"
	"scout-server/internal/infra/cache"
	"scout-server/internal/infra/sql"
	"scout-server/internal/infra/utils"
	printingusecases "scout-server/internal/printing/usecases"
	recordsusecases "scout-server/internal/records/usecases"
	sharedHTTPAPI "scout-server/internal/shared_kernel/httpapi"
	sharedPersistence "scout-server/internal/shared_kernel/persistence"
	sharedUsecases "scout-server/internal/shared_kernel/usecases"

	"github.com/google/wire"
)

var UserServiceSet = wire.NewSet(
	sharedPersistence.NewUserRepository,
	wire.Bind(new(sharedUsecases.UserRepository), new(*sharedPersistence.SimpleUserRepository)),
	sharedUsecases.NewUserService,
	wire.Bind(new(sharedUsecases.UserService), new(*sharedUsecases.SimpleUserService)),
	wire.Bind(new(sharedUsecases.RoleResolver), new(*sharedUsecases.SimpleUserService)),
)

func InitializeUserController() (*sharedHTTPAPI.UserController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		UserServiceSet,
		sharedHTTPAPI.NewUserController,
	)
	return nil, nil
}

func InitializeDatabase() (sql.ORM, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
	)
	return nil, nil
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

var (
	databaseOnce     sync.Once
	databaseInstance sql.ORM
	databaseErr      error
)

// provideDatabase opens the database once per process so every injector
// shares it; the local environment runs on an in-memory SQLite.
func provideDatabase(config config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		if config.General.IsLocal() {
			databaseInstance, databaseErr = sql.NewMemoryORM()
			return
		}

		orm, err := sql.NewPosgreORM(config.Postgresql.DSN)
		if err != nil {
			databaseErr = err
			return
		}
		databaseInstance = orm
	})

	return databaseInstance, databaseErr
}

var (
	cacheOnce     sync.Once
	cacheInstance cache.Cache
	cacheErr      error
)

func provideCache(config config.AppConfig) (cache.Cache, error) {
	cacheOnce.Do(func() {
		cacheConfig := cache.DefaultConfig()
		if config.Cache.NumCounters > 0 {
			cacheConfig.NumCounters = config.Cache.NumCounters
		}
		if config.Cache.MaxCost > 0 {
			cacheConfig.MaxCost = config.Cache.MaxCost
		}
		cacheInstance, cacheErr = cache.New(cacheConfig)
	})

	return cacheInstance, cacheErr
}

func provideCacheTTL(config config.AppConfig) printingusecases.CacheTTL {
	return printingusecases.CacheTTL(config.Cache.TemplateTTL)
}

func provideLocation(config config.AppConfig) (*time.Location, error) {
	location, err := utils.LoadLocation(config.General.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone: %w", err)
	}
	return location, nil
}

func provideSeedConfig(config config.AppConfig) recordsusecases.SeedConfig {
	return recordsusecases.SeedConfig{
		AdminUsername: config.Seed.AdminUsername,
		AdminEmail:    config.Seed.AdminEmail,
		AdminPassword: config.Seed.AdminPassword,
	}
}
