package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"scout-server/internal/infra/utils"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		config, err := load("server")
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

func load(name string) (AppConfig, error) {
	viper.SetEnvPrefix("scout_server")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetConfigName(name)
	viper.AddConfigPath("config")
	viper.AddConfigPath("/config")
	setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		return AppConfig{}, err
	}
	if err := utils.ValidateTimezone(viper.GetString("general.timezone")); err != nil {
		return AppConfig{}, fmt.Errorf("general.timezone: %w", err)
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel:    viper.GetString("general.log_level"),
			Environment: viper.GetString("general.environment"),
			Timezone:    viper.GetString("general.timezone"),
		},
		HTTP: HTTPConfig{
			Address:        viper.GetString("http.address"),
			AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
		},
		Postgresql: PostgresqlConfig{
			DSN: viper.GetString("database.dsn"),
		},
		Cache: CacheConfig{
			NumCounters: viper.GetInt64("cache.num_counters"),
			MaxCost:     viper.GetInt64("cache.max_cost"),
			TemplateTTL: viper.GetDuration("cache.template_ttl"),
		},
		Seed: SeedConfig{
			AdminUsername: viper.GetString("seed.admin_username"),
			AdminEmail:    viper.GetString("seed.admin_email"),
			AdminPassword: viper.GetString("seed.admin_password"),
		},
	}, nil
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.environment", "production")
	viper.SetDefault("general.timezone", "Europe/Paris")
	viper.SetDefault("http.address", ":3000")
	viper.SetDefault("cache.num_counters", 1<<15)
	viper.SetDefault("cache.max_cost", 1<<12)
	viper.SetDefault("cache.template_ttl", 5*time.Minute)
	viper.SetDefault("seed.admin_username", "admin")
	viper.SetDefault("seed.admin_email", "admin@example.com")
	viper.SetDefault("seed.admin_password", "admin123")
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Postgresql PostgresqlConfig
	Cache      CacheConfig
	Seed       SeedConfig
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
	Timezone    string
}

// IsLocal selects the in-memory database.
func (c GeneralConfig) IsLocal() bool {
	return c.Environment == "local"
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

type PostgresqlConfig struct {
	DSN string
}

type CacheConfig struct {
	NumCounters int64
	MaxCost     int64
	TemplateTTL time.Duration
}

type SeedConfig struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}
