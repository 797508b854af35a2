package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	App        AppConfig
	DataSource DataSourceConfig
	Session    SessionConfig
	Redis      RedisConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DataSourceConfig struct {
	URL     string
	Timeout time.Duration
}

type SessionConfig struct {
	Store string
	TTL   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads path and the environment. A missing file is not an
// error; environment variables and defaults still apply.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	dataSourceTimeout, err := time.ParseDuration(v.GetString("DATASOURCE_TIMEOUT"))
	if err != nil {
		dataSourceTimeout = 10 * time.Second
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DataSource: DataSourceConfig{
			URL:     v.GetString("DATASOURCE_URL"),
			Timeout: dataSourceTimeout,
		},
		Session: SessionConfig{
			Store: v.GetString("SESSION_STORE"),
			TTL:   sessionTTL,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATASOURCE_URL", "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json")
	v.SetDefault("DATASOURCE_TIMEOUT", "10s")
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
}
