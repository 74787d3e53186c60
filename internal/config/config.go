// Package config loads flight_roster settings: built-in defaults, then an
// optional config file, then whatever command-line flags were set.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"flight_roster/internal/storage"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Verbose  bool           `mapstructure:"verbose"`
}

// DatabaseConfig selects and addresses the backing store.
type DatabaseConfig struct {
	Driver   string         `mapstructure:"driver"`
	Path     string         `mapstructure:"path"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// Load returns the defaults overlaid with the file at path. An empty path
// reads no file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := storage.DefaultConfig()
	v.SetDefault("database.driver", string(def.Driver))
	v.SetDefault("database.path", def.Path)
	v.SetDefault("database.postgres.host", def.Postgres.Host)
	v.SetDefault("database.postgres.port", def.Postgres.Port)
	v.SetDefault("database.postgres.database", def.Postgres.Database)
	v.SetDefault("database.postgres.user", def.Postgres.User)
	v.SetDefault("database.postgres.password", def.Postgres.Password)
	v.SetDefault("verbose", false)
}

// Storage converts the database section into storage settings.
func (c Config) Storage() storage.Config {
	return storage.Config{
		Driver: storage.Driver(c.Database.Driver),
		Path:   c.Database.Path,
		Postgres: storage.PostgresConfig{
			Host:     c.Database.Postgres.Host,
			Port:     c.Database.Postgres.Port,
			Database: c.Database.Postgres.Database,
			User:     c.Database.Postgres.User,
			Password: c.Database.Postgres.Password,
		},
	}
}
