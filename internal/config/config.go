// Package config carga la configuración del servicio: defaults, luego un
// YAML opcional y por último variables de entorno.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	CatAPI   CatAPIConfig   `yaml:"catapi"`
}

type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ReadTimeout     string   `yaml:"read_timeout"`
	WriteTimeout    string   `yaml:"write_timeout"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
	CORSOrigins     []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	// memory | sqlite | postgres
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type CatAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "5s",
			WriteTimeout:    "10s",
			ShutdownTimeout: "10s",
			CORSOrigins:     []string{"http://127.0.0.1:3000", "http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver: DriverMemory,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "spy-cat-agency",
		},
		CatAPI: CatAPIConfig{
			BaseURL: "https://api.thecatapi.com",
			Timeout: "5s",
		},
	}
}

// Load lee path (si existe) y aplica overrides de entorno.
// path vacío o inexistente = solo defaults + env.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides(os.Getenv)
	return cfg, nil
}

// applyEnvOverrides recibe el lookup para poder testearlo sin tocar el entorno.
func (c *Config) applyEnvOverrides(getenv func(string) string) {
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }

	if v := env("PORT"); v != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := env("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitCSV(v)
	}

	if v := env("DB_DSN"); v != "" {
		c.Database.DSN = v
		// Con DSN y sin driver explícito, se asume Postgres (como antes).
		if env("DB_DRIVER") == "" && c.Database.Driver == DriverMemory {
			c.Database.Driver = DriverPostgres
		}
	}
	if v := env("DB_DRIVER"); v != "" {
		c.Database.Driver = strings.ToLower(v)
	}

	if v := env("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := env("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := env("APP_NAME"); v != "" {
		c.Logging.App = v
	}

	if v := env("CATAPI_BASE_URL"); v != "" {
		c.CatAPI.BaseURL = v
	}
	if v := env("CATAPI_KEY"); v != "" {
		c.CatAPI.APIKey = v
	}
	if v := env("CATAPI_TIMEOUT"); v != "" {
		c.CatAPI.Timeout = v
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var validDrivers = []string{DriverMemory, DriverSQLite, DriverPostgres}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server address is empty")
	}

	valid := false
	for _, d := range validDrivers {
		if c.Database.Driver == d {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid database driver: %q (valid: %v)", c.Database.Driver, validDrivers)
	}
	if c.Database.Driver == DriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required for driver %q", DriverPostgres)
	}

	for name, raw := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"catapi.timeout":          c.CatAPI.Timeout,
	} {
		if raw == "" {
			continue
		}
		if d, err := time.ParseDuration(raw); err != nil || d < 0 {
			return fmt.Errorf("invalid duration for %s: %q", name, raw)
		}
	}
	return nil
}

func (c *Config) ReadTimeout() time.Duration     { return durationOr(c.Server.ReadTimeout, 5*time.Second) }
func (c *Config) WriteTimeout() time.Duration    { return durationOr(c.Server.WriteTimeout, 10*time.Second) }
func (c *Config) ShutdownTimeout() time.Duration { return durationOr(c.Server.ShutdownTimeout, 10*time.Second) }
func (c *Config) CatAPITimeout() time.Duration   { return durationOr(c.CatAPI.Timeout, 5*time.Second) }

func durationOr(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
