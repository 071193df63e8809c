package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.CatAPITimeout())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.thecatapi.com", cfg.CatAPI.BaseURL)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spycat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  cors_origins: ["https://agency.example"]
database:
  driver: sqlite
  dsn: "file:agency.db"
logging:
  level: debug
  format: json
catapi:
  timeout: 2s
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://agency.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:agency.db", cfg.Database.DSN)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 2*time.Second, cfg.CatAPITimeout())
	// Lo que el YAML no menciona conserva el default.
	assert.Equal(t, "spy-cat-agency", cfg.Logging.App)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides(envMap(map[string]string{
		"PORT":            "7000",
		"CORS_ORIGINS":    " http://a.test , ,http://b.test",
		"LOG_LEVEL":       "warn",
		"APP_NAME":        "agency",
		"CATAPI_BASE_URL": "http://catapi.local",
		"CATAPI_KEY":      "k",
		"CATAPI_TIMEOUT":  "750ms",
	}))

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "agency", cfg.Logging.App)
	assert.Equal(t, "http://catapi.local", cfg.CatAPI.BaseURL)
	assert.Equal(t, "k", cfg.CatAPI.APIKey)
	assert.Equal(t, 750*time.Millisecond, cfg.CatAPITimeout())
}

func TestApplyEnvOverrides_DSNImpliesPostgres(t *testing.T) {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides(envMap(map[string]string{"DB_DSN": "postgres://localhost/spycat"}))
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.applyEnvOverrides(envMap(map[string]string{"DB_DSN": "file:x.db", "DB_DRIVER": "SQLite"}))
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = " " }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = DriverPostgres }},
		{"bad duration", func(c *Config) { c.CatAPI.Timeout = "soon" }},
		{"negative duration", func(c *Config) { c.Server.ReadTimeout = "-1s" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
