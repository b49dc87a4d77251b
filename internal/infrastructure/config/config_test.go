package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
[auth]
secret = "test-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "catalogozord", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.ERP.StoreID)
	assert.Equal(t, 30*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, 4, cfg.Enrichment.Workers)
	assert.Equal(t, 120*time.Millisecond, cfg.Enrichment.RequestInterval)
	assert.Equal(t, 800*time.Millisecond, cfg.Enrichment.RateLimitBackoff)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfigFile(t, `
[http]
port = 9090

[auth]
secret = "test-secret"

[erp]
base_url = "https://erp.example.com"
token = "tok"
secret = "sec"
store_id = 3
price_list_id = "2"
warehouse_id = "1"

[enrichment]
workers = 2
request_interval = "200ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "https://erp.example.com", cfg.ERP.BaseURL)
	assert.Equal(t, 3, cfg.ERP.StoreID)
	assert.Equal(t, "2", cfg.ERP.PriceListID)
	assert.Equal(t, 2, cfg.Enrichment.Workers)
	assert.Equal(t, 200*time.Millisecond, cfg.Enrichment.RequestInterval)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
[auth]
secret = "test-secret"
`)

	t.Setenv("PANEL_ERP_TOKEN", "env-token")
	t.Setenv("PANEL_DATABASE_PASSWORD", "env-pass")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.ERP.Token)
	assert.Equal(t, "env-pass", cfg.Database.Password)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing auth secret",
			mutate:  func(c *Config) { c.Auth.Secret = "" },
			wantErr: "auth secret",
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.HTTP.Port = 0 },
			wantErr: "invalid http port",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Enrichment.Workers = 0 },
			wantErr: "workers",
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Enrichment.RequestInterval = 0 },
			wantErr: "request interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				HTTP:     HTTPConfig{Port: 8080},
				Database: DatabaseConfig{Name: "db"},
				Auth:     AuthConfig{Secret: "s"},
				Enrichment: EnrichmentConfig{
					Workers:         4,
					RequestInterval: 120 * time.Millisecond,
				},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p",
		Name: "catalog", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=catalog sslmode=disable", c.DSN())
}
