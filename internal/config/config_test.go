package config

import (
	"testing"
	"time"

	"lumina-storefront/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, AdminModePassword, cfg.Admin.Mode)
	assert.Equal(t, "https://wa.me", cfg.Storefront.HandoffBaseURL)
	assert.Equal(t, "lumina_cart", cfg.Storefront.CartKeyPrefix)
	assert.Equal(t, 30*24*time.Hour, cfg.Storefront.CartTTL)
	assert.False(t, cfg.ImageStorageEnabled())
}

func TestLoad_PoolSettingsComeFromDatabaseConfig(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("DB_MAX_CONNECTIONS", "20")
	t.Setenv("DB_MIN_CONNECTIONS", "4")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Database)

	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(4), cfg.Database.MinConns)
}

func TestLoad_InvalidPoolSettings(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("DB_MAX_CONNECTIONS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNECTIONS")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "password mode with plain password",
			mutate: func(c *Config) {},
		},
		{
			name: "password mode without any credential",
			mutate: func(c *Config) {
				c.Admin.Password = ""
			},
			wantErr: "ADMIN_PASSWORD",
		},
		{
			name: "auth service without url",
			mutate: func(c *Config) {
				c.Admin.Mode = AdminModeAuthService
			},
			wantErr: "AUTH_URL",
		},
		{
			name: "unknown mode",
			mutate: func(c *Config) {
				c.Admin.Mode = "ldap"
			},
			wantErr: "unknown ADMIN_AUTH_MODE",
		},
		{
			name: "production keeps default jwt secret",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Database = &database.DBConfig{Password: "secret"}
			},
			wantErr: "JWT_SECRET",
		},
		{
			name: "production without db password",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.JWT.Secret = "rotated"
				c.Database = &database.DBConfig{}
			},
			wantErr: "DB_PASSWORD",
		},
		{
			name: "production with hash and db password",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.JWT.Secret = "rotated"
				c.Admin.PasswordHash = "$2a$10$abc"
				c.Database = &database.DBConfig{Password: "secret"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:   AppConfig{Environment: "development"},
				JWT:   JWTConfig{Secret: defaultJWTSecret},
				Admin: AdminConfig{Mode: AdminModePassword, Password: "admin123"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDatabaseConfig_InvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := LoadDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}
