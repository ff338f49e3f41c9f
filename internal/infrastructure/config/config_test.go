package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"ATELIER_APP_NAME":                  os.Getenv("ATELIER_APP_NAME"),
		"ATELIER_APP_ENV":                   os.Getenv("ATELIER_APP_ENV"),
		"ATELIER_APP_PORT":                  os.Getenv("ATELIER_APP_PORT"),
		"ATELIER_DATABASE_HOST":             os.Getenv("ATELIER_DATABASE_HOST"),
		"ATELIER_DATABASE_PORT":             os.Getenv("ATELIER_DATABASE_PORT"),
		"ATELIER_DATABASE_USER":             os.Getenv("ATELIER_DATABASE_USER"),
		"ATELIER_DATABASE_PASSWORD":         os.Getenv("ATELIER_DATABASE_PASSWORD"),
		"ATELIER_DATABASE_DBNAME":           os.Getenv("ATELIER_DATABASE_DBNAME"),
		"ATELIER_DATABASE_SSLMODE":          os.Getenv("ATELIER_DATABASE_SSLMODE"),
		"ATELIER_DATABASE_MAX_OPEN_CONNS":   os.Getenv("ATELIER_DATABASE_MAX_OPEN_CONNS"),
		"ATELIER_DATABASE_MAX_IDLE_CONNS":   os.Getenv("ATELIER_DATABASE_MAX_IDLE_CONNS"),
		"ATELIER_BUSINESSNXT_ENABLED":       os.Getenv("ATELIER_BUSINESSNXT_ENABLED"),
		"ATELIER_BUSINESSNXT_CLIENT_ID":     os.Getenv("ATELIER_BUSINESSNXT_CLIENT_ID"),
		"ATELIER_BUSINESSNXT_CLIENT_SECRET": os.Getenv("ATELIER_BUSINESSNXT_CLIENT_SECRET"),
		"ATELIER_BUSINESSNXT_TENANT_ID":     os.Getenv("ATELIER_BUSINESSNXT_TENANT_ID"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "atelier-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "atelier", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.False(t, cfg.BusinessNXT.Enabled)
		assert.Equal(t, "https://business.visma.net/connect/token", cfg.BusinessNXT.TokenURL)
	})

	t.Run("loads values from environment variables with ATELIER prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_APP_NAME", "test-app")
		os.Setenv("ATELIER_APP_ENV", "testing")
		os.Setenv("ATELIER_APP_PORT", "9000")
		os.Setenv("ATELIER_DATABASE_HOST", "testdb.local")
		os.Setenv("ATELIER_DATABASE_PORT", "5433")
		os.Setenv("ATELIER_DATABASE_USER", "testuser")
		os.Setenv("ATELIER_DATABASE_PASSWORD", "testpass")
		os.Setenv("ATELIER_DATABASE_DBNAME", "testdb")
		os.Setenv("ATELIER_DATABASE_SSLMODE", "require")
		os.Setenv("ATELIER_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("ATELIER_DATABASE_MAX_IDLE_CONNS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("ATELIER_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("requires credentials when the connector is enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_BUSINESSNXT_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client_id")
	})

	t.Run("requires tenant when the connector is enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_BUSINESSNXT_ENABLED", "true")
		os.Setenv("ATELIER_BUSINESSNXT_CLIENT_ID", "client")
		os.Setenv("ATELIER_BUSINESSNXT_CLIENT_SECRET", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tenant_id")
	})

	t.Run("accepts a fully configured connector", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_BUSINESSNXT_ENABLED", "true")
		os.Setenv("ATELIER_BUSINESSNXT_CLIENT_ID", "client")
		os.Setenv("ATELIER_BUSINESSNXT_CLIENT_SECRET", "secret")
		os.Setenv("ATELIER_BUSINESSNXT_TENANT_ID", "tenant-1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.BusinessNXT.Enabled)
		assert.Equal(t, "tenant-1", cfg.BusinessNXT.TenantID)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"ATELIER_APP_ENV":           os.Getenv("ATELIER_APP_ENV"),
		"ATELIER_DATABASE_PASSWORD": os.Getenv("ATELIER_DATABASE_PASSWORD"),
		"ATELIER_DATABASE_SSLMODE":  os.Getenv("ATELIER_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_APP_ENV", "production")
		os.Setenv("ATELIER_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("rejects sslmode disable in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_APP_ENV", "production")
		os.Setenv("ATELIER_DATABASE_PASSWORD", "secure-password")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("accepts valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATELIER_APP_ENV", "production")
		os.Setenv("ATELIER_DATABASE_PASSWORD", "secure-password")
		os.Setenv("ATELIER_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "atelier",
		Password: "p@ss/word",
		DBName:   "atelier",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
