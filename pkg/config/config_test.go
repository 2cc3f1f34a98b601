package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.TTL(), "el token dura una hora por defecto")
	assert.Equal(t, 12, cfg.JWT.BcryptCost)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:6000", cfg.HTTP.Addr())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrMissingSecret)
}

func TestLoad_JWTSecretYPortAlternativos(t *testing.T) {
	t.Setenv("JWT_SECRET", "alt")
	t.Setenv("PORT", "7000")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "alt", cfg.JWT.Secret)
	assert.Equal(t, 7000, cfg.HTTP.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "accounts", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/accounts?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
