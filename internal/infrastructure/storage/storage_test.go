package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/infrastructure/storage"
	"github.com/jhoicas/accounts-api/pkg/config"
	"github.com/jhoicas/accounts-api/pkg/logger"
)

func TestOpen_Memoria(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}
	s, err := storage.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close(context.Background())

	assert.Equal(t, config.StorageMemory, s.Driver)
	require.NoError(t, s.Accounts.Create(context.Background(), &entity.Account{ID: "1", Username: "alice", Email: "a@x.com"}))
	got, err := s.Accounts.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "cassandra"}}
	_, err := storage.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
