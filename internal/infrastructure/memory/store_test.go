package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"github.com/jhoicas/accounts-api/internal/infrastructure/memory"
	"github.com/jhoicas/accounts-api/internal/infrastructure/storetest"
)

func account(id, username string, createdAt time.Time) *entity.Account {
	return &entity.Account{
		ID:         id,
		Username:   username,
		Email:      username + "@x.com",
		AccessType: entity.AccessBasic,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestRepositorios_Contrato(t *testing.T) {
	storetest.Run(t, func(t *testing.T) (repository.AccountRepository, repository.UserRepository) {
		store := memory.NewStore()
		return store.Accounts(), store.Users()
	})
}

func TestAccountRepo_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Accounts()
	require.NoError(t, repo.Create(ctx, account("1", "alice", time.Now())))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	got.Username = "mutada"

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username)
}

func TestTxRunner_RollbackSiFallaLaSegundaEscritura(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	boom := errors.New("boom")

	err := tx.Run(ctx, func(accounts repository.AccountRepository, users repository.UserRepository) error {
		if err := accounts.Create(ctx, account("1", "alice", time.Now())); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Accounts().GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, got, "la cuenta no debe quedar persistida")
}

func TestTxRunner_Commit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := memory.NewTxRunner(store).Run(ctx, func(accounts repository.AccountRepository, users repository.UserRepository) error {
		if err := accounts.Create(ctx, account("1", "alice", time.Now())); err != nil {
			return err
		}
		return users.Create(ctx, &entity.User{ID: "u1", AccountID: "1", FirstName: "Alice", LastName: "Doe"})
	})
	require.NoError(t, err)

	u, err := store.Users().GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "1", u.AccountID)
}

func TestDenylist(t *testing.T) {
	ctx := context.Background()
	d := memory.NewDenylist()

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-2", time.Now().Add(-time.Second)))
	revoked, err = d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "una entrada caducada ya no cuenta")
}
