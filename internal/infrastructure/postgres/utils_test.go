package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/infrastructure/postgres/migrations"
)

func TestUniqueAccountError_SegunConstraint(t *testing.T) {
	username := &pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"}
	email := &pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}

	assert.True(t, isUniqueViolation(username))
	assert.ErrorIs(t, uniqueAccountError(username), domain.ErrUsernameTaken)
	assert.ErrorIs(t, uniqueAccountError(email), domain.ErrEmailTaken)
	assert.False(t, isUniqueViolation(errors.New("otro")))
	assert.Nil(t, uniqueAccountError(errors.New("otro")))
}

func TestLikeEscape(t *testing.T) {
	assert.Equal(t, `50\%\_a\\b`, likeEscape(`50%_a\b`))
	assert.Equal(t, "alice", likeEscape("alice"))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("00000000-0000-0000-0000-000000000001"))
	assert.False(t, validID("nope"))
	assert.False(t, validID(""))
}

func TestMigrationsEmbebidas(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
