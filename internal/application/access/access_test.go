package access_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/infrastructure/memory"
)

// stubVerifier acepta el token "good-<accountID>".
type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*access.Identity, error) {
	if len(token) > 5 && token[:5] == "good-" {
		return &access.Identity{AccountID: token[5:], TokenID: "jti-" + token[5:], ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	return nil, errors.New("firma inválida")
}

func newGuard(t *testing.T) (*access.Guard, *memory.Denylist) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Accounts().Create(context.Background(), &entity.Account{
		ID: "1", Username: "alice", Email: "a@x.com", AccessType: entity.AccessBasic,
	}))
	denylist := memory.NewDenylist()
	return access.NewGuard(stubVerifier{}, store.Accounts(), denylist), denylist
}

func TestBearerToken(t *testing.T) {
	tok, ok := access.BearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	tok, ok = access.BearerToken("bearer   abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	for _, h := range []string{"", "abc", "Basic abc", "Bearer", "Bearer  "} {
		_, ok := access.BearerToken(h)
		assert.False(t, ok, "header %q", h)
	}
}

func TestCaller_TokenValido(t *testing.T) {
	g, _ := newGuard(t)
	ctx := access.WithAuthorization(context.Background(), "Bearer good-1")

	account, id, err := g.Caller(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "jti-1", id.TokenID)
}

func TestCaller_FallosDeAutenticacion(t *testing.T) {
	g, _ := newGuard(t)
	cases := map[string]string{
		"sin header":         "",
		"formato incorrecto": "Token good-1",
		"firma inválida":     "Bearer bad",
		"cuenta borrada":     "Bearer good-99",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := g.Caller(access.WithAuthorization(context.Background(), header))
			require.Error(t, err)
			var authErr *domain.AuthenticationError
			assert.ErrorAs(t, err, &authErr)
			assert.Equal(t, domain.MsgTokenInvalid, err.Error())
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestCaller_TokenRevocado(t *testing.T) {
	g, denylist := newGuard(t)
	require.NoError(t, denylist.Revoke(context.Background(), "jti-1", time.Now().Add(time.Hour)))

	_, _, err := g.Caller(access.WithAuthorization(context.Background(), "Bearer good-1"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
