package gql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/domain"
)

func TestClassify_Codigos(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     string
		message  string
		internal bool
	}{
		{"autenticación", domain.NewAuthenticationError(domain.MsgTokenInvalid, domain.ErrUnauthorized), CodeUnauthenticated, "Token is invalid!", false},
		{"entrada", domain.NewUserInputError("Password did not match!", "password", "confirm password did not match"), CodeBadUserInput, "Password did not match!", false},
		{"no encontrado", domain.NewNotFoundError("Account not found!", domain.ErrAccountNotFound), CodeNotFound, "Account not found!", false},
		{"envuelto", fmt.Errorf("capa: %w", domain.NewNotFoundError("User not found!", domain.ErrUserNotFound)), CodeNotFound, "User not found!", false},
		{"interno", errors.New("conexión rechazada"), CodeInternal, msgInternal, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, internal := classify(tc.err)
			assert.Equal(t, tc.internal, internal)
			assert.Equal(t, tc.message, out.Error())
			assert.Equal(t, tc.code, out.Extensions()["code"])
		})
	}
}

func TestClassify_EntradaIncluyeCampos(t *testing.T) {
	out, _ := classify(domain.NewUserInputError("Username already exists.", "username", "'alice' is already taken."))
	assert.Equal(t, map[string]string{"username": "'alice' is already taken."}, out.Extensions()["errors"])
}

func TestClassify_InternoNoFiltraDetalle(t *testing.T) {
	out, _ := classify(errors.New("pq: password authentication failed"))
	assert.NotContains(t, out.Error(), "pq:")
}

// ─── Presentación ────────────────────────────────────────────────────────────

func TestIso_FormatoConMilisegundos(t *testing.T) {
	ts := time.Date(2024, 1, 10, 12, 30, 0, 5_000_000, time.FixedZone("COT", -5*3600))
	assert.Equal(t, "2024-01-10T17:30:00.005Z", iso(ts))
	assert.Nil(t, iso(time.Time{}))
}

func TestUpdatedAccount_RespuestaBlanda(t *testing.T) {
	m := updatedAccount(dto.UpdateAccountResult{Message: dto.MsgAccountMissing, ID: "42"})
	assert.Equal(t, map[string]interface{}{"message": "Account is not found!", "id": "42"}, m)

	m = updatedAccount(dto.UpdateAccountResult{
		Message: dto.MsgAccountUpdated,
		ID:      "1",
		Account: &dto.AccountResponse{ID: "1", Username: "alice"},
	})
	assert.Equal(t, "alice", m["username"])
	assert.Equal(t, "Account has been updated!", m["message"])
}

func TestUserMap_BirthdayEsAliasDeBirthdate(t *testing.T) {
	b := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	m := userMap(&dto.UserResponse{ID: "u1", Birthdate: &b})
	assert.Equal(t, "1990-05-01T00:00:00.000Z", m["birthdate"])
	assert.Equal(t, m["birthdate"], m["birthday"])

	m = userMap(&dto.UserResponse{ID: "u2"})
	assert.Nil(t, m["birthdate"])
}

func TestDeleted_SinIDNoIncluyeCampo(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"message": "User is not found!"}, deletedUser(dto.DeleteUserResult{Message: dto.MsgUserMissing}))
	assert.Equal(t, "a1", deletedAccount(dto.DeleteAccountResult{Message: dto.MsgAccountDeleted, AccountID: "a1"})["accountId"])
}

func TestDecode_CampoDesconocido(t *testing.T) {
	var in dto.LoginRequest
	err := decode(map[string]interface{}{"username": "alice", "pin": "1"}, &in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
