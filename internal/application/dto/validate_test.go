package dto_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
)

func TestValidate_ReportaCamposPorNombreJSON(t *testing.T) {
	err := dto.Validate(dto.RegisterAccountRequest{
		Email:      "no-es-email",
		AccessType: "ROOT",
		Password:   "pw",
	})
	require.Error(t, err)

	var inputErr *domain.UserInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Errors, "username")
	assert.Contains(t, inputErr.Errors, "email")
	assert.Contains(t, inputErr.Errors, "accessType")
	assert.Contains(t, inputErr.Errors, "confirmPassword")
	assert.NotContains(t, inputErr.Errors, "password")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate_AccessTypeDesconocido(t *testing.T) {
	err := dto.Validate(dto.RegisterAccountRequest{Username: "a", Email: "a@b.com", AccessType: "ROOT", Password: "x", ConfirmPassword: "x"})
	var inputErr *domain.UserInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "accessType must be one of: ADMIN SUPERADMIN OIC PIC BASIC", inputErr.Errors["accessType"])

	role := entity.AccessOIC
	assert.NoError(t, dto.Validate(dto.UpdateAccountRequest{AccessType: &role}))
	root := "root"
	assert.Error(t, dto.Validate(dto.UpdateAccountRequest{AccessType: &root}))
}

// Los límites siguen el tamaño de las columnas de users; un valor más largo es entrada
// inválida y no un error de almacenamiento.
func TestValidate_LongitudMaximaDeFicha(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	err := dto.Validate(dto.RegisterUserRequest{
		FirstName: "Ana", LastName: "Cruz",
		Status: long(51), Type: long(51), Eon: long(101),
		Position: long(100), Group: long(100), Position1FC: long(100),
	})
	var inputErr *domain.UserInputError
	require.True(t, errors.As(err, &inputErr))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, inputErr.Errors, 3)
	assert.Equal(t, "status must be at most 50 characters", inputErr.Errors["status"])
	assert.Contains(t, inputErr.Errors, "type")
	assert.Contains(t, inputErr.Errors, "eon")

	email := long(195) + "@b.com"
	group, pos := long(101), long(101)
	err = dto.Validate(dto.UpdateUserRequest{EmailAdd: &email, Group: &group, Position1FC: &pos})
	require.True(t, errors.As(err, &inputErr))
	assert.Len(t, inputErr.Errors, 3)
	assert.Contains(t, inputErr.Errors, "emailAdd")
	assert.Contains(t, inputErr.Errors, "group")
	assert.Contains(t, inputErr.Errors, "position1FC")
}

func TestValidate_PatchNilNoSeValida(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.UpdateAccountRequest{}))

	bad := "x"
	err := dto.Validate(dto.UpdateAccountRequest{Email: &bad})
	assert.Error(t, err)
}

func TestValidate_EntradaCorrecta(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.RegisterUserRequest{FirstName: "Ana", LastName: "Cruz", YearBaptism: 2001}))
}

func TestParseDate(t *testing.T) {
	d, err := dto.ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = dto.ParseDate("2024-01-10T08:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 6, 30, 0, 0, time.UTC), d)

	_, err = dto.ParseDate("10/01/2024")
	assert.Error(t, err)
}
