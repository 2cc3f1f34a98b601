package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/application/usecase"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/infrastructure/memory"
)

func newUserUC(store *memory.Store) *usecase.UserUseCase {
	return usecase.NewUserUseCase(store.Users(), store.Accounts())
}

func profile() dto.RegisterUserRequest {
	return dto.RegisterUserRequest{FirstName: "Ana", LastName: "Cruz", Birthdate: "1990-05-01", YearBaptism: 2005}
}

func TestUserCreate_RolesPermitidos(t *testing.T) {
	for _, role := range []string{entity.AccessAdmin, entity.AccessSuperAdmin, entity.AccessOIC, entity.AccessPIC} {
		t.Run(role, func(t *testing.T) {
			store := memory.NewStore()
			caller := seed(t, store, "1", "caller", role, time.Now())
			out, err := newUserUC(store).Create(context.Background(), profile(), caller.ID, caller)
			require.NoError(t, err)
			assert.Equal(t, caller.ID, out.AccountID)
			require.NotNil(t, out.Birthdate)
			assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), *out.Birthdate)
		})
	}
}

func TestUserCreate_BasicNoPuede(t *testing.T) {
	store := memory.NewStore()
	caller := seed(t, store, "1", "basic", entity.AccessBasic, time.Now())

	_, err := newUserUC(store).Create(context.Background(), profile(), caller.ID, caller)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, _ := store.Users().List(context.Background())
	assert.Empty(t, list, "no debe haber mutación")
}

func TestUserCreate_CuentaInexistente(t *testing.T) {
	store := memory.NewStore()
	caller := seed(t, store, "1", "root", entity.AccessAdmin, time.Now())

	_, err := newUserUC(store).Create(context.Background(), profile(), "no-existe", caller)
	e := inputErr(t, err)
	assert.Contains(t, e.Errors, "accountId")
}

func TestUserCreate_BirthdateInvalida(t *testing.T) {
	store := memory.NewStore()
	caller := seed(t, store, "1", "root", entity.AccessAdmin, time.Now())
	in := profile()
	in.Birthdate = "mañana"

	_, err := newUserUC(store).Create(context.Background(), in, caller.ID, caller)
	e := inputErr(t, err)
	assert.Contains(t, e.Errors, "birthdate")
}

func TestUserGet_NoEncontrado(t *testing.T) {
	_, err := newUserUC(memory.NewStore()).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.EqualError(t, err, "User not found!")
}

func TestUserUpdate_DuenoYAjeno(t *testing.T) {
	store := memory.NewStore()
	admin := seed(t, store, "1", "root", entity.AccessAdmin, time.Now())
	owner := seed(t, store, "2", "alice", entity.AccessBasic, time.Now())
	stranger := seed(t, store, "3", "bob", entity.AccessBasic, time.Now())
	uc := newUserUC(store)

	created, err := uc.Create(context.Background(), profile(), owner.ID, admin)
	require.NoError(t, err)

	res, err := uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Nickname: ptr("Anita")}, owner)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "User has been updated!", res.Message)
	assert.Equal(t, "Anita", res.User.Nickname)
	assert.Equal(t, "Cruz", res.User.LastName, "los campos ausentes no cambian")

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Nickname: ptr("X")}, stranger)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdate_ReasignarCuenta(t *testing.T) {
	store := memory.NewStore()
	admin := seed(t, store, "1", "root", entity.AccessAdmin, time.Now())
	owner := seed(t, store, "2", "alice", entity.AccessBasic, time.Now())
	uc := newUserUC(store)

	created, err := uc.Create(context.Background(), profile(), owner.ID, admin)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{AccountID: ptr(admin.ID)}, owner)
	assert.ErrorIs(t, err, domain.ErrForbidden, "sólo un admin reasigna la ficha")

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{AccountID: ptr("no-existe")}, admin)
	e := inputErr(t, err)
	assert.Contains(t, e.Errors, "accountId")

	res, err := uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{AccountID: ptr(admin.ID)}, admin)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, res.User.AccountID)
}

func TestUserUpdate_NoEncontrado(t *testing.T) {
	store := memory.NewStore()
	admin := seed(t, store, "1", "root", entity.AccessAdmin, time.Now())

	res, err := newUserUC(store).Update(context.Background(), "nope", dto.UpdateUserRequest{}, admin)
	require.NoError(t, err)
	assert.Equal(t, dto.UpdateUserResult{Message: "User is not found!", ID: "nope"}, res)
}

func TestUserDelete(t *testing.T) {
	store := memory.NewStore()
	admin := seed(t, store, "1", "root", entity.AccessAdmin, time.Now())
	pic := seed(t, store, "2", "pic", entity.AccessPIC, time.Now())
	uc := newUserUC(store)

	created, err := uc.Create(context.Background(), profile(), pic.ID, pic)
	require.NoError(t, err)

	_, err = uc.Delete(context.Background(), created.ID, pic)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err := uc.Delete(context.Background(), created.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, dto.DeleteUserResult{Message: "User is deleted!", UserID: created.ID}, res)

	res, err = uc.Delete(context.Background(), created.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, "User is not found!", res.Message)
}

func TestUserList_MasRecientePrimero(t *testing.T) {
	store := memory.NewStore()
	base := time.Now()
	require.NoError(t, store.Users().Create(context.Background(), &entity.User{ID: "a", FirstName: "A", CreatedAt: base}))
	require.NoError(t, store.Users().Create(context.Background(), &entity.User{ID: "b", FirstName: "B", CreatedAt: base.Add(time.Minute)}))

	list, err := newUserUC(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
}
