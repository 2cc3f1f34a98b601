// Package storetest comprueba que un adaptador de persistencia cumple el contrato de
// repository.AccountRepository y repository.UserRepository. Lo ejecutan los tests de
// memory, postgres y mongodb para que los tres se comporten igual.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

// Factory devuelve repositorios sobre un almacén vacío. Se llama una vez por subtest.
type Factory func(t *testing.T) (repository.AccountRepository, repository.UserRepository)

// base en segundos enteros: Postgres guarda microsegundos y Mongo milisegundos.
var base = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

// Run ejecuta el contrato completo contra los repositorios de newRepos.
func Run(t *testing.T, newRepos Factory) {
	t.Run("UnicidadDeUsernameYEmail", func(t *testing.T) { accountUniqueness(t, newRepos) })
	t.Run("ListFiltraYOrdena", func(t *testing.T) { accountList(t, newRepos) })
	t.Run("BusquedaLiteral", func(t *testing.T) { accountLiteralSearch(t, newRepos) })
	t.Run("UpdateDeCuentaParcial", func(t *testing.T) { accountPartialUpdate(t, newRepos) })
	t.Run("CuentaInexistente", func(t *testing.T) { accountMissing(t, newRepos) })
	t.Run("UpdateDeUsuarioParcial", func(t *testing.T) { userPartialUpdate(t, newRepos) })
	t.Run("UsuariosMasRecientesPrimero", func(t *testing.T) { userListAndDelete(t, newRepos) })
}

// NewAccount cuenta BASIC con email derivado del username.
func NewAccount(username string, createdAt time.Time) *entity.Account {
	return &entity.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: "hash",
		AccessType:   entity.AccessBasic,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func create(t *testing.T, repo repository.AccountRepository, a *entity.Account) *entity.Account {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func usernames(list []*entity.Account) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Username)
	}
	return out
}

func accountUniqueness(t *testing.T, newRepos Factory) {
	ctx := context.Background()
	accounts, _ := newRepos(t)
	alice := create(t, accounts, NewAccount("alice", base))

	dupName := NewAccount("alice", base)
	dupName.Email = "otra@x.com"
	assert.ErrorIs(t, accounts.Create(ctx, dupName), domain.ErrUsernameTaken)

	dupEmail := NewAccount("bob", base)
	dupEmail.Email = alice.Email
	assert.ErrorIs(t, accounts.Create(ctx, dupEmail), domain.ErrEmailTaken)

	bob := create(t, accounts, NewAccount("bob", base))
	_, err := accounts.Update(ctx, bob.ID, entity.AccountPatch{Email: &alice.Email, UpdatedAt: base})
	assert.ErrorIs(t, err, domain.ErrEmailTaken, "el update también respeta el índice único")
}

func accountList(t *testing.T, newRepos Factory) {
	ctx := context.Background()
	accounts, _ := newRepos(t)

	alice := NewAccount("Alice", base.Add(-time.Hour))
	alice.AccessType = entity.AccessAdmin
	alice.SignupAt = "web"
	create(t, accounts, alice)
	malicia := NewAccount("malicia", base)
	malicia.SignupAt = "web"
	create(t, accounts, malicia)
	bob := NewAccount("bob", base.Add(time.Hour))
	bob.SignupAt = "app"
	create(t, accounts, bob)

	list, err := accounts.List(ctx, entity.AccountFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "malicia", "Alice"}, usernames(list), "la más reciente primero")

	list, err = accounts.List(ctx, entity.AccountFilter{Search: "ALI"})
	require.NoError(t, err)
	assert.Equal(t, []string{"malicia", "Alice"}, usernames(list), "búsqueda sin distinguir mayúsculas")

	list, err = accounts.List(ctx, entity.AccountFilter{AccessType: entity.AccessAdmin})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, usernames(list))

	list, err = accounts.List(ctx, entity.AccountFilter{SignupAt: "app"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, usernames(list))

	list, err = accounts.List(ctx, entity.AccountFilter{Search: "ali", AccessType: entity.AccessBasic})
	require.NoError(t, err)
	assert.Equal(t, []string{"malicia"}, usernames(list), "los predicados se combinan con AND")

	from, to := base.Add(-30*time.Minute), base.Add(time.Hour)
	list, err = accounts.List(ctx, entity.AccountFilter{CreatedFrom: &from, CreatedTo: &to})
	require.NoError(t, err)
	assert.Equal(t, []string{"malicia"}, usernames(list), "el límite superior es exclusivo")

	from = base.Add(-time.Hour)
	list, err = accounts.List(ctx, entity.AccountFilter{CreatedFrom: &from})
	require.NoError(t, err)
	assert.Len(t, list, 3, "el límite inferior es inclusivo")

	list, err = accounts.List(ctx, entity.AccountFilter{Search: "nadie"})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func accountLiteralSearch(t *testing.T, newRepos Factory) {
	ctx := context.Background()
	accounts, _ := newRepos(t)
	create(t, accounts, NewAccount("ana_b", base))
	create(t, accounts, NewAccount("anaxb", base.Add(time.Minute)))
	create(t, accounts, NewAccount("a.c", base.Add(2*time.Minute)))

	for search, want := range map[string][]string{
		"a_b": {"ana_b"},
		"%":   {},
		"a.c": {"a.c"},
		"a.b": {},
		`\`:   {},
	} {
		list, err := accounts.List(ctx, entity.AccountFilter{Search: search})
		require.NoError(t, err, search)
		assert.Equal(t, want, usernames(list), "búsqueda %q", search)
	}
}

func accountPartialUpdate(t *testing.T, newRepos Factory) {
	ctx := context.Background()
	accounts, _ := newRepos(t)
	a := NewAccount("alice", base)
	a.SignupAt = "web"
	create(t, accounts, a)

	email := "nueva@x.com"
	later := base.Add(time.Hour)
	updated, err := accounts.Update(ctx, a.ID, entity.AccountPatch{Email: &email, UpdatedAt: later})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "alice", updated.Username, "los campos ausentes no cambian")
	assert.Equal(t, "hash", updated.PasswordHash)
	assert.Equal(t, entity.AccessBasic, updated.AccessType)
	assert.Equal(t, "web", updated.SignupAt)
	assert.True(t, later.Equal(updated.UpdatedAt))
	assert.True(t, base.Equal(updated.CreatedAt))

	got, err := accounts.GetByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)

	got, err = accounts.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, email, got.Email)
}

func accountMissing(t *testing.T, newRepos Factory) {
	ctx := context.Background()
	accounts, _ := newRepos(t)
	a := create(t, accounts, NewAccount("alice", base))

	for _, id := range []string{uuid.NewString(), "no-es-uuid"} {
		got, err := accounts.GetByID(ctx, id)
		require.NoError(t, err, id)
		assert.Nil(t, got, id)

		updated, err := accounts.Update(ctx, id, entity.AccountPatch{UpdatedAt: base})
		require.NoError(t, err, id)
		assert.Nil(t, updated, id)

		deleted, err := accounts.Delete(ctx, id)
		require.NoError(t, err, id)
		assert.False(t, deleted, id)
	}

	got, err := accounts.GetByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Nil(t, got, "el username exacto distingue mayúsculas")

	deleted, err := accounts.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	got, err = accounts.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// NewUser ficha completa vinculada a accountID.
func NewUser(accountID, firstName string, createdAt time.Time) *entity.User {
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	return &entity.User{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		FirstName:   firstName,
		LastName:    "Cruz",
		MiddleName:  "M",
		Nickname:    "Ani",
		Birthdate:   &birth,
		FbAccount:   "fb/ana",
		ContactNo:   "555",
		EmailAdd:    "ana@x.com",
		Status:      "active",
		Position:    "coordinadora",
		Type:        "miembro",
		Group:       "norte",
		YearBaptism: 2001,
		Position1FC: "pos",
		Eon:         "eon",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func userPartialUpdate(t *testing.T, newRepos Factory) {
	ctx := context.Background()
	_, users := newRepos(t)
	u := NewUser(uuid.NewString(), "Ana", base)
	require.NoError(t, users.Create(ctx, u))

	nick, year := "Anita", 1999
	birth := time.Date(1991, 2, 3, 0, 0, 0, 0, time.UTC)
	owner := uuid.NewString()
	later := base.Add(time.Hour)
	updated, err := users.Update(ctx, u.ID, entity.UserPatch{
		AccountID:   &owner,
		Nickname:    &nick,
		YearBaptism: &year,
		Birthdate:   &birth,
		UpdatedAt:   later,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, owner, updated.AccountID)
	assert.Equal(t, nick, updated.Nickname)
	assert.Equal(t, year, updated.YearBaptism)
	require.NotNil(t, updated.Birthdate)
	assert.True(t, birth.Equal(*updated.Birthdate))
	assert.True(t, later.Equal(updated.UpdatedAt))

	// el resto de la ficha queda intacta
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "Cruz", updated.LastName)
	assert.Equal(t, "fb/ana", updated.FbAccount)
	assert.Equal(t, "ana@x.com", updated.EmailAdd)
	assert.Equal(t, "norte", updated.Group)
	assert.Equal(t, "pos", updated.Position1FC)
	assert.Equal(t, "eon", updated.Eon)

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, nick, got.Nickname)
	assert.True(t, base.Equal(got.CreatedAt))

	missing, err := users.Update(ctx, uuid.NewString(), entity.UserPatch{Nickname: &nick, UpdatedAt: later})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func userListAndDelete(t *testing.T, newRepos Factory) {
	ctx := context.Background()
	_, users := newRepos(t)
	accountID := uuid.NewString()
	older := NewUser(accountID, "Ana", base)
	newer := NewUser(accountID, "Beto", base.Add(time.Minute))
	require.NoError(t, users.Create(ctx, older))
	require.NoError(t, users.Create(ctx, newer))

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	deleted, err := users.Delete(ctx, older.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = users.Delete(ctx, older.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err = users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Beto", list[0].FirstName)
}
