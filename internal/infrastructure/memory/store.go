// Package memory adaptador de persistencia en proceso (STORAGE_DRIVER=memory y tests).
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jhoicas/accounts-api/internal/application/auth"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"golang.org/x/text/cases"
)

var (
	_ repository.AccountRepository = (*AccountRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ auth.TxRunner                = (*TxRunner)(nil)
)

// Store datos compartidos por los repositorios en memoria. Un único mutex protege ambos mapas.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
	users    map[string]*entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*entity.Account),
		users:    make(map[string]*entity.User),
	}
}

// Accounts repositorio de cuentas sobre el store.
func (s *Store) Accounts() *AccountRepo { return &AccountRepo{s: s} }

// Users repositorio de usuarios sobre el store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// txState marca que el lock ya lo tiene TxRunner y acumula deshacer.
type txState struct {
	undo []func()
}

func (t *txState) record(fn func()) {
	if t != nil {
		t.undo = append(t.undo, fn)
	}
}

func (s *Store) write(tx *txState) func() {
	if tx != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) read(tx *txState) func() {
	if tx != nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// ── Accounts ─────────────────────────────────────────────────────────────────

// AccountRepo implementación en memoria de repository.AccountRepository.
type AccountRepo struct {
	s  *Store
	tx *txState
}

func (r *AccountRepo) Create(_ context.Context, account *entity.Account) error {
	defer r.s.write(r.tx)()
	if err := r.s.checkUnique(account.ID, account.Username, account.Email); err != nil {
		return err
	}
	cp := *account
	r.s.accounts[account.ID] = &cp
	id := account.ID
	r.tx.record(func() { delete(r.s.accounts, id) })
	return nil
}

func (s *Store) checkUnique(selfID, username, email string) error {
	for _, a := range s.accounts {
		if a.ID == selfID {
			continue
		}
		if a.Username == username {
			return domain.ErrUsernameTaken
		}
		if a.Email == email {
			return domain.ErrEmailTaken
		}
	}
	return nil
}

func (r *AccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	defer r.s.read(r.tx)()
	return copyAccount(r.s.accounts[id]), nil
}

func (r *AccountRepo) GetByUsername(_ context.Context, username string) (*entity.Account, error) {
	defer r.s.read(r.tx)()
	for _, a := range r.s.accounts {
		if a.Username == username {
			return copyAccount(a), nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	defer r.s.read(r.tx)()
	for _, a := range r.s.accounts {
		if a.Email == email {
			return copyAccount(a), nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) List(_ context.Context, filter entity.AccountFilter) ([]*entity.Account, error) {
	defer r.s.read(r.tx)()
	fold := cases.Fold()
	search := fold.String(filter.Search)
	list := make([]*entity.Account, 0, len(r.s.accounts))
	for _, a := range r.s.accounts {
		if search != "" && !strings.Contains(fold.String(a.Username), search) {
			continue
		}
		if filter.AccessType != "" && a.AccessType != filter.AccessType {
			continue
		}
		if filter.SignupAt != "" && a.SignupAt != filter.SignupAt {
			continue
		}
		if filter.CreatedFrom != nil && a.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedTo != nil && !a.CreatedAt.Before(*filter.CreatedTo) {
			continue
		}
		list = append(list, copyAccount(a))
	}
	slices.SortStableFunc(list, func(a, b *entity.Account) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return list, nil
}

func (r *AccountRepo) Update(_ context.Context, id string, patch entity.AccountPatch) (*entity.Account, error) {
	defer r.s.write(r.tx)()
	current, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	next := *current
	patch.Apply(&next)
	if err := r.s.checkUnique(id, next.Username, next.Email); err != nil {
		return nil, err
	}
	r.s.accounts[id] = &next
	r.tx.record(func() { r.s.accounts[id] = current })
	return copyAccount(&next), nil
}

func (r *AccountRepo) Delete(_ context.Context, id string) (bool, error) {
	defer r.s.write(r.tx)()
	current, ok := r.s.accounts[id]
	if !ok {
		return false, nil
	}
	delete(r.s.accounts, id)
	r.tx.record(func() { r.s.accounts[id] = current })
	return true, nil
}

func copyAccount(a *entity.Account) *entity.Account {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

// ── Users ────────────────────────────────────────────────────────────────────

// UserRepo implementación en memoria de repository.UserRepository.
type UserRepo struct {
	s  *Store
	tx *txState
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.write(r.tx)()
	r.s.users[user.ID] = copyUser(user)
	id := user.ID
	r.tx.record(func() { delete(r.s.users, id) })
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.s.read(r.tx)()
	return copyUser(r.s.users[id]), nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	defer r.s.read(r.tx)()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		list = append(list, copyUser(u))
	}
	slices.SortStableFunc(list, func(a, b *entity.User) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return list, nil
}

func (r *UserRepo) Update(_ context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	defer r.s.write(r.tx)()
	current, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	next := copyUser(current)
	patch.Apply(next)
	r.s.users[id] = next
	r.tx.record(func() { r.s.users[id] = current })
	return copyUser(next), nil
}

func (r *UserRepo) Delete(_ context.Context, id string) (bool, error) {
	defer r.s.write(r.tx)()
	current, ok := r.s.users[id]
	if !ok {
		return false, nil
	}
	delete(r.s.users, id)
	r.tx.record(func() { r.s.users[id] = current })
	return true, nil
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Birthdate != nil {
		b := *u.Birthdate
		cp.Birthdate = &b
	}
	return &cp
}

// ── Tx ───────────────────────────────────────────────────────────────────────

// TxRunner aplica las escrituras de fn bajo un único lock; si fn falla las deshace.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(_ context.Context, fn func(
	accounts repository.AccountRepository,
	users repository.UserRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx := &txState{}
	err := fn(&AccountRepo{s: r.s, tx: tx}, &UserRepo{s: r.s, tx: tx})
	if err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		return err
	}
	return nil
}
