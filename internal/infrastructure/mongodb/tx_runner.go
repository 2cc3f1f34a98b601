package mongodb

import (
	"context"

	"github.com/jhoicas/accounts-api/internal/application/auth"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner frontera de register sin transacciones multi-documento (standalone no las soporta):
// si fn falla se borra lo que se llegó a insertar.
type TxRunner struct {
	db *mongo.Database
}

// NewTxRunner construye el runner sobre la base.
func NewTxRunner(db *mongo.Database) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	accounts repository.AccountRepository,
	users repository.UserRepository,
) error) error {
	accounts := &trackedAccounts{AccountRepo: NewAccountRepository(r.db)}
	users := &trackedUsers{UserRepo: NewUserRepository(r.db)}

	err := fn(accounts, users)
	if err == nil {
		return nil
	}
	// compensación; debe correr aunque el contexto de la petición se haya cancelado
	cctx := context.WithoutCancel(ctx)
	for _, id := range users.created {
		_, _ = users.UserRepo.Delete(cctx, id)
	}
	for _, id := range accounts.created {
		_, _ = accounts.AccountRepo.Delete(cctx, id)
	}
	return err
}

type trackedAccounts struct {
	*AccountRepo
	created []string
}

func (t *trackedAccounts) Create(ctx context.Context, a *entity.Account) error {
	if err := t.AccountRepo.Create(ctx, a); err != nil {
		return err
	}
	t.created = append(t.created, a.ID)
	return nil
}

type trackedUsers struct {
	*UserRepo
	created []string
}

func (t *trackedUsers) Create(ctx context.Context, u *entity.User) error {
	if err := t.UserRepo.Create(ctx, u); err != nil {
		return err
	}
	t.created = append(t.created, u.ID)
	return nil
}
