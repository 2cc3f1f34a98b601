package auth

import (
	"context"

	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una frontera transaccional, pasando repositorios atados a ella.
// Si fn devuelve error no debe quedar ninguna escritura visible (rollback o compensación).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accounts repository.AccountRepository,
		users repository.UserRepository,
	) error) error
}
