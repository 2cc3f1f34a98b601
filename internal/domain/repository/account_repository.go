package repository

import (
	"context"

	"github.com/jhoicas/accounts-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type AccountRepository interface {
	// Create devuelve domain.ErrUsernameTaken o domain.ErrEmailTaken si el índice único lo rechaza.
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	// List aplica todos los predicados del filtro con AND y ordena por created_at DESC.
	List(ctx context.Context, filter entity.AccountFilter) ([]*entity.Account, error)
	// Update devuelve la cuenta tras el cambio, o nil si no existe.
	Update(ctx context.Context, id string, patch entity.AccountPatch) (*entity.Account, error)
	// Delete informa si se eliminó algún registro.
	Delete(ctx context.Context, id string) (bool, error)
}
