package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, username, email, password_hash, access_type, signup_at, created_at, updated_at`

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	db Querier
}

// NewAccountRepository construye el adaptador; db puede ser el pool o una tx.
func NewAccountRepository(db Querier) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.Username, a.Email, a.PasswordHash, a.AccessType, a.SignupAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueAccountError(err)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id", id)
}

// GetByUsername obtiene una cuenta por username exacto.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.findOne(ctx, "username", username)
}

// GetByEmail obtiene una cuenta por email exacto.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, "email", email)
}

func (r *AccountRepo) findOne(ctx context.Context, column, value string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + column + ` = $1`
	a, err := scanAccount(r.db.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by %s: %w", column, err)
	}
	return a, nil
}

// List aplica los predicados del filtro con AND, más recientes primero.
func (r *AccountRepo) List(ctx context.Context, f entity.AccountFilter) ([]*entity.Account, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Search != "" {
		add(`username ILIKE '%%' || $%d || '%%' ESCAPE '\'`, likeEscape(f.Search))
	}
	if f.AccessType != "" {
		add(`access_type = $%d`, f.AccessType)
	}
	if f.SignupAt != "" {
		add(`signup_at = $%d`, f.SignupAt)
	}
	if f.CreatedFrom != nil {
		add(`created_at >= $%d`, *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		add(`created_at < $%d`, *f.CreatedTo)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	list := []*entity.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update aplica el patch (NULL = sin cambio) y devuelve la fila resultante, o nil si no existe.
func (r *AccountRepo) Update(ctx context.Context, id string, p entity.AccountPatch) (*entity.Account, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `
		UPDATE accounts SET
			username      = COALESCE($2, username),
			email         = COALESCE($3, email),
			access_type   = COALESCE($4, access_type),
			signup_at     = COALESCE($5, signup_at),
			password_hash = COALESCE($6, password_hash),
			updated_at    = $7
		WHERE id = $1
		RETURNING ` + accountColumns
	a, err := scanAccount(r.db.QueryRow(ctx, query,
		id, p.Username, p.Email, p.AccessType, p.SignupAt, p.PasswordHash, p.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, uniqueAccountError(err)
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	return a, nil
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAccount(row rowScanner) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.AccessType, &a.SignupAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
