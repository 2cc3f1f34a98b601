package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, account_id, first_name, last_name, middle_name, nickname, birthdate,
	fb_account, contact_no, email_add, status, position, type, "group", year_baptism,
	position_1fc, eon, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.AccountID, u.FirstName, u.LastName, u.MiddleName, u.Nickname, u.Birthdate,
		u.FbAccount, u.ContactNo, u.EmailAdd, u.Status, u.Position, u.Type, u.Group, u.YearBaptism,
		u.Position1FC, u.Eon, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// List todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := []*entity.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update aplica el patch (NULL = sin cambio) y devuelve la fila resultante, o nil si no existe.
func (r *UserRepo) Update(ctx context.Context, id string, p entity.UserPatch) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `
		UPDATE users SET
			account_id   = COALESCE($2::uuid, account_id),
			first_name   = COALESCE($3, first_name),
			last_name    = COALESCE($4, last_name),
			middle_name  = COALESCE($5, middle_name),
			nickname     = COALESCE($6, nickname),
			birthdate    = COALESCE($7::date, birthdate),
			fb_account   = COALESCE($8, fb_account),
			contact_no   = COALESCE($9, contact_no),
			email_add    = COALESCE($10, email_add),
			status       = COALESCE($11, status),
			position     = COALESCE($12, position),
			type         = COALESCE($13, type),
			"group"      = COALESCE($14, "group"),
			year_baptism = COALESCE($15, year_baptism),
			position_1fc = COALESCE($16, position_1fc),
			eon          = COALESCE($17, eon),
			updated_at   = $18
		WHERE id = $1
		RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query,
		id, p.AccountID, p.FirstName, p.LastName, p.MiddleName, p.Nickname, p.Birthdate,
		p.FbAccount, p.ContactNo, p.EmailAdd, p.Status, p.Position, p.Type, p.Group, p.YearBaptism,
		p.Position1FC, p.Eon, p.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.AccountID, &u.FirstName, &u.LastName, &u.MiddleName, &u.Nickname, &u.Birthdate,
		&u.FbAccount, &u.ContactNo, &u.EmailAdd, &u.Status, &u.Position, &u.Type, &u.Group, &u.YearBaptism,
		&u.Position1FC, &u.Eon, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
