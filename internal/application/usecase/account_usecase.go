package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

// PasswordHasher lo implementa auth.Credentials.
type PasswordHasher interface {
	HashPassword(plaintext string) (string, error)
}

// AccountUseCase directorio de cuentas: CRUD, búsqueda e invariantes de unicidad.
type AccountUseCase struct {
	repo   repository.AccountRepository
	hasher PasswordHasher
	now    func() time.Time
}

// NewAccountUseCase construye el caso de uso con el puerto de persistencia.
func NewAccountUseCase(repo repository.AccountRepository, hasher PasswordHasher) *AccountUseCase {
	return &AccountUseCase{repo: repo, hasher: hasher, now: time.Now}
}

// List busca cuentas, las más recientes primero.
// Search es coincidencia parcial sin distinguir mayúsculas sobre username; filter.createdAt
// selecciona la ventana [fecha - 1 día, fecha + 1 día).
func (uc *AccountUseCase) List(ctx context.Context, in dto.ListAccountsRequest) ([]dto.AccountResponse, error) {
	filter := entity.AccountFilter{Search: strings.TrimSpace(in.Search)}
	if in.Filter != nil {
		filter.AccessType = in.Filter.AccessType
		filter.SignupAt = in.Filter.SignupAt
		if in.Filter.CreatedAt != "" {
			day, err := dto.ParseDate(in.Filter.CreatedAt)
			if err != nil {
				return nil, domain.NewUserInputError("Invalid filter.", "createdAt", "createdAt must be a date (YYYY-MM-DD)")
			}
			from, to := day.AddDate(0, 0, -1), day.AddDate(0, 0, 1)
			filter.CreatedFrom, filter.CreatedTo = &from, &to
		}
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *AccountToResponse(a))
	}
	return items, nil
}

// Get obtiene una cuenta por ID; NotFoundError si no existe.
func (uc *AccountUseCase) Get(ctx context.Context, id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NewNotFoundError("Account not found!", domain.ErrAccountNotFound)
	}
	return AccountToResponse(account), nil
}

// Prepare valida la entrada de registro y construye la cuenta lista para persistir (password ya
// hasheado). Orden de comprobaciones: formato, username, email y confirmación de password.
func (uc *AccountUseCase) Prepare(ctx context.Context, in dto.RegisterAccountRequest) (*entity.Account, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, usernameTaken(in.Username)
	}
	existing, err = uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, emailTaken(in.Email)
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewUserInputError("Password did not match!", "password", "confirm password did not match")
	}
	hash, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	accessType := in.AccessType
	if accessType == "" {
		accessType = entity.AccessBasic
	}
	now := uc.now()
	return &entity.Account{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		AccessType:   accessType,
		SignupAt:     in.SignupAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Create registra una cuenta sin ficha de usuario.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.RegisterAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.Prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, account); err != nil {
		return nil, UniquenessError(err, account.Username, account.Email)
	}
	return AccountToResponse(account), nil
}

// Update aplica el patch. El llamador debe ser la propia cuenta o un administrador; cambiar
// accessType exige rol administrativo. Cuenta inexistente -> resultado blando, sin error.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.UpdateAccountRequest, caller *entity.Account) (dto.UpdateAccountResult, error) {
	if err := access.RequireSelfOrAdmin(caller, id); err != nil {
		return dto.UpdateAccountResult{}, err
	}
	if err := dto.Validate(in); err != nil {
		return dto.UpdateAccountResult{}, err
	}
	notFound := dto.UpdateAccountResult{Message: dto.MsgAccountMissing, ID: id}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return dto.UpdateAccountResult{}, err
	}
	if current == nil {
		return notFound, nil
	}
	if in.AccessType != nil && *in.AccessType != current.AccessType {
		if err := access.Require(access.ActionPrivilegedUpdate, caller); err != nil {
			return dto.UpdateAccountResult{}, err
		}
	}
	if in.Username != nil && *in.Username != current.Username {
		other, err := uc.repo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return dto.UpdateAccountResult{}, err
		}
		if other != nil && other.ID != id {
			return dto.UpdateAccountResult{}, usernameTaken(*in.Username)
		}
	}
	if in.Email != nil && *in.Email != current.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return dto.UpdateAccountResult{}, err
		}
		if other != nil && other.ID != id {
			return dto.UpdateAccountResult{}, emailTaken(*in.Email)
		}
	}

	patch := entity.AccountPatch{
		Username:   in.Username,
		Email:      in.Email,
		AccessType: in.AccessType,
		SignupAt:   in.SignupAt,
		UpdatedAt:  uc.now(),
	}
	if in.Password != nil {
		hash, err := uc.hasher.HashPassword(*in.Password)
		if err != nil {
			return dto.UpdateAccountResult{}, err
		}
		patch.PasswordHash = &hash
	}
	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return dto.UpdateAccountResult{}, UniquenessError(err, deref(in.Username), deref(in.Email))
	}
	if updated == nil {
		return notFound, nil
	}
	return dto.UpdateAccountResult{Message: dto.MsgAccountUpdated, ID: id, Account: AccountToResponse(updated)}, nil
}

// Delete elimina una cuenta (sólo ADMIN/SUPERADMIN). No borra las fichas de usuario vinculadas.
func (uc *AccountUseCase) Delete(ctx context.Context, id string, caller *entity.Account) (dto.DeleteAccountResult, error) {
	if err := access.Require(access.ActionDeleteAccount, caller); err != nil {
		return dto.DeleteAccountResult{}, err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return dto.DeleteAccountResult{}, err
	}
	if !deleted {
		return dto.DeleteAccountResult{Message: dto.MsgAccountMissing}, nil
	}
	return dto.DeleteAccountResult{Message: dto.MsgAccountDeleted, AccountID: id}, nil
}

func usernameTaken(username string) error {
	return domain.NewUserInputError("Username already exists.", "username", "'"+username+"' is already taken.")
}

func emailTaken(email string) error {
	return domain.NewUserInputError("Email is already used.", "email", "'"+email+"' is already used.")
}

// UniquenessError traduce la violación de índice único del almacén al mismo UserInputError que
// devuelve la comprobación previa (carrera entre dos registros simultáneos).
func UniquenessError(err error, username, email string) error {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return usernameTaken(username)
	case errors.Is(err, domain.ErrEmailTaken):
		return emailTaken(email)
	default:
		return err
	}
}

// AccountToResponse convierte la entidad en DTO de salida (sin password).
func AccountToResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:         a.ID,
		Username:   a.Username,
		Email:      a.Email,
		AccessType: a.AccessType,
		SignupAt:   a.SignupAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
