package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

// UserUseCase directorio de fichas de usuario.
type UserUseCase struct {
	repo     repository.UserRepository
	accounts access.AccountFinder
	now      func() time.Time
}

// NewUserUseCase construye el caso de uso. accounts se usa para validar accountId.
func NewUserUseCase(repo repository.UserRepository, accounts access.AccountFinder) *UserUseCase {
	return &UserUseCase{repo: repo, accounts: accounts, now: time.Now}
}

// List todas las fichas, las más recientes primero.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *UserToResponse(u))
	}
	return items, nil
}

// Get obtiene un usuario por ID; NotFoundError si no existe.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found!", domain.ErrUserNotFound)
	}
	return UserToResponse(user), nil
}

// Prepare valida la ficha y la construye vinculada a accountID (sin persistir ni comprobar la cuenta).
func (uc *UserUseCase) Prepare(in dto.RegisterUserRequest, accountID string) (*entity.User, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var birthdate *time.Time
	if in.Birthdate != "" {
		d, err := dto.ParseDate(in.Birthdate)
		if err != nil {
			return nil, domain.NewUserInputError("Invalid input.", "birthdate", "birthdate must be a date (YYYY-MM-DD)")
		}
		birthdate = &d
	}
	now := uc.now()
	return &entity.User{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		MiddleName:  in.MiddleName,
		Nickname:    in.Nickname,
		Birthdate:   birthdate,
		FbAccount:   in.FbAccount,
		ContactNo:   in.ContactNo,
		EmailAdd:    in.EmailAdd,
		Status:      in.Status,
		Position:    in.Position,
		Type:        in.Type,
		Group:       in.Group,
		YearBaptism: in.YearBaptism,
		Position1FC: in.Position1FC,
		Eon:         in.Eon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Create crea una ficha para una cuenta existente. Requiere rol ADMIN, SUPERADMIN, OIC o PIC.
func (uc *UserUseCase) Create(ctx context.Context, in dto.RegisterUserRequest, accountID string, caller *entity.Account) (*dto.UserResponse, error) {
	if err := access.Require(access.ActionCreateUser, caller); err != nil {
		return nil, err
	}
	user, err := uc.Prepare(in, accountID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return UserToResponse(user), nil
}

// Update aplica el patch. El llamador debe ser administrador o dueño de la ficha (user.accountId).
// Reasignar accountId exige rol administrativo y una cuenta existente.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest, caller *entity.Account) (dto.UpdateUserResult, error) {
	notFound := dto.UpdateUserResult{Message: dto.MsgUserMissing, ID: id}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return dto.UpdateUserResult{}, err
	}
	if current == nil {
		return notFound, nil
	}
	if err := access.RequireSelfOrAdmin(caller, current.AccountID); err != nil {
		return dto.UpdateUserResult{}, err
	}
	if err := dto.Validate(in); err != nil {
		return dto.UpdateUserResult{}, err
	}
	if in.AccountID != nil && *in.AccountID != current.AccountID {
		if err := access.Require(access.ActionPrivilegedUpdate, caller); err != nil {
			return dto.UpdateUserResult{}, err
		}
		if err := uc.requireAccount(ctx, *in.AccountID); err != nil {
			return dto.UpdateUserResult{}, err
		}
	}

	patch := entity.UserPatch{
		AccountID:   in.AccountID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		MiddleName:  in.MiddleName,
		Nickname:    in.Nickname,
		FbAccount:   in.FbAccount,
		ContactNo:   in.ContactNo,
		EmailAdd:    in.EmailAdd,
		Status:      in.Status,
		Position:    in.Position,
		Type:        in.Type,
		Group:       in.Group,
		YearBaptism: in.YearBaptism,
		Position1FC: in.Position1FC,
		Eon:         in.Eon,
		UpdatedAt:   uc.now(),
	}
	if in.Birthdate != nil && *in.Birthdate != "" {
		d, err := dto.ParseDate(*in.Birthdate)
		if err != nil {
			return dto.UpdateUserResult{}, domain.NewUserInputError("Invalid input.", "birthdate", "birthdate must be a date (YYYY-MM-DD)")
		}
		patch.Birthdate = &d
	}
	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return dto.UpdateUserResult{}, err
	}
	if updated == nil {
		return notFound, nil
	}
	return dto.UpdateUserResult{Message: dto.MsgUserUpdated, ID: id, User: UserToResponse(updated)}, nil
}

// Delete elimina una ficha (sólo ADMIN/SUPERADMIN).
func (uc *UserUseCase) Delete(ctx context.Context, id string, caller *entity.Account) (dto.DeleteUserResult, error) {
	if err := access.Require(access.ActionDeleteUser, caller); err != nil {
		return dto.DeleteUserResult{}, err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return dto.DeleteUserResult{}, err
	}
	if !deleted {
		return dto.DeleteUserResult{Message: dto.MsgUserMissing}, nil
	}
	return dto.DeleteUserResult{Message: dto.MsgUserDeleted, UserID: id}, nil
}

func (uc *UserUseCase) requireAccount(ctx context.Context, accountID string) error {
	account, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.NewUserInputError("Account does not exist.", "accountId", "'"+accountID+"' does not reference an account.")
	}
	return nil
}

// UserToResponse convierte la entidad en DTO de salida.
func UserToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		AccountID:   u.AccountID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		MiddleName:  u.MiddleName,
		Nickname:    u.Nickname,
		Birthdate:   u.Birthdate,
		FbAccount:   u.FbAccount,
		ContactNo:   u.ContactNo,
		EmailAdd:    u.EmailAdd,
		Status:      u.Status,
		Position:    u.Position,
		Type:        u.Type,
		Group:       u.Group,
		YearBaptism: u.YearBaptism,
		Position1FC: u.Position1FC,
		Eon:         u.Eon,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
