package auth

import (
	"context"

	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/application/usecase"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	accounts    *usecase.AccountUseCase
	users       *usecase.UserUseCase
	accountRepo repository.AccountRepository
	tx          TxRunner
	creds       *Credentials
	denylist    repository.TokenDenylist
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	accounts *usecase.AccountUseCase,
	users *usecase.UserUseCase,
	accountRepo repository.AccountRepository,
	tx TxRunner,
	creds *Credentials,
	denylist repository.TokenDenylist,
) *AuthUseCase {
	return &AuthUseCase{
		accounts:    accounts,
		users:       users,
		accountRepo: accountRepo,
		tx:          tx,
		creds:       creds,
		denylist:    denylist,
	}
}

// Register valida ambas entradas y crea cuenta y ficha de usuario dentro de una misma
// transacción: si la ficha falla, la cuenta no queda persistida.
func (uc *AuthUseCase) Register(ctx context.Context, accountIn dto.RegisterAccountRequest, userIn dto.RegisterUserRequest) (*dto.RegisterResponse, error) {
	account, err := uc.accounts.Prepare(ctx, accountIn)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.Prepare(userIn, account.ID)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(accounts repository.AccountRepository, users repository.UserRepository) error {
		if err := accounts.Create(ctx, account); err != nil {
			return usecase.UniquenessError(err, account.Username, account.Email)
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Success: true,
		Message: dto.MsgRegistered,
		Account: *usecase.AccountToResponse(account),
		User:    *usecase.UserToResponse(user),
	}, nil
}

// Login verifica username/password y emite un token de una hora.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	account, err := uc.accountRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NewUserInputError("Account is not found", "general", "Account is not found.")
	}
	if !uc.creds.VerifyPassword(in.Password, account.PasswordHash) {
		return nil, domain.NewUserInputError("Invalid Credentials", "general", "Invalid Credentials.")
	}
	token, _, err := uc.creds.IssueToken(account)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: dto.MsgLoggedIn,
		Account: *usecase.AccountToResponse(account),
		Token:   token,
	}, nil
}

// Logout revoca el token presentado hasta su expiración natural.
func (uc *AuthUseCase) Logout(ctx context.Context, id *access.Identity) (*dto.LogoutResponse, error) {
	if id == nil {
		return nil, domain.NewAuthenticationError(domain.MsgTokenInvalid, domain.ErrUnauthorized)
	}
	if uc.denylist != nil && id.TokenID != "" {
		if err := uc.denylist.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
			return nil, err
		}
	}
	return &dto.LogoutResponse{Success: true, Message: dto.MsgLoggedOut}, nil
}
