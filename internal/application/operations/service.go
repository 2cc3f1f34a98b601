// Package operations compone autenticación, control de acceso y directorios en las operaciones
// públicas del API. Los transportes (GraphQL) sólo decodifican argumentos y llaman aquí.
package operations

import (
	"context"

	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/application/auth"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/application/usecase"
)

// Service operaciones públicas. El header Authorization viaja en ctx (access.WithAuthorization).
type Service struct {
	guard    *access.Guard
	auth     *auth.AuthUseCase
	accounts *usecase.AccountUseCase
	users    *usecase.UserUseCase
}

// NewService construye el orquestador.
func NewService(guard *access.Guard, authUC *auth.AuthUseCase, accounts *usecase.AccountUseCase, users *usecase.UserUseCase) *Service {
	return &Service{guard: guard, auth: authUC, accounts: accounts, users: users}
}

// Register no requiere token.
func (s *Service) Register(ctx context.Context, accountIn dto.RegisterAccountRequest, userIn dto.RegisterUserRequest) (*dto.RegisterResponse, error) {
	return s.auth.Register(ctx, accountIn, userIn)
}

// Login no requiere token.
func (s *Service) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.auth.Login(ctx, in)
}

// Logout revoca el token del llamador.
func (s *Service) Logout(ctx context.Context) (*dto.LogoutResponse, error) {
	_, id, err := s.guard.Caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.auth.Logout(ctx, id)
}

func (s *Service) GetAccounts(ctx context.Context, in dto.ListAccountsRequest) ([]dto.AccountResponse, error) {
	if _, _, err := s.guard.Caller(ctx); err != nil {
		return nil, err
	}
	return s.accounts.List(ctx, in)
}

func (s *Service) GetAccountDetails(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	if _, _, err := s.guard.Caller(ctx); err != nil {
		return nil, err
	}
	return s.accounts.Get(ctx, accountID)
}

func (s *Service) UpdateAccount(ctx context.Context, accountID string, in dto.UpdateAccountRequest) (dto.UpdateAccountResult, error) {
	caller, _, err := s.guard.Caller(ctx)
	if err != nil {
		return dto.UpdateAccountResult{}, err
	}
	return s.accounts.Update(ctx, accountID, in, caller)
}

func (s *Service) DeleteAccount(ctx context.Context, accountID string) (dto.DeleteAccountResult, error) {
	caller, _, err := s.guard.Caller(ctx)
	if err != nil {
		return dto.DeleteAccountResult{}, err
	}
	return s.accounts.Delete(ctx, accountID, caller)
}

func (s *Service) CreateUser(ctx context.Context, in dto.RegisterUserRequest, accountID string) (*dto.UserResponse, error) {
	caller, _, err := s.guard.Caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, in, accountID, caller)
}

func (s *Service) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	if _, _, err := s.guard.Caller(ctx); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *Service) GetUserDetails(ctx context.Context, userID string) (*dto.UserResponse, error) {
	if _, _, err := s.guard.Caller(ctx); err != nil {
		return nil, err
	}
	return s.users.Get(ctx, userID)
}

func (s *Service) UpdateUser(ctx context.Context, userID string, in dto.UpdateUserRequest) (dto.UpdateUserResult, error) {
	caller, _, err := s.guard.Caller(ctx)
	if err != nil {
		return dto.UpdateUserResult{}, err
	}
	return s.users.Update(ctx, userID, in, caller)
}

func (s *Service) DeleteUser(ctx context.Context, userID string) (dto.DeleteUserResult, error) {
	caller, _, err := s.guard.Caller(ctx)
	if err != nil {
		return dto.DeleteUserResult{}, err
	}
	return s.users.Delete(ctx, userID, caller)
}
