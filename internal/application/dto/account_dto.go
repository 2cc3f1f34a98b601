package dto

import "time"

// RegisterAccountRequest entrada de cuenta en register (password en texto, se hashea en el use case).
type RegisterAccountRequest struct {
	Username        string `json:"username" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=200"`
	AccessType      string `json:"accessType" validate:"omitempty,access_type"`
	SignupAt        string `json:"signupAt" validate:"max=100"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// UpdateAccountRequest campos opcionales (nil = sin cambio).
type UpdateAccountRequest struct {
	Username   *string `json:"username" validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email" validate:"omitempty,email,max=200"`
	AccessType *string `json:"accessType" validate:"omitempty,access_type"`
	SignupAt   *string `json:"signupAt" validate:"omitempty,max=100"`
	Password   *string `json:"password" validate:"omitempty,min=1"`
}

// AccountFilterRequest filtros exactos de getAccounts; CreatedAt es una fecha (YYYY-MM-DD o RFC3339).
type AccountFilterRequest struct {
	AccessType string `json:"accessType"`
	SignupAt   string `json:"signupAt"`
	CreatedAt  string `json:"createdAt"`
}

// ListAccountsRequest argumentos de getAccounts.
type ListAccountsRequest struct {
	Search string                `json:"search"`
	Filter *AccountFilterRequest `json:"filter"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse salida de una cuenta (sin password).
type AccountResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	AccessType string    `json:"accessType"`
	SignupAt   string    `json:"signupAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UpdateAccountResult resultado de updateAccount. Account nil = cuenta no encontrada
// (respuesta blanda: sólo Message e ID).
type UpdateAccountResult struct {
	Message string
	ID      string
	Account *AccountResponse
}

// Found informa si la cuenta existía.
func (r UpdateAccountResult) Found() bool { return r.Account != nil }

// DeleteAccountResult resultado de deleteAccount. AccountID vacío = no encontrada.
type DeleteAccountResult struct {
	Message   string `json:"message"`
	AccountID string `json:"accountId,omitempty"`
}

// RegisterResponse salida de register.
type RegisterResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Account AccountResponse `json:"account"`
	User    UserResponse    `json:"user"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
}

// LogoutResponse salida de logout.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
