package dto

import "time"

// RegisterUserRequest ficha de perfil (register y createUser). Birthdate: YYYY-MM-DD o RFC3339.
type RegisterUserRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	MiddleName  string `json:"middleName" validate:"max=100"`
	Nickname    string `json:"nickname" validate:"max=100"`
	Birthdate   string `json:"birthdate"`
	FbAccount   string `json:"fbAccount" validate:"max=200"`
	ContactNo   string `json:"contactNo" validate:"max=50"`
	EmailAdd    string `json:"emailAdd" validate:"omitempty,email,max=200"`
	Status      string `json:"status" validate:"max=50"`
	Position    string `json:"position" validate:"max=100"`
	Type        string `json:"type" validate:"max=50"`
	Group       string `json:"group" validate:"max=100"`
	YearBaptism int    `json:"yearBaptism" validate:"gte=0"`
	Position1FC string `json:"position1FC" validate:"max=100"`
	Eon         string `json:"eon" validate:"max=100"`
}

// UpdateUserRequest campos opcionales (nil = sin cambio).
type UpdateUserRequest struct {
	AccountID   *string `json:"accountId" validate:"omitempty,min=1"`
	FirstName   *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	MiddleName  *string `json:"middleName" validate:"omitempty,max=100"`
	Nickname    *string `json:"nickname" validate:"omitempty,max=100"`
	Birthdate   *string `json:"birthdate"`
	FbAccount   *string `json:"fbAccount" validate:"omitempty,max=200"`
	ContactNo   *string `json:"contactNo" validate:"omitempty,max=50"`
	EmailAdd    *string `json:"emailAdd" validate:"omitempty,email,max=200"`
	Status      *string `json:"status" validate:"omitempty,max=50"`
	Position    *string `json:"position" validate:"omitempty,max=100"`
	Type        *string `json:"type" validate:"omitempty,max=50"`
	Group       *string `json:"group" validate:"omitempty,max=100"`
	YearBaptism *int    `json:"yearBaptism" validate:"omitempty,gte=0"`
	Position1FC *string `json:"position1FC" validate:"omitempty,max=100"`
	Eon         *string `json:"eon" validate:"omitempty,max=100"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"accountId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	MiddleName  string     `json:"middleName"`
	Nickname    string     `json:"nickname"`
	Birthdate   *time.Time `json:"birthdate"`
	FbAccount   string     `json:"fbAccount"`
	ContactNo   string     `json:"contactNo"`
	EmailAdd    string     `json:"emailAdd"`
	Status      string     `json:"status"`
	Position    string     `json:"position"`
	Type        string     `json:"type"`
	Group       string     `json:"group"`
	YearBaptism int        `json:"yearBaptism"`
	Position1FC string     `json:"position1FC"`
	Eon         string     `json:"eon"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// UpdateUserResult resultado de updateUser. User nil = no encontrado.
type UpdateUserResult struct {
	Message string
	ID      string
	User    *UserResponse
}

// Found informa si el usuario existía.
func (r UpdateUserResult) Found() bool { return r.User != nil }

// DeleteUserResult resultado de deleteUser. UserID vacío = no encontrado.
type DeleteUserResult struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}
