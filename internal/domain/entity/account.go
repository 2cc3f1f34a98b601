package entity

import "time"

// AccessType de una cuenta. BASIC es el rol implícito cuando no se indica ninguno.
const (
	AccessAdmin      = "ADMIN"
	AccessSuperAdmin = "SUPERADMIN"
	AccessOIC        = "OIC"
	AccessPIC        = "PIC"
	AccessBasic      = "BASIC"
)

// AccessTypes todos los valores aceptados en la entrada.
var AccessTypes = []string{AccessAdmin, AccessSuperAdmin, AccessOIC, AccessPIC, AccessBasic}

// Account credenciales de acceso con su rol.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt; nunca texto plano después de crear/actualizar
	AccessType   string
	SignupAt     string // texto libre enviado por el cliente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin informa si la cuenta tiene rol administrativo.
func (a *Account) IsAdmin() bool {
	return a != nil && (a.AccessType == AccessAdmin || a.AccessType == AccessSuperAdmin)
}

// AccountFilter predicados de búsqueda sobre cuentas; los campos vacíos no filtran.
// CreatedFrom/CreatedTo forman la ventana [from, to) sobre CreatedAt.
type AccountFilter struct {
	Search      string
	AccessType  string
	SignupAt    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AccountPatch campos opcionales de actualización (nil = no cambia).
type AccountPatch struct {
	Username     *string
	Email        *string
	AccessType   *string
	SignupAt     *string
	PasswordHash *string
	UpdatedAt    time.Time
}

// Apply aplica el patch sobre la cuenta.
func (p AccountPatch) Apply(a *Account) {
	if p.Username != nil {
		a.Username = *p.Username
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.AccessType != nil {
		a.AccessType = *p.AccessType
	}
	if p.SignupAt != nil {
		a.SignupAt = *p.SignupAt
	}
	if p.PasswordHash != nil {
		a.PasswordHash = *p.PasswordHash
	}
	a.UpdatedAt = p.UpdatedAt
}
