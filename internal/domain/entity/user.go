package entity

import "time"

// User ficha de perfil vinculada a una Account por AccountID.
// La relación no es de propiedad: borrar el User no afecta a la Account y viceversa.
type User struct {
	ID          string
	AccountID   string
	FirstName   string
	LastName    string
	MiddleName  string
	Nickname    string
	Birthdate   *time.Time
	FbAccount   string
	ContactNo   string
	EmailAdd    string
	Status      string
	Position    string
	Type        string
	Group       string
	YearBaptism int
	Position1FC string
	Eon         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserPatch campos opcionales de actualización (nil = no cambia).
type UserPatch struct {
	AccountID   *string
	FirstName   *string
	LastName    *string
	MiddleName  *string
	Nickname    *string
	Birthdate   *time.Time
	FbAccount   *string
	ContactNo   *string
	EmailAdd    *string
	Status      *string
	Position    *string
	Type        *string
	Group       *string
	YearBaptism *int
	Position1FC *string
	Eon         *string
	UpdatedAt   time.Time
}

// Apply aplica el patch sobre el usuario.
func (p UserPatch) Apply(u *User) {
	setString(&u.AccountID, p.AccountID)
	setString(&u.FirstName, p.FirstName)
	setString(&u.LastName, p.LastName)
	setString(&u.MiddleName, p.MiddleName)
	setString(&u.Nickname, p.Nickname)
	if p.Birthdate != nil {
		b := *p.Birthdate
		u.Birthdate = &b
	}
	setString(&u.FbAccount, p.FbAccount)
	setString(&u.ContactNo, p.ContactNo)
	setString(&u.EmailAdd, p.EmailAdd)
	setString(&u.Status, p.Status)
	setString(&u.Position, p.Position)
	setString(&u.Type, p.Type)
	setString(&u.Group, p.Group)
	if p.YearBaptism != nil {
		u.YearBaptism = *p.YearBaptism
	}
	setString(&u.Position1FC, p.Position1FC)
	setString(&u.Eon, p.Eon)
	u.UpdatedAt = p.UpdatedAt
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
