package gql

import (
	"time"

	"github.com/jhoicas/accounts-api/internal/application/dto"
)

// isoLayout mismo formato que toISOString: UTC con milisegundos.
const isoLayout = "2006-01-02T15:04:05.000Z"

func iso(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(isoLayout)
}

func accountMap(a *dto.AccountResponse) map[string]interface{} {
	if a == nil {
		return nil
	}
	return map[string]interface{}{
		"id":         a.ID,
		"username":   a.Username,
		"email":      a.Email,
		"accessType": a.AccessType,
		"signupAt":   a.SignupAt,
		"createdAt":  iso(a.CreatedAt),
		"updatedAt":  iso(a.UpdatedAt),
	}
}

func accountList(items []dto.AccountResponse) []interface{} {
	out := make([]interface{}, 0, len(items))
	for i := range items {
		out = append(out, accountMap(&items[i]))
	}
	return out
}

func userMap(u *dto.UserResponse) map[string]interface{} {
	if u == nil {
		return nil
	}
	var birthdate interface{}
	if u.Birthdate != nil {
		birthdate = iso(*u.Birthdate)
	}
	return map[string]interface{}{
		"id":          u.ID,
		"accountId":   u.AccountID,
		"firstName":   u.FirstName,
		"lastName":    u.LastName,
		"middleName":  u.MiddleName,
		"nickname":    u.Nickname,
		"birthdate":   birthdate,
		"birthday":    birthdate,
		"fbAccount":   u.FbAccount,
		"contactNo":   u.ContactNo,
		"emailAdd":    u.EmailAdd,
		"status":      u.Status,
		"position":    u.Position,
		"type":        u.Type,
		"group":       u.Group,
		"yearBaptism": u.YearBaptism,
		"position1FC": u.Position1FC,
		"eon":         u.Eon,
		"createdAt":   iso(u.CreatedAt),
		"updatedAt":   iso(u.UpdatedAt),
	}
}

func userList(items []dto.UserResponse) []interface{} {
	out := make([]interface{}, 0, len(items))
	for i := range items {
		out = append(out, userMap(&items[i]))
	}
	return out
}

// updatedAccount con cuenta: entidad + message; sin cuenta: sólo message e id.
func updatedAccount(r dto.UpdateAccountResult) map[string]interface{} {
	if !r.Found() {
		return map[string]interface{}{"message": r.Message, "id": r.ID}
	}
	m := accountMap(r.Account)
	m["message"] = r.Message
	return m
}

func updatedUser(r dto.UpdateUserResult) map[string]interface{} {
	if !r.Found() {
		return map[string]interface{}{"message": r.Message, "id": r.ID}
	}
	m := userMap(r.User)
	m["message"] = r.Message
	return m
}

func deletedAccount(r dto.DeleteAccountResult) map[string]interface{} {
	m := map[string]interface{}{"message": r.Message}
	if r.AccountID != "" {
		m["accountId"] = r.AccountID
	}
	return m
}

func deletedUser(r dto.DeleteUserResult) map[string]interface{} {
	m := map[string]interface{}{"message": r.Message}
	if r.UserID != "" {
		m["userId"] = r.UserID
	}
	return m
}
