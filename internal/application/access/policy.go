package access

import (
	"slices"

	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
)

// Action operación sujeta a control de rol.
type Action string

const (
	ActionDeleteAccount    Action = "deleteAccount"
	ActionDeleteUser       Action = "deleteUser"
	ActionPrivilegedUpdate Action = "privilegedUpdate" // cambiar accessType o reasignar accountId
	ActionCreateUser       Action = "createUser"
)

var (
	adminRoles      = []string{entity.AccessAdmin, entity.AccessSuperAdmin}
	privilegedRoles = []string{entity.AccessAdmin, entity.AccessSuperAdmin, entity.AccessOIC, entity.AccessPIC}
)

// policy tabla explícita acción -> roles permitidos.
var policy = map[Action][]string{
	ActionDeleteAccount:    adminRoles,
	ActionDeleteUser:       adminRoles,
	ActionPrivilegedUpdate: adminRoles,
	ActionCreateUser:       privilegedRoles,
}

// HasRole true si account.AccessType está en roles.
func HasRole(account *entity.Account, roles []string) bool {
	return account != nil && slices.Contains(roles, account.AccessType)
}

func errNoRights() error {
	return domain.NewAuthenticationError(domain.MsgNoRights, domain.ErrForbidden)
}

// Require falla con AuthenticationError "User has no rights!" si el rol no está permitido.
// Una acción desconocida nunca se permite.
func Require(action Action, account *entity.Account) error {
	return RequireRole(account, policy[action])
}

// RequireRole falla con "User has no rights!" si account no tiene uno de roles.
func RequireRole(account *entity.Account, roles []string) error {
	if !HasRole(account, roles) {
		return errNoRights()
	}
	return nil
}

// RequireSelfOrAdmin permite a administradores o al dueño de targetAccountID.
func RequireSelfOrAdmin(account *entity.Account, targetAccountID string) error {
	if account == nil {
		return errNoRights()
	}
	if account.IsAdmin() || (targetAccountID != "" && account.ID == targetAccountID) {
		return nil
	}
	return errNoRights()
}
