// Package access resuelve la identidad del llamador y decide si un rol puede ejecutar una acción.
// Es el único punto de la aplicación que conoce la tabla de roles.
package access

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

// Identity identidad efímera reconstruida en cada petición a partir del token.
type Identity struct {
	AccountID string
	Email     string
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// TokenVerifier verifica la firma y expiración de un token de sesión.
type TokenVerifier interface {
	VerifyToken(token string) (*Identity, error)
}

// AccountFinder lo implementa repository.AccountRepository.
type AccountFinder interface {
	GetByID(ctx context.Context, id string) (*entity.Account, error)
}

type authorizationKey struct{}

// WithAuthorization guarda el header Authorization crudo en el contexto de la petición.
func WithAuthorization(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, authorizationKey{}, header)
}

// AuthorizationFrom devuelve el header guardado por WithAuthorization.
func AuthorizationFrom(ctx context.Context) string {
	s, _ := ctx.Value(authorizationKey{}).(string)
	return s
}

// BearerToken extrae el token de "Bearer <token>". ok=false si falta o el formato es incorrecto.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// Guard autentica al llamador y lo re-resuelve contra el directorio de cuentas.
type Guard struct {
	verifier TokenVerifier
	accounts AccountFinder
	denylist repository.TokenDenylist
}

// NewGuard construye el guard. denylist puede ser nil (sin revocación).
func NewGuard(verifier TokenVerifier, accounts AccountFinder, denylist repository.TokenDenylist) *Guard {
	return &Guard{verifier: verifier, accounts: accounts, denylist: denylist}
}

func errTokenInvalid() error {
	return domain.NewAuthenticationError(domain.MsgTokenInvalid, domain.ErrUnauthorized)
}

// Authenticate valida el header Authorization. Falla con AuthenticationError "Token is invalid!"
// si falta, está mal formado, expiró o fue revocado.
func (g *Guard) Authenticate(ctx context.Context, header string) (*Identity, error) {
	token, ok := BearerToken(header)
	if !ok {
		return nil, errTokenInvalid()
	}
	id, err := g.verifier.VerifyToken(token)
	if err != nil {
		return nil, errTokenInvalid()
	}
	if g.denylist != nil && id.TokenID != "" {
		revoked, err := g.denylist.IsRevoked(ctx, id.TokenID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errTokenInvalid()
		}
	}
	return id, nil
}

// AuthorizeCaller carga la cuenta del token. Si ya no existe el token deja de ser válido.
func (g *Guard) AuthorizeCaller(ctx context.Context, id *Identity) (*entity.Account, error) {
	if id == nil {
		return nil, errTokenInvalid()
	}
	account, err := g.accounts.GetByID(ctx, id.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errTokenInvalid()
	}
	return account, nil
}

// Caller combina Authenticate y AuthorizeCaller usando el header guardado en ctx.
func (g *Guard) Caller(ctx context.Context) (*entity.Account, *Identity, error) {
	id, err := g.Authenticate(ctx, AuthorizationFrom(ctx))
	if err != nil {
		return nil, nil, err
	}
	account, err := g.AuthorizeCaller(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return account, id, nil
}
