package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	TTL        time.Duration
	Issuer     string
	BcryptCost int
}

// Credentials hashing de passwords y emisión/verificación de tokens de sesión.
// El secreto se inyecta al construir; es de sólo lectura durante toda la vida del proceso.
type Credentials struct {
	cfg JWTConfig
	now func() time.Time
}

// NewCredentials construye el servicio. Un BcryptCost fuera de rango usa bcrypt.DefaultCost.
func NewCredentials(cfg JWTConfig) *Credentials {
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &Credentials{cfg: cfg, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (c *Credentials) WithClock(now func() time.Time) *Credentials {
	cp := *c
	cp.now = now
	return &cp
}

// HashPassword hash bcrypt con sal.
func (c *Credentials) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cfg.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compara en tiempo constante contra el hash.
func (c *Credentials) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken emite el token de sesión de la cuenta (id, email, username, exp = ahora + TTL).
func (c *Credentials) IssueToken(account *entity.Account) (string, *access.Identity, error) {
	if account == nil {
		return "", nil, errors.New("auth: cuenta nil")
	}
	token, claims, err := jwt.Generate(c.cfg.Secret, jwt.Options{
		Issuer: c.cfg.Issuer,
		TTL:    c.cfg.TTL,
		Now:    c.now,
	}, account.ID, account.Email, account.Username)
	if err != nil {
		return "", nil, err
	}
	return token, identityFromClaims(claims), nil
}

// VerifyToken valida firma, formato y expiración.
func (c *Credentials) VerifyToken(token string) (*access.Identity, error) {
	claims, err := jwt.ParseAt(c.cfg.Secret, token, c.now())
	if err != nil {
		return nil, err
	}
	return identityFromClaims(claims), nil
}

func identityFromClaims(claims *jwt.Claims) *access.Identity {
	id := &access.Identity{
		AccountID: claims.AccountID,
		Email:     claims.Email,
		Username:  claims.Username,
		TokenID:   claims.ID,
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id
}
