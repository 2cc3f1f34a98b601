package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/accounts-api/internal/domain/repository"
)

var _ repository.TokenDenylist = (*Denylist)(nil)

// Denylist tokens revocados en proceso (cuando no hay Redis). Las entradas caducan con el token.
type Denylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewDenylist crea una denylist vacía.
func NewDenylist() *Denylist {
	return &Denylist{revoked: make(map[string]time.Time), now: time.Now}
}

func (d *Denylist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.purge()
	d.revoked[tokenID] = expiresAt
	return nil
}

func (d *Denylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.IsZero() && d.now().After(exp) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (d *Denylist) purge() {
	now := d.now()
	for id, exp := range d.revoked {
		if !exp.IsZero() && now.After(exp) {
			delete(d.revoked, id)
		}
	}
}
