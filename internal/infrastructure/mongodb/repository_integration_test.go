package mongodb_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"github.com/jhoicas/accounts-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/accounts-api/internal/infrastructure/storetest"
	"github.com/jhoicas/accounts-api/pkg/config"
)

// Requiere un MongoDB real: TEST_MONGODB_URI=mongodb://localhost:27017 go test ./...
// Cada subtest usa una base nueva que se elimina al terminar.
func TestRepositorios_ContratoMongo(t *testing.T) {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}
	ctx := context.Background()
	client, _, err := mongodb.Connect(ctx, config.MongoConfig{URI: uri, Database: "accounts_test"})
	if err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	storetest.Run(t, func(t *testing.T) (repository.AccountRepository, repository.UserRepository) {
		db := client.Database("accounts_test_" + uuid.NewString()[:8])
		require.NoError(t, mongodb.EnsureIndexes(ctx, db))
		t.Cleanup(func() { _ = db.Drop(context.Background()) })
		return mongodb.NewAccountRepository(db), mongodb.NewUserRepository(db)
	})
}
