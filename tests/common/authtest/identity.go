//go:build unit || e2e

package authtest

import (
	"testing"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/pkg/config"
	"amenity-booking/tests/common/dbtest"

	"github.com/google/uuid"
)

// Identity is a persisted user together with a bearer token for it.
type Identity struct {
	ID    uuid.UUID
	Token string
}

func CreateIdentity(t *testing.T, db dbtest.DBLike, cfg config.JWTConfig, email string, role authz.Role) Identity {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role.String())
	return Identity{
		ID:    id,
		Token: NewJWTHelper(cfg).GenerateToken(t, id, role),
	}
}
