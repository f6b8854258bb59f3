package readstore

//go:generate mockgen -source=identity.go -destination=../../../tests/mock/readstore/identity.go -package=readstoremock

import (
	"context"

	"amenity-booking/internal/infra"
	sqlc "amenity-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type IdentityReadQueries interface {
	UserExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	UnitExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

// IdentityReadStore reads the resident directory tables owned outside this service.
type IdentityReadStore struct {
	queries IdentityReadQueries
	db      sqlc.DBTX
}

func NewIdentityReadStore(queries IdentityReadQueries, db sqlc.DBTX) *IdentityReadStore {
	return &IdentityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *IdentityReadStore) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.UserExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up user", err)
	}
	return ok, nil
}

func (r *IdentityReadStore) UnitExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.UnitExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up unit", err)
	}
	return ok, nil
}
