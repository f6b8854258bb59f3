package repository

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/repository/idempotency.go -package=repositorymock

import (
	"context"
	"time"

	"amenity-booking/internal/infra"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/pgconv"
	"amenity-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamp) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// Claim inserts the key, or takes over a row whose previous claim has expired.
func (r *IdempotencyRepository) Claim(ctx context.Context, tx sqlc.DBTX, claim shared.IdempotencyClaim) (bool, error) {
	params := sqlc.ClaimIdempotencyKeyParams{
		Key:         claim.Key,
		UserID:      claim.UserID,
		Endpoint:    claim.Endpoint,
		RequestHash: claim.RequestHash,
		ExpiresAt:   pgconv.TimestampToPgtype(claim.ExpiresAt),
		Now:         pgconv.TimestampToPgtype(claim.Now),
	}

	affected, err := r.queries.ClaimIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	return affected == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlc.DBTX, key, userID, bookingID uuid.UUID) error {
	params := sqlc.CompleteIdempotencyKeyParams{
		Key:             key,
		UserID:          userID,
		ResultBookingID: pgconv.UUIDToPgtype(bookingID),
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimestampToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
