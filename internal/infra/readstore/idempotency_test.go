//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/readstore"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	readstoremock "amenity-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyReadStore_Get(t *testing.T) {
	ctx := context.Background()
	key, userID, bookingID := uuid.New(), uuid.New(), uuid.New()
	expiresAt := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

	t.Run("completed record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}).
			Return(sqlc.IdempotencyKeys{
				Key:             key,
				UserID:          userID,
				Endpoint:        "POST /api/bookings",
				RequestHash:     "abc",
				Status:          "completed",
				ResultBookingID: pgtype.UUID{Bytes: bookingID, Valid: true},
				ExpiresAt:       ts(expiresAt),
			}, nil)

		rec, err := store.Get(ctx, key, userID)
		require.NoError(t, err)
		assert.True(t, rec.IsCompleted())
		require.NotNil(t, rec.ResultBookingID)
		assert.Equal(t, bookingID, *rec.ResultBookingID)
		assert.Equal(t, expiresAt, rec.ExpiresAt)
	})

	t.Run("processing record has no result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
			Return(sqlc.IdempotencyKeys{Key: key, UserID: userID, Status: "processing", ExpiresAt: ts(expiresAt)}, nil)

		rec, err := store.Get(ctx, key, userID)
		require.NoError(t, err)
		assert.False(t, rec.IsCompleted())
		assert.Nil(t, rec.ResultBookingID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		_, err := store.Get(ctx, key, userID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(sqlc.IdempotencyKeys{}, errDBConnectionLost)

		_, err := store.Get(ctx, key, userID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
