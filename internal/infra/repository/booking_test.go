//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/repository"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/tests/common/builder"
	repositorymock "amenity-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created with local-literal times",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), arg.StartAt.Time)
						assert.Equal(t, "PENDING", arg.Status)
						assert.False(t, arg.UnitID.Valid)
						return sqlc.Bookings{ID: arg.ID}, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint \"bookings_no_overlap\""}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, excl)
			},
			expectedError: true,
			expectKind:    infra.KindExclusionViolated,
		},
		{
			name: "error: missing user",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			domainBooking := builder.NewBookingBuilder().BuildDomain()
			tc.setupMock(mockQueries, domainBooking, mockDB)

			bookingID, actualError := repo.Create(ctx, mockDB, domainBooking)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, bookingID, "bookingID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainBooking.ID(), bookingID)
			}
		})
	}
}

// =============================================================================
// Lock / Delete / Complete Tests
// =============================================================================

func TestBookingRepository_LockSpace(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)
	spaceID := uuid.New()

	mockQueries.EXPECT().LockSpaceBookings(ctx, mockDB, "bookings:"+spaceID.String()).Return(nil)
	require.NoError(t, repo.LockSpace(ctx, mockDB, spaceID))

	mockQueries.EXPECT().LockSpaceBookings(ctx, mockDB, gomock.Any()).Return(errors.New("lock timeout"))
	err := repo.LockSpace(ctx, mockDB, spaceID)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row deleted", affected: 1},
		{name: "error: no such booking", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			id := uuid.New()

			mockQueries.EXPECT().DeleteBooking(ctx, mockDB, id).Return(tc.affected, tc.dbErr)

			err := repo.Delete(ctx, mockDB, id)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestBookingRepository_CompleteElapsed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)
	cutoff := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().CompleteElapsedBookings(ctx, mockDB, pgtype.Timestamp{Time: cutoff, Valid: true}).Return(int64(4), nil)

	n, err := repo.CompleteElapsed(ctx, mockDB, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
