package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/repository/converter"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	LockSpaceBookings(ctx context.Context, db sqlc.DBTX, lockKey string) error
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) error
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CompleteElapsedBookings(ctx context.Context, db sqlc.DBTX, cutoff pgtype.Timestamp) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// LockSpace serializes booking writers of one space until tx ends.
func (r *BookingRepository) LockSpace(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID) error {
	if err := r.queries.LockSpaceBookings(ctx, tx, "bookings:"+spaceID.String()); err != nil {
		return infra.WrapRepoErr("failed to lock space bookings", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// CompleteElapsed marks confirmed bookings ending at or before cutoff as completed.
func (r *BookingRepository) CompleteElapsed(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error) {
	n, err := r.queries.CompleteElapsedBookings(ctx, tx, pgconv.TimestampToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete elapsed bookings", err)
	}
	return n, nil
}
