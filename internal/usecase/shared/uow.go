package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/domain/space"
	sqlc "amenity-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Spaces() SpaceRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// IdentityLookup answers existence questions about externally owned identities.
type IdentityLookup interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	UnitExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CommandReads interface {
	IdentityLookup
	SpaceByID(ctx context.Context, id uuid.UUID) (*space.CommonSpace, error)
	// BookingByID locks the row until the transaction ends.
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	CountActiveBookings(ctx context.Context, spaceID uuid.UUID) (int64, error)
	SlotsOverlapping(ctx context.Context, spaceID uuid.UUID, iv booking.Interval) ([]booking.Slot, error)
	IdempotencyRecord(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type SpaceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *space.CommonSpace) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *space.CommonSpace) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	LockSpace(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CompleteElapsed(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error)
}

type IdempotencyRepository interface {
	// Claim reports false when an unexpired record already holds the key.
	Claim(ctx context.Context, tx sqlc.DBTX, claim IdempotencyClaim) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, bookingID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error)
}
