//go:build unit || e2e

package builder

import (
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/domain/space"
	reqdto "amenity-booking/internal/handler/dto/request"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	SpaceID    uuid.UUID
	UserID     uuid.UUID
	UnitID     *uuid.UUID
	Start      time.Time
	End        time.Time
	Headcount  *int32
	Status     booking.Status
	Reason     *string
	Notes      *string
	TotalPrice *int64
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	userID := uuid.New()
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	price := int64(100000)
	return &BookingBuilder{
		ID:         uuid.New(),
		SpaceID:    uuid.New(),
		UserID:     userID,
		Start:      time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2026, 5, 1, 11, 0, 0, 0, time.UTC),
		Status:     booking.StatusPending,
		TotalPrice: &price,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *BookingBuilder) WithSpace(sp *space.CommonSpace) *BookingBuilder {
	b.SpaceID = sp.ID()
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithOwner(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	b.CreatedBy = userID
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(booking.Snapshot{
		ID:         b.ID,
		SpaceID:    b.SpaceID,
		UserID:     b.UserID,
		UnitID:     b.UnitID,
		Interval:   booking.RestoreInterval(b.Start, b.End),
		Headcount:  b.Headcount,
		Status:     b.Status,
		Reason:     b.Reason,
		Notes:      b.Notes,
		TotalPrice: b.TotalPrice,
		CreatedBy:  b.CreatedBy,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	})
}

func (b *BookingBuilder) BuildSlot() booking.Slot {
	return b.BuildDomain().Slot()
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	row := sqlc.Bookings{
		ID:        b.ID,
		SpaceID:   b.SpaceID,
		UserID:    b.UserID,
		StartAt:   pgtype.Timestamp{Time: b.Start, Valid: true},
		EndAt:     pgtype.Timestamp{Time: b.End, Valid: true},
		Status:    string(b.Status),
		CreatedBy: b.CreatedBy,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.UnitID != nil {
		row.UnitID = pgtype.UUID{Bytes: *b.UnitID, Valid: true}
	}
	if b.Headcount != nil {
		row.Headcount = pgtype.Int4{Int32: *b.Headcount, Valid: true}
	}
	if b.Reason != nil {
		row.Reason = pgtype.Text{String: *b.Reason, Valid: true}
	}
	if b.Notes != nil {
		row.Notes = pgtype.Text{String: *b.Notes, Valid: true}
	}
	if b.TotalPrice != nil {
		row.TotalPrice = pgtype.Int8{Int64: *b.TotalPrice, Valid: true}
	}
	return row
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		SpaceID:       b.SpaceID,
		SpaceName:     "Party Room",
		SpaceCategory: string(space.CategorySocialHall),
		UserID:        b.UserID,
		UserName:      "resident",
		UserEmail:     "resident@example.com",
		UnitID:        b.UnitID,
		StartAt:       b.Start,
		EndAt:         b.End,
		Headcount:     b.Headcount,
		State:         string(b.Status),
		Reason:        b.Reason,
		Notes:         b.Notes,
		TotalPrice:    b.TotalPrice,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SpaceID:   b.SpaceID,
		StartAt:   &reqdto.LocalDateTime{Time: b.Start},
		EndAt:     &reqdto.LocalDateTime{Time: b.End},
		UnitID:    b.UnitID,
		Headcount: b.Headcount,
		Reason:    b.Reason,
		Notes:     b.Notes,
	}
}
