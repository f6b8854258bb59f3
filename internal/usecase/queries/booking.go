package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	SpaceID       uuid.UUID  `json:"space_id"`
	SpaceName     string     `json:"space_name"`
	SpaceCategory string     `json:"space_category"`
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UnitID        *uuid.UUID `json:"unit_id,omitempty"`
	UnitLabel     *string    `json:"unit_label,omitempty"`
	StartAt       time.Time  `json:"start_at"`
	EndAt         time.Time  `json:"end_at"`
	Headcount     *int32     `json:"headcount,omitempty"`
	State         string     `json:"state"`
	Reason        *string    `json:"reason,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	TotalPrice    *int64     `json:"total_price,omitempty"`
	CreatedBy     uuid.UUID  `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BookingFilters are conjunctive; From/To select bookings overlapping [From, To).
type BookingFilters struct {
	State    *booking.Status
	SpaceID  *uuid.UUID
	Category *space.Category
	From     *time.Time
	To       *time.Time
	UserID   *uuid.UUID
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindFirstPage(ctx context.Context, filters BookingFilters, limit int32) ([]*BookingView, error)
	FindKeyset(ctx context.Context, filters BookingFilters, lastStartAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, viewer authz.ViewerContext, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	if err := viewer.RequireAccess(bv.UserID); err != nil {
		return nil, err
	}
	return redact(viewer, bv), nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, viewer authz.ViewerContext, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	filters.UserID = viewer.ScopeOwner(filters.UserID)

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastStartAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, filters, lastStartAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartAt, last.ID)}
		rows = rows[:limit]
	}
	for i, row := range rows {
		rows[i] = redact(viewer, row)
	}
	return rows, next, nil
}

// redact hides administrator notes from everyone else.
func redact(viewer authz.ViewerContext, bv *BookingView) *BookingView {
	if viewer.IsAdmin || bv.Notes == nil {
		return bv
	}
	out := *bv
	out.Notes = nil
	return &out
}
