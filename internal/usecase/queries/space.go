package queries

//go:generate mockgen -source=space.go -destination=../../../tests/mock/queries/space.go -package=queriesmock

import (
	"context"
	"encoding/json"
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"

	"github.com/google/uuid"
)

type ScheduleView struct {
	Version int             `json:"version"`
	Rules   json.RawMessage `json:"rules"`
}

type SpaceView struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	Category         string        `json:"category"`
	Capacity         int32         `json:"capacity"`
	Description      *string       `json:"description,omitempty"`
	TimeUnit         string        `json:"time_unit"`
	PricePerUnit     *int64        `json:"price_per_unit,omitempty"`
	Active           bool          `json:"active"`
	ImageRef         *string       `json:"image_ref,omitempty"`
	Schedule         *ScheduleView `json:"availability_schedule,omitempty"`
	ApprovalRequired bool          `json:"approval_required"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type SpaceFilters struct {
	ActiveOnly bool
	Category   *space.Category
}

// OccupiedSlotView deliberately carries no owner identity.
type OccupiedSlotView struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	State   string    `json:"state"`
}

type SpaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	List(ctx context.Context, filters SpaceFilters) ([]*SpaceView, error)
}

type OccupancyReadStore interface {
	OccupiedSlots(ctx context.Context, spaceID uuid.UUID, day booking.Interval) ([]*OccupiedSlotView, error)
}

type SpaceQueries interface {
	GetSpace(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	ListSpaces(ctx context.Context, filters SpaceFilters) ([]*SpaceView, error)
	GetOccupiedSlots(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]*OccupiedSlotView, error)
}

type spaceQueriesImpl struct {
	spaces    SpaceReadStore
	occupancy OccupancyReadStore
}

func NewSpaceQueries(spaces SpaceReadStore, occupancy OccupancyReadStore) SpaceQueries {
	return &spaceQueriesImpl{spaces: spaces, occupancy: occupancy}
}

func (q *spaceQueriesImpl) GetSpace(ctx context.Context, id uuid.UUID) (*SpaceView, error) {
	sv, err := q.spaces.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, space.ErrNotFound
		}
		return nil, err
	}
	return sv, nil
}

func (q *spaceQueriesImpl) ListSpaces(ctx context.Context, filters SpaceFilters) ([]*SpaceView, error) {
	return q.spaces.List(ctx, filters)
}

func (q *spaceQueriesImpl) GetOccupiedSlots(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]*OccupiedSlotView, error) {
	if _, err := q.GetSpace(ctx, spaceID); err != nil {
		return nil, err
	}
	return q.occupancy.OccupiedSlots(ctx, spaceID, booking.Day(date))
}
