package response

import (
	"time"

	"amenity-booking/internal/usecase/queries"
)

type SpaceResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Category         string                `json:"category"`
	Capacity         int32                 `json:"capacity"`
	Description      *string               `json:"description"`
	TimeUnit         string                `json:"time_unit"`
	PricePerUnit     *int64                `json:"price_per_unit"`
	Active           bool                  `json:"active"`
	ImageRef         *string               `json:"image_ref"`
	Schedule         *queries.ScheduleView `json:"availability_schedule"`
	ApprovalRequired bool                  `json:"approval_required"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type OccupiedSlotResponse struct {
	StartAt string `json:"start_at" example:"2026-05-01T09:00:00"`
	EndAt   string `json:"end_at" example:"2026-05-01T11:00:00"`
	State   string `json:"state"`
}

func FromSpaceView(v *queries.SpaceView) (*SpaceResponse, error) {
	return copyInto[SpaceResponse](v)
}

func FromSpaceViews(views []*queries.SpaceView) ([]*SpaceResponse, error) {
	res := make([]*SpaceResponse, len(views))
	for i, v := range views {
		r, err := FromSpaceView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromOccupiedSlots(slots []*queries.OccupiedSlotView) ([]*OccupiedSlotResponse, error) {
	res := make([]*OccupiedSlotResponse, len(slots))
	for i, s := range slots {
		r, err := copyInto[OccupiedSlotResponse](s)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
