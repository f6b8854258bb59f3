package response

import (
	"time"

	"amenity-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            string     `json:"id"`
	SpaceID       string     `json:"space_id"`
	SpaceName     string     `json:"space_name"`
	SpaceCategory string     `json:"space_category"`
	UserID        string     `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UnitID        *uuid.UUID `json:"unit_id"`
	UnitLabel     *string    `json:"unit_label"`
	StartAt       string     `json:"start_at" example:"2026-05-01T09:00:00"`
	EndAt         string     `json:"end_at" example:"2026-05-01T11:00:00"`
	Headcount     *int32     `json:"headcount"`
	State         string     `json:"state"`
	Reason        *string    `json:"reason"`
	Notes         *string    `json:"notes,omitempty"`
	TotalPrice    *int64     `json:"total_price"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return copyInto[BookingResponse](v)
}

func FromBookingPage(views []*queries.BookingView, next *queries.Cursor) (*BookingListResponse, error) {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		items[i] = r
	}
	res := &BookingListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
