package request

import (
	"bytes"
	"encoding/json"
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/pkg/clock"
	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/pkg/patch"
	"amenity-booking/internal/usecase/commands"
	"amenity-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidTimestamp = errs.BadRequest("timestamps must look like 2006-01-02T15:04:05 with an optional offset")

// LocalDateTime is a JSON timestamp kept as a local literal; see clock.ParseLocal.
type LocalDateTime struct {
	time.Time
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidTimestamp
	}
	parsed, err := clock.ParseLocal(s)
	if err != nil {
		return ErrInvalidTimestamp
	}
	t.Time = parsed
	return nil
}

func (t *LocalDateTime) ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

type CreateBookingRequest struct {
	SpaceID     uuid.UUID      `json:"space_id" binding:"required"`
	RequesterID *uuid.UUID     `json:"requester_id"`
	StartAt     *LocalDateTime `json:"start_at" binding:"required" swaggertype:"string" example:"2026-05-01T09:00:00"`
	EndAt       *LocalDateTime `json:"end_at" binding:"required" swaggertype:"string" example:"2026-05-01T11:00:00"`
	UnitID      *uuid.UUID     `json:"unit_id"`
	Headcount   *int32         `json:"headcount"`
	Reason      *string        `json:"reason" binding:"omitempty,max=1000"`
	Notes       *string        `json:"notes" binding:"omitempty,max=2000"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		SpaceID:     r.SpaceID,
		RequesterID: r.RequesterID,
		Start:       r.StartAt.Time,
		End:         r.EndAt.Time,
		UnitID:      r.UnitID,
		Headcount:   r.Headcount,
		Reason:      r.Reason,
		Notes:       r.Notes,
	}
}

type UpdateBookingRequest struct {
	SpaceID   *uuid.UUID             `json:"space_id"`
	StartAt   *LocalDateTime         `json:"start_at" swaggertype:"string"`
	EndAt     *LocalDateTime         `json:"end_at" swaggertype:"string"`
	UnitID    patch.Field[uuid.UUID] `json:"unit_id" swaggertype:"string"`
	Headcount patch.Field[int32]     `json:"headcount" swaggertype:"integer"`
	Reason    patch.Field[string]    `json:"reason" swaggertype:"string"`
	Notes     patch.Field[string]    `json:"notes" swaggertype:"string"`
	State     *string                `json:"state" binding:"omitempty,booking_state"`
}

func (r *UpdateBookingRequest) ToCommand() (commands.UpdateBookingRequest, error) {
	cmd := commands.UpdateBookingRequest{
		SpaceID:   r.SpaceID,
		Start:     r.StartAt.ptr(),
		End:       r.EndAt.ptr(),
		UnitID:    r.UnitID,
		Headcount: r.Headcount,
		Reason:    r.Reason,
		Notes:     r.Notes,
	}
	if r.State != nil {
		state, err := booking.ParseStatus(*r.State)
		if err != nil {
			return commands.UpdateBookingRequest{}, err
		}
		cmd.State = &state
	}
	return cmd, nil
}

type ListBookingsQuery struct {
	State    string `form:"state" binding:"omitempty,booking_state"`
	SpaceID  string `form:"spaceId" binding:"omitempty,uuid"`
	Category string `form:"category" binding:"omitempty,space_category"`
	From     string `form:"from"`
	To       string `form:"to"`
	UserID   string `form:"userId" binding:"omitempty,uuid"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
	After    string `form:"after"`
}

func (q *ListBookingsQuery) ToFilters() (queries.BookingFilters, error) {
	var f queries.BookingFilters
	if q.State != "" {
		state, err := booking.ParseStatus(q.State)
		if err != nil {
			return f, err
		}
		f.State = &state
	}
	if q.SpaceID != "" {
		id := uuid.MustParse(q.SpaceID)
		f.SpaceID = &id
	}
	if q.Category != "" {
		c := space.Category(q.Category)
		f.Category = &c
	}
	if q.UserID != "" {
		id := uuid.MustParse(q.UserID)
		f.UserID = &id
	}
	var err error
	if f.From, err = parseOptionalLocal(q.From); err != nil {
		return f, err
	}
	if f.To, err = parseOptionalLocal(q.To); err != nil {
		return f, err
	}
	return f, nil
}

func (q *ListBookingsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func parseOptionalLocal(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := clock.ParseLocal(s)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	return &t, nil
}

type ListSpacesQuery struct {
	Active   *bool  `form:"active"`
	Category string `form:"category" binding:"omitempty,space_category"`
}

func (q *ListSpacesQuery) ToFilters() queries.SpaceFilters {
	f := queries.SpaceFilters{ActiveOnly: q.Active != nil && *q.Active}
	if q.Category != "" {
		c := space.Category(q.Category)
		f.Category = &c
	}
	return f
}
