package booking

import (
	"time"

	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/pkg/clock"
	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errs.NotFound("booking not found")
	ErrUserNotFound      = errs.NotFound("user not found")
	ErrUnitNotFound      = errs.NotFound("unit not found")
	ErrInvalidInterval   = errs.BadRequest("start must be before end")
	ErrStartInPast       = errs.BadRequest("start must not be in the past")
	ErrInvalidHeadcount  = errs.BadRequest("headcount must be between 1 and the space capacity")
	ErrInvalidStatus     = errs.BadRequest("invalid booking state")
	ErrConflict          = errs.Conflict("already booked in that window")
	ErrInvalidTransition = errs.InvalidState("booking state transition not allowed")
	ErrTerminal          = errs.InvalidState("booking is cancelled or completed and cannot be modified")
	ErrNotPending        = errs.InvalidState("only pending bookings can be rejected")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// Draft is a booking request that passed authorization.
type Draft struct {
	UserID    uuid.UUID
	UnitID    *uuid.UUID
	Interval  Interval
	Headcount *int32
	Reason    *string
	Notes     *string
	CreatedBy uuid.UUID
}

type Booking struct {
	id         uuid.UUID
	spaceID    uuid.UUID
	userID     uuid.UUID
	unitID     *uuid.UUID
	interval   Interval
	headcount  *int32
	status     Status
	reason     *string
	notes      *string
	totalPrice *int64
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking checks d against sp and prices it. Overlap with other bookings
// is checked by the caller under the space lock.
func NewBooking(services *Services, sp *space.CommonSpace, d Draft) (*Booking, error) {
	if err := sp.EnsureBookable(); err != nil {
		return nil, err
	}
	if d.Interval.IsZero() {
		return nil, ErrInvalidInterval
	}
	now := services.Clock.Now()
	if d.Interval.StartsBefore(now) {
		return nil, ErrStartInPast
	}
	if err := validateHeadcount(d.Headcount, sp.Capacity()); err != nil {
		return nil, err
	}
	total, err := services.PriceCalculator.Calculate(sp.TimeUnit(), sp.PricePerUnit(), d.Interval)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		spaceID:    sp.ID(),
		userID:     d.UserID,
		unitID:     d.UnitID,
		interval:   d.Interval,
		headcount:  d.Headcount,
		status:     InitialStatus(sp.ApprovalRequired()),
		reason:     d.Reason,
		notes:      d.Notes,
		totalPrice: total,
		createdBy:  d.CreatedBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type Snapshot struct {
	ID         uuid.UUID
	SpaceID    uuid.UUID
	UserID     uuid.UUID
	UnitID     *uuid.UUID
	Interval   Interval
	Headcount  *int32
	Status     Status
	Reason     *string
	Notes      *string
	TotalPrice *int64
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructBooking(s Snapshot) *Booking {
	return &Booking{
		id:         s.ID,
		spaceID:    s.SpaceID,
		userID:     s.UserID,
		unitID:     s.UnitID,
		interval:   s.Interval,
		headcount:  s.Headcount,
		status:     s.Status,
		reason:     s.Reason,
		notes:      s.Notes,
		totalPrice: s.TotalPrice,
		createdBy:  s.CreatedBy,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
	}
}

// Revision is a field change. Space is the space the booking ends up in,
// which is the current one unless the caller moves it.
type Revision struct {
	Space     *space.CommonSpace
	Start     *time.Time
	End       *time.Time
	UnitID    patch.Field[uuid.UUID]
	Headcount patch.Field[int32]
	Reason    patch.Field[string]
	Notes     patch.Field[string]
}

// Revise applies r. It reports whether the booking moved in time or space,
// in which case the caller must re-run the conflict check.
func (b *Booking) Revise(services *Services, r Revision) (bool, error) {
	if b.status.IsTerminal() {
		return false, ErrTerminal
	}

	sp := r.Space
	movedSpace := sp.ID() != b.spaceID
	if movedSpace {
		if err := sp.EnsureBookable(); err != nil {
			return false, err
		}
	}

	iv := b.interval
	if r.Start != nil || r.End != nil {
		next, err := NewInterval(patch.Coalesce(r.Start, b.interval.start), patch.Coalesce(r.End, b.interval.end))
		if err != nil {
			return false, err
		}
		iv = next
	}
	rescheduled := movedSpace || !iv.Equal(b.interval)

	headcount := r.Headcount.Apply(b.headcount)
	if err := validateHeadcount(headcount, sp.Capacity()); err != nil {
		return false, err
	}

	total := b.totalPrice
	if rescheduled {
		next, err := services.PriceCalculator.Calculate(sp.TimeUnit(), sp.PricePerUnit(), iv)
		if err != nil {
			return false, err
		}
		total = next
	}

	b.spaceID = sp.ID()
	b.interval = iv
	b.headcount = headcount
	b.unitID = r.UnitID.Apply(b.unitID)
	b.reason = r.Reason.Apply(b.reason)
	b.notes = r.Notes.Apply(b.notes)
	b.totalPrice = total
	b.updatedAt = services.Clock.Now()
	return rescheduled, nil
}

// TransitionTo moves the booking to next. Setting the current state again succeeds without change.
func (b *Booking) TransitionTo(next Status, now time.Time) (bool, error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if next == b.status {
		return false, nil
	}
	if !CanTransition(b.status, next) {
		return false, errs.Wrapf(ErrInvalidTransition, "%s -> %s", b.status, next)
	}
	b.status = next
	b.updatedAt = now
	return true, nil
}

func (b *Booking) Cancel(now time.Time) (bool, error) {
	return b.TransitionTo(StatusCancelled, now)
}

func (b *Booking) Approve(now time.Time) (bool, error) {
	return b.TransitionTo(StatusConfirmed, now)
}

// Reject cancels a pending booking; an already cancelled booking is left as is.
func (b *Booking) Reject(now time.Time) (bool, error) {
	switch b.status {
	case StatusCancelled:
		return false, nil
	case StatusPending:
		return b.TransitionTo(StatusCancelled, now)
	default:
		return false, ErrNotPending
	}
}

func (b *Booking) Slot() Slot {
	return Slot{BookingID: b.id, Interval: b.interval, Status: b.status}
}

func (b *Booking) IsTerminal() bool {
	return b.status.IsTerminal()
}

func validateHeadcount(headcount *int32, capacity int32) error {
	if headcount == nil {
		return nil
	}
	if *headcount < 1 || *headcount > capacity {
		return ErrInvalidHeadcount
	}
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SpaceID() uuid.UUID   { return b.spaceID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) UnitID() *uuid.UUID   { return b.unitID }
func (b *Booking) Interval() Interval   { return b.interval }
func (b *Booking) Headcount() *int32    { return b.headcount }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Reason() *string      { return b.reason }
func (b *Booking) Notes() *string       { return b.notes }
func (b *Booking) TotalPrice() *int64   { return b.totalPrice }
func (b *Booking) CreatedBy() uuid.UUID { return b.createdBy }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
