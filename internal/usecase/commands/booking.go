package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"time"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/pkg/clock"
	"amenity-booking/internal/pkg/patch"
	"amenity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SpaceID     uuid.UUID
	RequesterID *uuid.UUID
	Start       time.Time
	End         time.Time
	UnitID      *uuid.UUID
	Headcount   *int32
	Reason      *string
	Notes       *string

	// IdempotencyKey makes retries of the same request return the first booking.
	IdempotencyKey *uuid.UUID `json:"-"`
}

// UpdateBookingRequest leaves nil pointers and unset fields untouched.
type UpdateBookingRequest struct {
	SpaceID   *uuid.UUID
	Start     *time.Time
	End       *time.Time
	UnitID    patch.Field[uuid.UUID]
	Headcount patch.Field[int32]
	Reason    patch.Field[string]
	Notes     patch.Field[string]
	State     *booking.Status
}

func (r UpdateBookingRequest) changesFields() bool {
	return r.SpaceID != nil || r.Start != nil || r.End != nil ||
		r.UnitID.Set || r.Headcount.Set || r.Reason.Set || r.Notes.Set
}

type CreateBookingResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, viewer authz.ViewerContext, req CreateBookingRequest) (*CreateBookingResult, error)
	UpdateBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID, req UpdateBookingRequest) error
	CancelBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error
	ApproveBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error
	RejectBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error
	DeleteBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error
	// FinalizeElapsed completes confirmed bookings of the tenant in ctx whose end has passed.
	FinalizeElapsed(ctx context.Context) (int64, error)
	PurgeIdempotencyKeys(ctx context.Context) (int64, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
}

// NewBookingUseCase expects a wall clock of the booking time zone; see clock.WallClock.
func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, pricing booking.PriceCalculator) BookingCommands {
	return &bookingUseCaseImpl{
		uow: uow,
		services: &booking.Services{
			Clock:           clk,
			PriceCalculator: pricing,
		},
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, viewer authz.ViewerContext, req CreateBookingRequest) (*CreateBookingResult, error) {
	requesterID, err := booking.AuthorizeCreate(viewer, req.RequesterID, req.Notes)
	if err != nil {
		return nil, err
	}

	var claim *shared.IdempotencyClaim
	if req.IdempotencyKey != nil {
		hash, herr := calculateRequestHash(req)
		if herr != nil {
			return nil, herr
		}
		now := uc.services.Clock.Now()
		claim = &shared.IdempotencyClaim{
			Key:         *req.IdempotencyKey,
			UserID:      viewer.ID,
			Endpoint:    createBookingEndpoint,
			RequestHash: hash,
			Now:         now,
			ExpiresAt:   now.Add(idempotencyTTL),
		}
	}

	var (
		createdID uuid.UUID
		replayed  bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if claim != nil {
			prior, cerr := claimIdempotencyKey(ctx, tx, *claim)
			if cerr != nil {
				return cerr
			}
			if prior != nil {
				createdID, replayed = *prior, true
				return nil
			}
		}

		sp, derr := loadSpace(ctx, tx.Reads(), req.SpaceID)
		if derr != nil {
			return derr
		}
		if derr = sp.EnsureBookable(); derr != nil {
			return derr
		}
		if derr = ensureIdentities(ctx, tx.Reads(), &requesterID, req.UnitID); derr != nil {
			return derr
		}

		iv, derr := booking.NewInterval(req.Start, req.End)
		if derr != nil {
			return derr
		}
		b, derr := booking.NewBooking(uc.services, sp, booking.Draft{
			UserID:    requesterID,
			UnitID:    req.UnitID,
			Interval:  iv,
			Headcount: req.Headcount,
			Reason:    req.Reason,
			Notes:     req.Notes,
			CreatedBy: viewer.ID,
		})
		if derr != nil {
			return derr
		}

		if derr = uc.ensureFree(ctx, tx, b); derr != nil {
			return derr
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return mapBookingWriteErr(derr)
		}
		createdID = id

		if claim != nil {
			return tx.Idempotency().Complete(ctx, tx.DB(), claim.Key, claim.UserID, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID, IsReplayed: replayed}, nil
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID, req UpdateBookingRequest) error {
	if req.State != nil && !req.State.IsValid() {
		return booking.ErrInvalidStatus
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := loadBooking(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		if derr = booking.AuthorizeUpdate(viewer, b, req.State, req.Notes.Set); derr != nil {
			return derr
		}

		changed := false
		if req.changesFields() {
			if derr = uc.revise(ctx, tx, b, req); derr != nil {
				return derr
			}
			changed = true
		}
		if req.State != nil {
			moved, terr := b.TransitionTo(*req.State, uc.services.Clock.Now())
			if terr != nil {
				return terr
			}
			changed = changed || moved
		}

		if !changed {
			return nil
		}
		return mapBookingWriteErr(tx.Bookings().Update(ctx, tx.DB(), b))
	})
}

func (uc *bookingUseCaseImpl) revise(ctx context.Context, tx shared.Tx, b *booking.Booking, req UpdateBookingRequest) error {
	targetID := patch.Coalesce(req.SpaceID, b.SpaceID())
	sp, err := loadSpace(ctx, tx.Reads(), targetID)
	if err != nil {
		return err
	}
	if req.UnitID.Set {
		if err = ensureIdentities(ctx, tx.Reads(), nil, req.UnitID.Value); err != nil {
			return err
		}
	}

	rescheduled, err := b.Revise(uc.services, booking.Revision{
		Space:     sp,
		Start:     req.Start,
		End:       req.End,
		UnitID:    req.UnitID,
		Headcount: req.Headcount,
		Reason:    req.Reason,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	if rescheduled {
		return uc.ensureFree(ctx, tx, b)
	}
	return nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error {
	state := booking.StatusCancelled
	return uc.UpdateBooking(ctx, viewer, id, UpdateBookingRequest{State: &state})
}

func (uc *bookingUseCaseImpl) ApproveBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error {
	if err := viewer.RequireAdmin(); err != nil {
		return err
	}
	state := booking.StatusConfirmed
	return uc.UpdateBooking(ctx, viewer, id, UpdateBookingRequest{State: &state})
}

func (uc *bookingUseCaseImpl) RejectBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error {
	if err := viewer.RequireAdmin(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := loadBooking(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		changed, derr := b.Reject(uc.services.Clock.Now())
		if derr != nil || !changed {
			return derr
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error {
	if err := viewer.RequireAdmin(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return booking.ErrNotFound
			}
			return derr
		}
		return nil
	})
}

func (uc *bookingUseCaseImpl) FinalizeElapsed(ctx context.Context) (int64, error) {
	var completed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Bookings().CompleteElapsed(ctx, tx.DB(), uc.services.Clock.Now())
		if derr != nil {
			return derr
		}
		completed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return completed, nil
}

// PurgeIdempotencyKeys drops expired keys of the tenant in ctx.
func (uc *bookingUseCaseImpl) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Idempotency().DeleteExpired(ctx, tx.DB(), uc.services.Clock.Now())
		if derr != nil {
			return derr
		}
		purged = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

// ensureFree serializes writers of b's space and rejects overlaps with held slots.
func (uc *bookingUseCaseImpl) ensureFree(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	if err := tx.Bookings().LockSpace(ctx, tx.DB(), b.SpaceID()); err != nil {
		return err
	}
	slots, err := tx.Reads().SlotsOverlapping(ctx, b.SpaceID(), b.Interval())
	if err != nil {
		return err
	}
	return booking.EnsureNoConflict(b.Interval(), slots, b.ID())
}

func ensureIdentities(ctx context.Context, reads shared.IdentityLookup, userID, unitID *uuid.UUID) error {
	if userID != nil {
		ok, err := reads.UserExists(ctx, *userID)
		if err != nil {
			return err
		}
		if !ok {
			return booking.ErrUserNotFound
		}
	}
	if unitID != nil {
		ok, err := reads.UnitExists(ctx, *unitID)
		if err != nil {
			return err
		}
		if !ok {
			return booking.ErrUnitNotFound
		}
	}
	return nil
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func mapBookingWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindExclusionViolated):
		return booking.ErrConflict
	default:
		return err
	}
}
