package booking

import (
	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrForeignRequester = errs.Forbidden("residents can only book for themselves")
	ErrNotesForbidden   = errs.Forbidden("only administrators can write booking notes")
	ErrStateForbidden   = errs.Forbidden("residents can only cancel a booking")
)

// AuthorizeCreate resolves who the booking is for.
func AuthorizeCreate(v authz.ViewerContext, requesterID *uuid.UUID, notes *string) (uuid.UUID, error) {
	if v.IsAdmin {
		if requesterID != nil {
			return *requesterID, nil
		}
		return v.ID, nil
	}
	if requesterID != nil && *requesterID != v.ID {
		return uuid.Nil, ErrForeignRequester
	}
	if notes != nil {
		return uuid.Nil, ErrNotesForbidden
	}
	return v.ID, nil
}

// AuthorizeUpdate checks ownership and which fields v may touch.
func AuthorizeUpdate(v authz.ViewerContext, b *Booking, state *Status, writesNotes bool) error {
	if err := v.RequireAccess(b.UserID()); err != nil {
		return err
	}
	if v.IsAdmin {
		return nil
	}
	if writesNotes {
		return ErrNotesForbidden
	}
	if state != nil && *state != StatusCancelled {
		return ErrStateForbidden
	}
	return nil
}
