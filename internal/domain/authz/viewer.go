package authz

import (
	"amenity-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAdminRequired = errs.Forbidden("administrator privilege required")
	ErrNotOwner      = errs.Forbidden("booking belongs to another user")
)

// ViewerContext is the caller identity every use case receives.
// Policy checks are evaluated per call from this value alone.
type ViewerContext struct {
	ID      uuid.UUID
	IsAdmin bool
}

func NewViewer(id uuid.UUID, role Role) ViewerContext {
	return ViewerContext{ID: id, IsAdmin: role == RoleAdmin}
}

func (v ViewerContext) Role() Role {
	if v.IsAdmin {
		return RoleAdmin
	}
	return RoleResident
}

func (v ViewerContext) RequireAdmin() error {
	if !v.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

func (v ViewerContext) CanAccess(ownerID uuid.UUID) bool {
	return v.IsAdmin || v.ID == ownerID
}

func (v ViewerContext) RequireAccess(ownerID uuid.UUID) error {
	if !v.CanAccess(ownerID) {
		return ErrNotOwner
	}
	return nil
}

// ScopeOwner narrows an owner filter: admins keep what they asked for,
// everyone else only ever sees their own rows.
func (v ViewerContext) ScopeOwner(requested *uuid.UUID) *uuid.UUID {
	if v.IsAdmin {
		return requested
	}
	id := v.ID
	return &id
}
