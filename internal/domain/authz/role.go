package authz

import "amenity-booking/internal/pkg/errs"

var ErrInvalidRole = errs.BadRequest("invalid role")

type Role string

const (
	RoleResident Role = "resident"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleResident, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
