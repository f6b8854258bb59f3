package space

import (
	"strings"
	"time"

	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errs.NotFound("common space not found")
	ErrEmptyName       = errs.BadRequest("space name cannot be empty")
	ErrNameTooLong     = errs.BadRequest("space name is too long (max 255 characters)")
	ErrInvalidCategory = errs.BadRequest("invalid space category")
	ErrInvalidCapacity = errs.BadRequest("capacity must be at least 1")
	ErrInvalidTimeUnit = errs.BadRequest("time unit must be one of hour, day, month")
	ErrNegativePrice   = errs.BadRequest("price per unit cannot be negative")
	ErrInvalidSchedule = errs.BadRequest("availability schedule must be a versioned JSON payload")
	ErrInactive        = errs.BadRequest("common space is not active")
)

const (
	MaxNameLength = 255
)

// Attributes are the caller-supplied fields of a space.
// Active and ApprovalRequired default to true when nil.
type Attributes struct {
	Name             string
	Category         Category
	Capacity         int32
	Description      *string
	TimeUnit         TimeUnit
	PricePerUnit     *int64
	Active           *bool
	ImageRef         *string
	Schedule         *Schedule
	ApprovalRequired *bool
}

// Patch carries a partial update; nil pointers and unset fields are left alone.
type Patch struct {
	Name             *string
	Category         *Category
	Capacity         *int32
	Description      patch.Field[string]
	TimeUnit         *TimeUnit
	PricePerUnit     patch.Field[int64]
	Active           *bool
	ImageRef         patch.Field[string]
	Schedule         patch.Field[Schedule]
	ApprovalRequired *bool
}

type CommonSpace struct {
	id               uuid.UUID
	name             string
	category         Category
	capacity         int32
	description      *string
	timeUnit         TimeUnit
	pricePerUnit     *int64
	active           bool
	imageRef         *string
	schedule         *Schedule
	approvalRequired bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCommonSpace(attrs Attributes, now time.Time) (*CommonSpace, error) {
	s := &CommonSpace{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	s.assign(attrs)
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReconstructCommonSpace rebuilds a persisted space without re-validating it.
func ReconstructCommonSpace(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *CommonSpace {
	s := &CommonSpace{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	s.assign(attrs)
	return s
}

// Apply validates the patched result before touching the receiver.
func (s *CommonSpace) Apply(p Patch, now time.Time) error {
	next := *s
	next.name = strings.TrimSpace(patch.Coalesce(p.Name, s.name))
	next.category = patch.Coalesce(p.Category, s.category)
	next.capacity = patch.Coalesce(p.Capacity, s.capacity)
	next.description = p.Description.Apply(s.description)
	next.timeUnit = patch.Coalesce(p.TimeUnit, s.timeUnit)
	next.pricePerUnit = p.PricePerUnit.Apply(s.pricePerUnit)
	next.active = patch.Coalesce(p.Active, s.active)
	next.imageRef = p.ImageRef.Apply(s.imageRef)
	next.schedule = p.Schedule.Apply(s.schedule)
	next.approvalRequired = patch.Coalesce(p.ApprovalRequired, s.approvalRequired)

	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*s = next
	return nil
}

// EnsureBookable rejects inactive spaces.
func (s *CommonSpace) EnsureBookable() error {
	if !s.active {
		return ErrInactive
	}
	return nil
}

func (s *CommonSpace) assign(attrs Attributes) {
	s.name = strings.TrimSpace(attrs.Name)
	s.category = attrs.Category
	s.capacity = attrs.Capacity
	s.description = attrs.Description
	s.timeUnit = attrs.TimeUnit
	s.pricePerUnit = attrs.PricePerUnit
	s.active = patch.Coalesce(attrs.Active, true)
	s.imageRef = attrs.ImageRef
	s.schedule = attrs.Schedule
	s.approvalRequired = patch.Coalesce(attrs.ApprovalRequired, true)
}

func (s *CommonSpace) validate() error {
	if s.name == "" {
		return ErrEmptyName
	}
	if len(s.name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !s.category.IsValid() {
		return ErrInvalidCategory
	}
	if s.capacity < 1 {
		return ErrInvalidCapacity
	}
	if !s.timeUnit.IsValid() {
		return ErrInvalidTimeUnit
	}
	if s.pricePerUnit != nil && *s.pricePerUnit < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (s *CommonSpace) ID() uuid.UUID          { return s.id }
func (s *CommonSpace) Name() string           { return s.name }
func (s *CommonSpace) Category() Category     { return s.category }
func (s *CommonSpace) Capacity() int32        { return s.capacity }
func (s *CommonSpace) Description() *string   { return s.description }
func (s *CommonSpace) TimeUnit() TimeUnit     { return s.timeUnit }
func (s *CommonSpace) PricePerUnit() *int64   { return s.pricePerUnit }
func (s *CommonSpace) IsActive() bool         { return s.active }
func (s *CommonSpace) ImageRef() *string      { return s.imageRef }
func (s *CommonSpace) Schedule() *Schedule    { return s.schedule }
func (s *CommonSpace) ApprovalRequired() bool { return s.approvalRequired }
func (s *CommonSpace) CreatedAt() time.Time   { return s.createdAt }
func (s *CommonSpace) UpdatedAt() time.Time   { return s.updatedAt }
