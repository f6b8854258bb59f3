package request

import (
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/pkg/patch"
)

type CreateSpaceRequest struct {
	Name                 string          `json:"name" binding:"required"`
	Category             string          `json:"category" binding:"required,space_category"`
	Capacity             int32           `json:"capacity" binding:"required"`
	Description          *string         `json:"description"`
	TimeUnit             string          `json:"time_unit" binding:"required,time_unit"`
	PricePerUnit         *int64          `json:"price_per_unit"`
	Active               *bool           `json:"active"`
	ImageRef             *string         `json:"image_ref"`
	AvailabilitySchedule *space.Schedule `json:"availability_schedule" swaggertype:"object"`
	ApprovalRequired     *bool           `json:"approval_required"`
}

// UpdateSpaceRequest distinguishes an absent nullable field from an explicit null.
type UpdateSpaceRequest struct {
	Name                 *string                     `json:"name"`
	Category             *string                     `json:"category" binding:"omitempty,space_category"`
	Capacity             *int32                      `json:"capacity"`
	Description          patch.Field[string]         `json:"description" swaggertype:"string"`
	TimeUnit             *string                     `json:"time_unit" binding:"omitempty,time_unit"`
	PricePerUnit         patch.Field[int64]          `json:"price_per_unit" swaggertype:"integer"`
	Active               *bool                       `json:"active"`
	ImageRef             patch.Field[string]         `json:"image_ref" swaggertype:"string"`
	AvailabilitySchedule patch.Field[space.Schedule] `json:"availability_schedule" swaggertype:"object"`
	ApprovalRequired     *bool                       `json:"approval_required"`
}

func (r *CreateSpaceRequest) ToAttributes() space.Attributes {
	return space.Attributes{
		Name:             r.Name,
		Category:         space.Category(r.Category),
		Capacity:         r.Capacity,
		Description:      r.Description,
		TimeUnit:         space.TimeUnit(r.TimeUnit),
		PricePerUnit:     r.PricePerUnit,
		Active:           r.Active,
		ImageRef:         r.ImageRef,
		Schedule:         r.AvailabilitySchedule,
		ApprovalRequired: r.ApprovalRequired,
	}
}

func (r *UpdateSpaceRequest) ToPatch() space.Patch {
	p := space.Patch{
		Name:             r.Name,
		Capacity:         r.Capacity,
		Description:      r.Description,
		PricePerUnit:     r.PricePerUnit,
		Active:           r.Active,
		ImageRef:         r.ImageRef,
		Schedule:         r.AvailabilitySchedule,
		ApprovalRequired: r.ApprovalRequired,
	}
	if r.Category != nil {
		c := space.Category(*r.Category)
		p.Category = &c
	}
	if r.TimeUnit != nil {
		u := space.TimeUnit(*r.TimeUnit)
		p.TimeUnit = &u
	}
	return p
}
