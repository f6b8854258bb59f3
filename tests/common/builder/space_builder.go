//go:build unit || e2e

package builder

import (
	"time"

	"amenity-booking/internal/domain/space"
	reqdto "amenity-booking/internal/handler/dto/request"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpaceBuilder struct {
	ID               uuid.UUID
	Name             string
	Category         space.Category
	Capacity         int32
	Description      *string
	TimeUnit         space.TimeUnit
	Price            *int64
	Active           *bool
	ApprovalRequired *bool
	Schedule         *space.Schedule
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewSpaceBuilder() *SpaceBuilder {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	price := int64(50000)
	active := true
	approval := true
	return &SpaceBuilder{
		ID:               uuid.New(),
		Name:             "Party Room",
		Category:         space.CategorySocialHall,
		Capacity:         40,
		TimeUnit:         space.TimeUnitHour,
		Price:            &price,
		Active:           &active,
		ApprovalRequired: &approval,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *SpaceBuilder) WithPrice(price int64) *SpaceBuilder {
	b.Price = &price
	return b
}

func (b *SpaceBuilder) WithoutPrice() *SpaceBuilder {
	b.Price = nil
	return b
}

func (b *SpaceBuilder) WithApproval(required bool) *SpaceBuilder {
	b.ApprovalRequired = &required
	return b
}

func (b *SpaceBuilder) WithActive(active bool) *SpaceBuilder {
	b.Active = &active
	return b
}

func (b *SpaceBuilder) attributes() space.Attributes {
	return space.Attributes{
		Name:             b.Name,
		Category:         b.Category,
		Capacity:         b.Capacity,
		Description:      b.Description,
		TimeUnit:         b.TimeUnit,
		PricePerUnit:     b.Price,
		Active:           b.Active,
		Schedule:         b.Schedule,
		ApprovalRequired: b.ApprovalRequired,
	}
}

// Build methods
func (b *SpaceBuilder) BuildAttributes() space.Attributes {
	return b.attributes()
}

func (b *SpaceBuilder) BuildDomain() (*space.CommonSpace, error) {
	return space.NewCommonSpace(b.attributes(), b.CreatedAt)
}

// BuildPersisted skips validation and keeps ID, like a row read back from storage.
func (b *SpaceBuilder) BuildPersisted() *space.CommonSpace {
	return space.ReconstructCommonSpace(b.ID, b.attributes(), b.CreatedAt, b.UpdatedAt)
}

func (b *SpaceBuilder) BuildInfra() sqlc.CommonSpaces {
	row := sqlc.CommonSpaces{
		ID:               b.ID,
		Name:             b.Name,
		Category:         string(b.Category),
		Capacity:         b.Capacity,
		TimeUnit:         string(b.TimeUnit),
		Active:           b.Active == nil || *b.Active,
		ApprovalRequired: b.ApprovalRequired == nil || *b.ApprovalRequired,
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.Description != nil {
		row.Description = pgtype.Text{String: *b.Description, Valid: true}
	}
	if b.Price != nil {
		row.PricePerUnit = pgtype.Int8{Int64: *b.Price, Valid: true}
	}
	return row
}

func (b *SpaceBuilder) BuildView() *queries.SpaceView {
	return &queries.SpaceView{
		ID:               b.ID,
		Name:             b.Name,
		Category:         string(b.Category),
		Capacity:         b.Capacity,
		Description:      b.Description,
		TimeUnit:         string(b.TimeUnit),
		PricePerUnit:     b.Price,
		Active:           b.Active == nil || *b.Active,
		ApprovalRequired: b.ApprovalRequired == nil || *b.ApprovalRequired,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *SpaceBuilder) BuildCreateRequestDTO() reqdto.CreateSpaceRequest {
	return reqdto.CreateSpaceRequest{
		Name:                 b.Name,
		Category:             string(b.Category),
		Capacity:             b.Capacity,
		Description:          b.Description,
		TimeUnit:             string(b.TimeUnit),
		PricePerUnit:         b.Price,
		Active:               b.Active,
		AvailabilitySchedule: b.Schedule,
		ApprovalRequired:     b.ApprovalRequired,
	}
}
