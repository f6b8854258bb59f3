package converter

import (
	"encoding/json"

	"amenity-booking/internal/domain/space"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/pgconv"
)

func SpaceToCreateParams(s *space.CommonSpace) (sqlc.CreateCommonSpaceParams, error) {
	schedule, err := ScheduleToJSON(s.Schedule())
	if err != nil {
		return sqlc.CreateCommonSpaceParams{}, err
	}
	return sqlc.CreateCommonSpaceParams{
		ID:                   s.ID(),
		Name:                 s.Name(),
		Category:             s.Category().String(),
		Capacity:             s.Capacity(),
		Description:          pgconv.StringPtrToPgtype(s.Description()),
		TimeUnit:             s.TimeUnit().String(),
		PricePerUnit:         pgconv.Int64PtrToPgtype(s.PricePerUnit()),
		Active:               s.IsActive(),
		ImageRef:             pgconv.StringPtrToPgtype(s.ImageRef()),
		AvailabilitySchedule: schedule,
		ApprovalRequired:     s.ApprovalRequired(),
	}, nil
}

func SpaceToUpdateParams(s *space.CommonSpace) (sqlc.UpdateCommonSpaceParams, error) {
	p, err := SpaceToCreateParams(s)
	if err != nil {
		return sqlc.UpdateCommonSpaceParams{}, err
	}
	return sqlc.UpdateCommonSpaceParams(p), nil
}

func SpaceFromRow(row sqlc.CommonSpaces) (*space.CommonSpace, error) {
	schedule, err := space.ParseSchedule(row.AvailabilitySchedule)
	if err != nil {
		return nil, err
	}
	active := row.Active
	approval := row.ApprovalRequired
	attrs := space.Attributes{
		Name:             row.Name,
		Category:         space.Category(row.Category),
		Capacity:         row.Capacity,
		Description:      pgconv.StringPtrFromPgtype(row.Description),
		TimeUnit:         space.TimeUnit(row.TimeUnit),
		PricePerUnit:     pgconv.Int64PtrFromPgtype(row.PricePerUnit),
		Active:           &active,
		ImageRef:         pgconv.StringPtrFromPgtype(row.ImageRef),
		Schedule:         schedule,
		ApprovalRequired: &approval,
	}
	return space.ReconstructCommonSpace(
		row.ID,
		attrs,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// ScheduleToJSON encodes the schedule envelope; nil stays SQL NULL.
func ScheduleToJSON(s *space.Schedule) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}
