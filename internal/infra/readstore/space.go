package readstore

//go:generate mockgen -source=space.go -destination=../../../tests/mock/readstore/space.go -package=readstoremock

import (
	"context"

	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/repository/converter"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/pgconv"
	"amenity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpaceReadQueries interface {
	GetCommonSpaceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CommonSpaces, error)
	ListCommonSpaces(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommonSpacesParams) ([]sqlc.CommonSpaces, error)
	CountActiveBookingsBySpace(ctx context.Context, db sqlc.DBTX, spaceID uuid.UUID) (int64, error)
}

type SpaceReadStore struct {
	queries SpaceReadQueries
	db      sqlc.DBTX
}

func NewSpaceReadStore(queries SpaceReadQueries, db sqlc.DBTX) *SpaceReadStore {
	return &SpaceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpaceView, error) {
	row, err := r.queries.GetCommonSpaceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("common space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get common space by id", err)
	}
	return toSpaceView(row)
}

func (r *SpaceReadStore) List(ctx context.Context, filters queries.SpaceFilters) ([]*queries.SpaceView, error) {
	params := sqlc.ListCommonSpacesParams{}
	if filters.ActiveOnly {
		params.Active = pgtype.Bool{Bool: true, Valid: true}
	}
	if filters.Category != nil {
		params.Category = pgconv.TextToPgtype(filters.Category.String())
	}

	rows, err := r.queries.ListCommonSpaces(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list common spaces", err)
	}
	result := make([]*queries.SpaceView, 0, len(rows))
	for _, row := range rows {
		v, err := toSpaceView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// FindEntity loads the aggregate for the write side.
func (r *SpaceReadStore) FindEntity(ctx context.Context, id uuid.UUID) (*space.CommonSpace, error) {
	row, err := r.queries.GetCommonSpaceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("common space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get common space by id", err)
	}
	s, err := converter.SpaceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored availability schedule is malformed", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *SpaceReadStore) CountActiveBookings(ctx context.Context, spaceID uuid.UUID) (int64, error) {
	n, err := r.queries.CountActiveBookingsBySpace(ctx, r.db, spaceID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return n, nil
}

func toSpaceView(row sqlc.CommonSpaces) (*queries.SpaceView, error) {
	schedule, err := space.ParseSchedule(row.AvailabilitySchedule)
	if err != nil {
		return nil, infra.WrapRepoErr("stored availability schedule is malformed", err, infra.KindDBFailure)
	}
	v := &queries.SpaceView{
		ID:               row.ID,
		Name:             row.Name,
		Category:         row.Category,
		Capacity:         row.Capacity,
		Description:      pgconv.StringPtrFromPgtype(row.Description),
		TimeUnit:         row.TimeUnit,
		PricePerUnit:     pgconv.Int64PtrFromPgtype(row.PricePerUnit),
		Active:           row.Active,
		ImageRef:         pgconv.StringPtrFromPgtype(row.ImageRef),
		ApprovalRequired: row.ApprovalRequired,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if schedule != nil {
		v.Schedule = &queries.ScheduleView{Version: schedule.Version(), Rules: schedule.Rules()}
	}
	return v, nil
}
