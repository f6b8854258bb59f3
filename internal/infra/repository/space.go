package repository

//go:generate mockgen -source=space.go -destination=../../../tests/mock/repository/space.go -package=repositorymock

import (
	"context"

	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/repository/converter"
	sqlc "amenity-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SpaceWriteQueries interface {
	CreateCommonSpace(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommonSpaceParams) (sqlc.CommonSpaces, error)
	UpdateCommonSpace(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCommonSpaceParams) error
	DeleteCommonSpace(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SpaceRepository struct {
	queries SpaceWriteQueries
	db      sqlc.DBTX
}

func NewSpaceRepository(queries SpaceWriteQueries, db sqlc.DBTX) *SpaceRepository {
	return &SpaceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SpaceRepository) Create(ctx context.Context, tx sqlc.DBTX, s *space.CommonSpace) (uuid.UUID, error) {
	params, err := converter.SpaceToCreateParams(s)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode availability schedule", err, infra.KindDBFailure)
	}
	row, err := r.queries.CreateCommonSpace(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create common space", err)
	}
	return row.ID, nil
}

func (r *SpaceRepository) Update(ctx context.Context, tx sqlc.DBTX, s *space.CommonSpace) error {
	params, err := converter.SpaceToUpdateParams(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode availability schedule", err, infra.KindDBFailure)
	}
	if err := r.queries.UpdateCommonSpace(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update common space", err)
	}
	return nil
}

func (r *SpaceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCommonSpace(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete common space", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("common space not found", nil, infra.KindNotFound)
	}
	return nil
}
