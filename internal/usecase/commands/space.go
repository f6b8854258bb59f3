package commands

//go:generate mockgen -source=space.go -destination=../../../tests/mock/commands/space.go -package=commandsmock

import (
	"context"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/pkg/clock"
	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSpaceResult struct {
	SpaceID uuid.UUID
}

type SpaceCommands interface {
	CreateSpace(ctx context.Context, viewer authz.ViewerContext, attrs space.Attributes) (*CreateSpaceResult, error)
	UpdateSpace(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID, p space.Patch) error
	DeleteSpace(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error
}

type spaceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSpaceUseCase(uow shared.UnitOfWork, clk clock.Clock) SpaceCommands {
	return &spaceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *spaceUseCaseImpl) CreateSpace(ctx context.Context, viewer authz.ViewerContext, attrs space.Attributes) (*CreateSpaceResult, error) {
	if err := viewer.RequireAdmin(); err != nil {
		return nil, err
	}

	sp, err := space.NewCommonSpace(attrs, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Spaces().Create(ctx, tx.DB(), sp)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateSpaceResult{SpaceID: createdID}, nil
}

func (uc *spaceUseCaseImpl) UpdateSpace(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID, p space.Patch) error {
	if err := viewer.RequireAdmin(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sp, derr := loadSpace(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		if derr = sp.Apply(p, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Spaces().Update(ctx, tx.DB(), sp)
	})
}

func (uc *spaceUseCaseImpl) DeleteSpace(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error {
	if err := viewer.RequireAdmin(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := loadSpace(ctx, tx.Reads(), id); derr != nil {
			return derr
		}
		// hold off concurrent bookers while counting
		if derr := tx.Bookings().LockSpace(ctx, tx.DB(), id); derr != nil {
			return derr
		}
		active, derr := tx.Reads().CountActiveBookings(ctx, id)
		if derr != nil {
			return derr
		}
		if active > 0 {
			return errs.Newf(errs.KindConflict, "space has %d active booking(s)", active)
		}
		if derr = tx.Spaces().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return space.ErrNotFound
			}
			return derr
		}
		return nil
	})
}

func loadSpace(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*space.CommonSpace, error) {
	sp, err := reads.SpaceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, space.ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}
