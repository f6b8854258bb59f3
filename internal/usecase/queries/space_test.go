//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/usecase/queries"
	"amenity-booking/tests/common/builder"
	queriesmock "amenity-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpaceQueries(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*queriesmock.MockSpaceReadStore, *queriesmock.MockOccupancyReadStore, queries.SpaceQueries) {
		ctrl := gomock.NewController(t)
		spaces := queriesmock.NewMockSpaceReadStore(ctrl)
		occupancy := queriesmock.NewMockOccupancyReadStore(ctrl)
		return spaces, occupancy, queries.NewSpaceQueries(spaces, occupancy)
	}

	t.Run("GetSpace maps not found", func(t *testing.T) {
		spaces, _, q := setup(t)
		id := uuid.New()
		spaces.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("space not found", nil, infra.KindNotFound))

		_, err := q.GetSpace(ctx, id)
		require.ErrorIs(t, err, space.ErrNotFound)
	})

	t.Run("ListSpaces passes filters through", func(t *testing.T) {
		spaces, _, q := setup(t)
		gym := space.CategoryGym
		filters := queries.SpaceFilters{ActiveOnly: true, Category: &gym}
		want := []*queries.SpaceView{builder.NewSpaceBuilder().BuildView()}
		spaces.EXPECT().List(ctx, filters).Return(want, nil)

		got, err := q.ListSpaces(ctx, filters)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("GetOccupiedSlots covers the whole local day", func(t *testing.T) {
		spaces, occupancy, q := setup(t)
		view := builder.NewSpaceBuilder().BuildView()
		date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		slots := []*queries.OccupiedSlotView{{
			StartAt: date.Add(9 * time.Hour),
			EndAt:   date.Add(11 * time.Hour),
			State:   string(booking.StatusConfirmed),
		}}

		spaces.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		occupancy.EXPECT().OccupiedSlots(ctx, view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, day booking.Interval) ([]*queries.OccupiedSlotView, error) {
				assert.Equal(t, date, day.Start())
				assert.Equal(t, date.Add(24*time.Hour), day.End())
				return slots, nil
			})

		got, err := q.GetOccupiedSlots(ctx, view.ID, date)
		require.NoError(t, err)
		assert.Equal(t, slots, got)
	})

	t.Run("GetOccupiedSlots of unknown space", func(t *testing.T) {
		spaces, _, q := setup(t)
		id := uuid.New()
		spaces.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("space not found", nil, infra.KindNotFound))

		_, err := q.GetOccupiedSlots(ctx, id, time.Now())
		require.ErrorIs(t, err, space.ErrNotFound)
	})
}
