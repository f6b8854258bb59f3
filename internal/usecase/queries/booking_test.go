//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/usecase/queries"
	"amenity-booking/tests/common/builder"
	queriesmock "amenity-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetBooking(t *testing.T) {
	ctx := context.Background()
	owner := authz.ViewerContext{ID: uuid.New()}
	admin := authz.ViewerContext{ID: uuid.New(), IsAdmin: true}
	notes := "gate code 1234"

	view := builder.NewBookingBuilder().WithOwner(owner.ID).With(func(b *builder.BookingBuilder) { b.Notes = &notes }).BuildView()

	t.Run("owner sees the booking without notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := queries.NewBookingQueries(store).GetBooking(ctx, owner, view.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Notes)
		assert.NotNil(t, view.Notes, "store result must not be mutated")
	})

	t.Run("admin sees notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := queries.NewBookingQueries(store).GetBooking(ctx, admin, view.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Notes)
		assert.Equal(t, notes, *got.Notes)
	})

	t.Run("other resident is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := queries.NewBookingQueries(store).GetBooking(ctx, authz.ViewerContext{ID: uuid.New()}, view.ID)
		require.ErrorIs(t, err, authz.ErrNotOwner)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store).GetBooking(ctx, admin, id)
		require.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestBookingQueries_ListBookings(t *testing.T) {
	ctx := context.Background()
	resident := authz.ViewerContext{ID: uuid.New()}
	admin := authz.ViewerContext{ID: uuid.New(), IsAdmin: true}

	page := func(n int) []*queries.BookingView {
		out := make([]*queries.BookingView, 0, n)
		base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
		for i := range n {
			start := base.Add(time.Duration(i) * time.Hour)
			out = append(out, builder.NewBookingBuilder().WithWindow(start, start.Add(time.Hour)).BuildView())
		}
		return out
	}

	t.Run("resident list is scoped to themselves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		someoneElse := uuid.New()

		store.EXPECT().FindFirstPage(ctx, gomock.Any(), int32(queries.DefaultListLimit+1)).
			DoAndReturn(func(_ context.Context, f queries.BookingFilters, _ int32) ([]*queries.BookingView, error) {
				require.NotNil(t, f.UserID)
				assert.Equal(t, resident.ID, *f.UserID)
				return nil, nil
			})

		rows, next, err := queries.NewBookingQueries(store).ListBookings(ctx, resident, queries.BookingFilters{UserID: &someoneElse}, nil, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Nil(t, next)
	})

	t.Run("admin keeps the requested owner filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		store.EXPECT().FindFirstPage(ctx, queries.BookingFilters{}, int32(11)).Return(nil, nil)

		_, _, err := queries.NewBookingQueries(store).ListBookings(ctx, admin, queries.BookingFilters{}, nil, 10)
		require.NoError(t, err)
	})

	t.Run("extra row yields a cursor for the next page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := page(3)

		store.EXPECT().FindFirstPage(ctx, gomock.Any(), int32(3)).Return(rows, nil)

		got, next, err := queries.NewBookingQueries(store).ListBookings(ctx, admin, queries.BookingFilters{}, nil, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)

		lastStart, lastID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].StartAt, lastStart)
		assert.Equal(t, rows[1].ID, lastID)
	})

	t.Run("cursor continues with keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		lastStart := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastStart, lastID)}

		store.EXPECT().FindKeyset(ctx, gomock.Any(), lastStart, lastID, int32(3)).Return(page(1), nil)

		got, next, err := queries.NewBookingQueries(store).ListBookings(ctx, admin, queries.BookingFilters{}, cursor, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).ListBookings(ctx, admin, queries.BookingFilters{}, &queries.Cursor{After: "%%%"}, 2)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
