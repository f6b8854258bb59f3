//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/readstore"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/usecase/queries"
	"amenity-booking/tests/common/builder"
	readstoremock "amenity-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpaceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		row           sqlc.CommonSpaces
		schedule      []byte
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: space found",
			row:  builder.NewSpaceBuilder().BuildInfra(),
		},
		{
			name:          "error: space not found",
			dbErr:         pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error",
			dbErr:         errDBConnectionLost,
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name:          "error: stored schedule is malformed",
			row:           builder.NewSpaceBuilder().BuildInfra(),
			schedule:      []byte(`"not an envelope"`),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockSpaceReadQueries(ctrl)
			store := readstore.NewSpaceReadStore(mockQueries, nil)

			id := tc.row.ID
			if id == uuid.Nil {
				id = uuid.New()
			}
			row := tc.row
			if tc.schedule != nil {
				row.AvailabilitySchedule = tc.schedule
			}
			mockQueries.EXPECT().GetCommonSpaceByID(ctx, gomock.Any(), id).Return(row, tc.dbErr)

			result, err := store.FindByID(ctx, id)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, result.ID)
			assert.Equal(t, "Party Room", result.Name)
			assert.True(t, result.ApprovalRequired)
		})
	}
}

func TestSpaceReadStore_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockSpaceReadQueries(ctrl)
	store := readstore.NewSpaceReadStore(mockQueries, nil)

	category := space.CategorySauna

	mockQueries.EXPECT().ListCommonSpaces(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListCommonSpacesParams) ([]sqlc.CommonSpaces, error) {
			assert.True(t, arg.Active.Valid && arg.Active.Bool)
			assert.Equal(t, "sauna", arg.Category.String)
			return []sqlc.CommonSpaces{builder.NewSpaceBuilder().BuildInfra()}, nil
		})

	result, err := store.List(ctx, queries.SpaceFilters{ActiveOnly: true, Category: &category})
	require.NoError(t, err)
	assert.Len(t, result, 1)

	mockQueries.EXPECT().ListCommonSpaces(ctx, gomock.Any(), sqlc.ListCommonSpacesParams{}).Return(nil, errDBConnectionLost)
	_, err = store.List(ctx, queries.SpaceFilters{})
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestSpaceReadStore_CountActiveBookings(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockSpaceReadQueries(ctrl)
	store := readstore.NewSpaceReadStore(mockQueries, nil)
	spaceID := uuid.New()

	mockQueries.EXPECT().CountActiveBookingsBySpace(ctx, gomock.Any(), spaceID).Return(int64(3), nil)

	n, err := store.CountActiveBookings(ctx, spaceID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
