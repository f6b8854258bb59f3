//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/repository"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/tests/common/builder"
	repositorymock "amenity-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpaceRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockSpaceWriteQueries, *space.CommonSpace, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: space created",
			setupMock: func(mock *repositorymock.MockSpaceWriteQueries, s *space.CommonSpace, tx sqlc.DBTX) {
				mock.EXPECT().CreateCommonSpace(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCommonSpaceParams) (sqlc.CommonSpaces, error) {
						assert.Equal(t, s.ID(), arg.ID)
						assert.Equal(t, "social_hall", arg.Category)
						assert.Equal(t, "hour", arg.TimeUnit)
						assert.Equal(t, int64(50000), arg.PricePerUnit.Int64)
						assert.True(t, arg.ApprovalRequired)
						return sqlc.CommonSpaces{ID: arg.ID}, nil
					})
			},
		},
		{
			name: "error: duplicate name",
			setupMock: func(mock *repositorymock.MockSpaceWriteQueries, s *space.CommonSpace, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateCommonSpace(ctx, tx, gomock.Any()).Return(sqlc.CommonSpaces{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockSpaceWriteQueries, s *space.CommonSpace, tx sqlc.DBTX) {
				mock.EXPECT().CreateCommonSpace(ctx, tx, gomock.Any()).Return(sqlc.CommonSpaces{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSpaceWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSpaceRepository(mockQueries, mockDB)

			domainSpace, err := builder.NewSpaceBuilder().BuildDomain()
			require.NoError(t, err)
			tc.setupMock(mockQueries, domainSpace, mockDB)

			spaceID, actualError := repo.Create(ctx, mockDB, domainSpace)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Equal(t, uuid.Nil, spaceID)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainSpace.ID(), spaceID)
			}
		})
	}
}

func TestSpaceRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSpaceWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSpaceRepository(mockQueries, mockDB)

	domainSpace, err := builder.NewSpaceBuilder().WithoutPrice().BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().UpdateCommonSpace(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateCommonSpaceParams) error {
			assert.Equal(t, domainSpace.ID(), arg.ID)
			assert.False(t, arg.PricePerUnit.Valid, "cleared price is stored as NULL")
			return nil
		})

	require.NoError(t, repo.Update(ctx, mockDB, domainSpace))
}

func TestSpaceRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row deleted", affected: 1},
		{name: "error: no such space", affected: 0, expectKind: infra.KindNotFound},
		{
			name:       "error: still referenced",
			dbErr:      &pgconn.PgError{Code: "23503", Message: "update or delete violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSpaceWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSpaceRepository(mockQueries, mockDB)
			id := uuid.New()

			mockQueries.EXPECT().DeleteCommonSpace(ctx, mockDB, id).Return(tc.affected, tc.dbErr)

			err := repo.Delete(ctx, mockDB, id)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
