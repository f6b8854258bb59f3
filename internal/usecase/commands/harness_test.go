//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/clock"
	"amenity-booking/internal/usecase/shared"
	sharedmock "amenity-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

// fakeDB only stands in as the tx handle passed through to repositories.
type fakeDB struct {
	sqlc.DBTX
}

type uowHarness struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	spaces      *sharedmock.MockSpaceRepository
	bookings    *sharedmock.MockBookingRepository
	idempotency *sharedmock.MockIdempotencyRepository
	db          sqlc.DBTX
	clock       *clock.MockClock
}

func newUoWHarness(t *testing.T) *uowHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &uowHarness{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		spaces:      sharedmock.NewMockSpaceRepository(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		db:          &fakeDB{},
		clock:       clock.NewMockClock(testNow),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Spaces().Return(h.spaces).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idempotency).AnyTimes()
	h.tx.EXPECT().DB().Return(h.db).AnyTimes()

	return h
}
