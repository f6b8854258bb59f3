//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/usecase/commands"
	"amenity-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func (s *BookingCommandsTestSuite) idempotentRequest(key uuid.UUID) commands.CreateBookingRequest {
	req := s.createRequest(s.sp)
	req.IdempotencyKey = &key
	return req
}

func (s *BookingCommandsTestSuite) TestCreateBooking_IdempotencyKey() {
	ctx := context.Background()

	s.Run("first use claims and completes the key", func() {
		key, newID := uuid.New(), uuid.New()
		s.h.idempotency.EXPECT().Claim(gomock.Any(), s.h.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c shared.IdempotencyClaim) (bool, error) {
				s.Equal(key, c.Key)
				s.Equal(s.resident.ID, c.UserID)
				s.Equal("POST /api/bookings", c.Endpoint)
				s.NotEmpty(c.RequestHash)
				s.Equal(testNow.Add(24*time.Hour), c.ExpiresAt)
				return true, nil
			})
		s.expectCreatePath(s.sp, s.resident.ID, nil)
		s.h.bookings.EXPECT().Create(gomock.Any(), s.h.db, gomock.Any()).Return(newID, nil)
		s.h.idempotency.EXPECT().Complete(gomock.Any(), s.h.db, key, s.resident.ID, newID).Return(nil)

		res, err := s.cmds.CreateBooking(ctx, s.resident, s.idempotentRequest(key))
		s.Require().NoError(err)
		s.Equal(newID, res.BookingID)
		s.False(res.IsReplayed)
	})

	s.Run("replay returns the recorded booking without writing", func() {
		key, priorID := uuid.New(), uuid.New()
		var claimed shared.IdempotencyClaim
		s.h.idempotency.EXPECT().Claim(gomock.Any(), s.h.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c shared.IdempotencyClaim) (bool, error) {
				claimed = c
				return false, nil
			})
		s.h.reads.EXPECT().IdempotencyRecord(gomock.Any(), key, s.resident.ID).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:             key,
					UserID:          s.resident.ID,
					Endpoint:        claimed.Endpoint,
					Status:          shared.IdempotencyStatusCompleted,
					RequestHash:     claimed.RequestHash,
					ResultBookingID: &priorID,
				}, nil
			})

		res, err := s.cmds.CreateBooking(ctx, s.resident, s.idempotentRequest(key))
		s.Require().NoError(err)
		s.Equal(priorID, res.BookingID)
		s.True(res.IsReplayed)
	})

	s.Run("key reused with a different body", func() {
		key := uuid.New()
		s.h.idempotency.EXPECT().Claim(gomock.Any(), s.h.db, gomock.Any()).Return(false, nil)
		s.h.reads.EXPECT().IdempotencyRecord(gomock.Any(), key, s.resident.ID).Return(&shared.IdempotencyRecord{
			Endpoint:    "POST /api/bookings",
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: "another-request",
		}, nil)

		_, err := s.cmds.CreateBooking(ctx, s.resident, s.idempotentRequest(key))
		s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
		s.True(errs.IsKind(err, errs.KindConflict))
	})

	s.Run("first request still running", func() {
		key := uuid.New()
		var claimed shared.IdempotencyClaim
		s.h.idempotency.EXPECT().Claim(gomock.Any(), s.h.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c shared.IdempotencyClaim) (bool, error) {
				claimed = c
				return false, nil
			})
		s.h.reads.EXPECT().IdempotencyRecord(gomock.Any(), key, s.resident.ID).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Endpoint:    claimed.Endpoint,
					Status:      shared.IdempotencyStatusProcessing,
					RequestHash: claimed.RequestHash,
				}, nil
			})

		_, err := s.cmds.CreateBooking(ctx, s.resident, s.idempotentRequest(key))
		s.ErrorIs(err, commands.ErrIdempotencyKeyInFlight)
	})

	s.Run("different bodies hash differently", func() {
		var hashes []string
		s.h.idempotency.EXPECT().Claim(gomock.Any(), s.h.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c shared.IdempotencyClaim) (bool, error) {
				hashes = append(hashes, c.RequestHash)
				return false, errors.New("stop here")
			}).Times(2)

		key := uuid.New()
		req := s.idempotentRequest(key)
		_, err := s.cmds.CreateBooking(ctx, s.resident, req)
		s.Error(err)

		reason := "birthday"
		req.Reason = &reason
		_, err = s.cmds.CreateBooking(ctx, s.resident, req)
		s.Error(err)

		s.Require().Len(hashes, 2)
		s.NotEqual(hashes[0], hashes[1])
	})
}

func (s *BookingCommandsTestSuite) TestPurgeIdempotencyKeys() {
	ctx := context.Background()

	s.Run("deletes keys expired at the wall clock now", func() {
		s.h.idempotency.EXPECT().DeleteExpired(gomock.Any(), s.h.db, testNow).Return(int64(4), nil)

		n, err := s.cmds.PurgeIdempotencyKeys(ctx)
		s.Require().NoError(err)
		s.Equal(int64(4), n)
	})

	s.Run("storage failure", func() {
		s.h.idempotency.EXPECT().DeleteExpired(gomock.Any(), s.h.db, testNow).Return(int64(0), errors.New("boom"))

		n, err := s.cmds.PurgeIdempotencyKeys(ctx)
		s.Error(err)
		s.Zero(n)
	})
}
