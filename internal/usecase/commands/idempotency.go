package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	idempotencyTTL        = 24 * time.Hour
	createBookingEndpoint = "POST /api/bookings"
)

var (
	ErrIdempotencyKeyReused   = errs.Conflict("idempotency key was already used with a different request")
	ErrIdempotencyKeyInFlight = errs.Conflict("a request with this idempotency key is still in progress")
)

// claimIdempotencyKey returns the booking recorded for key when the request is a replay.
func claimIdempotencyKey(ctx context.Context, tx shared.Tx, claim shared.IdempotencyClaim) (*uuid.UUID, error) {
	claimed, err := tx.Idempotency().Claim(ctx, tx.DB(), claim)
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	rec, err := tx.Reads().IdempotencyRecord(ctx, claim.Key, claim.UserID)
	if err != nil {
		return nil, err
	}
	if rec.RequestHash != claim.RequestHash || rec.Endpoint != claim.Endpoint {
		return nil, ErrIdempotencyKeyReused
	}
	if !rec.IsCompleted() {
		return nil, ErrIdempotencyKeyInFlight
	}
	return rec.ResultBookingID, nil
}

func calculateRequestHash(req any) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash request")
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
