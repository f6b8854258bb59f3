//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"amenity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microseconds", func(t *testing.T) {
		start := time.Date(2026, 5, 1, 9, 0, 0, 123456000, time.UTC)
		id := uuid.New()

		gotStart, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(start, id))
		require.NoError(t, err)
		assert.Equal(t, start, gotStart)
		assert.Equal(t, id, gotID)
	})

	t.Run("rejects malformed cursors", func(t *testing.T) {
		enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }
		for name, c := range map[string]string{
			"empty":         "",
			"not base64":    "***",
			"wrong version": enc("v2:1-" + uuid.NewString()),
			"no separator":  enc("v1:12345"),
			"bad micros":    enc("v1:abc-" + uuid.NewString()),
			"bad uuid":      enc("v1:12345-nope"),
		} {
			t.Run(name, func(t *testing.T) {
				_, _, err := queries.DecodeAfterCursor(c)
				assert.Error(t, err)
			})
		}
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
