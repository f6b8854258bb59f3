//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"amenity-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	sentinel := errs.NotFound("space not found")

	tests := []struct {
		name     string
		err      error
		wantKind errs.Kind
		wantOK   bool
		wantMsg  string
	}{
		{name: "sentinel", err: sentinel, wantKind: errs.KindNotFound, wantOK: true, wantMsg: "space not found"},
		{name: "wrapped sentinel", err: errs.Wrap(sentinel, "load space"), wantKind: errs.KindNotFound, wantOK: true, wantMsg: "space not found"},
		{name: "formatted", err: errs.Newf(errs.KindConflict, "space has %d active booking(s)", 2), wantKind: errs.KindConflict, wantOK: true, wantMsg: "space has 2 active booking(s)"},
		{name: "plain error", err: errors.New("boom"), wantOK: false},
		{name: "nil", err: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := errs.KindOf(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMsg, errs.Message(tt.err))
		})
	}
}

func TestWrapKeepsIdentity(t *testing.T) {
	sentinel := errs.Forbidden("not allowed")
	wrapped := errs.Wrap(sentinel, "update booking")

	require.ErrorIs(t, wrapped, sentinel)
	assert.True(t, errs.IsKind(wrapped, errs.KindForbidden))
	assert.False(t, errs.IsKind(wrapped, errs.KindNotFound))
	assert.Contains(t, wrapped.Error(), "update booking")
}

func TestWrapfKeepsKindAndContext(t *testing.T) {
	sentinel := errs.InvalidState("transition not allowed")
	wrapped := errs.Wrapf(sentinel, "%s -> %s", "CANCELLED", "CONFIRMED")

	require.ErrorIs(t, wrapped, sentinel)
	assert.True(t, errs.IsKind(wrapped, errs.KindInvalidState))
	assert.Equal(t, "CANCELLED -> CONFIRMED: transition not allowed", wrapped.Error())
	assert.Equal(t, "transition not allowed", errs.Message(wrapped))
	assert.Nil(t, errs.Wrapf(nil, "ignored %d", 1))
}
