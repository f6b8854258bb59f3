//go:build unit

package patch_test

import (
	"encoding/json"
	"testing"

	"amenity-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalesce(t *testing.T) {
	v := 3
	assert.Equal(t, 3, patch.Coalesce(&v, 7))
	assert.Equal(t, 7, patch.Coalesce[int](nil, 7))
}

func TestField_UnmarshalJSON(t *testing.T) {
	type body struct {
		Price patch.Field[int64] `json:"price"`
	}

	tests := []struct {
		name      string
		raw       string
		wantSet   bool
		wantValue *int64
	}{
		{name: "absent", raw: `{}`, wantSet: false},
		{name: "explicit null", raw: `{"price":null}`, wantSet: true},
		{name: "value", raw: `{"price":1500}`, wantSet: true, wantValue: ptr(int64(1500))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &b))
			assert.Equal(t, tt.wantSet, b.Price.Set)
			assert.Equal(t, tt.wantValue, b.Price.Value)
		})
	}
}

func TestField_Apply(t *testing.T) {
	current := ptr("old")

	assert.Equal(t, current, patch.Field[string]{}.Apply(current))
	assert.Nil(t, patch.Null[string]().Apply(current))
	assert.Equal(t, "new", *patch.Value("new").Apply(current))
}

func TestField_InvalidJSON(t *testing.T) {
	var f patch.Field[int64]
	require.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
}

func ptr[T any](v T) *T {
	return &v
}
