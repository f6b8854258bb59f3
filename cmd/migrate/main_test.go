//go:build unit

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTenants(t *testing.T) {
	databases := map[string]string{
		"harbor":   "condo_harbor",
		"parkview": "condo_parkview",
	}

	t.Run("all tenants in stable order", func(t *testing.T) {
		got, err := selectTenants(databases, "")
		require.NoError(t, err)

		want := []target{
			{tenantID: "harbor", dbName: "condo_harbor"},
			{tenantID: "parkview", dbName: "condo_parkview"},
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(target{})); diff != "" {
			t.Errorf("targets mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single tenant", func(t *testing.T) {
		got, err := selectTenants(databases, "parkview")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "condo_parkview", got[0].dbName)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		_, err := selectTenants(databases, "nowhere")
		require.Error(t, err)
	})
}
