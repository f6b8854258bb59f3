//go:build unit

package tenant_test

import (
	"context"
	"testing"

	"amenity-booking/internal/pkg/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	ctx := tenant.WithTenant(context.Background(), " parkview ")
	id, err := tenant.FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "parkview", id)

	_, err = tenant.FromContext(context.Background())
	require.ErrorIs(t, err, tenant.ErrNoTenant)

	_, err = tenant.FromContext(tenant.WithTenant(context.Background(), ""))
	require.ErrorIs(t, err, tenant.ErrNoTenant)
}
