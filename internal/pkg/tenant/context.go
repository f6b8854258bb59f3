package tenant

import (
	"context"
	"errors"
	"strings"
)

var ErrNoTenant = errors.New("tenant not resolved for request")

type ctxKey struct{}

// WithTenant scopes ctx to one tenant's data.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, strings.TrimSpace(tenantID))
}

func FromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", ErrNoTenant
	}
	return id, nil
}
