// Package tenant carries the tenant identity of a unit of work through
// context.Context. Each request (or background task) derives its own
// context, so no two concurrent units of work can observe each other's
// tenant. There is intentionally no package-level slot to set or clear.
package tenant

import "context"

// DefaultTenant is the schema used when no tenant has been resolved.
const DefaultTenant = "public"

// contextKey prevents collisions with other packages using context values.
type contextKey struct{}

// WithID returns a derived context carrying the tenant identifier.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// ID extracts the tenant identifier and whether one was set.
func ID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Resolve returns the tenant identifier for the current unit of work,
// falling back to DefaultTenant when none was installed. This is the
// identifier the persistence layer keys sessions and schemas on.
func Resolve(ctx context.Context) string {
	if id, ok := ID(ctx); ok {
		return id
	}
	return DefaultTenant
}
