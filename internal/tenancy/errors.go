// Package tenancy routes each unit of work to its tenant's database
// schema: header resolution into the request context, schema-scoped
// connection checkout with reset-on-release pool hygiene, and a session
// guard that refuses to serve one tenant with another tenant's session.
package tenancy

import "errors"

var (
	// ErrSchemaNotFound means the tenant has no provisioned, active
	// schema. Routing never falls back to the default schema in that
	// case; doing so would serve the wrong data under a valid identity.
	ErrSchemaNotFound = errors.New("tenant schema not found")

	// ErrConnectionUnavailable wraps pool exhaustion or acquisition
	// timeouts. It is not retried here; retrying must not straddle the
	// schema-reset boundary of a released handle.
	ErrConnectionUnavailable = errors.New("connection unavailable")

	// ErrSessionTenantMismatch marks a pooled session created under a
	// different tenant than the one resolved for the current unit of
	// work. Recovered locally by discarding the session.
	ErrSessionTenantMismatch = errors.New("session tenant mismatch")
)
