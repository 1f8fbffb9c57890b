package tenancy

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/kgsoft/estoque/internal/observability/metrics"
)

// Router hands out connections scoped to a tenant's schema. Every handle
// is exclusively owned by one unit of work until released, and release
// resets the active schema before the connection rejoins the pool — the
// sole invariant protecting tenant isolation across checkouts.
type Router struct {
	pool     *sql.DB
	registry *Registry
	switcher SchemaSwitcher
	metrics  *metrics.Metrics

	defaultSchema  string
	acquireTimeout time.Duration
}

func NewRouter(pool *sql.DB, registry *Registry, switcher SchemaSwitcher, m *metrics.Metrics, defaultSchema string, acquireTimeout time.Duration) *Router {
	return &Router{
		pool:           pool,
		registry:       registry,
		switcher:       switcher,
		metrics:        m,
		defaultSchema:  defaultSchema,
		acquireTimeout: acquireTimeout,
	}
}

// SchemaHandle is a pooled connection bound to exactly one schema for its
// lifetime.
type SchemaHandle struct {
	conn     *sql.Conn
	schema   string
	router   *Router
	released bool
}

// Schema returns the schema the handle is bound to.
func (h *SchemaHandle) Schema() string { return h.schema }

// Conn exposes the underlying connection for query execution.
func (h *SchemaHandle) Conn() *sql.Conn { return h.conn }

// Release resets the connection to the default schema and returns it to
// the pool. If the reset fails the raw connection is poisoned so the pool
// discards it instead of reusing it with a foreign schema.
func (h *SchemaHandle) Release(ctx context.Context) error {
	if h.released {
		return nil
	}
	h.released = true

	if h.schema != h.router.defaultSchema {
		if err := h.router.switcher.Reset(ctx, h.conn); err != nil {
			_ = h.conn.Raw(func(driverConn interface{}) error {
				_ = driverConn
				return driver.ErrBadConn
			})
			_ = h.conn.Close()
			return err
		}
	}
	return h.conn.Close()
}

// ConnFor returns a handle scoped to the tenant's registered schema.
// Unknown or unprovisioned tenants fail with ErrSchemaNotFound; there is
// no fallback to the default schema.
func (r *Router) ConnFor(ctx context.Context, tenantID string) (*SchemaHandle, error) {
	schema, err := r.registry.SchemaFor(ctx, tenantID)
	if err != nil {
		r.countCheckout("schema_not_found")
		return nil, err
	}
	return r.checkout(ctx, schema)
}

// ForSchema returns a handle scoped to schema directly, bypassing the
// registry. Provisioning uses it to seed a schema before the tenant
// becomes routable.
func (r *Router) ForSchema(ctx context.Context, schema string) (*SchemaHandle, error) {
	return r.checkout(ctx, schema)
}

// AnyConn returns a handle scoped to the default schema, for
// tenant-agnostic reads such as the tenant registry itself.
func (r *Router) AnyConn(ctx context.Context) (*SchemaHandle, error) {
	return r.checkout(ctx, r.defaultSchema)
}

func (r *Router) checkout(ctx context.Context, schema string) (*SchemaHandle, error) {
	acquireCtx := ctx
	if r.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, r.acquireTimeout)
		defer cancel()
	}

	conn, err := r.pool.Conn(acquireCtx)
	if err != nil {
		r.countCheckout("unavailable")
		return nil, fmt.Errorf("%w: %v", ErrConnectionUnavailable, err)
	}

	if schema != r.defaultSchema {
		if err := r.switcher.Use(ctx, conn, schema); err != nil {
			_ = conn.Close()
			r.countCheckout("switch_failed")
			return nil, err
		}
	}

	r.countCheckout("ok")
	return &SchemaHandle{conn: conn, schema: schema, router: r}, nil
}

func (r *Router) countCheckout(outcome string) {
	if r.metrics != nil {
		r.metrics.SchemaCheckouts.WithLabelValues(outcome).Inc()
	}
}
