package tenancy

import (
	"context"

	"github.com/kgsoft/estoque/internal/observability/metrics"
	"github.com/kgsoft/estoque/pkg/tenant"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Session is a gorm handle pinned to the tenant it was created for. The
// pinned identifier lets the manager detect a session being reused for a
// different tenant's unit of work.
type Session struct {
	db       *gorm.DB
	tenantID string
	handle   *SchemaHandle
}

func (s *Session) DB() *gorm.DB { return s.db }
func (s *Session) TenantID() string { return s.tenantID }

type sessionKey struct{}

// WithSession stores a session in ctx so downstream services reach the
// tenant-scoped connection without threading it explicitly.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session carried by ctx, or nil.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// DB returns the tenant-scoped gorm handle carried by ctx, falling back
// to the shared pool when no session was installed.
func DB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if s := SessionFromContext(ctx); s != nil {
		return s.DB()
	}
	return fallback.WithContext(ctx)
}

// SessionManager creates and recycles tenant-scoped gorm sessions on top
// of the schema router.
type SessionManager struct {
	base     *gorm.DB
	router   *Router
	registry *Registry
	metrics  *metrics.Metrics
}

func NewSessionManager(base *gorm.DB, router *Router, registry *Registry, m *metrics.Metrics) *SessionManager {
	return &SessionManager{base: base, router: router, registry: registry, metrics: m}
}

// Acquire opens a session for the tenant resolved from ctx. The default
// tenant shares the base pool; any other tenant must be registered, and
// on postgres borrows a schema-scoped connection. Single-schema dialects
// still validate the tenant so an unknown identifier never reaches data.
func (m *SessionManager) Acquire(ctx context.Context) (*Session, error) {
	id := tenant.Resolve(ctx)
	if id == tenant.DefaultTenant {
		return &Session{db: m.base.WithContext(ctx), tenantID: id}, nil
	}

	if m.base.Dialector.Name() != "postgres" {
		if m.registry != nil {
			if _, err := m.registry.SchemaFor(ctx, id); err != nil {
				return nil, err
			}
		}
		return &Session{db: m.base.WithContext(ctx), tenantID: id}, nil
	}

	handle, err := m.router.ConnFor(ctx, id)
	if err != nil {
		return nil, err
	}

	scoped, err := gorm.Open(postgres.New(postgres.Config{Conn: handle.Conn()}), &gorm.Config{
		Logger: m.base.Logger,
	})
	if err != nil {
		_ = handle.Release(ctx)
		return nil, err
	}

	return &Session{db: scoped.WithContext(ctx), tenantID: id, handle: handle}, nil
}

// Release returns the session's connection to the pool, resetting its
// schema first. Safe to call more than once.
func (m *SessionManager) Release(ctx context.Context, s *Session) error {
	if s == nil || s.handle == nil {
		return nil
	}
	return s.handle.Release(ctx)
}

// Validate returns a session guaranteed to belong to the tenant resolved
// from ctx. A cached session created under a different tenant is never
// reused: it is released and a fresh one acquired, recovering the
// mismatch locally.
func (m *SessionManager) Validate(ctx context.Context, cached *Session) (*Session, error) {
	if cached == nil {
		return m.Acquire(ctx)
	}
	if cached.tenantID == tenant.Resolve(ctx) {
		return cached, nil
	}

	if m.metrics != nil {
		m.metrics.SessionMismatches.Inc()
	}
	_ = m.Release(ctx, cached)
	return m.Acquire(ctx)
}
