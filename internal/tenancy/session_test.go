package tenancy

import (
	"context"
	"testing"

	"github.com/kgsoft/estoque/pkg/db"
	"github.com/kgsoft/estoque/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionManager(t *testing.T) *SessionManager {
	t.Helper()
	base, err := db.NewTest()
	require.NoError(t, err)
	return NewSessionManager(base, nil, nil, nil)
}

func TestAcquirePinsSessionToResolvedTenant(t *testing.T) {
	m := newTestSessionManager(t)

	ctx := tenant.WithID(context.Background(), "acme")
	s, err := m.Acquire(ctx)
	require.NoError(t, err)
	defer m.Release(ctx, s)

	assert.Equal(t, "acme", s.TenantID())
	assert.NotNil(t, s.DB())
}

func TestAcquireWithoutTenantUsesDefault(t *testing.T) {
	m := newTestSessionManager(t)

	s, err := m.Acquire(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tenant.DefaultTenant, s.TenantID())
}

func TestValidateReusesMatchingSession(t *testing.T) {
	m := newTestSessionManager(t)

	ctx := tenant.WithID(context.Background(), "acme")
	s, err := m.Acquire(ctx)
	require.NoError(t, err)

	same, err := m.Validate(ctx, s)
	require.NoError(t, err)
	assert.Same(t, s, same)
}

func TestValidateDiscardsMismatchedSession(t *testing.T) {
	m := newTestSessionManager(t)

	ctxA := tenant.WithID(context.Background(), "acme")
	s, err := m.Acquire(ctxA)
	require.NoError(t, err)

	ctxB := tenant.WithID(context.Background(), "globex")
	fresh, err := m.Validate(ctxB, s)
	require.NoError(t, err)

	assert.NotSame(t, s, fresh)
	assert.Equal(t, "globex", fresh.TenantID())
}

func TestValidateNilAcquiresFresh(t *testing.T) {
	m := newTestSessionManager(t)

	ctx := tenant.WithID(context.Background(), "acme")
	s, err := m.Validate(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "acme", s.TenantID())
}

func TestReleaseNilSessionIsNoop(t *testing.T) {
	m := newTestSessionManager(t)
	assert.NoError(t, m.Release(context.Background(), nil))
}
