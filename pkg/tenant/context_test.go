package tenant

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsToPublic(t *testing.T) {
	ctx := context.Background()

	_, ok := ID(ctx)
	assert.False(t, ok)
	assert.Equal(t, "public", Resolve(ctx))
}

func TestWithIDRoundTrip(t *testing.T) {
	ctx := WithID(context.Background(), "acme")

	id, ok := ID(ctx)
	require.True(t, ok)
	assert.Equal(t, "acme", id)
	assert.Equal(t, "acme", Resolve(ctx))
}

func TestEmptyIDTreatedAsUnset(t *testing.T) {
	ctx := WithID(context.Background(), "")

	_, ok := ID(ctx)
	assert.False(t, ok)
	assert.Equal(t, DefaultTenant, Resolve(ctx))
}

func TestDerivedContextDoesNotLeakIntoParent(t *testing.T) {
	parent := context.Background()
	_ = WithID(parent, "acme")

	_, ok := ID(parent)
	assert.False(t, ok)
}

// 100 concurrent units of work, each with a distinct tenant, must never
// observe another's identifier.
func TestConcurrentUnitsOfWorkAreIsolated(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = "tenant_" + string(rune('a'+i%26)) + string(rune('0'+i/26))
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(want string) {
			defer wg.Done()
			ctx := WithID(context.Background(), want)
			for i := 0; i < 1000; i++ {
				if got := Resolve(ctx); got != want {
					t.Errorf("observed tenant %q, want %q", got, want)
					return
				}
			}
		}(id)
	}
	wg.Wait()
}
