package testutil

import (
	"testing"

	"github.com/junioryono/inspire"
	"github.com/junioryono/inspire/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertResolvable checks that p resolves to a non-nil T.
func AssertResolvable[T any](t *testing.T, c *inspire.Container, p *inspire.ProviderType) T {
	t.Helper()
	service, err := inspire.Resolve[T](c, p)
	require.NoError(t, err, "failed to resolve %s", p)
	require.NotNil(t, service, "resolved service is nil")
	return service
}

// AssertCircular checks that err reports a provider cycle.
func AssertCircular(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, inspire.IsCircularDependency(err), "expected circular dependency error, got: %v", err)
}

// MustMount mounts ct on host and returns the instance as a B.
func MustMount[B inspire.Behavior](t *testing.T, c *inspire.Container, ct *inspire.ComponentType, host dom.Element) B {
	t.Helper()
	b, err := inspire.MountAs[B](c, ct, host)
	require.NoError(t, err, "failed to mount %s", ct)
	return b
}

// NewContainer creates a container bootstrapped with root under prefix.
func NewContainer(t *testing.T, root *inspire.ComponentType, prefix string, opts ...inspire.Option) *inspire.Container {
	t.Helper()
	c := inspire.NewContainer(opts...)
	require.NoError(t, c.Bootstrap(root, prefix))
	t.Cleanup(func() {
		assert.NoError(t, c.Close())
	})
	return c
}
