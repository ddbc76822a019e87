package inspire_test

import (
	"testing"

	"github.com/junioryono/inspire"
	"github.com/junioryono/inspire/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContainer(t *testing.T) {
	// Save original default to restore after tests
	original := inspire.DefaultContainer()
	t.Cleanup(func() {
		inspire.SetDefaultContainer(original)
	})

	t.Run("created on first use", func(t *testing.T) {
		inspire.SetDefaultContainer(nil)

		c := inspire.DefaultContainer()
		require.NotNil(t, c)
		assert.Same(t, c, inspire.DefaultContainer())
	})

	t.Run("can set and get default container", func(t *testing.T) {
		c := inspire.NewContainer()
		inspire.SetDefaultContainer(c)

		assert.Same(t, c, inspire.DefaultContainer())
	})

	t.Run("package functions use the default container", func(t *testing.T) {
		host := testutil.NewRecordingHost()
		inspire.SetDefaultContainer(inspire.NewContainer(inspire.WithHost(host)))

		child := fixture("child", `<p>child</p>`)
		root := fixture("root", `<ui-child></ui-child>`)
		root.Components = []*inspire.ComponentType{child}

		require.NoError(t, inspire.Bootstrap(root, "ui"))
		assert.Equal(t, []string{"ui-root", "ui-child"}, host.Calls())

		name, err := inspire.SelectorOf(child)
		require.NoError(t, err)
		assert.Equal(t, "ui-child", name)

		extra := fixture("extra", "")
		require.NoError(t, inspire.RegisterComponent(extra))
		assert.Equal(t, []string{"ui-root", "ui-child", "ui-extra"}, host.Calls())

		b, err := inspire.Mount(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "ui-root", b.(*fixtureView).Host().TagName())

		logger := inspire.NewProvider(testutil.NewTestLogger)
		first, err := inspire.ResolveDefault[*testutil.TestLogger](logger)
		require.NoError(t, err)
		second, err := inspire.ResolveDefault[*testutil.TestLogger](logger)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}
