package dom_test

import (
	"testing"

	"github.com/junioryono/inspire/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchEvent_Bubbles(t *testing.T) {
	outer := dom.NewElement("app-outer")
	frag, err := dom.Attach(outer, `<section><button id="go">Go</button></section>`)
	require.NoError(t, err)

	button, err := frag.QuerySelector("#go")
	require.NoError(t, err)
	section, err := frag.QuerySelector("section")
	require.NoError(t, err)

	var order []string
	button.AddEventListener("press", func(ev *dom.Event) {
		order = append(order, "button")
		assert.Same(t, button, ev.CurrentTarget)
	})
	section.AddEventListener("press", func(ev *dom.Event) {
		order = append(order, "section")
		assert.Same(t, button, ev.Target)
	})
	outer.AddEventListener("press", func(ev *dom.Event) {
		order = append(order, "host")
		assert.Equal(t, 7, ev.Detail)
	})

	delivered := button.DispatchEvent(dom.NewEvent("press", 7))
	assert.True(t, delivered)
	assert.Equal(t, []string{"button", "section", "host"}, order)
}

func TestDispatchEvent_StopPropagation(t *testing.T) {
	frag, err := dom.Attach(dom.NewElement("app-stop"), `<div><p></p></div>`)
	require.NoError(t, err)

	p, err := frag.QuerySelector("p")
	require.NoError(t, err)
	div, err := frag.QuerySelector("div")
	require.NoError(t, err)

	calls := 0
	p.AddEventListener("x", func(ev *dom.Event) { ev.StopPropagation() })
	p.AddEventListener("x", func(ev *dom.Event) { calls++ })
	div.AddEventListener("x", func(ev *dom.Event) { t.Fatal("propagation was not stopped") })

	p.DispatchEvent(dom.NewEvent("x", nil))
	assert.Equal(t, 1, calls)
}

func TestDispatchEvent_StopImmediatePropagation(t *testing.T) {
	el := dom.NewElement("app-x")

	calls := 0
	el.AddEventListener("x", func(ev *dom.Event) { ev.StopImmediatePropagation() })
	el.AddEventListener("x", func(ev *dom.Event) { calls++ })

	el.DispatchEvent(dom.NewEvent("x", nil))
	assert.Zero(t, calls)
}

func TestDispatchEvent_NonBubbling(t *testing.T) {
	host := dom.NewElement("app-host")
	frag, err := dom.Attach(host, `<p></p>`)
	require.NoError(t, err)

	p, err := frag.QuerySelector("p")
	require.NoError(t, err)

	host.AddEventListener("x", func(ev *dom.Event) { t.Fatal("non-bubbling event reached the host") })

	ev := &dom.Event{Type: "x"}
	assert.False(t, p.DispatchEvent(ev))
}

func TestDispatchEvent_OtherTypeIgnored(t *testing.T) {
	el := dom.NewElement("app-x")
	el.AddEventListener("a", func(ev *dom.Event) { t.Fatal("wrong listener invoked") })

	assert.False(t, el.DispatchEvent(dom.NewEvent("b", nil)))
}
