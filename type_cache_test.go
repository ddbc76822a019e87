package inspire

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/junioryono/inspire/dom"
)

// Test types for cache testing
type embeddedFields struct {
	Shared  dom.Element `bind:"shared"`
	Shadow  dom.Element `bind:"label"`
	private dom.Element `bind:"hidden"`
}

type taggedView struct {
	Component
	embeddedFields

	Label   *Property     `bind:"label"`
	Items   []dom.Element `bind:"items,multi"`
	Default dom.Element   `bind:""`
	Plain   string
}

func TestTypeCache_GetTypeInfo(t *testing.T) {
	cache := &typeCache{}

	t.Run("nil type", func(t *testing.T) {
		if info := cache.getTypeInfo(nil); info != nil {
			t.Error("expected nil for nil type")
		}
	})

	t.Run("non struct type", func(t *testing.T) {
		if info := cache.getTypeInfo(reflect.TypeFor[*taggedView]()); info != nil {
			t.Error("expected nil for pointer type")
		}
	})

	t.Run("caches type info", func(t *testing.T) {
		typ := reflect.TypeFor[taggedView]()

		info1 := cache.getTypeInfo(typ)
		info2 := cache.getTypeInfo(typ)

		if info1 != info2 {
			t.Error("expected same cached instance")
		}
	})

	t.Run("collects tagged fields", func(t *testing.T) {
		info := cache.getTypeInfo(reflect.TypeFor[taggedView]())

		expected := map[string]string{
			"label":   "Label",
			"items":   "Items",
			"Default": "Default",
			"shared":  "Shared",
		}

		if len(info.Fields) != len(expected) {
			t.Fatalf("expected %d fields, got %d", len(expected), len(info.Fields))
		}

		for tag, name := range expected {
			field, ok := info.Fields[tag]
			if !ok {
				t.Errorf("missing field for tag %q", tag)
				continue
			}
			if field.Name != name {
				t.Errorf("tag %q: expected field %s, got %s", tag, name, field.Name)
			}
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		typ := reflect.TypeFor[embeddedFields]()

		var wg sync.WaitGroup
		results := make([]*typeInfo, 10)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = cache.getTypeInfo(typ)
			}(i)
		}
		wg.Wait()

		for i := 1; i < len(results); i++ {
			if results[i] != results[0] {
				t.Error("expected all goroutines to observe the same instance")
			}
		}
	})
}

func TestAssignField(t *testing.T) {
	host := dom.NewElement("div")

	t.Run("assigns matching types", func(t *testing.T) {
		view := &taggedView{}
		prop := &Property{name: "textContent"}

		if err := assignField(view, "label", prop); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Label != prop {
			t.Error("expected Label to be assigned")
		}
		if view.Shadow != nil {
			t.Error("expected the shallower field to win")
		}

		if err := assignField(view, "shared", host); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Shared != host {
			t.Error("expected embedded field to be assigned")
		}
	})

	t.Run("nil resets the field", func(t *testing.T) {
		view := &taggedView{Default: host}

		if err := assignField(view, "Default", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Default != nil {
			t.Error("expected Default to be reset")
		}
	})

	t.Run("untagged names are ignored", func(t *testing.T) {
		view := &taggedView{}
		if err := assignField(view, "Plain", "value"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := assignField(view, "hidden", host); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.private != nil {
			t.Error("expected unexported field to be left alone")
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		view := &taggedView{}

		err := assignField(view, "items", host)

		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected TypeMismatchError, got %v", err)
		}
		if mismatch.Subject != "taggedView.Items" {
			t.Errorf("unexpected subject %q", mismatch.Subject)
		}
	})

	t.Run("non pointer targets are ignored", func(t *testing.T) {
		if err := assignField(taggedView{}, "label", &Property{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := assignField((*taggedView)(nil), "label", &Property{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
