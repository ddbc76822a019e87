package inspire

import (
	"reflect"
	"testing"
)

func newPlain() Injectable { return &plainService{} }

// TestContainer_Provide tests that each provider is registered with the dig
// graph once, dependencies first
func TestContainer_Provide(t *testing.T) {
	dep := &ProviderType{Name: "Dep", New: newPlain}
	top := &ProviderType{Name: "Top", New: newPlain, Providers: []*ProviderType{dep, dep}}
	c := NewContainer()

	for range 2 {
		if err := c.provide(top, nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if len(c.provided) != 2 {
		t.Fatalf("Expected 2 registered providers, got %d", len(c.provided))
	}
	if c.provided[dep] == c.provided[top] {
		t.Errorf("Expected distinct dig names, got %q twice", c.provided[dep])
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(c.provided) != 0 {
		t.Errorf("Expected Close to drop registrations, got %d", len(c.provided))
	}
}

// TestNamedParams tests the parameter object built for dig
func TestNamedParams(t *testing.T) {
	a := &ProviderType{Name: "same", New: newPlain}
	b := &ProviderType{Name: "same", New: newPlain}

	params := namedParams([]*ProviderType{a, b, a})

	if params.NumField() != 4 {
		t.Fatalf("Expected 4 fields, got %d", params.NumField())
	}
	if !params.Field(0).Anonymous || params.Field(0).Type != inType {
		t.Errorf("Expected embedded dig.In, got %v", params.Field(0))
	}

	names := make([]string, 0, 3)
	for i := 1; i < params.NumField(); i++ {
		f := params.Field(i)
		if f.Type != injectableType {
			t.Errorf("Field %s: expected Injectable, got %v", f.Name, f.Type)
		}
		names = append(names, f.Tag.Get("name"))
	}

	want := []string{digName(a), digName(b), digName(a)}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Expected %v, got %v", want, names)
	}
	if digName(a) == digName(b) {
		t.Error("Expected providers with equal fields to get distinct names")
	}
}
