package inspire

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// formatType formats a reflect.Type for names and error messages, dropping
// package paths.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + formatType(t.Elem())
	case reflect.Slice:
		return "[]" + formatType(t.Elem())
	case reflect.Map:
		return fmt.Sprintf("map[%s]%s", formatType(t.Key()), formatType(t.Elem()))
	case reflect.Interface:
		if t.Name() != "" {
			return t.Name()
		}
		return "interface{}"
	case reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return "struct{...}"
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// typeOfValue returns the dynamic type of v, or nil for a nil interface.
func typeOfValue(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// construct invokes a no-argument constructor, converting a panic into a
// ConstructorPanicError and a nil result into ErrInstanceNil.
func construct[T any](subject string, constructor func() T) (instance T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			instance = zero
			err = &ConstructorPanicError{
				Subject: subject,
				Panic:   r,
				Stack:   debug.Stack(),
			}
		}
	}()

	instance = constructor()
	if isNil(instance) {
		var zero T
		return zero, ErrInstanceNil
	}
	return instance, nil
}
