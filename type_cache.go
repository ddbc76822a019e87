package inspire

import (
	"reflect"
	"strings"
	"sync"
)

// typeCache caches the bind-tagged fields of behavior types so reflection
// over a type happens once.
type typeCache struct {
	cache sync.Map // map[reflect.Type]*typeInfo
}

// typeInfo holds the bound fields of a struct type.
type typeInfo struct {
	Type   reflect.Type
	Fields map[string]*fieldInfo // binding name -> field
}

// fieldInfo describes one struct field tagged with bind:"name".
type fieldInfo struct {
	Index   []int
	Name    string
	Type    reflect.Type
	TagName string
}

// globalTypeCache is the type cache used throughout the package.
var globalTypeCache = &typeCache{}

// getTypeInfo returns the cached info for t, a struct type.
func (tc *typeCache) getTypeInfo(t reflect.Type) *typeInfo {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	if cached, ok := tc.cache.Load(t); ok {
		return cached.(*typeInfo)
	}

	info := &typeInfo{
		Type:   t,
		Fields: make(map[string]*fieldInfo),
	}
	collectFields(t, nil, info.Fields)

	actual, _ := tc.cache.LoadOrStore(t, info)
	return actual.(*typeInfo)
}

// collectFields walks the direct fields of t and of its embedded
// non-pointer structs. The shallowest field wins for a repeated name.
func collectFields(t reflect.Type, index []int, fields map[string]*fieldInfo) {
	var embedded []reflect.StructField

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		path := append(append([]int(nil), index...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			f.Index = path
			embedded = append(embedded, f)
			continue
		}

		tag, ok := f.Tag.Lookup("bind")
		if !ok || !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		if _, exists := fields[name]; exists {
			continue
		}

		fields[name] = &fieldInfo{
			Index:   path,
			Name:    f.Name,
			Type:    f.Type,
			TagName: name,
		}
	}

	for _, f := range embedded {
		collectFields(f.Type, f.Index, fields)
	}
}

// assignField stores value in the field of target tagged bind:"name".
// Behaviors without such a field are left alone.
func assignField(target any, name string, value any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil
	}
	rv = rv.Elem()

	info := globalTypeCache.getTypeInfo(rv.Type())
	if info == nil {
		return nil
	}

	field, ok := info.Fields[name]
	if !ok {
		return nil
	}

	dst := rv.FieldByIndex(field.Index)
	if !dst.CanSet() {
		return nil
	}
	if isNil(value) {
		dst.Set(reflect.Zero(field.Type))
		return nil
	}

	src := reflect.ValueOf(value)
	if !src.Type().AssignableTo(field.Type) {
		return &TypeMismatchError{
			Subject:  rv.Type().Name() + "." + field.Name,
			Expected: field.Type,
			Actual:   src.Type(),
		}
	}

	dst.Set(src)
	return nil
}
