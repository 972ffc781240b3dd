// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of helpers for the reflect package:
// consistently named pointer navigation, lookup of embedded structs,
// and robust, common-sense conversion between basic values.
package reflectx

import (
	"reflect"
)

// NonPointerType returns a non-pointer version of the given type.
func NonPointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

// NonPointerValue returns a non-pointer version of the given value.
// It returns an invalid value for a nil pointer.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// IsNil returns whether the given value is nil, either as
// a nil interface or as a typed nil pointer, map, slice,
// func, or channel inside an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// EmbeddedPointer returns a pointer to the struct of the given target type
// inside of the given pointer to a struct, searching through anonymous
// embedded fields (breadth first, so shallower embeds win). Unexported
// embeds are not visible to reflection and are skipped. If the given
// value is itself a pointer to the target type, it is returned as is.
// It returns nil if there is no such embedded struct.
func EmbeddedPointer(obj any, target reflect.Type) any {
	if IsNil(obj) {
		return nil
	}
	target = NonPointerType(target)
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer {
		return nil
	}
	level := []reflect.Value{v.Elem()}
	for len(level) > 0 {
		var next []reflect.Value
		for _, sv := range level {
			if sv.Type() == target {
				return sv.Addr().Interface()
			}
			if sv.Kind() != reflect.Struct {
				continue
			}
			st := sv.Type()
			for i := range st.NumField() {
				f := st.Field(i)
				if !f.Anonymous || !f.IsExported() {
					continue
				}
				fv := sv.Field(i)
				if f.Type.Kind() == reflect.Pointer {
					if fv.IsNil() || f.Type.Elem().Kind() != reflect.Struct {
						continue
					}
					fv = fv.Elem()
				}
				if fv.Kind() == reflect.Struct {
					next = append(next, fv)
				}
			}
		}
		level = next
	}
	return nil
}

// EmbedsType returns whether the given struct type is, or embeds
// at any depth, the given target type.
func EmbedsType(typ, target reflect.Type) bool {
	typ = NonPointerType(typ)
	target = NonPointerType(target)
	if typ == nil || target == nil {
		return false
	}
	if typ == target {
		return true
	}
	if typ.Kind() != reflect.Struct {
		return false
	}
	for i := range typ.NumField() {
		f := typ.Field(i)
		if f.Anonymous && EmbedsType(f.Type, target) {
			return true
		}
	}
	return false
}
