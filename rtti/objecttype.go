// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"weak"

	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/types"
)

// objects are weak pointers to all of the live objects, by ID,
// so that objects can be found from their string form without
// keeping them alive.
var (
	objects   = map[uint64]weak.Pointer[ObjectBase]{}
	objectsMu sync.RWMutex
)

func trackObject(ob *ObjectBase) {
	objectsMu.Lock()
	objects[ob.id] = weak.Make(ob)
	objectsMu.Unlock()
	runtime.AddCleanup(ob, untrackID, ob.id)
}

func untrackObject(ob *ObjectBase) {
	untrackID(ob.id)
}

func untrackID(id uint64) {
	objectsMu.Lock()
	delete(objects, id)
	objectsMu.Unlock()
}

// ObjectByID returns the live object with the given ID, or nil
// if there is no such object or it has been destroyed.
func ObjectByID(id uint64) Object {
	objectsMu.RLock()
	wp, ok := objects[id]
	objectsMu.RUnlock()
	if !ok {
		return nil
	}
	ob := wp.Value()
	if ob == nil || ob.IsDestroyed() {
		return nil
	}
	return ob.this()
}

// Format returns the string form of the given object, which is its
// class name and ID separated by @ (eg: PLCore::Script@12), or ""
// for nil. Objects can be found from their string form with [Parse]
// for as long as they are alive.
func Format(obj Object) string {
	if reflectx.IsNil(obj) {
		return ""
	}
	ob := obj.AsObject()
	if ob.id == 0 {
		return ""
	}
	return ob.class.String() + "@" + strconv.FormatUint(ob.id, 10)
}

// Parse returns the live object with the given string form (see
// [Format]), or nil if there is no such object.
func Parse(s string) Object {
	name, ids, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return nil
	}
	id, err := strconv.ParseUint(ids, 10, 64)
	if err != nil {
		return nil
	}
	obj := ObjectByID(id)
	if obj == nil || obj.AsObject().class.String() != name {
		return nil
	}
	return obj
}

// objectTypeFor returns a [types.Type] of kind [types.Object] for
// the given Go type if it is an object pointer type or an interface
// type that embeds [Object], so that objects can be attributes.
func objectTypeFor(rt reflect.Type) *types.Type {
	if !rt.Implements(objectType) {
		return nil
	}
	var name string
	switch rt.Kind() {
	case reflect.Pointer:
		name = "*" + rt.Elem().PkgPath() + "." + rt.Elem().Name()
	case reflect.Interface:
		name = rt.PkgPath() + "." + rt.Name()
	default:
		return nil
	}
	typ := types.New(name, types.Object, rt)
	typ.Format = func(v any) string {
		obj, _ := v.(Object)
		return Format(obj)
	}
	typ.Parse = func(s string) (any, error) {
		if strings.TrimSpace(s) == "" {
			return typ.Zero(), nil
		}
		obj := Parse(s)
		if obj == nil {
			return nil, fmt.Errorf("no live object %q", s)
		}
		if !reflect.TypeOf(obj).AssignableTo(rt) {
			return nil, fmt.Errorf("object %q is not of type %v", s, rt)
		}
		if rt.Kind() == reflect.Interface {
			pv := reflect.New(rt).Elem()
			pv.Set(reflect.ValueOf(obj))
			return pv.Interface(), nil
		}
		return obj, nil
	}
	return typ
}

func init() {
	types.AddDeriver(objectTypeFor)
}
