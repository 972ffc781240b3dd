// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"pixellight.org/core/enums"
)

var (
	// Types records all types (i.e., a type registry),
	// keyed by [Type.Name].
	Types = map[string]*Type{}

	// TypeIDCounter is an atomically incremented uint64 used
	// for assigning new [Type.ID] numbers
	TypeIDCounter uint64

	byReflect = map[reflect.Type]*Type{}
	derivers  []func(rt reflect.Type) *Type
	mu        sync.RWMutex
)

var builtins [KindsN]*Type

func init() {
	addBuiltin[bool](Bool)
	addBuiltin[int](Int)
	addBuiltin[int8](Int8)
	addBuiltin[int16](Int16)
	addBuiltin[int32](Int32)
	addBuiltin[int64](Int64)
	addBuiltin[uint](Uint)
	addBuiltin[uint8](Uint8)
	addBuiltin[uint16](Uint16)
	addBuiltin[uint32](Uint32)
	addBuiltin[uint64](Uint64)
	addBuiltin[float32](Float)
	addBuiltin[float64](Double)
	addBuiltin[string](String)
}

func addBuiltin[T any](kind Kinds) {
	rt := reflect.TypeFor[T]()
	builtins[kind] = AddType(New(rt.Name(), kind, rt))
}

// Builtin returns the builtin [Type] for the given basic kind,
// or nil for the Invalid, Enum, Flags and Object kinds, which
// have no builtin type.
func Builtin(kind Kinds) *Type {
	if kind < 0 || kind >= KindsN {
		return nil
	}
	return builtins[kind]
}

// AddType adds a constructed [Type] to the registry and returns it.
// This sets the ID. If a type with the same name was already added,
// the first one is kept and returned.
func AddType(typ *Type) *Type {
	mu.Lock()
	defer mu.Unlock()
	return addType(typ)
}

func addType(typ *Type) *Type {
	if ex, has := Types[typ.Name]; has {
		slog.Debug("types.AddType: Type already exists", "Type.Name", typ.Name)
		return ex
	}
	typ.ID = atomic.AddUint64(&TypeIDCounter, 1)
	Types[typ.Name] = typ
	if typ.reflect != nil {
		if _, has := byReflect[typ.reflect]; !has {
			byReflect[typ.reflect] = typ
		}
	}
	return typ
}

// TypeByName returns a Type by name (eg: int8, pixellight.org/core/types.Kinds),
// or nil if it is not registered.
func TypeByName(name string) *Type {
	mu.RLock()
	defer mu.RUnlock()
	return Types[name]
}

// AddDeriver adds a function that is consulted by [For] to create
// a [Type] for a Go type that is not yet registered. The function
// returns nil for types that it does not handle. Derivers are
// consulted in the order they were added, before the builtin rules.
func AddDeriver(fun func(rt reflect.Type) *Type) {
	mu.Lock()
	defer mu.Unlock()
	derivers = append(derivers, fun)
}

// For returns the [Type] for the given Go type, creating and
// registering one if needed. Named types of a basic kind (eg: type
// Meters float32) get a type of that kind, and types whose pointer
// implements [enums.EnumSetter] or [enums.BitFlagSetter] get an Enum or
// Flags type. It returns nil for types that can not be described.
func For(rt reflect.Type) *Type {
	if rt == nil {
		return nil
	}
	mu.RLock()
	typ, has := byReflect[rt]
	ders := derivers
	mu.RUnlock()
	if has {
		return typ
	}
	for _, der := range ders {
		if typ = der(rt); typ != nil {
			return AddType(typ)
		}
	}
	typ = derive(rt)
	if typ == nil {
		return nil
	}
	return AddType(typ)
}

// TypeFor returns the [Type] for the type parameter T; see [For].
func TypeFor[T any]() *Type {
	return For(reflect.TypeFor[T]())
}

// TypeOf returns the [Type] of the given value; see [For].
func TypeOf(v any) *Type {
	return For(reflect.TypeOf(v))
}

var (
	bitFlagSetterType = reflect.TypeFor[enums.BitFlagSetter]()
	enumSetterType    = reflect.TypeFor[enums.EnumSetter]()
)

func derive(rt reflect.Type) *Type {
	name := rt.Name()
	if rt.PkgPath() != "" {
		name = rt.PkgPath() + "." + name
	}
	if name == "" {
		return nil
	}
	pt := reflect.PointerTo(rt)
	switch {
	case pt.Implements(bitFlagSetterType):
		return New(name, Flags, rt)
	case pt.Implements(enumSetterType):
		return New(name, Enum, rt)
	}
	var kind Kinds
	switch rt.Kind() {
	case reflect.Bool:
		kind = Bool
	case reflect.Int:
		kind = Int
	case reflect.Int8:
		kind = Int8
	case reflect.Int16:
		kind = Int16
	case reflect.Int32:
		kind = Int32
	case reflect.Int64:
		kind = Int64
	case reflect.Uint:
		kind = Uint
	case reflect.Uint8:
		kind = Uint8
	case reflect.Uint16:
		kind = Uint16
	case reflect.Uint32:
		kind = Uint32
	case reflect.Uint64:
		kind = Uint64
	case reflect.Float32:
		kind = Float
	case reflect.Float64:
		kind = Double
	case reflect.String:
		kind = String
	default:
		return nil
	}
	return New(name, kind, rt)
}
