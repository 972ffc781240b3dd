// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynvar

import (
	"pixellight.org/core/types"
)

// Var is a [DynVar] that is a view onto a value of Go type V through
// a pointer to it. It is typically created when an attribute
// descriptor is bound to an object, using the pointer returned by the
// typed field accessor of the descriptor.
type Var[V any] struct {
	ptr *V
	typ *types.Type
	def string
}

// New returns a new [Var] viewing the value at the given pointer,
// with the given type and default value (in its string representation).
// If typ is nil, the type is looked up with [types.TypeFor]; New
// returns nil if there is no type for V.
func New[V any](ptr *V, typ *types.Type, def string) *Var[V] {
	if ptr == nil {
		return nil
	}
	if typ == nil {
		typ = types.TypeFor[V]()
		if typ == nil {
			return nil
		}
	}
	return &Var[V]{ptr: ptr, typ: typ, def: def}
}

// Get returns the real value.
func (v *Var[V]) Get() V {
	return *v.ptr
}

// Set sets the real value.
func (v *Var[V]) Set(val V) {
	*v.ptr = val
}

func (v *Var[V]) set(x any) {
	if val, ok := v.typ.Convert(x).(V); ok {
		*v.ptr = val
		return
	}
	var zero V
	*v.ptr = zero
}

func (v *Var[V]) Type() *types.Type   { return v.typ }
func (v *Var[V]) TypeName() string    { return v.typ.Name }
func (v *Var[V]) TypeID() types.Kinds { return v.typ.Kind }
func (v *Var[V]) Default() string     { return v.def }
func (v *Var[V]) Value() any          { return *v.ptr }
func (v *Var[V]) SetValue(x any)      { v.set(x) }

func (v *Var[V]) IsDefault() bool {
	return v.String() == v.typ.ToString(v.typ.FromString(v.def))
}

func (v *Var[V]) SetDefault() {
	v.SetString(v.def)
}

func (v *Var[V]) SetVar(from DynVar) {
	if from == nil {
		return
	}
	v.SetString(from.String())
}

func (v *Var[V]) Bool() bool       { return v.typ.ToBool(*v.ptr) }
func (v *Var[V]) Int() int         { return int(v.typ.ToInt(*v.ptr)) }
func (v *Var[V]) Int8() int8       { return int8(v.typ.ToInt(*v.ptr)) }
func (v *Var[V]) Int16() int16     { return int16(v.typ.ToInt(*v.ptr)) }
func (v *Var[V]) Int32() int32     { return int32(v.typ.ToInt(*v.ptr)) }
func (v *Var[V]) Int64() int64     { return v.typ.ToInt(*v.ptr) }
func (v *Var[V]) Uint() uint       { return uint(v.typ.ToUint(*v.ptr)) }
func (v *Var[V]) Uint8() uint8     { return uint8(v.typ.ToUint(*v.ptr)) }
func (v *Var[V]) Uint16() uint16   { return uint16(v.typ.ToUint(*v.ptr)) }
func (v *Var[V]) Uint32() uint32   { return uint32(v.typ.ToUint(*v.ptr)) }
func (v *Var[V]) Uint64() uint64   { return v.typ.ToUint(*v.ptr) }
func (v *Var[V]) Float32() float32 { return float32(v.typ.ToFloat(*v.ptr)) }
func (v *Var[V]) Float64() float64 { return v.typ.ToFloat(*v.ptr) }
func (v *Var[V]) String() string   { return v.typ.ToString(*v.ptr) }

func (v *Var[V]) SetBool(x bool)       { v.set(x) }
func (v *Var[V]) SetInt(x int)         { v.set(x) }
func (v *Var[V]) SetInt8(x int8)       { v.set(x) }
func (v *Var[V]) SetInt16(x int16)     { v.set(x) }
func (v *Var[V]) SetInt32(x int32)     { v.set(x) }
func (v *Var[V]) SetInt64(x int64)     { v.set(x) }
func (v *Var[V]) SetUint(x uint)       { v.set(x) }
func (v *Var[V]) SetUint8(x uint8)     { v.set(x) }
func (v *Var[V]) SetUint16(x uint16)   { v.set(x) }
func (v *Var[V]) SetUint32(x uint32)   { v.set(x) }
func (v *Var[V]) SetUint64(x uint64)   { v.set(x) }
func (v *Var[V]) SetFloat32(x float32) { v.set(x) }
func (v *Var[V]) SetFloat64(x float64) { v.set(x) }

func (v *Var[V]) SetString(x string) {
	if val, ok := v.typ.FromString(x).(V); ok {
		*v.ptr = val
		return
	}
	var zero V
	*v.ptr = zero
}
