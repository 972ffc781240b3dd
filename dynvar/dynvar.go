// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynvar provides dynamic variables: type-erased views onto
// concrete values that expose uniform getters and setters for all of
// the basic kinds of values, independent of the real storage type.
package dynvar

import (
	"pixellight.org/core/types"
)

// DynVar is a dynamic variable, which is a view onto a value of some
// concrete [types.Type] that lives somewhere else (typically a field
// of a reflective object). A DynVar never owns the value it refers to.
//
// All getters convert the real value through the conversion path of
// its type, and all setters convert the given value into the real
// type, so that, for example, Int on a string variable parses the
// string. Conversion never fails; malformed values result in zero values.
type DynVar interface {

	// Type returns the type of the real value.
	Type() *types.Type

	// TypeName returns the name of the type of the real value.
	TypeName() string

	// TypeID returns the kind of the type of the real value.
	TypeID() types.Kinds

	// Default returns the default value as a string.
	Default() string

	// IsDefault returns whether the current value is the default value.
	IsDefault() bool

	// SetDefault sets the value to the default value.
	SetDefault()

	// Value returns the real value.
	Value() any

	// SetValue sets the real value from the given value of any type,
	// converting it into the real type.
	SetValue(v any)

	// SetVar sets the value from the given dynamic variable of any type,
	// using its canonical string representation.
	SetVar(from DynVar)

	Bool() bool
	Int() int
	Int8() int8
	Int16() int16
	Int32() int32
	Int64() int64
	Uint() uint
	Uint8() uint8
	Uint16() uint16
	Uint32() uint32
	Uint64() uint64
	Float32() float32
	Float64() float64

	// String returns the canonical string representation of the value.
	String() string

	SetBool(v bool)
	SetInt(v int)
	SetInt8(v int8)
	SetInt16(v int16)
	SetInt32(v int32)
	SetInt64(v int64)
	SetUint(v uint)
	SetUint8(v uint8)
	SetUint16(v uint16)
	SetUint32(v uint32)
	SetUint64(v uint64)
	SetFloat32(v float32)
	SetFloat64(v float64)

	// SetString sets the value from its string representation.
	SetString(v string)
}
