// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//go:generate core generate

// Kinds are the primitive kinds of values that a [Type] can describe.
// Every dynamic variable is backed by a [Type] of exactly one kind.
type Kinds int32 //enums:enum

const (
	// Invalid is the kind of an unknown or unsupported type.
	Invalid Kinds = iota

	// Bool is a boolean value.
	Bool

	// Int is a platform sized signed integer.
	Int

	// Int8 is an 8 bit signed integer.
	Int8

	// Int16 is a 16 bit signed integer.
	Int16

	// Int32 is a 32 bit signed integer.
	Int32

	// Int64 is a 64 bit signed integer.
	Int64

	// Uint is a platform sized unsigned integer.
	Uint

	// Uint8 is an 8 bit unsigned integer.
	Uint8

	// Uint16 is a 16 bit unsigned integer.
	Uint16

	// Uint32 is a 32 bit unsigned integer.
	Uint32

	// Uint64 is a 64 bit unsigned integer.
	Uint64

	// Float is a 32 bit floating point number.
	Float

	// Double is a 64 bit floating point number.
	Double

	// String is a string value.
	String

	// Enum is an enum value implementing [enums.EnumSetter].
	Enum

	// Flags is a bit flag value implementing [enums.BitFlagSetter].
	Flags

	// Object is a reference to a reflective object.
	Object
)

// IsInt returns whether the kind is a signed integer kind.
func (k Kinds) IsInt() bool {
	return k >= Int && k <= Int64
}

// IsUint returns whether the kind is an unsigned integer kind.
func (k Kinds) IsUint() bool {
	return k >= Uint && k <= Uint64
}

// IsFloat returns whether the kind is a floating point kind.
func (k Kinds) IsFloat() bool {
	return k == Float || k == Double
}

// IsNumber returns whether the kind is any numeric kind.
func (k Kinds) IsNumber() bool {
	return k.IsInt() || k.IsUint() || k.IsFloat()
}
