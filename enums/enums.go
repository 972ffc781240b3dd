// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines standard interfaces that enum and bit flag
// types satisfy, and the helper functions used to implement them.
// Enum types are converted to and from strings through these
// interfaces by the reflection layer, so any type implementing
// [EnumSetter] or [BitFlagSetter] can be used as an attribute type.
package enums

import "fmt"

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this
	// enum type has. This slice will be in the
	// same order as the enum values were defined.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// BitFlag is the interface that all bit flag enum types satisfy.
// Bit flag enum values are the indices of the bits, so the value
// stored in a variable of a bit flag type is the bitwise OR of
// 1 << index for each set flag.
type BitFlag interface {
	Enum

	// HasFlag returns whether these flags
	// have the given flag set.
	HasFlag(f BitFlag) bool

	// BitIndexString returns the string
	// representation of the bit flag if
	// the bit flag is a bit index value
	// (typically an enum constant), and
	// not an actual bit flag value.
	BitIndexString() string
}

// BitFlagSetter is an expanded interface that all pointers
// to bit flag enum types satisfy.
type BitFlagSetter interface {
	EnumSetter
	BitFlag

	// SetFlag sets the value of the given
	// flags in these flags to the given value.
	SetFlag(on bool, f ...BitFlag)

	// SetStringOr sets the bit flag from its
	// string representation while preserving any
	// bit flags already set, and returns an
	// error if the string is invalid.
	SetStringOr(s string) error
}
