// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// it is much easier to test with an independent enum mock
type enum int64

var bitIndexString = map[enum]string{5: "Apple", 3: "Orange", 1: "one"}

func (e enum) String() string {
	if s, ok := bitIndexString[e]; ok {
		return s
	}
	return "extended"
}
func (e enum) Int64() int64                   { return int64(e) }
func (e enum) Desc() string                   { return "extendedDesc" }
func (e enum) Values() []Enum                 { return Values([]enum{1, 3, 5}) }
func (e enum) HasFlag(f BitFlag) bool         { return HasFlag((*int64)(&e), f) }
func (e enum) BitIndexString() string         { return bitIndexString[e] }
func (e *enum) SetInt64(i int64)              { *e = enum(i) }
func (e *enum) SetFlag(on bool, f ...BitFlag) { SetFlag((*int64)(e), on, f...) }
func (e *enum) SetString(s string) error {
	if s == "Orange" {
		*e = 7
		return nil
	}
	return errors.New("invalid")
}
func (e *enum) SetStringOr(s string) error {
	return SetStringOr(e, s, map[string]enum{"Apple": 5, "Orange": 3}, "Fruits")
}

func TestString(t *testing.T) {
	m := map[enum]string{5: "Apple"}

	assert.Equal(t, "Apple", String(5, m))
	assert.Equal(t, "3", String(3, m))

	assert.Equal(t, "", BitFlagString(0, []enum{}))
	assert.Equal(t, "", BitFlagString(0, []enum{1, 3}))
	assert.Equal(t, "Orange", BitFlagString(8, []enum{3, 5}))
	assert.Equal(t, "Orange|Apple", BitFlagString(40, []enum{3, 5}))
	assert.Equal(t, "Apple|Orange", BitFlagString(40, []enum{5, 1, 3}))
}

func TestSetString(t *testing.T) {
	valueMap := map[string]enum{"apple": 5}

	i := enum(0)
	assert.NoError(t, SetString(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err := SetString(&i, "Apple", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)
}

func TestSetStringOr(t *testing.T) {
	valueMap := map[string]enum{"apple": 5, "Orange": 3}

	i := enum(0)
	assert.NoError(t, SetStringOr(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, enum(32), i)
	assert.NoError(t, SetStringOr(&i, "Orange", valueMap, "Fruits"))
	assert.Equal(t, enum(40), i)
	i = enum(0)
	assert.NoError(t, SetStringOr(&i, "apple | Orange", valueMap, "Fruits"))
	assert.Equal(t, enum(40), i)
	assert.Error(t, SetStringOr(&i, "Apple", valueMap, "Fruits"))
	assert.Error(t, SetStringOr(&i, "apple|Orange|Pear", valueMap, "Fruits"))
}

func TestDesc(t *testing.T) {
	descMap := map[enum]string{5: "A red fruit"}

	assert.Equal(t, "A red fruit", Desc(enum(5), descMap))
	assert.Equal(t, "Orange", Desc(enum(3), descMap))
}

func TestValues(t *testing.T) {
	assert.Equal(t, []Enum{enum(7), enum(4)}, Values([]enum{7, 4}))
}

func TestHasFlag(t *testing.T) {
	i := enum(20)
	pi := (*int64)(&i)

	assert.True(t, HasFlag(pi, enum(2)))
	assert.True(t, HasFlag(pi, enum(4)))

	assert.False(t, HasFlag(pi, enum(1)))
	assert.False(t, HasFlag(pi, enum(3)))
	assert.False(t, HasFlag(pi, enum(0)))
}

func TestSetFlag(t *testing.T) {
	i := enum(0)
	pi := (*int64)(&i)

	SetFlag(pi, true, enum(1))
	assert.Equal(t, enum(2), i)

	SetFlag(pi, true, enum(4), enum(7))
	assert.Equal(t, enum(146), i)

	SetFlag(pi, false, enum(4), enum(7))
	assert.Equal(t, enum(2), i)

	SetFlag(pi, false, enum(1))
	assert.Equal(t, enum(0), i)
}

func TestUnmarshal(t *testing.T) {
	i := enum(0)

	assert.NoError(t, UnmarshalText(&i, []byte("Orange"), "Fruits"))
	assert.Equal(t, enum(7), i)
	i = 4
	assert.NoError(t, UnmarshalText(&i, []byte("Apple"), "Fruits"))
	assert.Equal(t, enum(4), i)
}
