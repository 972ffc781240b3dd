// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"pixellight.org/core/enums"
)

// Meters is a named basic type, which gets a derived type.
type Meters float32

// Caps is a bit flag type used for testing the Flags kind.
type Caps int64

const (
	CapsShadows Caps = iota
	CapsReflections
	CapsFog
)

var _CapsMap = map[Caps]string{0: `Shadows`, 1: `Reflections`, 2: `Fog`}
var _CapsValueMap = map[string]Caps{`Shadows`: 0, `Reflections`: 1, `Fog`: 2}

func (i Caps) String() string {
	return enums.BitFlagString(i, []Caps{CapsShadows, CapsReflections, CapsFog})
}
func (i Caps) BitIndexString() string         { return enums.String(i, _CapsMap) }
func (i Caps) Int64() int64                   { return int64(i) }
func (i Caps) Desc() string                   { return i.String() }
func (i Caps) Values() []enums.Enum           { return enums.Values([]Caps{CapsShadows, CapsReflections, CapsFog}) }
func (i Caps) HasFlag(f enums.BitFlag) bool   { return enums.HasFlag((*int64)(&i), f) }
func (i *Caps) SetInt64(in int64)             { *i = Caps(in) }
func (i *Caps) SetFlag(on bool, f ...enums.BitFlag) { enums.SetFlag((*int64)(i), on, f...) }
func (i *Caps) SetString(s string) error {
	*i = 0
	return i.SetStringOr(s)
}
func (i *Caps) SetStringOr(s string) error {
	return enums.SetStringOr(i, s, _CapsValueMap, "Caps")
}

func TestBuiltinRoundTrip(t *testing.T) {
	values := []any{
		true, false,
		int(-42), int8(math.MinInt8), int16(math.MaxInt16), int32(-7), int64(math.MinInt64),
		uint(42), uint8(math.MaxUint8), uint16(0), uint32(math.MaxUint32), uint64(math.MaxUint64),
		float32(0.1), float32(-3.4e38), float64(1) / 3, math.SmallestNonzeroFloat64,
		"", "hello world", `quoted "string"`,
	}
	for _, v := range values {
		typ := TypeOf(v)
		if !assert.NotNil(t, typ, "%T", v) {
			continue
		}
		s := typ.ToString(v)
		assert.Equal(t, v, typ.FromString(s), "%T %v -> %q", v, v, s)
	}
}

func TestMalformed(t *testing.T) {
	for _, kind := range []Kinds{Bool, Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64, Float, Double} {
		typ := Builtin(kind)
		for _, s := range []string{"abc", "1.2.3", "0xZZ", "--1", "", "true1"} {
			assert.NotPanics(t, func() {
				assert.Equal(t, typ.Zero(), typ.FromString(s), "%v %q", kind, s)
			})
		}
	}
	assert.Equal(t, int8(0), Builtin(Int8).FromString("300"))
	assert.Equal(t, uint8(0), Builtin(Uint8).FromString("-1"))
}

func TestRadix(t *testing.T) {
	assert.Equal(t, int32(255), Builtin(Int32).FromString("0xff"))
	assert.Equal(t, int64(8), Builtin(Int64).FromString("0o10"))
	assert.Equal(t, uint16(5), Builtin(Uint16).FromString("0b101"))
	assert.Equal(t, int(-12), Builtin(Int).FromString(" -12 "))
}

func TestCrossKind(t *testing.T) {
	str := Builtin(String)
	assert.Equal(t, int64(0), str.ToInt("not a number"))
	assert.Equal(t, int64(31), str.ToInt("0x1f"))
	assert.True(t, str.ToBool("1"))
	assert.True(t, str.ToBool("true"))
	assert.False(t, str.ToBool("nope"))
	assert.Equal(t, 2.5, str.ToFloat("2.5"))

	i8 := Builtin(Int8)
	assert.Equal(t, int8(1), i8.Convert(true))
	assert.Equal(t, int8(3), i8.Convert(3.99))
	assert.Equal(t, "7", str.Convert(int8(7)))
	assert.Equal(t, uint64(math.MaxUint64), i8.ToUint(int8(-1)))

	f := Builtin(Float)
	assert.Equal(t, int64(-2), f.ToInt(float32(-2.7)))
	assert.False(t, Builtin(Bool).Convert("x").(bool))
}

func TestDerived(t *testing.T) {
	typ := TypeFor[Meters]()
	if assert.NotNil(t, typ) {
		assert.Equal(t, Float, typ.Kind)
		assert.Equal(t, "pixellight.org/core/types.Meters", typ.Name)
		assert.Equal(t, Meters(1.5), typ.FromString("1.5"))
		assert.Equal(t, "1.5", typ.ToString(Meters(1.5)))
		assert.Same(t, typ, TypeByName("pixellight.org/core/types.Meters"))
	}
	assert.Nil(t, TypeFor[[]int]())
	assert.Nil(t, TypeFor[struct{ A int }]())
	assert.Nil(t, For(nil))
}

func TestEnum(t *testing.T) {
	typ := TypeFor[Kinds]()
	if !assert.NotNil(t, typ) {
		return
	}
	assert.Equal(t, Enum, typ.Kind)
	assert.Equal(t, "Double", typ.ToString(Double))
	assert.Equal(t, Double, typ.FromString("Double"))
	assert.Equal(t, String, typ.FromString("14"))
	assert.Equal(t, Invalid, typ.FromString("Quaternion"))
	assert.Equal(t, int64(13), typ.ToInt(Double))
	assert.Equal(t, Flags, typ.Convert(int64(16)))
	for _, k := range KindsValues() {
		assert.Equal(t, k, typ.FromString(typ.ToString(k)))
	}
}

func TestFlags(t *testing.T) {
	typ := TypeFor[Caps]()
	if !assert.NotNil(t, typ) {
		return
	}
	assert.Equal(t, Flags, typ.Kind)
	v := Caps(1<<CapsShadows | 1<<CapsFog)
	assert.Equal(t, "Shadows|Fog", typ.ToString(v))
	assert.Equal(t, v, typ.FromString("Shadows|Fog"))
	assert.Equal(t, Caps(0), typ.FromString("Shadows|Bloom"))
	assert.Equal(t, "", typ.ToString(Caps(0)))
	assert.Equal(t, Caps(0), typ.FromString(""))
}

func TestRegistry(t *testing.T) {
	assert.Same(t, Builtin(Int16), TypeByName("int16"))
	assert.Same(t, Builtin(Double), TypeFor[float64]())
	assert.Nil(t, Builtin(Object))
	assert.Nil(t, Builtin(KindsN))
	assert.Nil(t, TypeByName("quaternion"))

	dup := New("int16", Int32, reflect.TypeFor[int32]())
	assert.Same(t, Builtin(Int16), AddType(dup))
	assert.Equal(t, uintptr(2), Builtin(Int16).Size)
}

type vec3 struct{ X, Y, Z float32 }

func TestDeriver(t *testing.T) {
	AddDeriver(func(rt reflect.Type) *Type {
		if rt != reflect.TypeFor[vec3]() {
			return nil
		}
		typ := New("vec3", Invalid, rt)
		typ.Format = func(v any) string { return "vec" }
		typ.Parse = func(s string) (any, error) { return vec3{X: 1}, nil }
		return typ
	})
	typ := TypeFor[vec3]()
	if assert.NotNil(t, typ) {
		assert.Equal(t, "vec", typ.ToString(vec3{}))
		assert.Equal(t, vec3{X: 1}, typ.FromString("anything"))
	}
}
