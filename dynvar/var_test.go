// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynvar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"pixellight.org/core/types"
)

func TestStringVar(t *testing.T) {
	s := "12"
	v := New(&s, nil, "")
	if !assert.NotNil(t, v) {
		return
	}
	assert.Equal(t, types.String, v.TypeID())
	assert.Equal(t, "string", v.TypeName())
	assert.Equal(t, 12, v.Int())
	assert.Equal(t, uint8(12), v.Uint8())
	assert.Equal(t, float32(12), v.Float32())
	assert.True(t, v.Bool())

	v.SetFloat64(2.5)
	assert.Equal(t, "2.5", s)
	v.SetBool(true)
	assert.Equal(t, "true", s)
	v.SetInt(-3)
	assert.Equal(t, "-3", s)

	s = "not a number"
	assert.Equal(t, int64(0), v.Int64())
	assert.False(t, v.Bool())
}

func TestIntVar(t *testing.T) {
	i := int16(0)
	v := New(&i, nil, "7")
	if !assert.NotNil(t, v) {
		return
	}
	assert.False(t, v.IsDefault())
	v.SetDefault()
	assert.Equal(t, int16(7), i)
	assert.True(t, v.IsDefault())

	v.SetString("0x10")
	assert.Equal(t, int16(16), i)
	v.SetString("garbage")
	assert.Equal(t, int16(0), i)
	v.SetInt64(math.MaxInt64)
	assert.Equal(t, int16(0), i)
	v.SetFloat64(-3.9)
	assert.Equal(t, int16(-3), i)
	assert.Equal(t, uint16(math.MaxUint16-2), v.Uint16())
	assert.Equal(t, "-3", v.String())
	assert.Equal(t, int16(-3), v.Value())
	assert.Equal(t, int16(-3), v.Get())
}

func TestFloatVar(t *testing.T) {
	f := float32(0)
	v := New(&f, nil, "1.5")
	v.SetString("0.1")
	assert.Equal(t, float32(0.1), f)
	assert.Equal(t, "0.1", v.String())
	v.SetDefault()
	assert.Equal(t, float32(1.5), f)
	assert.Equal(t, 1, v.Int())
	v.SetValue("x")
	assert.Equal(t, float32(0), f)
}

func TestBoolVar(t *testing.T) {
	b := false
	v := New(&b, nil, "false")
	assert.True(t, v.IsDefault())
	v.SetInt(2)
	assert.True(t, b)
	assert.Equal(t, 1, v.Int())
	assert.Equal(t, "true", v.String())
	v.SetString("maybe")
	assert.False(t, b)
}

func TestSetVar(t *testing.T) {
	s := "42"
	f := 0.0
	from := New(&s, nil, "")
	to := New(&f, nil, "")
	to.SetVar(from)
	assert.Equal(t, 42.0, f)

	var dv DynVar = to
	dv.SetVar(nil)
	assert.Equal(t, 42.0, f)

	u := uint8(0)
	New(&u, nil, "").SetVar(to)
	assert.Equal(t, uint8(42), u)
}

func TestEnumVar(t *testing.T) {
	k := types.Invalid
	v := New(&k, nil, "Bool")
	if !assert.NotNil(t, v) {
		return
	}
	assert.Equal(t, types.Enum, v.TypeID())
	v.SetDefault()
	assert.Equal(t, types.Bool, k)
	v.SetInt(int(types.Double))
	assert.Equal(t, types.Double, k)
	assert.Equal(t, "Double", v.String())
	assert.Equal(t, int64(types.Double), v.Int64())
}

func TestNew(t *testing.T) {
	assert.Nil(t, New[int](nil, nil, ""))
	assert.Nil(t, New(&[]int{}, nil, ""))
	x := 3
	v := New(&x, types.Builtin(types.Int), "3")
	assert.Same(t, types.Builtin(types.Int), v.Type())
	assert.True(t, v.IsDefault())
}
