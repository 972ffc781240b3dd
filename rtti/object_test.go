// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixellight.org/core/types"
)

type Sprocket struct {
	ObjectBase
	Teeth int
	Label string
}

func NewSprocket(teeth int) *Sprocket {
	s := New[Sprocket]()
	s.Teeth = teeth
	return s
}

func init() {
	Announce(NewClass[Sprocket]("Test::Sprocket").
		Base(ObjectClassName).
		DefaultConstructor().
		Constructors(Constructor("Teeth", NewSprocket, "Teeth=12")).
		Attributes(
			Attr("Teeth", func(o *Sprocket) *int { return &o.Teeth }, 8),
			Attr("Label", func(o *Sprocket) *string { return &o.Label }, "sprocket"),
		))
}

func newWidget(t *testing.T, m *Manager, ps string) *Widget {
	obj := m.Class("Test::A").Create(ps)
	require.NotNil(t, obj)
	return obj.(*Widget)
}

func TestAttributes(t *testing.T) {
	m := newTestManager()
	w := newWidget(t, m, "")
	ob := w.AsObject()

	assert.Equal(t, "widget", ob.AttributeString("Name"))
	assert.True(t, ob.SetAttribute("Count", "0x10"))
	assert.Equal(t, 16, w.Count)
	assert.True(t, ob.SetAttribute("Count", 2.9))
	assert.Equal(t, 2, w.Count)
	assert.True(t, ob.SetAttribute("Name", ob.Attribute("Count")))
	assert.Equal(t, "2", w.Name)
	assert.False(t, ob.SetAttribute("Nope", 1))
	assert.Nil(t, ob.Attribute("Nope"))
	assert.Equal(t, "", ob.AttributeString("Nope"))

	v := ob.Attribute("Scale")
	require.NotNil(t, v)
	assert.Equal(t, types.Float, v.TypeID())
	assert.True(t, v.IsDefault())
	v.SetInt(3)
	assert.Equal(t, float32(3), w.Scale)
	assert.Equal(t, []string{"Name", "Count", "Scale", "Target"}, ob.Attributes().Keys())

	ob.SetDefaultValues()
	assert.Equal(t, "widget", w.Name)
	assert.Equal(t, 1, w.Count)
}

func TestValues(t *testing.T) {
	m := newTestManager()
	w := newWidget(t, m, `Name="foo bar" Count="3"`)
	ob := w.AsObject()
	assert.Equal(t, `Name="foo bar" Count="3"`, ob.Values(false))
	assert.Equal(t, `Name="foo bar" Count="3" Scale="1.5" Target=""`, ob.Values(true))

	w2 := newWidget(t, m, ob.Values(false))
	assert.Equal(t, "foo bar", w2.Name)
	assert.Equal(t, 3, w2.Count)

	ob.SetValues(`Name="unterminated`)
	assert.Equal(t, "foo bar", w.Name)
}

func TestYAMLValues(t *testing.T) {
	m := newTestManager()
	w := newWidget(t, m, `Name="a: b" Count="4"`)
	b, err := MarshalValues(w, false)
	require.NoError(t, err)
	assert.Equal(t, "Name: \"a: b\"\nCount: \"4\"\n", string(b))

	w2 := newWidget(t, m, "")
	require.NoError(t, UnmarshalValues(w2, b))
	assert.Equal(t, "a: b", w2.Name)
	assert.Equal(t, 4, w2.Count)

	require.NoError(t, UnmarshalValues(w2, []byte("Count: 9\nScale: 0.25\nNope: 1\nName: [x]\n")))
	assert.Equal(t, 9, w2.Count)
	assert.Equal(t, float32(0.25), w2.Scale)
	assert.Equal(t, "a: b", w2.Name)

	assert.Error(t, UnmarshalValues(w2, []byte("- 1\n- 2\n")))
	assert.Error(t, UnmarshalValues(w2, []byte("Count: [")))
	assert.NoError(t, UnmarshalValues(w2, nil))
	_, err = MarshalValues(nil, true)
	assert.Error(t, err)

	fn := filepath.Join(t.TempDir(), "widget.yaml")
	require.NoError(t, SaveValues(w, fn))
	w3 := newWidget(t, m, "")
	require.NoError(t, OpenValues(w3, fn))
	assert.Equal(t, "a: b", w3.Name)
	assert.Equal(t, float32(1.5), w3.Scale)
	assert.Error(t, OpenValues(w3, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestSignalsAndSlots(t *testing.T) {
	m := newTestManager()
	w1 := newWidget(t, m, "")
	w2 := newWidget(t, m, "")

	require.NotNil(t, Connect(w1, "Changed", w2, "OnChanged"))
	assert.Nil(t, Connect(w1, "Changed", w2, "OnName"))
	assert.Nil(t, Connect(w1, "Nope", w2, "OnChanged"))
	assert.Nil(t, Connect(w1, "Changed", w2, "Nope"))
	assert.Nil(t, Connect(nil, "Changed", w2, "OnChanged"))
	assert.Same(t, w2.AsObject().Slot("OnChanged"), w2.AsObject().Slot("OnChanged"))

	w1.Changed.Emit(5)
	assert.True(t, w1.AsObject().Signal("Changed").EmitDynamic(6))
	assert.Equal(t, []int{5, 6}, w2.received)

	var destroyed []Object
	w2.Destroyed.ConnectFunc(func(o Object) { destroyed = append(destroyed, o) })
	w2.Destroy()
	w2.Destroy()
	assert.True(t, w2.IsDestroyed())
	assert.Equal(t, []Object{w2}, destroyed)
	assert.Equal(t, 0, w1.Changed.NumConnections())
	w1.Changed.Emit(7)
	assert.Equal(t, []int{5, 6}, w2.received)
	assert.Nil(t, Connect(w1, "Changed", w2, "OnChanged"))

	w3 := newWidget(t, m, "")
	require.NotNil(t, Connect(w1, "Changed", w3, "OnChanged"))
	Disconnect(w1, "Changed")
	w1.Changed.Emit(8)
	assert.Empty(t, w3.received)

	// sender destruction disconnects its signals
	require.NotNil(t, Connect(w3, "Changed", w1, "OnChanged"))
	w3.Destroy()
	assert.Equal(t, 0, w3.Changed.NumConnections())
}

func TestObjectType(t *testing.T) {
	m := newTestManager()
	w1 := newWidget(t, m, "")
	w2 := newWidget(t, m, "")

	typ := types.TypeFor[*Widget]()
	require.NotNil(t, typ)
	assert.Equal(t, types.Object, typ.Kind)
	s := typ.ToString(w1)
	assert.Equal(t, Format(w1), s)
	assert.Regexp(t, `^Test::A@\d+$`, s)
	assert.Same(t, w1, typ.FromString(s))
	assert.Nil(t, typ.FromString("Test::B@1"))
	assert.Nil(t, typ.FromString("garbage"))
	assert.Equal(t, "", typ.ToString(nil))

	assert.True(t, w1.AsObject().SetAttribute("Target", Format(w2)))
	assert.Same(t, w2, w1.Target)
	assert.Equal(t, Format(w2), w1.AsObject().AttributeString("Target"))
	assert.True(t, w1.AsObject().Attribute("Target").Bool())

	w2.Destroy()
	assert.Nil(t, Parse(Format(w2)))
	w1.AsObject().SetAttribute("Target", Format(w2))
	assert.Nil(t, w1.Target)

	ot := types.TypeFor[Object]()
	require.NotNil(t, ot)
	assert.Equal(t, types.Object, ot.Kind)
	assert.Equal(t, w1, ot.FromString(s))
	assert.Equal(t, Object(w1), ObjectByID(w1.ID()))
}

func TestObjectCleanup(t *testing.T) {
	m := newTestManager()
	id := newWidget(t, m, "").ID()
	assert.NotNil(t, ObjectByID(id))
	for range 10 {
		runtime.GC()
		if ObjectByID(id) == nil {
			break
		}
	}
	assert.Nil(t, ObjectByID(id))
}

func TestClone(t *testing.T) {
	m := newTestManager()
	w := newWidget(t, m, `Name="orig" Count="42"`)
	w.Scale = 0.5
	c := Clone(w)
	require.NotNil(t, c)
	cw := c.(*Widget)
	assert.NotSame(t, w, cw)
	assert.NotEqual(t, w.ID(), cw.ID())
	assert.Same(t, cw, cw.This)
	assert.Equal(t, "orig", cw.Name)
	assert.Equal(t, 42, cw.Count)
	assert.Equal(t, float32(0.5), cw.Scale)
	assert.Nil(t, Clone(nil))
}

func TestCloneSignals(t *testing.T) {
	m := newTestManager()
	w := newWidget(t, m, "")
	w.Target = newWidget(t, m, "")
	calls := 0
	w.Changed.ConnectFunc(func(int) { calls++ })
	w.Target.Changed.ConnectFunc(func(int) { calls++ })
	recv := newWidget(t, m, "")
	require.NotNil(t, Connect(w, "Changed", recv, "OnChanged"))

	cw := Clone(w).(*Widget)
	assert.Equal(t, 0, cw.Changed.NumConnections())
	assert.Equal(t, 2, w.Changed.NumConnections())
	require.NotNil(t, cw.Target)
	assert.NotSame(t, w.Target, cw.Target)
	assert.Equal(t, 0, cw.Target.Changed.NumConnections())

	cw.Changed.Emit(1)
	cw.Target.Changed.Emit(1)
	assert.Equal(t, 0, calls)
	assert.Empty(t, recv.received)

	w.Changed.Emit(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{2}, recv.received)

	cw.Changed.ConnectFunc(func(int) { calls += 10 })
	w.Changed.Emit(3)
	assert.Equal(t, 2, calls)
	cw.Changed.Emit(3)
	assert.Equal(t, 12, calls)
}

func TestGlobalClasses(t *testing.T) {
	c := Classes.Class("Test::Sprocket")
	require.NotNil(t, c)
	assert.True(t, c.IsDerivedFrom(ObjectClassName))
	assert.Equal(t, "PLCore", c.Base().Module.Name)
	assert.NotNil(t, c.Signal("Destroyed"))
	assert.NotNil(t, c.Method("Destroy"))

	s := NewSprocket(3)
	require.NotNil(t, s)
	assert.Same(t, c, s.Class())
	assert.Equal(t, "sprocket", s.Label)
	assert.Equal(t, 3, s.Teeth)

	obj := c.CreateWith("Teeth", "")
	require.NotNil(t, obj)
	assert.Equal(t, 12, obj.(*Sprocket).Teeth)
	assert.Equal(t, "false", obj.AsObject().CallMethod("IsDestroyed", ""))
	obj.AsObject().CallMethod("Destroy", "")
	assert.True(t, obj.AsObject().IsDestroyed())

	lit := &Sprocket{Teeth: 5}
	assert.Same(t, c, Classes.ClassOf(lit))
	Init(lit)
	assert.Same(t, c, lit.Class())
	assert.Equal(t, "5", lit.AsObject().AttributeString("Teeth"))
	assert.Nil(t, Init(nil))
}
