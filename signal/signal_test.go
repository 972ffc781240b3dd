// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitOrder(t *testing.T) {
	var sig Signal[int]
	var res []string
	for i := range 3 {
		sig.ConnectFunc(func(v int) {
			res = append(res, fmt.Sprintf("h%d:%d", i, v))
		})
	}
	assert.Equal(t, 3, sig.NumConnections())
	sig.Emit(7)
	assert.Equal(t, []string{"h0:7", "h1:7", "h2:7"}, res)
}

func TestDisconnectFirst(t *testing.T) {
	var sig Signal[string]
	var res []string
	c1 := sig.ConnectFunc(func(v string) { res = append(res, "a"+v) })
	sig.ConnectFunc(func(v string) { res = append(res, "b"+v) })
	c1.Disconnect()
	c1.Disconnect()
	assert.False(t, c1.Connected())
	sig.Emit("!")
	assert.Equal(t, []string{"b!"}, res)
	assert.Equal(t, 1, sig.NumConnections())
}

func TestDisconnectDuringEmit(t *testing.T) {
	var sig Signal[int]
	var res []int
	var c2 *Connection
	sig.ConnectFunc(func(v int) {
		res = append(res, 1)
		c2.Disconnect()
	})
	c2 = sig.ConnectFunc(func(v int) { res = append(res, 2) })
	var self *Connection
	self = sig.ConnectFunc(func(v int) {
		res = append(res, 3)
		self.Disconnect()
	})
	sig.ConnectFunc(func(v int) {
		res = append(res, 4)
		sig.ConnectFunc(func(v int) { res = append(res, 5) })
	})
	sig.Emit(0)
	assert.Equal(t, []int{1, 3, 4}, res)
	assert.Equal(t, 3, sig.NumConnections())
}

func TestSlots(t *testing.T) {
	recv := &Receiver{}
	var got []int
	slot := NewSlot(recv, func(v int) { got = append(got, v) })

	var s1, s2 Signal[int]
	c := s1.Connect(slot)
	assert.NotNil(t, c)
	assert.Same(t, c, s1.Connect(slot))
	s2.Connect(slot)
	assert.True(t, s1.IsConnected(slot))
	assert.Equal(t, 2, recv.NumConnections())

	s1.Emit(1)
	s2.Emit(2)
	assert.Equal(t, []int{1, 2}, got)

	s1.Disconnect(slot)
	assert.False(t, s1.IsConnected(slot))
	assert.Equal(t, 1, recv.NumConnections())

	recv.Close()
	assert.True(t, recv.IsClosed())
	assert.Equal(t, 0, s2.NumConnections())
	s2.Emit(3)
	assert.Equal(t, []int{1, 2}, got)
	assert.Nil(t, s1.Connect(slot))
	assert.Nil(t, s1.Connect(nil))
	assert.Nil(t, s1.ConnectFunc(nil))
}

func TestNilSlotFunc(t *testing.T) {
	recv := &Receiver{}
	slot := NewSlot[int](recv, nil)
	var s Signal[int]
	assert.Nil(t, s.Connect(slot))
	assert.Nil(t, s.ConnectDynamic(slot))
	assert.Equal(t, 0, s.NumConnections())
	assert.Equal(t, 0, recv.NumConnections())
	assert.NotPanics(t, func() { s.Emit(1) })
}

func TestReset(t *testing.T) {
	var s Signal[int]
	s.Name = "Changed"
	calls := 0
	c := s.ConnectFunc(func(int) { calls++ })
	s2 := &Signal[int]{Name: s.Name}
	s2.cons = s.cons
	s2.Reset()
	assert.Equal(t, "Changed", s2.Name)
	assert.Equal(t, 0, s2.NumConnections())
	s2.Emit(1)
	assert.Equal(t, 0, calls)
	assert.True(t, c.Connected())
	s.Emit(1)
	assert.Equal(t, 1, calls)
}

func TestDisconnectAll(t *testing.T) {
	recv := &Receiver{}
	var sig Signal[struct{}]
	n := 0
	sig.Connect(NewSlot(recv, func(struct{}) { n++ }))
	sig.ConnectFunc(func(struct{}) { n++ })
	sig.DisconnectAll()
	sig.Emit(struct{}{})
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, recv.NumConnections())
}

func TestDynamic(t *testing.T) {
	recv := &Receiver{}
	var got []string
	var sig Signal[string]
	var ds DynamicSignal = &sig

	strSlot := NewSlot(recv, func(v string) { got = append(got, v) })
	intSlot := NewSlot(recv, func(v int) { got = append(got, "int") })
	assert.NotNil(t, ds.ConnectDynamic(strSlot))
	assert.Nil(t, ds.ConnectDynamic(intSlot))
	assert.Nil(t, ds.ConnectDynamic(nil))

	assert.True(t, ds.EmitDynamic("x"))
	assert.True(t, ds.EmitDynamic(nil))
	assert.False(t, ds.EmitDynamic(3))
	assert.Equal(t, []string{"x", ""}, got)

	assert.True(t, intSlot.CallDynamic(2))
	assert.False(t, intSlot.CallDynamic("2"))
	assert.Equal(t, []string{"x", "", "int"}, got)
}

func TestTrace(t *testing.T) {
	Trace = true
	defer func() { Trace = false }()
	sig := Signal[int]{Name: "Changed"}
	n := 0
	sig.ConnectFunc(func(v int) { n += v })
	sig.Emit(2)
	assert.Equal(t, 2, n)
}
