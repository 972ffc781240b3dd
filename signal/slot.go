// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signal

import (
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

// Slot is a function owned by a [Receiver] that can be connected to
// any number of signals sending values of type T.
type Slot[T any] struct {
	recv *Receiver
	fun  func(T)
}

// NewSlot returns a new slot owned by the given receiver that calls
// the given function. The receiver may be nil for a free function.
func NewSlot[T any](recv *Receiver, fun func(T)) *Slot[T] {
	return &Slot[T]{recv: recv, fun: fun}
}

// Receiver returns the receiver that owns the slot.
func (s *Slot[T]) Receiver() *Receiver {
	return s.recv
}

// Call calls the slot function directly with the given value.
func (s *Slot[T]) Call(v T) {
	if s.fun != nil {
		s.fun(v)
	}
}

// ArgType returns the type of the values received by the slot.
func (s *Slot[T]) ArgType() reflect.Type {
	return reflect.TypeFor[T]()
}

// CallDynamic calls the slot with the given value, which must be of
// type T (or nil for the zero value). It returns false if the value
// is of the wrong type.
func (s *Slot[T]) CallDynamic(v any) bool {
	tv, ok := argValue[T](v)
	if !ok {
		return false
	}
	s.Call(tv)
	return true
}

// DynamicSignal is the type-erased interface of all [Signal]s, which
// is used to connect signals and slots by name.
type DynamicSignal interface {
	ArgType() reflect.Type
	ConnectDynamic(slot DynamicSlot) *Connection
	EmitDynamic(v any) bool
	NumConnections() int
	DisconnectAll()
	Reset()
}

// DynamicSlot is the type-erased interface of all [Slot]s.
type DynamicSlot interface {
	ArgType() reflect.Type
	Receiver() *Receiver
	CallDynamic(v any) bool
}

// Connection is a connection between a signal and a function.
type Connection struct {
	recv         *Receiver
	detach       func()
	disconnected atomic.Bool
}

// Connected returns whether the connection is still connected.
func (c *Connection) Connected() bool {
	return c != nil && !c.disconnected.Load()
}

// Disconnect disconnects the connection. It is safe to call it more
// than once, and from within the function being called by the signal.
func (c *Connection) Disconnect() {
	if c == nil || c.disconnected.Swap(true) {
		return
	}
	c.detach()
	if c.recv != nil {
		c.recv.remove(c)
	}
}

// Receiver owns slots, and tracks all of their connections so that
// they can be disconnected together by [Receiver.Close]. The zero
// value is ready to use.
type Receiver struct {
	mu     sync.Mutex
	closed bool
	cons   []*Connection
}

// add adds the given connection, returning false if the
// receiver has already been closed.
func (r *Receiver) add(c *Connection) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	r.cons = append(r.cons, c)
	return true
}

func (r *Receiver) remove(c *Connection) {
	r.mu.Lock()
	if i := slices.Index(r.cons, c); i >= 0 {
		r.cons = slices.Delete(r.cons, i, i+1)
	}
	r.mu.Unlock()
}

// NumConnections returns the number of connections of all of the
// slots owned by the receiver.
func (r *Receiver) NumConnections() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cons)
}

// Close disconnects all of the connections of all of the slots owned
// by the receiver. No new connections can be made afterwards.
func (r *Receiver) Close() {
	r.mu.Lock()
	r.closed = true
	cons := r.cons
	r.cons = nil
	r.mu.Unlock()
	for _, c := range cons {
		c.Disconnect()
	}
}

// IsClosed returns whether [Receiver.Close] has been called.
func (r *Receiver) IsClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
