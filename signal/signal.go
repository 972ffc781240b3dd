// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signal implements typed signal / slot connections between
// objects, in which a sender emits a [Signal] and all of the [Slot]s
// that have been connected to it are called in the order in which
// they were connected.
//
// This design pattern separates three different factors:
//   - when to signal that something has happened
//   - who should receive that signal
//   - what should the receiver do in response to the signal
//
// Every slot is owned by a [Receiver], which tracks all of the
// connections of its slots. Closing the receiver (as happens when a
// reflective object is destroyed) disconnects all of them, so a
// signal never calls a slot of a receiver that is gone.
package signal

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"
)

// Trace can be set to true to log a trace of all of the signals as
// they are emitted, at the debug level.
var Trace = false

// Signal is a signal that sends values of type T to all of the slots
// and functions connected to it. Multiple arguments are sent as a struct
// value, and no arguments as struct{}. The zero value is ready to use.
// A Signal must not be copied after first use.
type Signal[T any] struct {

	// Name is the name of the signal, used for tracing.
	Name string

	mu   sync.RWMutex
	cons []*handler[T]
}

// handler is a connection of a signal to a function.
type handler[T any] struct {
	*Connection
	slot *Slot[T]
	fun  func(T)
}

// Connect connects the given slot to the signal, returning the
// resulting connection. Connecting a slot that is already connected
// returns the existing connection. It returns nil if the slot is nil,
// has no function or its receiver has already been closed.
func (s *Signal[T]) Connect(slot *Slot[T]) *Connection {
	if slot == nil || slot.fun == nil {
		return nil
	}
	s.mu.RLock()
	for _, h := range s.cons {
		if h.slot == slot {
			s.mu.RUnlock()
			return h.Connection
		}
	}
	s.mu.RUnlock()
	return s.connect(slot.recv, slot, slot.fun)
}

// ConnectFunc connects the given function to the signal. It has no
// receiver, so it stays connected until it is explicitly disconnected
// through the returned connection or [Signal.DisconnectAll].
func (s *Signal[T]) ConnectFunc(fun func(T)) *Connection {
	if fun == nil {
		return nil
	}
	return s.connect(nil, nil, fun)
}

func (s *Signal[T]) connect(recv *Receiver, slot *Slot[T], fun func(T)) *Connection {
	h := &handler[T]{slot: slot, fun: fun}
	h.Connection = &Connection{recv: recv}
	h.Connection.detach = func() { s.remove(h) }
	if recv != nil && !recv.add(h.Connection) {
		return nil
	}
	s.mu.Lock()
	s.cons = append(s.cons, h)
	s.mu.Unlock()
	return h.Connection
}

func (s *Signal[T]) remove(h *handler[T]) {
	s.mu.Lock()
	if i := slices.Index(s.cons, h); i >= 0 {
		s.cons = slices.Delete(s.cons, i, i+1)
	}
	s.mu.Unlock()
}

// Disconnect disconnects the given slot from the signal.
func (s *Signal[T]) Disconnect(slot *Slot[T]) {
	if slot == nil {
		return
	}
	s.mu.RLock()
	var found []*handler[T]
	for _, h := range s.cons {
		if h.slot == slot {
			found = append(found, h)
		}
	}
	s.mu.RUnlock()
	for _, h := range found {
		h.Disconnect()
	}
}

// DisconnectAll disconnects everything connected to the signal.
func (s *Signal[T]) DisconnectAll() {
	s.mu.RLock()
	cons := slices.Clone(s.cons)
	s.mu.RUnlock()
	for _, h := range cons {
		h.Disconnect()
	}
}

// NumConnections returns the number of current connections.
func (s *Signal[T]) NumConnections() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cons)
}

// IsConnected returns whether the given slot is connected to the signal.
func (s *Signal[T]) IsConnected(slot *Slot[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.cons, func(h *handler[T]) bool { return h.slot == slot })
}

// Emit sends the given value to all of the connections, sequentially
// in the order in which they were connected, on the calling goroutine.
// Connections made during emission are not called until the next
// emission, and connections disconnected during emission (including
// by the function being called) are skipped.
func (s *Signal[T]) Emit(v T) {
	s.mu.RLock()
	cons := slices.Clone(s.cons)
	s.mu.RUnlock()
	if Trace {
		slog.Debug("signal.Emit", "signal", s.Name, "value", v, "connections", len(cons))
	}
	for _, h := range cons {
		if !h.Connected() {
			continue
		}
		h.fun(v)
	}
}

// Reset drops all of the connections of the signal without
// disconnecting them, leaving them connected to the signal it was
// copied from. It must only be called on a signal that has just been
// copied, before it is used.
func (s *Signal[T]) Reset() {
	s.mu = sync.RWMutex{}
	s.cons = nil
}

// ArgType returns the type of the values sent by the signal.
func (s *Signal[T]) ArgType() reflect.Type {
	return reflect.TypeFor[T]()
}

// ConnectDynamic connects the given type-erased slot to the signal.
// It returns nil if the slot does not take values of the type sent
// by the signal.
func (s *Signal[T]) ConnectDynamic(slot DynamicSlot) *Connection {
	if slot == nil {
		return nil
	}
	if ts, ok := slot.(*Slot[T]); ok {
		return s.Connect(ts)
	}
	if slot.ArgType() != s.ArgType() {
		slog.Debug("signal.ConnectDynamic: argument types do not match", "signal", s.Name, "signalType", s.ArgType(), "slotType", slot.ArgType())
		return nil
	}
	return s.connect(slot.Receiver(), nil, func(v T) { slot.CallDynamic(v) })
}

// EmitDynamic emits the given value, which must be of the type sent by
// the signal (or nil for the zero value). It returns false if the
// value is of the wrong type, in which case nothing is emitted.
func (s *Signal[T]) EmitDynamic(v any) bool {
	tv, ok := argValue[T](v)
	if !ok {
		return false
	}
	s.Emit(tv)
	return true
}

// argValue returns the given value as a T, where nil is the zero value.
func argValue[T any](v any) (T, bool) {
	if v == nil {
		var zero T
		return zero, true
	}
	tv, ok := v.(T)
	return tv, ok
}
