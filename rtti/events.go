// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"reflect"

	"pixellight.org/core/signal"
)

// SignalDesc describes a signal of a class, which is a
// [signal.Signal] field of the objects of the class.
type SignalDesc struct {

	// Name is the name of the signal, unique within its class.
	Name string

	// Description is an optional human-readable description.
	Description string

	// ArgType is the type of the values sent by the signal.
	ArgType reflect.Type

	class *Class
	owner reflect.Type
	get   func(obj any) signal.DynamicSignal
}

// Signal returns a new signal descriptor with the given name for the
// signal field of objects of type O returned by the given accessor.
//
//	rtti.Signal("Changed", func(o *Foo) *signal.Signal[int] { return &o.Changed })
func Signal[O, T any](name string, field func(o *O) *signal.Signal[T]) *SignalDesc {
	sd := &SignalDesc{Name: name, ArgType: reflect.TypeFor[T](), owner: reflect.TypeFor[O]()}
	sd.get = func(obj any) signal.DynamicSignal {
		o, ok := pointerTo(obj, sd.owner).(*O)
		if !ok || o == nil {
			return nil
		}
		s := field(o)
		if s == nil {
			return nil
		}
		if s.Name == "" {
			s.Name = name
		}
		return s
	}
	return sd
}

// SetDesc sets the [SignalDesc.Description].
func (sd *SignalDesc) SetDesc(desc string) *SignalDesc {
	sd.Description = desc
	return sd
}

// Class returns the class that declares the signal.
func (sd *SignalDesc) Class() *Class {
	return sd.class
}

// Get returns the signal in the given object, or nil if
// the object does not have it.
func (sd *SignalDesc) Get(obj any) signal.DynamicSignal {
	if sd == nil {
		return nil
	}
	return sd.get(obj)
}

// SlotDesc describes a slot of a class, which is a function called
// on the objects of the class when a connected signal is emitted.
// The slot of each object is created the first time it is needed,
// owned by the receiver of the object, so that all of its
// connections are disconnected when the object is destroyed.
type SlotDesc struct {

	// Name is the name of the slot, unique within its class.
	Name string

	// Description is an optional human-readable description.
	Description string

	// ArgType is the type of the values received by the slot.
	ArgType reflect.Type

	class *Class
	owner reflect.Type
	bind  func(obj any, recv *signal.Receiver) signal.DynamicSlot
}

// Slot returns a new slot descriptor with the given name for the
// given function called on objects of type O.
//
//	rtti.Slot("OnChanged", (*Foo).OnChanged)
func Slot[O, T any](name string, fun func(o *O, v T)) *SlotDesc {
	sd := &SlotDesc{Name: name, ArgType: reflect.TypeFor[T](), owner: reflect.TypeFor[O]()}
	sd.bind = func(obj any, recv *signal.Receiver) signal.DynamicSlot {
		o, ok := pointerTo(obj, sd.owner).(*O)
		if !ok || o == nil {
			return nil
		}
		return signal.NewSlot(recv, func(v T) { fun(o, v) })
	}
	return sd
}

// SetDesc sets the [SlotDesc.Description].
func (sd *SlotDesc) SetDesc(desc string) *SlotDesc {
	sd.Description = desc
	return sd
}

// Class returns the class that declares the slot.
func (sd *SlotDesc) Class() *Class {
	return sd.class
}
