// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"pixellight.org/core/base/ordmap"
	"pixellight.org/core/base/params"
	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/dynvar"
	"pixellight.org/core/signal"
)

// Object is the interface implemented by all reflective objects,
// which are pointers to struct types embedding [ObjectBase].
type Object interface {

	// AsObject returns the [ObjectBase] of the object.
	AsObject() *ObjectBase
}

var objectType = reflect.TypeFor[Object]()

// ObjectBase is the base type of all reflective objects, which must
// embed it, and provides dynamic access to the attributes, methods,
// signals and slots of the object through its [Class].
type ObjectBase struct {

	// This is the object as its true underlying type, which
	// embeds this ObjectBase.
	This Object `copier:"-" yaml:"-"`

	// Destroyed is emitted with the object when it is destroyed,
	// before it disconnects its signals and slots.
	Destroyed signal.Signal[Object] `copier:"-" yaml:"-"`

	class     *Class
	id        uint64
	destroyed atomic.Bool

	// receiver owns all of the slots of the object.
	receiver signal.Receiver

	// slots are the slots of the object that have been
	// created so far, by name.
	slots   map[string]signal.DynamicSlot
	slotsMu sync.Mutex
}

// AsObject satisfies the [Object] interface.
func (ob *ObjectBase) AsObject() *ObjectBase {
	return ob
}

// lastID is the last object ID that has been assigned.
var lastID atomic.Uint64

// initObject initializes the given object as an object of the given
// class, if it has not already been initialized, and returns it.
func initObject(obj Object, class *Class) Object {
	ob := obj.AsObject()
	if ob.id != 0 {
		return obj
	}
	ob.This = obj
	ob.class = class
	ob.id = lastID.Add(1)
	ob.Destroyed.Name = "Destroyed"
	trackObject(ob)
	return obj
}

// New returns a new object of type T initialized with the registered
// class of T and the default values of its attributes. It is typically
// used in constructor functions. It returns nil if T has no registered
// class.
func New[T any, PT interface {
	*T
	Object
}]() *T {
	c := Classes.ClassByType(reflect.TypeFor[T]())
	if c == nil {
		slog.Error("rtti.New: type has no registered class", "type", reflect.TypeFor[T]())
		return nil
	}
	obj := PT(new(T))
	initObject(obj, c).AsObject().SetDefaultValues()
	return obj
}

// Init initializes the given object, which has been created without
// a constructor, with the registered class of its type, and returns
// it. It does nothing if the object has already been initialized.
func Init(obj Object) Object {
	if reflectx.IsNil(obj) {
		return nil
	}
	return initObject(obj, Classes.ClassOf(obj))
}

// Class returns the class of the object.
func (ob *ObjectBase) Class() *Class {
	return ob.class
}

// ID returns the unique ID number of the object, which
// is 0 if it has not been initialized.
func (ob *ObjectBase) ID() uint64 {
	return ob.id
}

// this returns the object as its true underlying type.
func (ob *ObjectBase) this() Object {
	if ob.This != nil {
		return ob.This
	}
	return ob
}

// Attribute returns a dynamic variable for the attribute of the
// object with the given name, or nil if there is no such attribute.
func (ob *ObjectBase) Attribute(name string) dynvar.DynVar {
	if ob.class == nil {
		return nil
	}
	return ob.class.Attribute(name).Var(ob.this())
}

// Attributes returns dynamic variables for all of the attributes of
// the object, including inherited ones, in declaration order.
func (ob *ObjectBase) Attributes() *ordmap.Map[string, dynvar.DynVar] {
	m := ordmap.New[string, dynvar.DynVar]()
	if ob.class == nil {
		return m
	}
	for _, vd := range ob.class.Attributes() {
		if v := vd.Var(ob.this()); v != nil {
			m.Add(vd.Name, v)
		}
	}
	return m
}

// SetAttribute sets the attribute with the given name to the given
// value, which can be a string, a [dynvar.DynVar], or any value that
// can be converted to the type of the attribute. It returns false if
// there is no such attribute.
func (ob *ObjectBase) SetAttribute(name string, value any) bool {
	v := ob.Attribute(name)
	if v == nil {
		slog.Debug("rtti.ObjectBase.SetAttribute: unknown attribute", "class", ob.class, "attribute", name)
		return false
	}
	switch x := value.(type) {
	case string:
		v.SetString(x)
	case dynvar.DynVar:
		v.SetVar(x)
	default:
		v.SetValue(x)
	}
	return true
}

// AttributeString returns the value of the attribute with the given
// name in its string form, or "" if there is no such attribute.
func (ob *ObjectBase) AttributeString(name string) string {
	if v := ob.Attribute(name); v != nil {
		return v.String()
	}
	return ""
}

// SetValues sets the attributes from the given parameter string
// of the form `Name="foo" Count="3"`. Unknown attributes are ignored.
func (ob *ObjectBase) SetValues(ps string) {
	for k, v := range params.Parse(ps).All() {
		ob.SetAttribute(k, v)
	}
}

// Values returns the values of all of the attributes as a parameter
// string of the form `Name="foo" Count="3"`. Attributes with their
// default value are only included if withDefaults is true.
func (ob *ObjectBase) Values(withDefaults bool) string {
	pm := ordmap.New[string, string]()
	for k, v := range ob.Attributes().All() {
		if withDefaults || !v.IsDefault() {
			pm.Add(k, v.String())
		}
	}
	return params.Format(pm)
}

// SetDefaultValues sets all of the attributes to their default values.
func (ob *ObjectBase) SetDefaultValues() {
	for _, v := range ob.Attributes().All() {
		v.SetDefault()
	}
}

// CallMethod calls the method with the given name with the given
// parameter string of the form `Param0="1" Param1="2"`, and returns
// its first result in string form. It returns "" if there is no
// such method.
func (ob *ObjectBase) CallMethod(name string, ps string) string {
	if ob.class == nil {
		return ""
	}
	md := ob.class.Method(name)
	if md == nil {
		slog.Debug("rtti.ObjectBase.CallMethod: unknown method", "class", ob.class, "method", name)
		return ""
	}
	return md.Call(ob.this(), ps)
}

// Signal returns the signal with the given name, or nil if there
// is no such signal.
func (ob *ObjectBase) Signal(name string) signal.DynamicSignal {
	if ob.class == nil {
		return nil
	}
	return ob.class.Signal(name).Get(ob.this())
}

// Slot returns the slot with the given name, or nil if there
// is no such slot. It is owned by the object, so all of its
// connections are disconnected when the object is destroyed.
func (ob *ObjectBase) Slot(name string) signal.DynamicSlot {
	if ob.class == nil {
		return nil
	}
	ob.slotsMu.Lock()
	defer ob.slotsMu.Unlock()
	if s, ok := ob.slots[name]; ok {
		return s
	}
	sd := ob.class.Slot(name)
	if sd == nil {
		return nil
	}
	s := sd.bind(ob.this(), &ob.receiver)
	if s == nil {
		return nil
	}
	if ob.slots == nil {
		ob.slots = map[string]signal.DynamicSlot{}
	}
	ob.slots[name] = s
	return s
}

// Destroy destroys the object: it emits [ObjectBase.Destroyed], and
// then disconnects all of its slots and signals. Afterwards the object
// can no longer be found through its string form (see [Format]).
func (ob *ObjectBase) Destroy() {
	if ob.destroyed.Swap(true) {
		return
	}
	ob.Destroyed.Emit(ob.this())
	ob.receiver.Close()
	if ob.class != nil {
		for _, sd := range ob.class.Signals() {
			if s := sd.Get(ob.this()); s != nil {
				s.DisconnectAll()
			}
		}
	}
	ob.Destroyed.DisconnectAll()
	untrackObject(ob)
}

// IsDestroyed returns whether [ObjectBase.Destroy] has been called.
func (ob *ObjectBase) IsDestroyed() bool {
	return ob.destroyed.Load()
}

// pointerTo returns a pointer to the struct of the given type within
// the given object, which is either that pointer itself or an [Object]
// that embeds the struct. It returns nil if there is none.
func pointerTo(obj any, target reflect.Type) any {
	if reflectx.IsNil(obj) {
		return nil
	}
	if o, ok := obj.(Object); ok {
		if this := o.AsObject().This; this != nil {
			obj = this
		}
	}
	return reflectx.EmbeddedPointer(obj, target)
}
