// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"log/slog"
	"reflect"

	"github.com/iancoleman/strcase"

	"pixellight.org/core/base/ordmap"
)

// ClassBuilder builds the description of a class, which is then
// registered by passing it to [Announce]. A ClassBuilder is typically
// created and announced in the init function of the package that
// defines the class:
//
//	func init() {
//		rtti.Announce(rtti.NewClass[Foo]("MyModule::Foo").
//			Base("PLCore::Object").
//			Desc("A foo").
//			DefaultConstructor().
//			Attributes(
//				rtti.Attr("Count", func(o *Foo) *int { return &o.Count }, 3),
//			))
//	}
type ClassBuilder struct {
	class *Class
}

// NewClass returns a new [ClassBuilder] for a class with the given full
// name (eg: PLCore::Script) for objects of the struct type T, which
// must embed [ObjectBase]. The module of the class defaults to a module
// named by the package path of T.
func NewClass[T any](name string) *ClassBuilder {
	rt := reflect.TypeFor[T]()
	ns, cn := splitName(name)
	c := &Class{
		Name:       name,
		Namespace:  ns,
		ClassName:  cn,
		IDName:     strcase.ToKebab(cn),
		Properties: ordmap.New[string, string](),
		reflect:    rt,
	}
	if !reflect.PointerTo(rt).Implements(objectType) {
		slog.Error("rtti.NewClass: type does not embed rtti.ObjectBase", "class", name, "type", rt)
	}
	return &ClassBuilder{class: c}
}

// Name returns the full name of the class being built.
func (cb *ClassBuilder) Name() string {
	return cb.class.Name
}

// Base sets the full name of the base class. The base class does not
// need to be registered yet.
func (cb *ClassBuilder) Base(name string) *ClassBuilder {
	cb.class.BaseName = name
	return cb
}

// Desc sets the description of the class.
func (cb *ClassBuilder) Desc(desc string) *ClassBuilder {
	cb.class.Description = desc
	return cb
}

// Module sets the module of the class.
func (cb *ClassBuilder) Module(md *Module) *ClassBuilder {
	cb.class.Module = md
	return cb
}

// Property sets the class property with the given key to the given value.
func (cb *ClassBuilder) Property(key, value string) *ClassBuilder {
	cb.class.Properties.Add(key, value)
	return cb
}

// Attributes adds the given attributes. An attribute with the same
// name as an attribute that has already been added is ignored.
func (cb *ClassBuilder) Attributes(attrs ...*VarDesc) *ClassBuilder {
	c := cb.class
	for _, vd := range attrs {
		if vd == nil || c.hasAttr(vd.Name) {
			continue
		}
		vd.class = c
		c.attrs = append(c.attrs, vd)
	}
	return cb
}

func (c *Class) hasAttr(name string) bool {
	for _, vd := range c.attrs {
		if vd.Name == name {
			slog.Debug("rtti.ClassBuilder: duplicate attribute", "class", c.Name, "attribute", name)
			return true
		}
	}
	return false
}

// Methods adds the given methods.
func (cb *ClassBuilder) Methods(methods ...*MethodDesc) *ClassBuilder {
	for _, md := range methods {
		if md == nil {
			continue
		}
		md.class = cb.class
		cb.class.methods = append(cb.class.methods, md)
	}
	return cb
}

// Constructors adds the given constructors. A class without
// constructors is abstract.
func (cb *ClassBuilder) Constructors(ctors ...*ConstructorDesc) *ClassBuilder {
	for _, cd := range ctors {
		if cd == nil {
			continue
		}
		cd.class = cb.class
		cb.class.ctors = append(cb.class.ctors, cd)
	}
	return cb
}

// DefaultConstructor adds a constructor named Default without
// parameters, which returns a new object with the default
// values of all of its attributes.
func (cb *ClassBuilder) DefaultConstructor() *ClassBuilder {
	c := cb.class
	fun := reflect.MakeFunc(reflect.FuncOf(nil, []reflect.Type{reflect.PointerTo(c.reflect)}, false), func([]reflect.Value) []reflect.Value {
		pv := reflect.New(c.reflect)
		if obj, ok := pv.Interface().(Object); ok {
			initObject(obj, c).AsObject().SetDefaultValues()
		}
		return []reflect.Value{pv}
	})
	cd := &ConstructorDesc{Name: "Default", Description: "Default constructor", fun: fun}
	return cb.Constructors(cd)
}

// Signals adds the given signals.
func (cb *ClassBuilder) Signals(signals ...*SignalDesc) *ClassBuilder {
	for _, sd := range signals {
		if sd == nil {
			continue
		}
		sd.class = cb.class
		cb.class.signals = append(cb.class.signals, sd)
	}
	return cb
}

// Slots adds the given slots.
func (cb *ClassBuilder) Slots(slots ...*SlotDesc) *ClassBuilder {
	for _, sd := range slots {
		if sd == nil {
			continue
		}
		sd.class = cb.class
		cb.class.slots = append(cb.class.slots, sd)
	}
	return cb
}
