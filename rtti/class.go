// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"reflect"
	"slices"
	"strings"

	"pixellight.org/core/base/ordmap"
)

// Class describes a reflective class: a Go struct type embedding
// [ObjectBase], together with its base class, attributes, methods,
// constructors, signals, slots and properties. Classes are created
// with [NewClass] and registered with [Announce]; a registered class
// is immutable apart from the links to its base and derived classes.
type Class struct {

	// Name is the full name of the class, including its namespace
	// (eg: PLCore::Script).
	Name string

	// Namespace is the namespace part of the name (eg: PLCore).
	Namespace string

	// ClassName is the name without the namespace (eg: Script).
	ClassName string

	// IDName is the kebab-case version of the class name, for use in
	// identifiers such as file names and command line arguments
	// (eg: script-lua).
	IDName string

	// Description is a human-readable description of the class.
	Description string

	// Module is the module the class belongs to.
	Module *Module

	// Properties are the string properties of the class, in the order
	// they were added. They are not inherited.
	Properties *ordmap.Map[string, string]

	// BaseName is the full name of the base class, or ""
	// for a root class.
	BaseName string

	// base is the base class, once it has been registered.
	base *Class

	// derived are the registered classes directly derived
	// from this class, in registration order.
	derived []*Class

	attrs   []*VarDesc
	methods []*MethodDesc
	ctors   []*ConstructorDesc
	signals []*SignalDesc
	slots   []*SlotDesc

	// reflect is the Go struct type of the objects of the class.
	reflect reflect.Type

	manager *Manager
}

// splitName splits the given full class name into
// its namespace and class name.
func splitName(name string) (namespace, class string) {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[:i], name[i+2:]
	}
	return "", name
}

func (c *Class) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// ReflectType returns the Go struct type of the objects of the class.
func (c *Class) ReflectType() reflect.Type {
	return c.reflect
}

// Manager returns the manager the class is registered
// with, or nil if it has not been registered.
func (c *Class) Manager() *Manager {
	return c.manager
}

// Property returns the value of the property with the given key,
// or "" if there is no such property.
func (c *Class) Property(key string) string {
	return c.Properties.ValueByKey(key)
}

// Base returns the base class, or nil for a root class or a class
// whose base has not been registered.
func (c *Class) Base() *Class {
	if c.BaseName == "" {
		return nil
	}
	if c.manager != nil {
		c.manager.flush()
		c.manager.mu.RLock()
		defer c.manager.mu.RUnlock()
	}
	return c.base
}

// Derived returns the registered classes directly derived from
// this class, in registration order.
func (c *Class) Derived() []*Class {
	if c.manager != nil {
		c.manager.flush()
		c.manager.mu.RLock()
		defer c.manager.mu.RUnlock()
	}
	return slices.Clone(c.derived)
}

// bases returns the chain of classes from this class up to its root
// class, starting with this class.
func (c *Class) bases() []*Class {
	var chain []*Class
	for b := c; b != nil; b = b.Base() {
		chain = append(chain, b)
	}
	return chain
}

// inChain returns whether the given class is this class or one of
// its linked base classes. It must be called under the lock of the manager.
func (c *Class) inChain(o *Class) bool {
	for b := c; b != nil; b = b.base {
		if b == o {
			return true
		}
	}
	return false
}

// IsDerivedFrom returns whether this class is, or is derived at any
// depth from, the class with the given name.
func (c *Class) IsDerivedFrom(name string) bool {
	if c == nil {
		return false
	}
	for b := c; b != nil; b = b.Base() {
		if b.Name == name {
			return true
		}
	}
	return false
}

// IsDerivedFromClass returns whether this class is, or is derived
// at any depth from, the given class.
func (c *Class) IsDerivedFromClass(base *Class) bool {
	if c == nil || base == nil {
		return false
	}
	for b := c; b != nil; b = b.Base() {
		if b == base {
			return true
		}
	}
	return false
}

// IsAbstract returns whether the class has no constructors,
// in which case it can not be instantiated.
func (c *Class) IsAbstract() bool {
	return len(c.ctors) == 0
}

// inherited returns the members of the class from the given per-class
// member lists, starting with those of the root class. A member of a
// derived class with the same name as an inherited member replaces it
// in its inherited position.
func inherited[T any](c *Class, members func(c *Class) []T, name func(m T) string) []T {
	chain := c.bases()
	var res []T
	for i := len(chain) - 1; i >= 0; i-- {
		for _, m := range members(chain[i]) {
			n := name(m)
			if j := slices.IndexFunc(res, func(r T) bool { return name(r) == n }); j >= 0 {
				res[j] = m
			} else {
				res = append(res, m)
			}
		}
	}
	return res
}

// find returns the member with the given name, searching this
// class first and then its base classes.
func find[T any](c *Class, members func(c *Class) []T, name func(m T) string, n string) T {
	for b := c; b != nil; b = b.Base() {
		for _, m := range members(b) {
			if name(m) == n {
				return m
			}
		}
	}
	var zero T
	return zero
}

// Attributes returns all of the attributes of the class,
// including inherited ones.
func (c *Class) Attributes() []*VarDesc {
	return inherited(c, func(c *Class) []*VarDesc { return c.attrs }, func(m *VarDesc) string { return m.Name })
}

// Attribute returns the attribute with the given name,
// which may be inherited, or nil if there is none.
func (c *Class) Attribute(name string) *VarDesc {
	return find(c, func(c *Class) []*VarDesc { return c.attrs }, func(m *VarDesc) string { return m.Name }, name)
}

// Methods returns all of the methods of the class,
// including inherited ones.
func (c *Class) Methods() []*MethodDesc {
	return inherited(c, func(c *Class) []*MethodDesc { return c.methods }, func(m *MethodDesc) string { return m.Name })
}

// Method returns the method with the given name,
// which may be inherited, or nil if there is none.
func (c *Class) Method(name string) *MethodDesc {
	return find(c, func(c *Class) []*MethodDesc { return c.methods }, func(m *MethodDesc) string { return m.Name }, name)
}

// Signals returns all of the signals of the class,
// including inherited ones.
func (c *Class) Signals() []*SignalDesc {
	return inherited(c, func(c *Class) []*SignalDesc { return c.signals }, func(m *SignalDesc) string { return m.Name })
}

// Signal returns the signal with the given name,
// which may be inherited, or nil if there is none.
func (c *Class) Signal(name string) *SignalDesc {
	return find(c, func(c *Class) []*SignalDesc { return c.signals }, func(m *SignalDesc) string { return m.Name }, name)
}

// Slots returns all of the slots of the class,
// including inherited ones.
func (c *Class) Slots() []*SlotDesc {
	return inherited(c, func(c *Class) []*SlotDesc { return c.slots }, func(m *SlotDesc) string { return m.Name })
}

// Slot returns the slot with the given name,
// which may be inherited, or nil if there is none.
func (c *Class) Slot(name string) *SlotDesc {
	return find(c, func(c *Class) []*SlotDesc { return c.slots }, func(m *SlotDesc) string { return m.Name }, name)
}

// Constructors returns the constructors of the class.
// Constructors are not inherited.
func (c *Class) Constructors() []*ConstructorDesc {
	return slices.Clone(c.ctors)
}

// Constructor returns the constructor with the given
// name, or nil if there is none.
func (c *Class) Constructor(name string) *ConstructorDesc {
	for _, cd := range c.ctors {
		if cd.Name == name {
			return cd
		}
	}
	return nil
}

// DefaultConstructor returns the first constructor without
// parameters, or nil if there is none.
func (c *Class) DefaultConstructor() *ConstructorDesc {
	for _, cd := range c.ctors {
		if len(cd.Params) == 0 {
			return cd
		}
	}
	return nil
}

// Create returns a new object of the class created with the default
// constructor, with its attributes then set from the given parameter
// string of the form `Name="foo" Count="3"`, in which unknown
// attributes are ignored. It returns nil if the class is abstract or
// has no default constructor.
func (c *Class) Create(ps string) Object {
	if c == nil {
		return nil
	}
	cd := c.DefaultConstructor()
	if cd == nil {
		return nil
	}
	obj := cd.Create("")
	if obj != nil && ps != "" {
		obj.AsObject().SetValues(ps)
	}
	return obj
}

// CreateWith returns a new object of the class created with the
// constructor with the given name, called with the parameters in the
// given parameter string (see [ConstructorDesc.Create]). It returns
// nil if there is no such constructor.
func (c *Class) CreateWith(ctor string, ps string) Object {
	if c == nil {
		return nil
	}
	cd := c.Constructor(ctor)
	if cd == nil {
		return nil
	}
	return cd.Create(ps)
}

// CreateArgs returns a new object of the class created with the first
// constructor whose parameter types match the types of the given
// arguments. It returns nil if there is no such constructor.
func (c *Class) CreateArgs(args ...any) Object {
	if c == nil {
		return nil
	}
	for _, cd := range c.ctors {
		if cd.Matches(args...) {
			return cd.CreateArgs(args...)
		}
	}
	return nil
}
