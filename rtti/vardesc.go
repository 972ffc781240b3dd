// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"log/slog"
	"reflect"

	"pixellight.org/core/dynvar"
	"pixellight.org/core/types"
)

// VarDesc describes an attribute of a class: a named, typed field of
// the objects of the class with a default value, which can be
// accessed dynamically through a [dynvar.DynVar]. It is immutable once
// the class is registered.
type VarDesc struct {

	// Name is the name of the attribute, unique within its class.
	Name string

	// Description is an optional human-readable description.
	Description string

	// Annotation is optional additional information for tools
	// such as editors (eg: a value range).
	Annotation string

	// Type is the type of the attribute value.
	Type *types.Type

	// Default is the default value in its canonical string form.
	Default string

	// class is the class that declares the attribute.
	class *Class

	// owner is the struct type that has the field.
	owner reflect.Type

	// bind returns a dynamic variable for the field in the given object.
	bind func(obj any) dynvar.DynVar
}

// Attr returns a new attribute descriptor with the given name and
// default value, for the field of objects of type O returned by the
// given accessor function. The type V must have a [types.Type];
// otherwise Attr logs an error and returns nil.
//
//	rtti.Attr("Count", func(o *Foo) *int { return &o.Count }, 3)
func Attr[O, V any](name string, field func(o *O) *V, def V) *VarDesc {
	typ := types.TypeFor[V]()
	if typ == nil {
		slog.Error("rtti.Attr: attribute type has no type descriptor", "attribute", name, "type", reflect.TypeFor[V]())
		return nil
	}
	vd := &VarDesc{
		Name:    name,
		Type:    typ,
		Default: typ.ToString(def),
		owner:   reflect.TypeFor[O](),
	}
	vd.bind = func(obj any) dynvar.DynVar {
		o, ok := pointerTo(obj, vd.owner).(*O)
		if !ok || o == nil {
			return nil
		}
		p := field(o)
		if p == nil {
			return nil
		}
		return dynvar.New(p, typ, vd.Default)
	}
	return vd
}

// SetDesc sets the [VarDesc.Description].
func (vd *VarDesc) SetDesc(desc string) *VarDesc {
	vd.Description = desc
	return vd
}

// SetAnnotation sets the [VarDesc.Annotation].
func (vd *VarDesc) SetAnnotation(ann string) *VarDesc {
	vd.Annotation = ann
	return vd
}

// Class returns the class that declares the attribute.
func (vd *VarDesc) Class() *Class {
	return vd.class
}

// Var returns a dynamic variable for the attribute in the given
// object. It returns nil if the object does not have the attribute.
func (vd *VarDesc) Var(obj any) dynvar.DynVar {
	if vd == nil {
		return nil
	}
	return vd.bind(obj)
}

func (vd *VarDesc) String() string {
	return vd.Name + " " + vd.Type.Name + " = " + vd.Default
}
