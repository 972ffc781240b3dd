// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"pixellight.org/core/base/params"
	"pixellight.org/core/types"
)

// ConstructorDesc describes a constructor of a class, which is a
// function returning a new object of the class from its parameters.
// A class without constructors is abstract.
type ConstructorDesc struct {

	// Name is the name of the constructor, unique within its class.
	Name string

	// Description is an optional human-readable description.
	Description string

	// Params are the named parameters of the constructor.
	Params []ParamDesc

	class *Class
	fun   reflect.Value
}

// ParamDesc describes a named parameter of a constructor.
type ParamDesc struct {

	// Name is the name of the parameter.
	Name string

	// Type is the Go type of the parameter.
	Type reflect.Type

	// Default is the default value in string form, used when
	// the parameter is not given.
	Default string
}

// Constructor returns a new constructor descriptor with the given name
// for the given function, which must return a pointer to a new object.
// The parameters of the function are named by the given parameter
// names, each of which may include a default value after an = sign:
//
//	rtti.Constructor("Params", NewFoo, "Name", "Count=3")
//
// Missing names are Param0, Param1, and so on. It logs an error and
// returns nil if the function does not have that form.
func Constructor(name string, fun any, paramNames ...string) *ConstructorDesc {
	fv := reflect.ValueOf(fun)
	ft := fv.Type()
	if ft == nil || ft.Kind() != reflect.Func || ft.NumOut() != 1 || ft.Out(0).Kind() != reflect.Pointer {
		slog.Error("rtti.Constructor: function must return a pointer to a new object", "constructor", name, "type", ft)
		return nil
	}
	cd := &ConstructorDesc{Name: name, fun: fv}
	for i := range ft.NumIn() {
		pd := ParamDesc{Name: "Param" + strconv.Itoa(i), Type: ft.In(i)}
		if i < len(paramNames) {
			n, def, _ := strings.Cut(paramNames[i], "=")
			pd.Name = strings.TrimSpace(n)
			pd.Default = strings.Trim(strings.TrimSpace(def), `"`)
		}
		cd.Params = append(cd.Params, pd)
	}
	return cd
}

// SetDesc sets the [ConstructorDesc.Description].
func (cd *ConstructorDesc) SetDesc(desc string) *ConstructorDesc {
	cd.Description = desc
	return cd
}

// Class returns the class that declares the constructor.
func (cd *ConstructorDesc) Class() *Class {
	return cd.class
}

// Signature returns the signature of the constructor
// (eg: func(string, int) *pkg.Foo).
func (cd *ConstructorDesc) Signature() string {
	return cd.fun.Type().String()
}

// Matches returns whether the constructor can be called with exactly
// the given arguments, without any conversion.
func (cd *ConstructorDesc) Matches(args ...any) bool {
	if len(args) != len(cd.Params) {
		return false
	}
	for i, pd := range cd.Params {
		if args[i] == nil {
			switch pd.Type.Kind() {
			case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				continue
			}
			return false
		}
		if !reflect.TypeOf(args[i]).AssignableTo(pd.Type) {
			return false
		}
	}
	return true
}

// CreateArgs calls the constructor with the given arguments, which
// are converted to the parameter types as needed; missing arguments
// get their default values. It returns the new object.
func (cd *ConstructorDesc) CreateArgs(args ...any) Object {
	in := make([]reflect.Value, len(cd.Params))
	for i, pd := range cd.Params {
		if i < len(args) {
			in[i] = argValue(pd.Type, args[i])
		} else {
			in[i] = cd.defaultValue(pd)
		}
	}
	return cd.create(in)
}

// Create calls the constructor with the arguments in the given
// parameter string of the form `Name="value" Count="3"`, keyed by
// parameter name. Missing parameters get their default values and
// unknown keys are ignored. It returns the new object.
func (cd *ConstructorDesc) Create(ps string) Object {
	pm := params.Parse(ps)
	in := make([]reflect.Value, len(cd.Params))
	for i, pd := range cd.Params {
		if s, ok := pm.ValueByKeyTry(pd.Name); ok {
			in[i] = argValue(pd.Type, s)
		} else {
			in[i] = cd.defaultValue(pd)
		}
	}
	return cd.create(in)
}

func (cd *ConstructorDesc) defaultValue(pd ParamDesc) reflect.Value {
	if pd.Default == "" {
		return reflect.Zero(pd.Type)
	}
	if typ := types.For(pd.Type); typ != nil {
		return argValue(pd.Type, typ.FromString(pd.Default))
	}
	return argValue(pd.Type, pd.Default)
}

func (cd *ConstructorDesc) create(in []reflect.Value) Object {
	out := cd.fun.Call(in)
	obj, ok := out[0].Interface().(Object)
	if !ok || obj == nil || out[0].IsNil() {
		slog.Error("rtti.ConstructorDesc.Create: constructor did not return an object", "class", cd.class, "constructor", cd.Name)
		return nil
	}
	return initObject(obj, cd.class)
}
