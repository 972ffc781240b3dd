// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"log/slog"
	"reflect"
	"strconv"

	"pixellight.org/core/base/params"
	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/types"
)

// MethodDesc describes a method of a class that can be called
// dynamically, either with typed arguments or with a parameter string
// of the form `Param0="1" Param1="2"`.
type MethodDesc struct {

	// Name is the name of the method, unique within its class.
	Name string

	// Description is an optional human-readable description.
	Description string

	// Annotation is optional additional information for tools.
	Annotation string

	class *Class
	fun   reflect.Value

	// owner is the struct type of the receiver.
	owner   reflect.Type
	params  []reflect.Type
	results []reflect.Type
}

// Method returns a new method descriptor with the given name for the
// given function, whose first parameter must be the pointer to the
// object the method is called on:
//
//	rtti.Method("Add", func(o *Foo, n int) int { o.Count += n; return o.Count })
//
// Method expressions such as (*Foo).Add work as well. It logs an
// error and returns nil if the function does not have that form.
func Method(name string, fun any) *MethodDesc {
	fv := reflect.ValueOf(fun)
	ft := fv.Type()
	if ft == nil || ft.Kind() != reflect.Func || ft.NumIn() == 0 ||
		ft.In(0).Kind() != reflect.Pointer || ft.In(0).Elem().Kind() != reflect.Struct {
		slog.Error("rtti.Method: function must take a pointer to a struct as its first parameter", "method", name, "type", ft)
		return nil
	}
	md := &MethodDesc{Name: name, fun: fv, owner: ft.In(0).Elem()}
	for i := 1; i < ft.NumIn(); i++ {
		md.params = append(md.params, ft.In(i))
	}
	for i := range ft.NumOut() {
		md.results = append(md.results, ft.Out(i))
	}
	return md
}

// SetDesc sets the [MethodDesc.Description].
func (md *MethodDesc) SetDesc(desc string) *MethodDesc {
	md.Description = desc
	return md
}

// SetAnnotation sets the [MethodDesc.Annotation].
func (md *MethodDesc) SetAnnotation(ann string) *MethodDesc {
	md.Annotation = ann
	return md
}

// Class returns the class that declares the method.
func (md *MethodDesc) Class() *Class {
	return md.class
}

// NumParams returns the number of parameters, not
// including the object the method is called on.
func (md *MethodDesc) NumParams() int {
	return len(md.params)
}

// Signature returns the signature of the method, without the
// object it is called on (eg: func(int, string) bool).
func (md *MethodDesc) Signature() string {
	return reflect.FuncOf(md.params, md.results, false).String()
}

// CallArgs calls the method on the given object with the given
// arguments, which are converted to the parameter types as needed.
// Missing arguments are zero values and extra arguments are ignored.
// It returns the results, or nil if the object does not have
// the method.
func (md *MethodDesc) CallArgs(obj any, args ...any) []any {
	recv := pointerTo(obj, md.owner)
	if recv == nil {
		return nil
	}
	in := make([]reflect.Value, len(md.params)+1)
	in[0] = reflect.ValueOf(recv)
	for i, pt := range md.params {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		in[i+1] = argValue(pt, arg)
	}
	out := md.fun.Call(in)
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res
}

// Call calls the method on the given object with the arguments in
// the given parameter string, in which the parameters are named
// Param0, Param1, and so on. It returns the first result in its
// string form, or "" if there is none or the object does not have
// the method.
func (md *MethodDesc) Call(obj any, ps string) string {
	pm := params.Parse(ps)
	args := make([]any, len(md.params))
	for i := range md.params {
		if s, ok := pm.ValueByKeyTry("Param" + strconv.Itoa(i)); ok {
			args[i] = s
		}
	}
	res := md.CallArgs(obj, args...)
	if len(res) == 0 {
		return ""
	}
	return valueString(md.results[0], res[0])
}

// argValue returns the given argument converted to the given type,
// using its [types.Type] when there is one. Unconvertible
// arguments are zero values.
func argValue(rt reflect.Type, arg any) reflect.Value {
	if arg == nil {
		return reflect.Zero(rt)
	}
	av := reflect.ValueOf(arg)
	if av.Type().AssignableTo(rt) {
		return av
	}
	if typ := types.For(rt); typ != nil {
		if v := typ.Convert(arg); v != nil {
			return reflect.ValueOf(v)
		}
		return reflect.Zero(rt)
	}
	nv := reflect.New(rt)
	if err := reflectx.SetRobust(nv.Interface(), arg); err != nil {
		slog.Debug("rtti: unable to convert argument", "type", rt, "value", arg, "err", err)
		return reflect.Zero(rt)
	}
	return nv.Elem()
}

// valueString returns the string form of the given value of the given type.
func valueString(rt reflect.Type, v any) string {
	if typ := types.For(rt); typ != nil {
		return typ.ToString(v)
	}
	return reflectx.ToString(v)
}
