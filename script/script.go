// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script provides the base class of the scripts of all script
// languages, which are reflective classes typically provided by plugins,
// and a [Manager] that keeps track of the available languages and of
// the script bindings, which expose the methods of their objects to
// scripts as global functions.
package script

import (
	"fmt"
	"strconv"

	"pixellight.org/core/base/ordmap"
	"pixellight.org/core/base/params"
	"pixellight.org/core/plugin"
	"pixellight.org/core/rtti"
)

const (
	// ClassName is the name of the base class of all script languages.
	ClassName = "PLCore::Script"

	// BindingClassName is the name of the base class of all script bindings.
	BindingClassName = "PLCore::ScriptBinding"
)

// Language is the interface implemented by the scripts of all
// script languages, which embed [Script].
type Language interface {
	rtti.Object

	// AsScript returns the [Script] of the script.
	AsScript() *Script

	// Execute executes the source code of the script.
	Execute() error
}

// Script is the base type of the scripts of all script languages.
// A script language is a class derived from [ClassName] with the
// "Language" class property set to the name of the language, and the
// "Formats" class property set to the file extensions of its scripts
// (eg: "lua,luac").
type Script struct {
	rtti.ObjectBase

	// Source is the source code of the script.
	Source string

	globals   *ordmap.Map[string, string]
	functions *ordmap.Map[string, *Function]
}

// Function is a global function of a script, which
// calls a method of a script binding object.
type Function struct {

	// Name is the full name of the function (eg: PL.Version).
	Name string

	// Object is the object the method is called on.
	Object rtti.Object

	// Method is the method called by the function.
	Method *rtti.MethodDesc
}

func (s *Script) AsScript() *Script {
	return s
}

// Execute returns an error, as it must be implemented
// by the type of each script language.
func (s *Script) Execute() error {
	return fmt.Errorf("script: %v does not implement Execute", s.Class())
}

// Language returns the name of the script language.
func (s *Script) Language() string {
	return s.Class().Property("Language")
}

// SetSource sets the source code of the script.
func (s *Script) SetSource(src string) *Script {
	s.Source = src
	return s
}

// SetGlobal sets the global variable with the given name to the given value.
func (s *Script) SetGlobal(name, value string) *Script {
	if s.globals == nil {
		s.globals = ordmap.New[string, string]()
	}
	s.globals.Add(name, value)
	return s
}

// Global returns the value of the global variable with the
// given name, or "" if there is no such variable.
func (s *Script) Global(name string) string {
	if s.globals == nil {
		return ""
	}
	return s.globals.ValueByKey(name)
}

// Globals returns the names of the global variables,
// in the order in which they were first set.
func (s *Script) Globals() []string {
	if s.globals == nil {
		return nil
	}
	return s.globals.Keys()
}

// AddFunction adds a global function with the given full name that
// calls the method with the given name of the given object. It returns
// false if the object does not have the method.
func (s *Script) AddFunction(name string, obj rtti.Object, method string) bool {
	if obj == nil {
		return false
	}
	md := obj.AsObject().Class().Method(method)
	if md == nil {
		return false
	}
	if s.functions == nil {
		s.functions = ordmap.New[string, *Function]()
	}
	s.functions.Add(name, &Function{Name: name, Object: obj, Method: md})
	return true
}

// AddBinding adds all of the methods of the given script binding
// object as global functions named by the "Namespace" class property
// of the binding and the method name (eg: PL.Version). Methods of the
// [rtti.ObjectClassName] class are not added.
func (s *Script) AddBinding(obj rtti.Object) {
	c := obj.AsObject().Class()
	ns := c.Property("Namespace")
	for _, md := range c.Methods() {
		if md.Class().Name == rtti.ObjectClassName {
			continue
		}
		name := md.Name
		if ns != "" {
			name = ns + "." + name
		}
		s.AddFunction(name, obj, md.Name)
	}
}

// Functions returns the names of the global
// functions, in the order in which they were added.
func (s *Script) Functions() []string {
	if s.functions == nil {
		return nil
	}
	return s.functions.Keys()
}

// Function returns the global function with the given
// name, or nil if there is no such function.
func (s *Script) Function(name string) *Function {
	if s.functions == nil {
		return nil
	}
	return s.functions.ValueByKey(name)
}

// Call calls the global function with the given name with the given
// arguments, returning its first result in string form.
func (s *Script) Call(name string, args ...string) (string, error) {
	f := s.Function(name)
	if f == nil {
		return "", fmt.Errorf("unknown function %q", name)
	}
	if len(args) > f.Method.NumParams() {
		return "", fmt.Errorf("function %s: too many arguments (%d > %d)", name, len(args), f.Method.NumParams())
	}
	ps := ordmap.New[string, string]()
	for i, arg := range args {
		ps.Add("Param"+strconv.Itoa(i), arg)
	}
	return f.Method.Call(f.Object, params.Format(ps)), nil
}

// Binding is the base type of script bindings. A script binding is
// a class derived from [BindingClassName] with the "Namespace" class
// property set to the namespace of its functions.
type Binding struct {
	rtti.ObjectBase
}

// Formats returns the file extensions of the scripts
// of the script language of the given class.
func Formats(c *rtti.Class) []string {
	return plugin.SplitList(c.Property("Formats"))
}
