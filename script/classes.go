// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"log/slog"

	"pixellight.org/core/plugin"
	"pixellight.org/core/rtti"
)

// CoreBinding is the script binding of the core,
// with the functions in the PL namespace.
type CoreBinding struct {
	Binding
}

// Version returns the version of the core.
func (cb *CoreBinding) Version() string {
	return plugin.CoreVersion
}

// HasClass returns whether there is a registered class with the given name.
func (cb *CoreBinding) HasClass(name string) bool {
	c := cb.Class()
	return c != nil && c.Manager().Class(name) != nil
}

// Log logs the given message at the info level.
func (cb *CoreBinding) Log(msg string) {
	slog.Info(msg, "source", "script")
}

// classes returns the builders of the classes of the package.
func classes() []*rtti.ClassBuilder {
	return []*rtti.ClassBuilder{
		rtti.NewClass[Script](ClassName).
			Module(rtti.CoreModule).
			Base(rtti.ObjectClassName).
			Desc("Abstract base class of the scripts of all script languages").
			Attributes(rtti.Attr("Source", func(s *Script) *string { return &s.Source }, "").SetDesc("Source code of the script")).
			Methods(
				rtti.Method("Global", (*Script).Global).SetDesc("Returns the value of a global variable"),
				rtti.Method("SetGlobal", (*Script).SetGlobal).SetDesc("Sets the value of a global variable"),
				rtti.Method("Execute", (*Script).Execute).SetDesc("Executes the source code of the script"),
			),
		rtti.NewClass[Binding](BindingClassName).
			Module(rtti.CoreModule).
			Base(rtti.ObjectClassName).
			Desc("Abstract base class of all script bindings"),
		rtti.NewClass[Command]("PLCore::ScriptCommand").
			Module(rtti.CoreModule).
			Base(ClassName).
			Desc("Built-in script language of shell-like commands").
			Property("Language", "Command").
			Property("Formats", "cmd,plcmd").
			DefaultConstructor().
			Methods(rtti.Method("Execute", (*Command).Execute).SetDesc("Executes the commands of the script")),
		rtti.NewClass[CoreBinding]("PLCore::CoreBinding").
			Module(rtti.CoreModule).
			Base(BindingClassName).
			Desc("Script binding of the core").
			Property("Namespace", "PL").
			DefaultConstructor().
			Methods(
				rtti.Method("Version", (*CoreBinding).Version).SetDesc("Returns the version of the core"),
				rtti.Method("HasClass", (*CoreBinding).HasClass).SetDesc("Returns whether a class is registered"),
				rtti.Method("Log", (*CoreBinding).Log).SetDesc("Logs a message"),
			),
	}
}

func init() {
	rtti.Announce(classes()...)
}
