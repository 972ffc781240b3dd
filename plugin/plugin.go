// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin provides activation of modules of classes that are
// compiled into the program but dormant until they are loaded, typically
// as directed by plugin manifest files, and helpers for managers that
// depend on the classes registered by plugins.
package plugin

import (
	"fmt"
	"log/slog"
	"sync"

	"pixellight.org/core/base/ordmap"
	"pixellight.org/core/rtti"
)

// CoreVersion is the version of the reflection core that
// the CoreVersion constraint of manifests is checked against.
const CoreVersion = "1.0.0"

// Plugin is a registered module of classes that can be loaded into and
// unloaded from a class manager.
type Plugin struct {

	// Module is the module of the classes of the plugin.
	Module *rtti.Module

	// Manifest is the manifest last applied to the plugin, if any.
	Manifest *Manifest

	// classes returns new builders for the classes of the plugin.
	classes func() []*rtti.ClassBuilder

	loaded bool
}

// Loaded returns whether the classes of the plugin are currently
// announced to the class manager.
func (p *Plugin) Loaded() bool {
	return p.loaded
}

func (p *Plugin) String() string {
	state := "unloaded"
	if p.loaded {
		state = "loaded"
	}
	return p.Module.Name + " (" + state + ")"
}

// Loader manages the plugins loaded into a class manager.
type Loader struct {

	// Manager is the class manager that plugins are loaded into.
	Manager *rtti.Manager

	mu      sync.Mutex
	plugins *ordmap.Map[string, *Plugin]
}

// Default is the default [Loader], which loads plugins into [rtti.Classes].
var Default = NewLoader(rtti.Classes)

// NewLoader returns a new [Loader] for the given class manager.
func NewLoader(m *rtti.Manager) *Loader {
	return &Loader{Manager: m, plugins: ordmap.New[string, *Plugin]()}
}

// Register registers a plugin with the [Default] loader; see [Loader.Register].
func Register(md *rtti.Module, classes func() []*rtti.ClassBuilder) {
	Default.Register(md, classes)
}

// Load loads the plugin with the given name into the [Default] loader; see [Loader.Load].
func Load(name string) error {
	return Default.Load(name)
}

// Unload unloads the plugin with the given name from the [Default] loader; see [Loader.Unload].
func Unload(name string) bool {
	return Default.Unload(name)
}

// Register registers a dormant plugin for the given module, whose
// classes are built by the given function each time the plugin is
// loaded. The classes are not announced until [Loader.Load] is called.
// Later registrations of the same module name are ignored.
func (l *Loader) Register(md *rtti.Module, classes func() []*rtti.ClassBuilder) {
	if md == nil || classes == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, has := l.plugins.ValueByKeyTry(md.Name); has {
		slog.Debug("plugin.Register: plugin already registered; ignoring later registration", "plugin", md.Name)
		return
	}
	md.Plugin = true
	l.plugins.Add(md.Name, &Plugin{Module: md, classes: classes})
}

// Plugins returns all of the registered plugins, in registration order.
func (l *Loader) Plugins() []*Plugin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.plugins.Values()
}

// Plugin returns the registered plugin with the given module name,
// or nil if there is no such plugin.
func (l *Loader) Plugin(name string) *Plugin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.plugins.ValueByKey(name)
}

// Load announces the classes of the plugin with the given name to the
// class manager, with any class properties of its manifest applied.
// Loading a loaded plugin does nothing.
func (l *Loader) Load(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, has := l.plugins.ValueByKeyTry(name)
	if !has {
		return fmt.Errorf("plugin.Load: unknown plugin %q", name)
	}
	l.load(p)
	return nil
}

func (l *Loader) load(p *Plugin) {
	if p.loaded {
		return
	}
	builders := p.classes()
	for _, cb := range builders {
		if cb == nil {
			continue
		}
		cb.Module(p.Module)
		if p.Manifest == nil {
			continue
		}
		for k, v := range p.Manifest.Properties[cb.Name()] {
			cb.Property(k, v)
		}
	}
	l.Manager.Announce(builders...)
	p.loaded = true
	slog.Debug("plugin: loaded", "plugin", p.Module.Name, "classes", len(builders))
}

// Unload removes the classes of the plugin with the given name from the
// class manager. It returns false if there is no such plugin or it is
// not loaded.
func (l *Loader) Unload(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, has := l.plugins.ValueByKeyTry(name)
	if !has || !p.loaded {
		return false
	}
	l.unload(p)
	return true
}

func (l *Loader) unload(p *Plugin) {
	l.Manager.UnloadModule(p.Module.Name)
	p.loaded = false
	slog.Debug("plugin: unloaded", "plugin", p.Module.Name)
}

// Reload unloads and then loads the plugin with the given name, so that
// its classes are registered again with the current manifest.
func (l *Loader) Reload(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, has := l.plugins.ValueByKeyTry(name)
	if !has {
		return fmt.Errorf("plugin.Reload: unknown plugin %q", name)
	}
	if p.loaded {
		l.unload(p)
	}
	l.load(p)
	return nil
}
