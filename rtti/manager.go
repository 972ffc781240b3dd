// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"log/slog"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"pixellight.org/core/base/ordmap"
	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/signal"
)

// Manager is a registry of classes, which are announced with
// [Manager.Announce] and registered the next time the registry is
// queried. Registration happens in two phases: all of the announced
// classes are first added, and then all of them are linked to their
// base classes, so classes can be announced in any order. The
// process-wide default Manager is [Classes].
type Manager struct {

	// ClassLoaded is emitted for each newly registered class, in
	// registration order, after all of the classes registered along
	// with it have been linked to their base classes.
	ClassLoaded signal.Signal[*Class]

	// ClassLinked is emitted for each class registered earlier that
	// has been linked to a newly registered base class, and for each
	// class registered earlier derived from it, after ClassLoaded has
	// been emitted for the new classes. Classes announced before their
	// base classes are only known to derive from them from then on.
	ClassLinked signal.Signal[*Class]

	// ClassUnloaded is emitted for each class removed by [Manager.UnloadModule].
	ClassUnloaded signal.Signal[*Class]

	// mu protects all of the fields below.
	mu sync.RWMutex

	// pending are the announced classes that are not yet registered.
	pending []*Class

	classes *ordmap.Map[string, *Class]
	byType  map[reflect.Type]*Class
	modules *ordmap.Map[string, *Module]
}

// Classes is the process-wide default class [Manager].
var Classes = NewManager()

// NewManager returns a new, empty class [Manager].
func NewManager() *Manager {
	m := &Manager{
		classes: ordmap.New[string, *Class](),
		byType:  map[reflect.Type]*Class{},
		modules: ordmap.New[string, *Module](),
	}
	m.ClassLoaded.Name = "ClassLoaded"
	m.ClassLinked.Name = "ClassLinked"
	m.ClassUnloaded.Name = "ClassUnloaded"
	return m
}

// Announce announces the classes built by the given builders to the
// default [Manager] [Classes]; see [Manager.Announce].
func Announce(builders ...*ClassBuilder) {
	Classes.Announce(builders...)
}

// Announce announces the classes built by the given builders, which
// are registered the next time the manager is queried. The builders
// must not be used afterwards.
func (m *Manager) Announce(builders ...*ClassBuilder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cb := range builders {
		if cb == nil {
			continue
		}
		m.pending = append(m.pending, cb.class)
	}
}

// Flush registers all of the announced classes now, rather than the
// next time the manager is queried, emitting [Manager.ClassLoaded]
// for each of them. Managers that depend on the registered classes
// call it before answering their own queries.
func (m *Manager) Flush() {
	m.flush()
}

// flush registers all of the pending classes, and then emits
// [Manager.ClassLoaded] for each of them and [Manager.ClassLinked]
// for the earlier classes they are base classes of.
func (m *Manager) flush() {
	m.mu.RLock()
	n := len(m.pending)
	m.mu.RUnlock()
	if n == 0 {
		return
	}
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	var added []*Class
	for _, c := range pending {
		if _, has := m.classes.ValueByKeyTry(c.Name); has {
			slog.Debug("rtti.Manager: class already registered; ignoring later registration", "class", c.Name)
			continue
		}
		c.manager = m
		if c.Module == nil {
			c.Module = &Module{Name: c.reflect.PkgPath()}
		}
		md, has := m.modules.ValueByKeyTry(c.Module.Name)
		if !has {
			md = c.Module
			m.modules.Add(md.Name, md)
		}
		c.Module = md
		md.classes = append(md.classes, c)
		m.classes.Add(c.Name, c)
		if _, has := m.byType[c.reflect]; !has {
			m.byType[c.reflect] = c
		}
		added = append(added, c)
	}
	relinked := m.relinked(added, m.link())
	m.mu.Unlock()

	for _, c := range added {
		m.ClassLoaded.Emit(c)
	}
	for _, c := range relinked {
		m.ClassLinked.Emit(c)
	}
}

// relinked returns the given linked classes that are not among the
// given added classes, along with all of the classes derived from them.
// It must be called under the write lock.
func (m *Manager) relinked(added, linked []*Class) []*Class {
	var res []*Class
	seen := map[*Class]bool{}
	for _, c := range added {
		seen[c] = true
	}
	var walk func(c *Class)
	walk = func(c *Class) {
		if seen[c] {
			return
		}
		seen[c] = true
		res = append(res, c)
		for _, d := range c.derived {
			walk(d)
		}
	}
	for _, c := range linked {
		walk(c)
	}
	return res
}

// link links all of the classes with an unresolved base class
// to their base class, if it is registered, and returns the classes
// it has linked. A class is not linked to a base class derived from
// it. It must be called under the write lock.
func (m *Manager) link() []*Class {
	var linked []*Class
	for _, c := range m.classes.Values() {
		if c.BaseName == "" || c.base != nil {
			continue
		}
		base, has := m.classes.ValueByKeyTry(c.BaseName)
		if !has {
			slog.Debug("rtti.Manager: base class not registered yet", "class", c.Name, "base", c.BaseName)
			continue
		}
		if base.inChain(c) {
			slog.Debug("rtti.Manager: base class is derived from class; not linking", "class", c.Name, "base", c.BaseName)
			continue
		}
		c.base = base
		base.derived = append(base.derived, c)
		linked = append(linked, c)
	}
	return linked
}

// Class returns the registered class with the given full name,
// or nil if there is no such class.
func (m *Manager) Class(name string) *Class {
	m.flush()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.classes.ValueByKey(name)
}

// ClassByType returns the registered class of the given Go struct
// type (or pointer to it), or nil if there is none.
func (m *Manager) ClassByType(rt reflect.Type) *Class {
	rt = reflectx.NonPointerType(rt)
	if rt == nil {
		return nil
	}
	m.flush()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byType[rt]
}

// ClassOf returns the class of the given object: the class it was
// created with, or otherwise the registered class of its Go type.
func (m *Manager) ClassOf(obj Object) *Class {
	if reflectx.IsNil(obj) {
		return nil
	}
	if c := obj.AsObject().class; c != nil {
		return c
	}
	return m.ClassByType(reflect.TypeOf(obj))
}

// All returns all of the registered classes, in registration order.
func (m *Manager) All() []*Class {
	m.flush()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.classes.Values()
}

// Classes returns the registered classes derived from the class with
// the given base name, in registration order: directly derived classes
// only, or all derived classes if recursive is true. The base class
// itself is included if includeBase is true, and abstract classes are
// included if includeAbstract is true. It returns nil if there is no
// class with the given name.
func (m *Manager) Classes(base string, recursive, includeBase, includeAbstract bool) []*Class {
	bc := m.Class(base)
	if bc == nil {
		return nil
	}
	var res []*Class
	for _, c := range m.All() {
		switch {
		case c == bc:
			if !includeBase {
				continue
			}
		case recursive:
			if !c.IsDerivedFromClass(bc) {
				continue
			}
		default:
			if c.Base() != bc {
				continue
			}
		}
		if !includeAbstract && c.IsAbstract() {
			continue
		}
		res = append(res, c)
	}
	return res
}

// Suggest returns the names of up to n registered classes whose names
// are the most similar to the given name, from most to least similar,
// for suggestions when a class can not be found.
func (m *Manager) Suggest(name string, n int) []string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	type scored struct {
		name  string
		score float64
	}
	var all []scored
	for _, c := range m.All() {
		all = append(all, scored{c.Name, max(strutil.Similarity(name, c.Name, lev), strutil.Similarity(name, c.ClassName, lev))})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })
	var res []string
	for _, s := range all {
		if len(res) >= n || s.score == 0 {
			break
		}
		res = append(res, s.name)
	}
	return res
}

// Modules returns all of the modules with registered
// classes, in registration order.
func (m *Manager) Modules() []*Module {
	m.flush()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modules.Values()
}

// Module returns the module with the given name,
// or nil if there is no such module.
func (m *Manager) Module(name string) *Module {
	m.flush()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modules.ValueByKey(name)
}

// UnloadModule removes the module with the given name and all of its
// classes, emitting [Manager.ClassUnloaded] for each class in reverse
// registration order. Classes of other modules derived from them are
// unlinked, and are linked again if their base class is registered
// again. It returns false if there is no such module.
func (m *Manager) UnloadModule(name string) bool {
	m.flush()
	m.mu.Lock()
	md, has := m.modules.ValueByKeyTry(name)
	if !has {
		m.mu.Unlock()
		return false
	}
	removed := md.classes
	for _, c := range removed {
		m.classes.DeleteKey(c.Name)
		if m.byType[c.reflect] == c {
			delete(m.byType, c.reflect)
		}
		if c.base != nil {
			c.base.derived = slices.DeleteFunc(c.base.derived, func(d *Class) bool { return d == c })
		}
		for _, d := range c.derived {
			if d.Module != md {
				d.base = nil
			}
		}
	}
	md.classes = nil
	m.modules.DeleteKey(name)
	m.mu.Unlock()

	for _, c := range slices.Backward(removed) {
		m.ClassUnloaded.Emit(c)
	}
	return true
}
