// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plugin

import (
	"slices"
	"strings"
	"sync"
	"unicode"

	"pixellight.org/core/rtti"
	"pixellight.org/core/signal"
)

// SplitList splits the given class property value into a list of items
// separated by commas and/or whitespace (eg: "lua,luac" or "Lua Python"),
// dropping empty items.
func SplitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// follower follows the classes derived from a base class in a class
// manager: it processes the classes already registered, and then each
// class as it is loaded, linked to a later base class or unloaded.
type follower struct {
	manager *rtti.Manager
	base    string
	loaded  *signal.Connection
	linked  *signal.Connection
	removed *signal.Connection
}

func (f *follower) follow(m *rtti.Manager, base string, add, remove func(c *rtti.Class)) {
	f.manager = m
	f.base = base
	// registers any pending classes before connecting,
	// so that they are only processed once
	existing := m.All()
	added := func(c *rtti.Class) {
		if c.IsDerivedFrom(base) {
			add(c)
		}
	}
	f.loaded = m.ClassLoaded.ConnectFunc(added)
	f.linked = m.ClassLinked.ConnectFunc(added)
	f.removed = m.ClassUnloaded.ConnectFunc(func(c *rtti.Class) {
		if c.IsDerivedFrom(base) {
			remove(c)
		}
	})
	for _, c := range existing {
		added(c)
	}
}

// Close stops following the class manager.
func (f *follower) Close() {
	f.loaded.Disconnect()
	f.linked.Disconnect()
	f.removed.Disconnect()
}

// Index is an index of the classes derived from a base class by the
// items of the value of one of their class properties, which it keeps
// current as classes are loaded and unloaded. For example, an index
// of script classes by their "Formats" property maps each file
// extension to the classes of the script languages using it.
// Lookups are case insensitive.
type Index struct {
	follower

	// Property is the class property that classes are indexed by.
	Property string

	mu      sync.RWMutex
	classes []*rtti.Class
	keys    []string
	byKey   map[string][]*rtti.Class
}

// NewIndex returns a new [Index] of the classes of the given manager
// derived from the class with the given base name (including it), by
// the given class property. It must be closed with [Index.Close]
// when it is no longer needed.
func NewIndex(m *rtti.Manager, base, property string) *Index {
	ix := &Index{Property: property, byKey: map[string][]*rtti.Class{}}
	ix.follow(m, base, ix.add, ix.remove)
	return ix
}

func (ix *Index) add(c *rtti.Class) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if slices.Contains(ix.classes, c) {
		return
	}
	ix.classes = append(ix.classes, c)
	for _, k := range SplitList(c.Property(ix.Property)) {
		lk := strings.ToLower(k)
		if _, has := ix.byKey[lk]; !has {
			ix.keys = append(ix.keys, k)
		}
		ix.byKey[lk] = append(ix.byKey[lk], c)
	}
}

func (ix *Index) remove(c *rtti.Class) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.classes = slices.DeleteFunc(ix.classes, func(o *rtti.Class) bool { return o == c })
	for _, k := range SplitList(c.Property(ix.Property)) {
		lk := strings.ToLower(k)
		cs := slices.DeleteFunc(ix.byKey[lk], func(o *rtti.Class) bool { return o == c })
		if len(cs) > 0 {
			ix.byKey[lk] = cs
			continue
		}
		delete(ix.byKey, lk)
		ix.keys = slices.DeleteFunc(ix.keys, func(o string) bool { return strings.ToLower(o) == lk })
	}
}

// Classes returns all of the indexed classes, in the order
// in which they were registered.
func (ix *Index) Classes() []*rtti.Class {
	ix.manager.Flush()
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return slices.Clone(ix.classes)
}

// Keys returns all of the keys of the index, in
// the order in which they were first indexed.
func (ix *Index) Keys() []string {
	ix.manager.Flush()
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return slices.Clone(ix.keys)
}

// Lookup returns the classes indexed by the given key,
// in the order in which they were registered.
func (ix *Index) Lookup(key string) []*rtti.Class {
	ix.manager.Flush()
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return slices.Clone(ix.byKey[strings.ToLower(key)])
}

// First returns the first class indexed by the given
// key, or nil if there is none.
func (ix *Index) First(key string) *rtti.Class {
	ix.manager.Flush()
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	cs := ix.byKey[strings.ToLower(key)]
	if len(cs) == 0 {
		return nil
	}
	return cs[0]
}
