// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plugin

import (
	"log/slog"
	"sync"

	"pixellight.org/core/base/ordmap"
	"pixellight.org/core/rtti"
)

// Bindings holds one instance of each of the non-abstract classes
// derived from a base class, which it creates as soon as each class
// is loaded and destroys when the class is unloaded. It is typically
// used for objects that provide services by their mere existence,
// such as the bindings of a scripting API.
type Bindings struct {
	follower

	mu      sync.RWMutex
	objects *ordmap.Map[string, rtti.Object]
}

// NewBindings returns new [Bindings] of the classes of the given manager
// derived from the class with the given base name. It must be closed with
// [Bindings.Close] when it is no longer needed, which also destroys all
// of the objects.
func NewBindings(m *rtti.Manager, base string) *Bindings {
	b := &Bindings{objects: ordmap.New[string, rtti.Object]()}
	b.follow(m, base, b.add, b.remove)
	return b
}

func (b *Bindings) add(c *rtti.Class) {
	if c.IsAbstract() {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, has := b.objects.ValueByKeyTry(c.Name); has {
		return
	}
	obj := c.Create("")
	if obj == nil {
		slog.Debug("plugin.Bindings: class has no default constructor", "class", c.Name)
		return
	}
	b.objects.Add(c.Name, obj)
}

func (b *Bindings) remove(c *rtti.Class) {
	b.mu.Lock()
	obj, has := b.objects.ValueByKeyTry(c.Name)
	if has {
		b.objects.DeleteKey(c.Name)
	}
	b.mu.Unlock()
	if has {
		obj.AsObject().Destroy()
	}
}

// Objects returns all of the objects, in the order in
// which their classes were registered.
func (b *Bindings) Objects() []rtti.Object {
	b.manager.Flush()
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.objects.Values()
}

// Object returns the object of the class with the
// given name, or nil if there is none.
func (b *Bindings) Object(className string) rtti.Object {
	b.manager.Flush()
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.objects.ValueByKey(className)
}

// Close stops following the class manager and destroys all of the objects.
func (b *Bindings) Close() {
	b.follower.Close()
	b.mu.Lock()
	objs := b.objects.Values()
	b.objects = ordmap.New[string, rtti.Object]()
	b.mu.Unlock()
	for _, obj := range objs {
		obj.AsObject().Destroy()
	}
}
