// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import "slices"

// Module is a named unit of classes, which is either built into the
// program or provided by a plugin. Every class belongs to one module.
type Module struct {

	// Name is the unique name of the module (eg: PLCore).
	Name string

	// Vendor is the vendor of the module.
	Vendor string

	// License is the license of the module.
	License string

	// Description is a human-readable description of the module.
	Description string

	// Plugin is whether the module is provided by a plugin, which
	// can be unloaded and loaded again, as opposed to being built
	// into the program.
	Plugin bool

	// classes are the registered classes of the module,
	// in registration order.
	classes []*Class
}

// Classes returns the registered classes of the module, in
// registration order.
func (md *Module) Classes() []*Class {
	return slices.Clone(md.classes)
}

func (md *Module) String() string {
	return md.Name
}
