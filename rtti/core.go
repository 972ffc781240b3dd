// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"pixellight.org/core/signal"
)

// CoreModule is the module of the core classes.
var CoreModule = &Module{
	Name:        "PLCore",
	Vendor:      "PixelLight",
	License:     "MIT",
	Description: "Core classes of the reflection system",
}

// ObjectClassName is the name of the root class of all objects.
const ObjectClassName = "PLCore::Object"

func init() {
	Announce(NewClass[ObjectBase](ObjectClassName).
		Module(CoreModule).
		Desc("Root class of all reflective objects").
		Methods(
			Method("Destroy", (*ObjectBase).Destroy).SetDesc("Destroys the object"),
			Method("IsDestroyed", (*ObjectBase).IsDestroyed).SetDesc("Returns whether the object has been destroyed"),
			Method("Values", (*ObjectBase).Values).SetDesc("Returns the attribute values as a parameter string"),
			Method("SetValues", (*ObjectBase).SetValues).SetDesc("Sets the attribute values from a parameter string"),
		).
		Signals(
			Signal("Destroyed", func(o *ObjectBase) *signal.Signal[Object] { return &o.Destroyed }).SetDesc("Emitted when the object is destroyed"),
		))
}
