// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package backend

//go:generate core generate

// RendererFeatures are the optional features that a renderer can
// render. Features that a renderer does not support are ignored.
type RendererFeatures int64 //enums:bitflag

const (
	// Shadows renders the shadows of lights.
	Shadows RendererFeatures = iota

	// Reflections renders reflective surfaces.
	Reflections

	// Fog renders distance fog.
	Fog

	// Bloom renders a glow around bright areas.
	Bloom
)
