// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package backend

import (
	"slices"

	"pixellight.org/core/rtti"
	"pixellight.org/core/signal"
)

// RendererNull is a renderer that does not render anything.
type RendererNull struct {
	RendererBase
}

func (r *RendererNull) BeginFrame() bool {
	return r.Width > 0 && r.Height > 0
}

// WorldNull is a physics world that only advances its time.
type WorldNull struct {
	WorldBase
}

func (w *WorldNull) Step(dt float64) {
	if !w.Active || dt <= 0 {
		return
	}
	w.Time += dt * float64(w.Speed)
}

// SoundManagerNull is a sound manager that only keeps
// track of the sounds that are playing.
type SoundManagerNull struct {
	SoundManagerBase

	playing []string
}

func (sm *SoundManagerNull) Play(name string) bool {
	if name == "" || sm.Volume <= 0 {
		return false
	}
	if !slices.Contains(sm.playing, name) {
		sm.playing = append(sm.playing, name)
	}
	return true
}

func (sm *SoundManagerNull) Stop(name string) {
	sm.playing = slices.DeleteFunc(sm.playing, func(s string) bool { return s == name })
}

// Playing returns the names of the sounds that are playing.
func (sm *SoundManagerNull) Playing() []string {
	return slices.Clone(sm.playing)
}

var (
	// RendererModule is the module of the renderer classes.
	RendererModule = &rtti.Module{Name: "PLRenderer", Vendor: "PixelLight", License: "MIT", Description: "Renderer backend classes"}

	// PhysicsModule is the module of the physics classes.
	PhysicsModule = &rtti.Module{Name: "PLPhysics", Vendor: "PixelLight", License: "MIT", Description: "Physics backend classes"}

	// SoundModule is the module of the sound classes.
	SoundModule = &rtti.Module{Name: "PLSound", Vendor: "PixelLight", License: "MIT", Description: "Sound backend classes"}
)

func init() {
	rtti.Announce(
		rtti.NewClass[RendererBase](RendererClassName).
			Module(RendererModule).
			Base(rtti.ObjectClassName).
			Desc("Abstract renderer backend").
			Attributes(
				rtti.Attr("Width", func(r *RendererBase) *int { return &r.Width }, 640).SetDesc("Width of the render target"),
				rtti.Attr("Height", func(r *RendererBase) *int { return &r.Height }, 480).SetDesc("Height of the render target"),
				rtti.Attr("VSync", func(r *RendererBase) *bool { return &r.VSync }, true).SetDesc("Synchronize frames to the vertical refresh"),
				rtti.Attr("Features", func(r *RendererBase) *RendererFeatures { return &r.Features }, 0).SetDesc("Optional features to render"),
			).
			Methods(rtti.Method("EndFrame", (*RendererBase).EndFrame)).
			Signals(rtti.Signal("FrameEnded", func(r *RendererBase) *signal.Signal[int] { return &r.FrameEnded })),
		rtti.NewClass[RendererNull]("PLRenderer::RendererNull").
			Module(RendererModule).
			Base(RendererClassName).
			Desc("Renderer backend that does not render anything").
			DefaultConstructor().
			Methods(rtti.Method("BeginFrame", (*RendererNull).BeginFrame)),

		rtti.NewClass[WorldBase](WorldClassName).
			Module(PhysicsModule).
			Base(rtti.ObjectClassName).
			Desc("Abstract physics world backend").
			Attributes(
				rtti.Attr("Gravity", func(w *WorldBase) *float64 { return &w.Gravity }, -9.81).SetDesc("Vertical gravitational acceleration"),
				rtti.Attr("Speed", func(w *WorldBase) *float32 { return &w.Speed }, 1).SetDesc("Simulation speed relative to real time"),
				rtti.Attr("Active", func(w *WorldBase) *bool { return &w.Active }, true).SetDesc("Whether the simulation is running"),
			),
		rtti.NewClass[WorldNull]("PLPhysics::WorldNull").
			Module(PhysicsModule).
			Base(WorldClassName).
			Desc("Physics world backend that only advances its time").
			DefaultConstructor().
			Methods(rtti.Method("Step", (*WorldNull).Step)),

		rtti.NewClass[SoundManagerBase](SoundManagerClassName).
			Module(SoundModule).
			Base(rtti.ObjectClassName).
			Desc("Abstract sound manager backend").
			Attributes(
				rtti.Attr("Volume", func(sm *SoundManagerBase) *float32 { return &sm.Volume }, 1).SetDesc("Master volume"),
				rtti.Attr("Pitch", func(sm *SoundManagerBase) *float32 { return &sm.Pitch }, 1).SetDesc("Master pitch multiplier"),
			),
		rtti.NewClass[SoundManagerNull]("PLSound::SoundManagerNull").
			Module(SoundModule).
			Base(SoundManagerClassName).
			Desc("Sound manager backend that does not play anything").
			DefaultConstructor().
			Methods(
				rtti.Method("Play", (*SoundManagerNull).Play),
				rtti.Method("Stop", (*SoundManagerNull).Stop),
			),
	)
}
