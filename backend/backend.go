// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backend provides the abstract classes of the renderer,
// physics, and sound backends, which are implemented by reflective
// classes typically provided by plugins, and the creation of backends
// by class name. Any class derived from the abstract class of a kind
// of backend can be used as a backend of that kind.
package backend

import (
	"fmt"
	"log/slog"

	"pixellight.org/core/rtti"
	"pixellight.org/core/signal"
)

const (
	// RendererClassName is the name of the abstract class of renderers.
	RendererClassName = "PLRenderer::Renderer"

	// WorldClassName is the name of the abstract class of physics worlds.
	WorldClassName = "PLPhysics::World"

	// SoundManagerClassName is the name of the abstract class of sound managers.
	SoundManagerClassName = "PLSound::SoundManager"
)

// Renderer is the interface implemented by all renderers.
type Renderer interface {
	rtti.Object

	// AsRenderer returns the [RendererBase] of the renderer.
	AsRenderer() *RendererBase

	// BeginFrame begins rendering a frame, returning false if
	// the renderer is unable to render.
	BeginFrame() bool

	// EndFrame ends rendering the current frame.
	EndFrame()
}

// RendererBase is the base type of all renderers.
type RendererBase struct {
	rtti.ObjectBase

	// Width is the width of the render target, in pixels.
	Width int

	// Height is the height of the render target, in pixels.
	Height int

	// VSync is whether to synchronize frames to the vertical refresh.
	VSync bool

	// Features are the optional features to render.
	Features RendererFeatures

	// FrameEnded is emitted with the number of frames
	// rendered after the end of each frame.
	FrameEnded signal.Signal[int] `copier:"-"`

	// Frames is the number of frames rendered.
	Frames int `copier:"-"`
}

func (r *RendererBase) AsRenderer() *RendererBase {
	return r
}

// EndFrame counts the frame and emits [RendererBase.FrameEnded].
func (r *RendererBase) EndFrame() {
	r.Frames++
	r.FrameEnded.Emit(r.Frames)
}

// World is the interface implemented by all physics worlds.
type World interface {
	rtti.Object

	// AsWorld returns the [WorldBase] of the world.
	AsWorld() *WorldBase

	// Step advances the simulation by the given time in seconds.
	Step(dt float64)
}

// WorldBase is the base type of all physics worlds.
type WorldBase struct {
	rtti.ObjectBase

	// Gravity is the vertical gravitational acceleration, in m/s².
	Gravity float64

	// Speed is the speed of the simulation relative to real time.
	Speed float32

	// Active is whether the simulation is running.
	Active bool

	// Time is the simulated time, in seconds.
	Time float64 `copier:"-"`
}

func (w *WorldBase) AsWorld() *WorldBase {
	return w
}

// SoundManager is the interface implemented by all sound managers.
type SoundManager interface {
	rtti.Object

	// AsSoundManager returns the [SoundManagerBase] of the sound manager.
	AsSoundManager() *SoundManagerBase

	// Play starts playing the sound with the given name,
	// returning false if it can not be played.
	Play(name string) bool

	// Stop stops playing the sound with the given name.
	Stop(name string)
}

// SoundManagerBase is the base type of all sound managers.
type SoundManagerBase struct {
	rtti.ObjectBase

	// Volume is the master volume, from 0 to 1.
	Volume float32

	// Pitch is the master pitch multiplier.
	Pitch float32
}

func (sm *SoundManagerBase) AsSoundManager() *SoundManagerBase {
	return sm
}

// New returns a new backend object of the class with the given name
// in [rtti.Classes], created with the given parameter string, which
// must be derived from the class with the given base name; see [NewIn].
func New(base, className, ps string) (rtti.Object, error) {
	return NewIn(rtti.Classes, base, className, ps)
}

// NewIn returns a new backend object of the class with the given name
// in the given class manager, created with the given parameter string
// (see [rtti.Class.Create]). The class must be derived from the class
// with the given base name.
func NewIn(m *rtti.Manager, base, className, ps string) (rtti.Object, error) {
	c := m.Class(className)
	if c == nil {
		return nil, fmt.Errorf("backend: unknown class %q", className)
	}
	if !c.IsDerivedFrom(base) {
		return nil, fmt.Errorf("backend: class %q is not derived from %q", className, base)
	}
	obj := c.Create(ps)
	if obj == nil {
		return nil, fmt.Errorf("backend: class %q can not be created", className)
	}
	slog.Debug("backend: created", "base", base, "class", className)
	return obj, nil
}

// newAs returns a new backend object as the given backend interface.
func newAs[T any](m *rtti.Manager, base, className, ps string) (T, error) {
	var zero T
	obj, err := NewIn(m, base, className, ps)
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		obj.AsObject().Destroy()
		return zero, fmt.Errorf("backend: class %q does not implement %T", className, &zero)
	}
	return t, nil
}

// NewRenderer returns a new renderer of the class with the given name in
// the given class manager, created with the given parameter string.
func NewRenderer(m *rtti.Manager, className, ps string) (Renderer, error) {
	return newAs[Renderer](m, RendererClassName, className, ps)
}

// NewWorld returns a new physics world of the class with the given name
// in the given class manager, created with the given parameter string.
func NewWorld(m *rtti.Manager, className, ps string) (World, error) {
	return newAs[World](m, WorldClassName, className, ps)
}

// NewSoundManager returns a new sound manager of the class with the given
// name in the given class manager, created with the given parameter string.
func NewSoundManager(m *rtti.Manager, className, ps string) (SoundManager, error) {
	return newAs[SoundManager](m, SoundManagerClassName, className, ps)
}

// Available returns the names of the classes in the given class manager
// that can be created as backends of the kind with the given base name.
func Available(m *rtti.Manager, base string) []string {
	var res []string
	for _, c := range m.Classes(base, true, false, false) {
		res = append(res, c.Name)
	}
	return res
}
