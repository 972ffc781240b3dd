// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixellight.org/core/base/logx"
	"pixellight.org/core/plugin"
	"pixellight.org/core/rtti"
	"pixellight.org/core/signal"
)

type Gear struct {
	rtti.ObjectBase
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, "WARN", c.LogLevel)
	assert.Equal(t, []string{"~/.pixellight/plugins"}, c.PluginPaths)
	assert.False(t, c.Watch)
	assert.Equal(t, "PLRenderer::RendererNull", c.Backends.Renderer)
	assert.Equal(t, "PLPhysics::WorldNull", c.Backends.Physics)
	assert.Equal(t, "PLSound::SoundManagerNull", c.Backends.Sound)
}

func TestRead(t *testing.T) {
	c, err := Read([]byte(`
LogLevel = "DEBUG"
PluginPaths = ["plugins", "/opt/plugins"]
SignalTrace = true

[Backends]
Renderer = "PLRendererOpenGL::Renderer"
`))
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", c.LogLevel)
	assert.Equal(t, []string{"plugins", "/opt/plugins"}, c.PluginPaths)
	assert.True(t, c.SignalTrace)
	assert.Equal(t, "PLRendererOpenGL::Renderer", c.Backends.Renderer)
	assert.Equal(t, "PLPhysics::WorldNull", c.Backends.Physics)

	_, err = Read([]byte("Nope = 1\n"))
	assert.Error(t, err)
	_, err = Read([]byte("LogLevel = \n"))
	assert.Error(t, err)
}

func TestOpenSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	c := New()
	c.LogLevel = "INFO"
	c.Watch = true
	c.Backends.Sound = "PLSoundOpenAL::SoundManager"
	require.NoError(t, c.Save(fn))

	c2, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, c2)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	defer func() {
		logx.UserLevel = slog.LevelWarn
		signal.Trace = false
	}()
	m := rtti.NewManager()
	l := plugin.NewLoader(m)
	l.Register(&rtti.Module{Name: "Gears"}, func() []*rtti.ClassBuilder {
		return []*rtti.ClassBuilder{rtti.NewClass[Gear]("Gears::Gear").DefaultConstructor()}
	})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gears.plugin.toml"), []byte("Name = \"Gears\"\n"), 0666))
	c := New()
	c.LogLevel = "INFO"
	c.SignalTrace = true
	c.PluginPaths = []string{filepath.Join(dir, "missing"), dir}
	w, err := c.Apply(l)
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.Equal(t, slog.LevelInfo, logx.UserLevel)
	assert.True(t, signal.Trace)
	assert.NotNil(t, m.Class("Gears::Gear"))

	l.Unload("Gears")
	c.Watch = true
	w, err = c.Apply(l)
	require.NoError(t, err)
	require.NotNil(t, w)
	defer w.Close()
	assert.NotNil(t, m.Class("Gears::Gear"))
}
