// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixellight.org/core/base/logx"
	"pixellight.org/core/plugin"
	"pixellight.org/core/rtti"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(rtti.Classes, plugin.NewLoader(rtti.Classes))
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestClasses(t *testing.T) {
	out, err := run(t, "classes")
	require.NoError(t, err)
	assert.Contains(t, out, "PLRenderer::RendererNull\tPLRenderer\n")
	assert.Contains(t, out, "PLCore::ScriptCommand\tPLCore\n")
	assert.NotContains(t, out, "PLRenderer::Renderer\t")

	out, err = run(t, "classes", "-a", "PLRenderer::Renderer")
	require.NoError(t, err)
	assert.Equal(t, "PLRenderer::Renderer\tPLRenderer\nPLRenderer::RendererNull\tPLRenderer\n", out)

	_, err = run(t, "classes", "Nope::Nope")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "PLRenderer::RendererNull")
	require.NoError(t, err)
	assert.Contains(t, out, "base: PLRenderer::Renderer")
	assert.Contains(t, out, `Width int = "640"  // Width of the render target`)
	assert.Contains(t, out, "BeginFrame() bool")
	assert.Contains(t, out, "Destroy()")
	assert.Contains(t, out, "FrameEnded(int)")
	assert.Contains(t, out, "Default() *backend.RendererNull")

	out, err = run(t, "describe", "PLRenderer::Renderer")
	require.NoError(t, err)
	assert.Contains(t, out, "abstract")
	assert.Contains(t, out, "Derived\n  PLRenderer::RendererNull")

	_, err = run(t, "describe", "PLRenderer::RendrerNull")
	assert.ErrorContains(t, err, "did you mean PLRenderer::RendererNull")
}

func TestCreate(t *testing.T) {
	out, err := run(t, "create", "PLPhysics::WorldNull", `Speed="2"`, `Active="false"`)
	require.NoError(t, err)
	assert.Regexp(t, `^PLPhysics::WorldNull@\d+ Gravity="-9.81" Speed="2" Active="false"\n$`, out)

	out, err = run(t, "create", "--yaml", "PLSound::SoundManagerNull")
	require.NoError(t, err)
	assert.Equal(t, "Volume: \"1\"\nPitch: \"1\"\n", out)

	out, err = run(t, "create", "-c", "Default", "PLCore::ScriptCommand")
	require.NoError(t, err)
	assert.Contains(t, out, `Source=""`)

	_, err = run(t, "create", "PLPhysics::World")
	assert.ErrorContains(t, err, "unable to create")
	_, err = run(t, "create", "-c", "Nope", "PLPhysics::WorldNull")
	assert.Error(t, err)
}

func TestPlugins(t *testing.T) {
	out, err := run(t, "plugins")
	require.NoError(t, err)
	assert.Contains(t, out, "module PLCore\t")
	assert.Contains(t, out, "module PLSound\t2 classes\tPixelLight\n")
}

func TestBackends(t *testing.T) {
	out, err := run(t, "backends")
	require.NoError(t, err)
	assert.Contains(t, out, "PLRenderer::RendererNull@")
	assert.Contains(t, out, `Width="640" Height="480" VSync="true"`)
	assert.Contains(t, out, "PLPhysics::WorldNull@")
	assert.Contains(t, out, "PLSound::SoundManagerNull@")

	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[Backends]\nRenderer = \"PLSound::SoundManagerNull\"\n"), 0666))
	_, err = run(t, "--config", fn, "backends")
	assert.ErrorContains(t, err, "not derived from")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "backends")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.cmd")
	require.NoError(t, os.WriteFile(fn, []byte("set a 1\nPL.HasClass PLCore::Script\n"), 0666))
	out, err := run(t, "run", fn)
	require.NoError(t, err)
	assert.Equal(t, "a=1\nresult=true\n", out)

	require.NoError(t, os.WriteFile(fn, []byte("Nope.Nope\n"), 0666))
	_, err = run(t, "run", fn)
	assert.ErrorContains(t, err, "unknown function")
}

func TestVerbosity(t *testing.T) {
	defer func() { logx.UserLevel = slog.LevelWarn }()
	_, err := run(t, "-vv", "plugins")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
	_, err = run(t, "-q", "plugins")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, logx.UserLevel)
	_, err = run(t, "plugins")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, logx.UserLevel)
}
