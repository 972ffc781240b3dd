// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct of programs using the reflection core.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"pixellight.org/core/base/errors"
	"pixellight.org/core/base/fsx"
	"pixellight.org/core/base/logx"
	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/plugin"
	"pixellight.org/core/signal"
)

// Config is the main config struct, which is read from a TOML file.
type Config struct {

	// LogLevel is the minimum level of the log messages
	// that are shown (DEBUG, INFO, WARN, or ERROR).
	LogLevel string `default:"WARN"`

	// PluginPaths are the directories that plugin manifests are
	// loaded from, in which a leading ~ is the home directory.
	PluginPaths []string `default:"~/.pixellight/plugins"`

	// Watch is whether to watch the plugin directories for
	// changes to plugin manifests after loading them.
	Watch bool

	// SignalTrace is whether to log a trace of all signals as they are emitted.
	SignalTrace bool

	// Backends are the class names of the default backends.
	Backends Backends
}

// Backends contains the class names of the default backends.
type Backends struct {

	// Renderer is the class name of the renderer.
	Renderer string `default:"PLRenderer::RendererNull"`

	// Physics is the class name of the physics world.
	Physics string `default:"PLPhysics::WorldNull"`

	// Sound is the class name of the sound manager.
	Sound string `default:"PLSound::SoundManagerNull"`
}

// New returns a new [Config] with the default values.
func New() *Config {
	c := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(c))
	return c
}

// Open returns the [Config] read from the given TOML file, in which
// unset fields have their default values. Unknown keys are an error.
func Open(filename string) (*Config, error) {
	data, err := os.ReadFile(fsx.Expand(filename))
	if err != nil {
		return nil, err
	}
	return Read(data)
}

// Read returns the [Config] read from the given TOML data; see [Open].
func Read(data []byte) (*Config, error) {
	c := New()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Save saves the config to the given TOML file.
func (c *Config) Save(filename string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fsx.Expand(filename), data, 0666)
}

// Apply applies the logging and signal settings of the config, and
// then loads the plugins of the manifests in the plugin directories
// with the given loader. If [Config.Watch] is set, it returns the
// watcher of the plugin directories. Plugin directories that do not
// exist are skipped.
func (c *Config) Apply(l *plugin.Loader) (*plugin.Watcher, error) {
	logx.UserLevel = logx.LevelFromString(c.LogLevel)
	signal.Trace = c.SignalTrace
	var dirs []string
	for _, p := range c.PluginPaths {
		p = fsx.Expand(p)
		if fi, err := os.Stat(p); err != nil || !fi.IsDir() {
			continue
		}
		dirs = append(dirs, p)
	}
	if c.Watch {
		return l.Watch(dirs...)
	}
	var errs []error
	for _, dir := range dirs {
		errs = append(errs, l.Scan(dir))
	}
	return nil, errors.Join(errs...)
}
