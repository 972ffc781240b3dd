// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plugin

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pixellight.org/core/base/errors"
	"pixellight.org/core/base/fsx"
	"pixellight.org/core/base/reflectx"
)

// ManifestPatterns are the file name patterns of plugin manifests.
var ManifestPatterns = []string{"*.plugin.toml", "*.plugin.yaml", "*.plugin.yml"}

// Manifest is the content of a plugin manifest file, which directs
// whether and how a registered plugin is loaded.
type Manifest struct {

	// Name is the module name of the plugin.
	Name string `yaml:"Name"`

	// Active is whether the plugin should be loaded.
	Active bool `default:"true" yaml:"Active"`

	// Version is the version of the plugin.
	Version string `yaml:"Version"`

	// CoreVersion is an optional semantic version constraint
	// (eg: ">= 1.0, < 2") on [CoreVersion].
	CoreVersion string `yaml:"CoreVersion"`

	// Vendor, License, and Description override the
	// corresponding module metadata if they are set.
	Vendor      string `yaml:"Vendor"`
	License     string `yaml:"License"`
	Description string `yaml:"Description"`

	// Properties are class property overrides,
	// keyed by full class name and then property key.
	Properties map[string]map[string]string `yaml:"Properties"`

	// Filename is the name of the file the manifest was read from.
	Filename string `toml:"-" yaml:"-"`
}

// IsManifest returns whether the given file name is
// that of a plugin manifest.
func IsManifest(filename string) bool {
	base := path.Base(filename)
	for _, pat := range ManifestPatterns {
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
	}
	return false
}

// ReadManifest reads a manifest from the given data, in TOML or YAML
// format as given by the extension of the given file name.
// Unknown keys are an error.
func ReadManifest(data []byte, filename string) (*Manifest, error) {
	m := &Manifest{Filename: filename}
	errors.Log(reflectx.SetFromDefaultTags(m))
	var err error
	switch path.Ext(filename) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(m)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(m)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = fmt.Errorf("unsupported manifest format %q", path.Ext(filename))
	}
	if err != nil {
		return nil, fmt.Errorf("plugin manifest %s: %w", filename, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("plugin manifest %s: missing Name", filename)
	}
	return m, nil
}

// OpenManifestFS reads the manifest file with the given name
// from the given filesystem; see [ReadManifest].
func OpenManifestFS(fsys fs.FS, filename string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, err
	}
	return ReadManifest(data, filename)
}

// OpenManifest reads the manifest file with the given name; see [ReadManifest].
func OpenManifest(filename string) (*Manifest, error) {
	data, err := os.ReadFile(fsx.Expand(filename))
	if err != nil {
		return nil, err
	}
	return ReadManifest(data, filename)
}

// coreVersion is the parsed [CoreVersion].
var coreVersion = errors.Must1(semver.NewVersion(CoreVersion))

// CheckCoreVersion returns an error if the manifest
// has a CoreVersion constraint that [CoreVersion] does not satisfy.
func (m *Manifest) CheckCoreVersion() error {
	if m.CoreVersion == "" {
		return nil
	}
	c, err := semver.NewConstraint(m.CoreVersion)
	if err != nil {
		return fmt.Errorf("plugin %s: invalid CoreVersion: %w", m.Name, err)
	}
	if !c.Check(coreVersion) {
		return fmt.Errorf("plugin %s: requires core version %s, have %s", m.Name, m.CoreVersion, CoreVersion)
	}
	return nil
}

// Apply applies the given manifest to the plugin it names: the module
// metadata is updated, and the plugin is loaded if the manifest is
// active, or unloaded if not. An active plugin that is already loaded
// is reloaded, so that changed class properties take effect.
func (l *Loader) Apply(m *Manifest) error {
	if err := m.CheckCoreVersion(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	p, has := l.plugins.ValueByKeyTry(m.Name)
	if !has {
		return fmt.Errorf("plugin manifest %s: unknown plugin %q", m.Filename, m.Name)
	}
	p.Manifest = m
	md := p.Module
	if m.Vendor != "" {
		md.Vendor = m.Vendor
	}
	if m.License != "" {
		md.License = m.License
	}
	if m.Description != "" {
		md.Description = m.Description
	}
	if p.loaded {
		l.unload(p)
	}
	if m.Active {
		l.load(p)
	}
	return nil
}

// Scan applies all of the plugin manifests in the given directory, in
// which a leading ~ is expanded; see [Loader.ScanFS].
func (l *Loader) Scan(dir string) error {
	return l.ScanFS(os.DirFS(fsx.Expand(dir)))
}

// ScanFS applies all of the plugin manifests at the root of the given
// filesystem, in file name order. Manifests that can not be read or
// applied are skipped and logged, and returned as a joined error.
func (l *Loader) ScanFS(fsys fs.FS) error {
	var errs []error
	for _, fn := range fsx.GlobFS(fsys, ManifestPatterns...) {
		m, err := OpenManifestFS(fsys, fn)
		if err == nil {
			err = l.Apply(m)
		}
		if err != nil {
			slog.Warn("plugin: skipping manifest", "file", fn, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Scan applies all of the plugin manifests in the given directory
// with the [Default] loader; see [Loader.Scan].
func Scan(dir string) error {
	return Default.Scan(dir)
}
