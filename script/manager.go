// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pixellight.org/core/base/fsx"
	"pixellight.org/core/plugin"
	"pixellight.org/core/rtti"
)

// Manager keeps track of the script languages and script bindings
// of a class manager, picking up the classes of plugins as they are
// loaded and dropping them as they are unloaded.
type Manager struct {
	languages *plugin.Index
	formats   *plugin.Index
	bindings  *plugin.Bindings
}

// NewManager returns a new script [Manager] for the given class
// manager. It must be closed with [Manager.Close] when it is no
// longer needed.
func NewManager(m *rtti.Manager) *Manager {
	return &Manager{
		languages: plugin.NewIndex(m, ClassName, "Language"),
		formats:   plugin.NewIndex(m, ClassName, "Formats"),
		bindings:  plugin.NewBindings(m, BindingClassName),
	}
}

// Close stops following the class manager and destroys the bindings.
func (sm *Manager) Close() {
	sm.languages.Close()
	sm.formats.Close()
	sm.bindings.Close()
}

// Languages returns the names of the available script languages.
func (sm *Manager) Languages() []string {
	return sm.languages.Keys()
}

// Formats returns the file extensions of the scripts
// of all of the available script languages.
func (sm *Manager) Formats() []string {
	return sm.formats.Keys()
}

// LanguageByExtension returns the name of the script language of
// scripts with the given file extension, with or without the leading
// dot, or "" if there is none. The first language loaded for an
// extension takes precedence.
func (sm *Manager) LanguageByExtension(ext string) string {
	c := sm.formats.First(strings.TrimPrefix(ext, "."))
	if c == nil {
		return ""
	}
	return c.Property("Language")
}

// Bindings returns the script binding objects.
func (sm *Manager) Bindings() []rtti.Object {
	return sm.bindings.Objects()
}

// Create returns a new script of the script language with the given
// name, with all of the script bindings added, or nil if there is no
// such language.
func (sm *Manager) Create(language string) Language {
	c := sm.languages.First(language)
	if c == nil {
		slog.Debug("script.Manager: unknown script language", "language", language)
		return nil
	}
	l, ok := c.Create("").(Language)
	if !ok {
		slog.Error("script.Manager: script language class does not create scripts", "class", c.Name)
		return nil
	}
	s := l.AsScript()
	for _, b := range sm.bindings.Objects() {
		s.AddBinding(b)
	}
	return l
}

// CreateFromFile returns a new script of the script language of the
// given file, as given by its extension, with its source code read
// from the file.
func (sm *Manager) CreateFromFile(filename string) (Language, error) {
	ext := filepath.Ext(filename)
	language := sm.LanguageByExtension(ext)
	if language == "" {
		return nil, fmt.Errorf("script: no script language for %q files", ext)
	}
	src, err := os.ReadFile(fsx.Expand(filename))
	if err != nil {
		return nil, err
	}
	l := sm.Create(language)
	if l == nil {
		return nil, fmt.Errorf("script: unable to create a %s script", language)
	}
	l.AsScript().SetSource(string(src))
	return l, nil
}
