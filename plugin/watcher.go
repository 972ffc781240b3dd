// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plugin

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"pixellight.org/core/base/errors"
	"pixellight.org/core/base/fsx"
	"pixellight.org/core/signal"
)

// Watcher applies plugin manifests as they are created, changed,
// and removed in a set of directories. The signals of a Watcher are
// emitted on its own goroutine.
type Watcher struct {

	// Applied is emitted with each manifest applied after it was
	// created or changed.
	Applied signal.Signal[*Manifest]

	// Removed is emitted with the plugin name of each
	// manifest that was removed.
	Removed signal.Signal[string]

	loader  *Loader
	watcher *fsnotify.Watcher

	// channel to close the watcher goroutine
	done chan bool

	// mu protects names
	mu sync.Mutex

	// names are the plugin names of the known manifests, by file path.
	names map[string]string
}

// Watch applies all of the plugin manifests in the given directories
// with the [Default] loader, and then watches them; see [Loader.Watch].
func Watch(dirs ...string) (*Watcher, error) {
	return Default.Watch(dirs...)
}

// Watch applies all of the plugin manifests in the given directories,
// in which a leading ~ is expanded, and then watches the directories
// for changes to them. A created or changed manifest is applied again,
// and the plugin of a removed manifest is unloaded.
func (l *Loader) Watch(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{loader: l, watcher: fw, names: map[string]string{}}
	w.Applied.Name = "Applied"
	w.Removed.Name = "Removed"
	for _, dir := range dirs {
		dir = fsx.Expand(dir)
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
		for _, fn := range fsx.GlobFS(os.DirFS(dir), ManifestPatterns...) {
			w.apply(filepath.Join(dir, fn))
		}
	}
	w.watch()
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
	return w.watcher.Close()
}

func (w *Watcher) watch() {
	w.done = make(chan bool)
	go func() {
		watch := w.watcher
		done := w.done
		for {
			select {
			case <-done:
				return
			case event, ok := <-watch.Events:
				if !ok {
					return
				}
				if !IsManifest(event.Name) {
					continue
				}
				switch {
				case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
					w.apply(event.Name)
				case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
					w.remove(event.Name)
				}
			case err, ok := <-watch.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
}

// apply applies the manifest in the given file. A manifest that
// no longer names the plugin it named before unloads that plugin.
func (w *Watcher) apply(fpath string) {
	if !manifestExists(fpath) {
		slog.Debug("plugin.Watcher: manifest no longer exists", "file", fpath)
		return
	}
	m, err := OpenManifest(fpath)
	if err != nil {
		slog.Warn("plugin.Watcher: skipping manifest", "file", fpath, "err", err)
		return
	}
	w.mu.Lock()
	prev := w.names[fpath]
	w.names[fpath] = m.Name
	w.mu.Unlock()
	if prev != "" && prev != m.Name {
		w.loader.Unload(prev)
	}
	if err := w.loader.Apply(m); err != nil {
		slog.Warn("plugin.Watcher: skipping manifest", "file", fpath, "err", err)
		return
	}
	w.Applied.Emit(m)
}

func (w *Watcher) remove(fpath string) {
	w.mu.Lock()
	name, has := w.names[fpath]
	delete(w.names, fpath)
	w.mu.Unlock()
	if !has {
		return
	}
	w.loader.Unload(name)
	w.Removed.Emit(name)
}

// manifestExists returns whether the manifest file at the given path
// still exists, as it may be gone by the time its event is handled.
func manifestExists(fpath string) bool {
	fsys, fname, err := fsx.DirFS(fpath)
	if err != nil {
		return false
	}
	return errors.Log1(fsx.FileExistsFS(fsys, fname))
}
