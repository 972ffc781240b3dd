// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "plugins"), Expand("~/plugins/"))
	assert.Equal(t, filepath.Clean("a/b"), Expand("a//b/./"))
	assert.Equal(t, "", Expand(""))
	assert.Equal(t, "~user/x", Expand("~user/x"))
}

func TestFileExistsFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt":   {Data: []byte("a")},
		"dir/b.x": {Data: []byte("b")},
	}
	ok, err := FileExistsFS(fsys, "a.txt")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExistsFS(fsys, "dir")
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExistsFS(fsys, "c.txt")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGlobFS(t *testing.T) {
	fsys := fstest.MapFS{
		"b.plugin.toml": {},
		"a.plugin.yaml": {},
		"c.txt":         {},
	}
	assert.Equal(t, []string{"a.plugin.yaml", "b.plugin.toml"}, GlobFS(fsys, "*.plugin.*", "*.plugin.toml"))
	assert.Empty(t, GlobFS(fsys, "*.go"))
	assert.Empty(t, GlobFS(fsys, "[", "*.go"))
}

func TestSub(t *testing.T) {
	fsys := fstest.MapFS{"dir/b.x": {Data: []byte("b")}}
	ok, err := FileExistsFS(Sub(fsys, "dir"), "b.x")
	assert.NoError(t, err)
	assert.True(t, ok)
}
