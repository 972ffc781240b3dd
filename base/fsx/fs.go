// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/mitchellh/go-homedir"

	"pixellight.org/core/base/errors"
)

// Sub returns [fs.Sub] with any error automatically logged
// for cases where the directory is hardcoded and there is
// no chance of error.
func Sub(fsys fs.FS, dir string) fs.FS {
	return errors.Log1(fs.Sub(fsys, dir))
}

// Expand returns the given path with a leading ~ expanded to the
// home directory of the user, cleaned. Any error is logged, in which
// case the path is returned as is.
func Expand(path string) string {
	if path == "" {
		return path
	}
	ep, err := homedir.Expand(path)
	if errors.Log(err) != nil {
		return path
	}
	return filepath.Clean(ep)
}

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string.  These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
func DirFS(fpath string) (fs.FS, string, error) {
	fabs, err := filepath.Abs(Expand(fpath))
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	dfs := os.DirFS(dir)
	return dfs, fname, nil
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		fp.Close()
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// GlobFS returns the sorted names of the files in the given filesystem
// that match any of the given patterns (see [fs.Glob]), without
// duplicates. Malformed patterns are logged and skipped.
func GlobFS(fsys fs.FS, patterns ...string) []string {
	var res []string
	for _, pat := range patterns {
		res = append(res, errors.Log1(fs.Glob(fsys, pat))...)
	}
	slices.Sort(res)
	return slices.Compact(res)
}
