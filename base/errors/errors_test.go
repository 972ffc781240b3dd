// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog1(t *testing.T) {
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("twelve")))
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 0, Ignore1(strconv.Atoi("x")))
}

func TestMust1(t *testing.T) {
	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
	assert.Panics(t, func() { Must1(strconv.Atoi("three")) })
}

func TestLog(t *testing.T) {
	err := New("logged")
	assert.Same(t, err, Log(err))
	assert.NoError(t, Log(nil))
}
