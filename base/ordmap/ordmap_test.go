// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("Renderer", 1)
	om.Add("Physics", 2)
	om.Add("Sound", 3)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"Renderer", "Physics", "Sound"}, om.Keys())

	om.Add("Renderer", 10)
	assert.Equal(t, []int{10, 2, 3}, om.Values())

	assert.False(t, om.AddIfMissing("Physics", 20))
	assert.Equal(t, 2, om.ValueByKey("Physics"))
	assert.True(t, om.AddIfMissing("Script", 4))

	_, ok := om.ValueByKeyTry("GUI")
	assert.False(t, ok)
	assert.Equal(t, -1, om.IndexByKey("GUI"))

	assert.True(t, om.DeleteKey("Physics"))
	assert.False(t, om.DeleteKey("Physics"))
	assert.Equal(t, []string{"Renderer", "Sound", "Script"}, om.Keys())
	assert.Equal(t, 1, om.IndexByKey("Sound"))
	assert.Equal(t, 4, om.ValueByKey("Script"))

	var keys []string
	for k := range om.All() {
		keys = append(keys, k)
		if k == "Sound" {
			break
		}
	}
	assert.Equal(t, []string{"Renderer", "Sound"}, keys)
}

func TestNilMap(t *testing.T) {
	var om *Map[string, int]
	assert.Equal(t, 0, om.Len())
	assert.Equal(t, 0, om.ValueByKey("x"))
	assert.Equal(t, -1, om.IndexByKey("x"))

	var zero Map[string, int]
	zero.Add("a", 1)
	assert.Equal(t, 1, zero.ValueByKey("a"))
}
