// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixellight.org/core/base/ordmap"
)

func TestParse(t *testing.T) {
	m := Parse(`Name="foo" Count="3"`)
	assert.Equal(t, []string{"Name", "Count"}, m.Keys())
	assert.Equal(t, "foo", m.ValueByKey("Name"))
	assert.Equal(t, "3", m.ValueByKey("Count"))

	m = Parse(`Title="Hello World"  Empty="" Bare=1 Single='a "b"'`)
	assert.Equal(t, "Hello World", m.ValueByKey("Title"))
	assert.Equal(t, "", m.ValueByKey("Empty"))
	assert.Equal(t, "1", m.ValueByKey("Bare"))
	assert.Equal(t, `a "b"`, m.ValueByKey("Single"))
	assert.Equal(t, 4, m.Len())

	m = Parse(`Name="a" Name="b" stray`)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "b", m.ValueByKey("Name"))

	m = Parse(`Expr="a=b"`)
	assert.Equal(t, "a=b", m.ValueByKey("Expr"))
}

func TestParseOperators(t *testing.T) {
	m := Parse(`Flags=A|B Cmd=a;b Redirect=x>y Both=1&2 Quoted="c|d" Single='e;f'`)
	assert.Equal(t, []string{"Flags", "Cmd", "Redirect", "Both", "Quoted", "Single"}, m.Keys())
	assert.Equal(t, "A|B", m.ValueByKey("Flags"))
	assert.Equal(t, "a;b", m.ValueByKey("Cmd"))
	assert.Equal(t, "x>y", m.ValueByKey("Redirect"))
	assert.Equal(t, "1&2", m.ValueByKey("Both"))
	assert.Equal(t, "c|d", m.ValueByKey("Quoted"))
	assert.Equal(t, "e;f", m.ValueByKey("Single"))

	m = Parse(`Path="a\"|b" Next=1`)
	assert.Equal(t, `a"|b`, m.ValueByKey("Path"))
	assert.Equal(t, "1", m.ValueByKey("Next"))
}

func TestParseMalformed(t *testing.T) {
	assert.Equal(t, 0, Parse(`Name="unterminated`).Len())
	assert.Equal(t, 0, Parse("").Len())
	assert.Equal(t, 0, Parse("   ").Len())
	assert.Equal(t, 0, Parse(`="x"`).Len())
}

func TestFormat(t *testing.T) {
	m := ordmap.New[string, string]()
	m.Add("Name", `say "hi"`)
	m.Add("Path", `C:\data`)
	m.Add("Count", "3")
	s := Format(m)
	assert.Equal(t, `Name="say \"hi\"" Path="C:\\data" Count="3"`, s)

	back := Parse(s)
	assert.Equal(t, m.Keys(), back.Keys())
	assert.Equal(t, m.Values(), back.Values())

	assert.Equal(t, `Name="x y"`, Pair("Name", "x y"))
}
