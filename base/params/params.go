// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params parses and formats parameter strings of the form
//
//	Key1="Value1" Key2="Value2"
//
// which are used for constructor parameters, method parameters and
// for setting object attributes from strings. Values may be double or
// single quoted, or unquoted when they contain no white space.
// Within double quotes, a backslash escapes the next character.
// Shell operator characters such as | and ; are ordinary characters,
// so Flags=A|B is the same as Flags="A|B".
package params

import (
	"log/slog"
	"strings"

	"github.com/mattn/go-shellwords"

	"pixellight.org/core/base/ordmap"
)

// Parse parses the given parameter string into an ordered map of
// keys and values, in the order in which they appear. If a key is
// given more than once, its last value is kept at the position of its
// first occurrence. Tokens that do not have the form key=value are
// skipped. A malformed string (such as one with an unterminated quote)
// results in an empty map; the problem is logged at debug level.
func Parse(s string) *ordmap.Map[string, string] {
	res := ordmap.New[string, string]()
	if strings.TrimSpace(s) == "" {
		return res
	}
	p := shellwords.NewParser()
	args, err := p.Parse(escapeOperators(s))
	if err != nil {
		slog.Debug("params.Parse: malformed parameter string", "params", s, "err", err)
		return res
	}
	if p.Position >= 0 {
		slog.Debug("params.Parse: ignoring rest of parameter string", "params", s, "position", p.Position)
	}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			slog.Debug("params.Parse: skipping token without key", "token", arg)
			continue
		}
		res.Add(key, value)
	}
	return res
}

// escapeOperators escapes the unquoted characters at which
// [shellwords.Parser] stops parsing.
func escapeOperators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var single, double, escaped bool
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && !single:
			escaped = true
		case r == '\'' && !double:
			single = !single
		case r == '"' && !single:
			double = !double
		case !single && !double && strings.ContainsRune(";&|<>", r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Quote returns the given value as a double quoted parameter value,
// escaping backslashes and double quotes.
func Quote(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// Format formats the given ordered keys and values as a parameter
// string that [Parse] turns back into the same keys and values.
func Format(m *ordmap.Map[string, string]) string {
	var b strings.Builder
	for k, v := range m.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(Quote(v))
	}
	return b.String()
}

// Pair formats a single key and value as a parameter string.
func Pair(key, value string) string {
	return key + "=" + Quote(value)
}
