// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup
// and user verbosity levels.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString returns the level with the given name
// (debug, info, warn, error), falling back on [slog.LevelWarn].
func LevelFromString(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}

// SetDefaultLogger sets the default logger to be a [Handler]
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that colors the level of each
// record based on the terminal profile of its output, and
// otherwise formats records like a [slog.TextHandler].
type Handler struct {
	*slog.TextHandler
	output *termenv.Output
}

// NewHandler returns a new [Handler] writing to the given writer
// and filtering records below [UserLevel].
func NewHandler(w io.Writer) *Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				lvl, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(levelString(out, lvl))
				}
			}
			return a
		},
	}
	return &Handler{TextHandler: slog.NewTextHandler(w, opts), output: out}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func levelString(out *termenv.Output, lvl slog.Level) string {
	s := lvl.String()
	var c termenv.Color
	switch {
	case lvl >= slog.LevelError:
		c = out.Color("1")
	case lvl >= slog.LevelWarn:
		c = out.Color("3")
	case lvl >= slog.LevelInfo:
		c = out.Color("4")
	default:
		c = out.Color("5")
	}
	return out.String(s).Foreground(c).String()
}
