// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Command is the script of the built-in Command script language,
// in which each line is a command of space separated words, quoted
// as in a shell:
//
//	# comment
//	set name value
//	PL.HasClass "PLCore::Script"
//
// The set command sets a global variable, and any other command calls
// the global function with the given name with the remaining words as
// arguments, setting the global variable "result" to its result.
// $name and ${name} are replaced with the value of the global variable
// with the given name.
type Command struct {
	Script
}

// Execute executes the commands of the script, stopping at the
// first command that fails.
func (cs *Command) Execute() error {
	for i, line := range strings.Split(cs.Source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := cs.execute(line); err != nil {
			return fmt.Errorf("script line %d: %w", i+1, err)
		}
	}
	return nil
}

func (cs *Command) execute(line string) error {
	p := shellwords.NewParser()
	p.ParseEnv = true
	p.Getenv = cs.Global
	words, err := p.Parse(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	if words[0] == "set" {
		if len(words) != 3 {
			return fmt.Errorf("set: expected a name and a value, not %d words", len(words)-1)
		}
		cs.SetGlobal(words[1], words[2])
		return nil
	}
	res, err := cs.Call(words[0], words[1:]...)
	if err != nil {
		return err
	}
	cs.SetGlobal("result", res)
	return nil
}
