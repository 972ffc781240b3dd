// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plcore inspects the reflective classes of the PixelLight core
// and the plugins configured for it, and creates objects of them.
package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "pixellight.org/core/backend"
	"pixellight.org/core/base/errors"
	"pixellight.org/core/base/logx"
	"pixellight.org/core/config"
	"pixellight.org/core/plugin"
	"pixellight.org/core/rtti"
)

func main() {
	if err := newRootCmd(rtti.Classes, plugin.Default).Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by the commands.
type app struct {
	classes *rtti.Manager
	loader  *plugin.Loader
	config  *config.Config

	configFile string
	verbosity  int
	quiet      bool
}

func newRootCmd(classes *rtti.Manager, loader *plugin.Loader) *cobra.Command {
	a := &app{classes: classes, loader: loader}
	root := &cobra.Command{
		Use:          "plcore",
		Short:        "Inspect and create the reflective classes of the PixelLight core",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "TOML config file")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "show info (-v) or debug (-vv) messages")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "only show error messages")
	root.AddCommand(a.classesCmd(), a.describeCmd(), a.createCmd(), a.pluginsCmd(), a.backendsCmd(), a.runCmd())
	return root
}

// setup loads the config and the plugins it configures.
func (a *app) setup(cmd *cobra.Command) error {
	a.config = config.New()
	if a.configFile != "" {
		c, err := config.Open(a.configFile)
		if err != nil {
			return err
		}
		a.config = c
	}
	if a.verbosity > 0 || a.quiet {
		a.config.LogLevel = logx.LevelFromFlags(a.verbosity >= 2, a.verbosity == 1, a.quiet).String()
	}
	logx.UserLevel = logx.LevelFromString(a.config.LogLevel)
	logx.SetDefaultLogger()
	a.config.Watch = false
	// manifests that can not be applied are logged by the loader
	errors.Ignore1(a.config.Apply(a.loader))
	return nil
}
