// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"pixellight.org/core/backend"
	"pixellight.org/core/rtti"
	"pixellight.org/core/script"
)

// class returns the class with the given name, or an error
// suggesting similar class names if there is none.
func (a *app) class(name string) (*rtti.Class, error) {
	c := a.classes.Class(name)
	if c != nil {
		return c, nil
	}
	err := fmt.Errorf("unknown class %q", name)
	if s := a.classes.Suggest(name, 3); len(s) > 0 {
		err = fmt.Errorf("%w; did you mean %s?", err, strings.Join(s, ", "))
	}
	return nil, err
}

func (a *app) classesCmd() *cobra.Command {
	var abstract bool
	cmd := &cobra.Command{
		Use:   "classes [base class]",
		Short: "List the registered classes derived from a base class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := rtti.ObjectClassName
			if len(args) > 0 {
				base = args[0]
			}
			if _, err := a.class(base); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range a.classes.Classes(base, true, true, abstract) {
				fmt.Fprintf(out, "%s\t%s\n", c.Name, c.Module)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&abstract, "abstract", "a", false, "include abstract classes")
	return cmd
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <class>",
		Short: "Describe a registered class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.class(args[0])
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

// describe writes a description of the given class to the given writer.
func describe(w io.Writer, c *rtti.Class) {
	out := termenv.NewOutput(w)
	heading := func(s string) {
		fmt.Fprintln(out, out.String(s).Bold())
	}
	heading(c.Name)
	if c.Description != "" {
		fmt.Fprintln(out, "  "+c.Description)
	}
	fmt.Fprintf(out, "  module: %s\n", c.Module)
	if b := c.Base(); b != nil {
		fmt.Fprintf(out, "  base: %s\n", b.Name)
	} else if c.BaseName != "" {
		fmt.Fprintf(out, "  base: %s (not registered)\n", c.BaseName)
	}
	if c.IsAbstract() {
		fmt.Fprintln(out, "  abstract")
	}
	if c.Properties.Len() > 0 {
		heading("Properties")
		for k, v := range c.Properties.All() {
			fmt.Fprintf(out, "  %s = %q\n", k, v)
		}
	}
	if attrs := c.Attributes(); len(attrs) > 0 {
		heading("Attributes")
		for _, vd := range attrs {
			fmt.Fprintf(out, "  %s %s = %q", vd.Name, vd.Type.Name, vd.Default)
			describeMember(out, vd.Description)
		}
	}
	if ctors := c.Constructors(); len(ctors) > 0 {
		heading("Constructors")
		for _, cd := range ctors {
			fmt.Fprintf(out, "  %s%s", cd.Name, strings.TrimPrefix(cd.Signature(), "func"))
			describeMember(out, cd.Description)
		}
	}
	if methods := c.Methods(); len(methods) > 0 {
		heading("Methods")
		for _, md := range methods {
			fmt.Fprintf(out, "  %s%s", md.Name, strings.TrimPrefix(md.Signature(), "func"))
			describeMember(out, md.Description)
		}
	}
	if signals := c.Signals(); len(signals) > 0 {
		heading("Signals")
		for _, sd := range signals {
			fmt.Fprintf(out, "  %s(%s)", sd.Name, sd.ArgType)
			describeMember(out, sd.Description)
		}
	}
	if slots := c.Slots(); len(slots) > 0 {
		heading("Slots")
		for _, sd := range slots {
			fmt.Fprintf(out, "  %s(%s)", sd.Name, sd.ArgType)
			describeMember(out, sd.Description)
		}
	}
	if derived := c.Derived(); len(derived) > 0 {
		heading("Derived")
		for _, d := range derived {
			fmt.Fprintln(out, "  "+d.Name)
		}
	}
}

// describeMember ends the line of a member with its description, if any.
func describeMember(w io.Writer, desc string) {
	if desc != "" {
		fmt.Fprintf(w, "  // %s", desc)
	}
	fmt.Fprintln(w)
}

func (a *app) createCmd() *cobra.Command {
	var ctor string
	var yaml bool
	cmd := &cobra.Command{
		Use:   `create <class> [Name="Value"...]`,
		Short: "Create an object of a class and print its attribute values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.class(args[0])
			if err != nil {
				return err
			}
			ps := strings.Join(args[1:], " ")
			var obj rtti.Object
			if ctor != "" {
				obj = c.CreateWith(ctor, ps)
			} else {
				obj = c.Create(ps)
			}
			if obj == nil {
				return fmt.Errorf("unable to create an object of class %s", c.Name)
			}
			defer obj.AsObject().Destroy()
			return printValues(cmd.OutOrStdout(), obj, yaml)
		},
	}
	cmd.Flags().StringVarP(&ctor, "constructor", "c", "", "the name of the constructor to use")
	cmd.Flags().BoolVar(&yaml, "yaml", false, "print the attribute values as YAML")
	return cmd
}

// printValues prints all of the attribute values of the given object.
func printValues(w io.Writer, obj rtti.Object, yaml bool) error {
	if yaml {
		b, err := rtti.MarshalValues(obj, true)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n", rtti.Format(obj), obj.AsObject().Values(true))
	return err
}

func (a *app) pluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the registered plugins and the modules of the registered classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range a.loader.Plugins() {
				fmt.Fprintf(out, "plugin %s\n", p)
			}
			for _, md := range a.classes.Modules() {
				fmt.Fprintf(out, "module %s\t%d classes\t%s\n", md.Name, len(md.Classes()), md.Vendor)
			}
			return nil
		},
	}
}

func (a *app) backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "Create the configured backends and print their attribute values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs := a.config.Backends
			for _, b := range []struct{ base, class string }{
				{backend.RendererClassName, bs.Renderer},
				{backend.WorldClassName, bs.Physics},
				{backend.SoundManagerClassName, bs.Sound},
			} {
				obj, err := backend.NewIn(a.classes, b.base, b.class, "")
				if err != nil {
					return err
				}
				err = printValues(cmd.OutOrStdout(), obj, false)
				obj.AsObject().Destroy()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script file>",
		Short: "Run a script file and print its global variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sm := script.NewManager(a.classes)
			defer sm.Close()
			l, err := sm.CreateFromFile(args[0])
			if err != nil {
				return err
			}
			defer l.AsObject().Destroy()
			if err := l.Execute(); err != nil {
				return err
			}
			s := l.AsScript()
			for _, g := range s.Globals() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", g, s.Global(g))
			}
			return nil
		},
	}
}
