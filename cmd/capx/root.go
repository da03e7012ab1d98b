/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dirpx.dev/capx"
	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/builder"
	"dirpx.dev/capx/config"
	"dirpx.dev/capx/diag"
)

// errDiagnostics signals that diagnostics were already reported.
var errDiagnostics = errors.New("resolution reported diagnostics")

type options struct {
	dir     string
	tags    string
	tests   bool
	scope   []string
	file    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "capx",
		Short:         "Discover capability providers declared by Go packages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newResolveCmd())
	return root
}

func newResolveCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "resolve <package>[@version]",
		Short: "Print the eligible capability providers of a package, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, args[0])
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.dir, "dir", "", "directory in which the go command is run")
	flags.StringVar(&opts.tags, "tags", "", "comma-separated build tags")
	flags.BoolVar(&opts.tests, "tests", false, "include test files")
	flags.StringSliceVar(&opts.scope, "scope", nil, "import path prefixes whose interfaces are reported as capabilities")
	flags.StringVar(&opts.file, "file", "<cli>", "file name diagnostics are attributed to")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runResolve(cmd *cobra.Command, opts *options, module string) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "capx"})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	copts := []config.Option{
		config.WithDir(opts.dir),
		config.WithTests(opts.tests),
		config.WithCapabilityScope(opts.scope...),
	}
	if tags := strings.TrimSpace(opts.tags); tags != "" {
		copts = append(copts, config.WithBuildFlags("-tags="+tags))
	}
	capx.SetBuilder(builder.New(logger))
	capx.SetConfig(config.NewConfig(copts...))

	sink := diag.NewCollector()
	providers := capx.Resolve(module, apis.Location{File: opts.file, Line: 1, Column: 1}, sink)
	for _, d := range sink.Diagnostics() {
		logger.Error(d.Message, "location", d.Location.String())
	}
	if sink.HasErrors() {
		return errDiagnostics
	}

	out := cmd.OutOrStdout()
	for _, p := range providers {
		if _, err := fmt.Fprintln(out, p.QualifiedName()); err != nil {
			return err
		}
	}
	logger.Debug("done", "module", module, "providers", len(providers))
	return nil
}
