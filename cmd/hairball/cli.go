// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ucsb-cs-education/hairball/analyzer"
	"github.com/ucsb-cs-education/hairball/internal/settings"
)

// checkFlags are the per-check toggles, in reporting order.
var checkFlags = [...]struct {
	name   string
	usage  string
	option func(bool) analyzer.Option
}{
	{"deadcode", "Report scripts that can never run", analyzer.WithDeadCode},
	{"broadcast", "Report message wiring problems", analyzer.WithBroadcast},
	{"initialization", "Report attribute initialization", analyzer.WithInitialization},
	{"variables", "Report variable initialization", analyzer.WithVariables},
	{"blocks", "Report operation counts", analyzer.WithBlocks},
	{"duplicates", "Report duplicate scripts", analyzer.WithDuplicates},
	{"naming", "Report sprites with default names", analyzer.WithNaming},
}

// cliConfig is the result of merging the settings file and command line flags.
type cliConfig struct {
	paths     []string
	workers   int
	json      bool
	quiet     bool
	logLevel  slog.Level
	logFormat string
	options   analyzer.Options
}

// parseArgs processes command line arguments. It returns the merged configuration,
// a boolean indicating if the program should exit cleanly, or an error.
func parseArgs(args []string, output io.Writer) (*cliConfig, bool, error) {
	fs := pflag.NewFlagSet("hairball", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.Usage = func() {
		fmt.Fprint(output, `hairball - static analysis of block-based programs.

Usage:
  hairball [flags] PATH...

Arguments:
  PATH
    A model dump or a directory containing *.json model dumps.

Flags:
`)
		fs.PrintDefaults()
	}

	var (
		configFile = fs.StringP("config", "c", "", "Settings file (HCL)")
		workers    = fs.IntP("workers", "w", runtime.NumCPU(), "Number of projects analyzed concurrently")
		jsonOut    = fs.BoolP("json", "j", false, "Output reports as JSON")
		quiet      = fs.BoolP("quiet", "q", false, "Only print totals")
		minBlocks  = fs.Int("min-duplicate-blocks", 0, "Size a script must exceed to be reported as duplicate")
		logLevel   = fs.String("log-level", "info", "Logging level: debug, info, warn or error")
		logFormat  = fs.String("log-format", "text", "Log output format: text or json")
	)

	checks := make([]*bool, len(checkFlags))
	for i, c := range checkFlags {
		checks[i] = fs.Bool(c.name, true, c.usage)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, usageError(err)
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return nil, false, usageError(errors.New("no paths given"))
	}

	var s settings.Settings
	if *configFile != "" {
		var err error
		if s, err = settings.Load(*configFile); err != nil {
			return nil, false, usageError(err)
		}
	}

	c := &cliConfig{
		paths:     fs.Args(),
		workers:   *workers,
		json:      *jsonOut,
		quiet:     *quiet,
		logFormat: "text",
	}

	// Settings apply first, explicitly set flags override them.
	c.options = append(c.options, s.Options()...)

	if s.Workers != nil && !fs.Changed("workers") {
		c.workers = *s.Workers
	}

	if s.LogFormat != nil {
		c.logFormat = *s.LogFormat
	}

	c.logLevel, _ = s.Level() // validated by settings.Load

	if fs.Changed("log-level") {
		if err := c.logLevel.UnmarshalText([]byte(*logLevel)); err != nil {
			return nil, false, usageError(fmt.Errorf("invalid log level %q", *logLevel))
		}
	}

	if fs.Changed("log-format") {
		c.logFormat = strings.ToLower(*logFormat)
	}

	if c.logFormat != "text" && c.logFormat != "json" {
		return nil, false, usageError(fmt.Errorf("invalid log format %q: must be text or json", c.logFormat))
	}

	if c.workers < 1 {
		return nil, false, usageError(fmt.Errorf("workers must be positive, got %d", c.workers))
	}

	if fs.Changed("min-duplicate-blocks") {
		c.options = append(c.options, analyzer.WithMinDuplicateBlocks(*minBlocks))
	}

	for i, flag := range checkFlags {
		if fs.Changed(flag.name) {
			c.options = append(c.options, flag.option(*checks[i]))
		}
	}

	return c, false, nil
}

// newLogger creates a logger with the given level and output format.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
