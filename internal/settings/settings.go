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

// Package settings loads hairball settings files.
//
// Settings are written in HCL. Expressions can refer to the variable cpus, the number
// of logical CPUs:
//
//	workers              = cpus
//	checks               = ["deadcode", "broadcast", "initialization"]
//	duplicate_min_blocks = 3
//	default_sprite_names = ["Sprite", "Objeto"]
//	log_level            = "info"
//	log_format           = "text"
//
// All attributes are optional.
package settings

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/ucsb-cs-education/hairball/analyzer"
	"github.com/ucsb-cs-education/hairball/internal/config"
)

// Settings represents the content of a settings file. Unset attributes are nil.
type Settings struct {
	// Workers is the number of projects analyzed concurrently.
	Workers *int `hcl:"workers,optional"`
	// Checks are the names of the enabled checks.
	Checks *[]string `hcl:"checks,optional"`
	// DuplicateMinBlocks is the size a script must exceed to be reported as duplicate.
	DuplicateMinBlocks *int `hcl:"duplicate_min_blocks,optional"`
	// DefaultSpriteNames are the sprite name prefixes considered default names.
	DefaultSpriteNames *[]string `hcl:"default_sprite_names,optional"`
	// LogLevel is the minimum level of log messages.
	LogLevel *string `hcl:"log_level,optional"`
	// LogFormat is "text" or "json".
	LogFormat *string `hcl:"log_format,optional"`
}

// Load parses and decodes the named settings file.
func Load(filename string) (Settings, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}

	return decode(f, filename)
}

// Parse parses and decodes settings from src. The filename is used in diagnostics only.
func Parse(src []byte, filename string) (Settings, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", filename, diags)
	}

	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (Settings, error) {
	var s Settings
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &s); diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to decode settings %s: %w", filename, diags)
	}

	if err := s.validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings %s: %w", filename, err)
	}

	return s, nil
}

// evalContext exposes the variables usable in settings expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

func (s Settings) validate() error {
	if s.Workers != nil && *s.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", *s.Workers)
	}

	if s.Checks != nil {
		if _, err := config.ParseChecks(*s.Checks); err != nil {
			return err
		}
	}

	if s.DuplicateMinBlocks != nil && *s.DuplicateMinBlocks < 0 {
		return fmt.Errorf("duplicate_min_blocks must not be negative, got %d", *s.DuplicateMinBlocks)
	}

	if s.LogLevel != nil {
		if _, err := s.Level(); err != nil {
			return err
		}
	}

	if s.LogFormat != nil && *s.LogFormat != "text" && *s.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", *s.LogFormat)
	}

	return nil
}

// Level returns the configured log level, [slog.LevelInfo] when unset.
func (s Settings) Level() (slog.Level, error) {
	var level slog.Level
	if s.LogLevel == nil {
		return level, nil
	}

	if err := level.UnmarshalText([]byte(*s.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", *s.LogLevel, err)
	}

	return level, nil
}

// Options converts [Settings] into a list of [analyzer.Option] for the hairball analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Checks, func(names []string) analyzer.Option { return analyzer.WithChecks(names...) })
	opts = appendOption(opts, s.DuplicateMinBlocks, analyzer.WithMinDuplicateBlocks)
	opts = appendOption(opts, s.DefaultSpriteNames, func(names []string) analyzer.Option {
		return analyzer.WithDefaultNames(names...)
	})

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
