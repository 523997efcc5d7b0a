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

package analyzer

import (
	"log/slog"
	"slices"

	"github.com/ucsb-cs-education/hairball/internal/config"
)

// Option configures specific behavior of a [New] hairball analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithChecks is an [Option] enabling exactly the named checks.
// Valid names are "deadcode", "broadcast", "initialization", "variables", "blocks", "duplicates" and "naming";
// unknown names are ignored.
func WithChecks(names ...string) Option { return checksOption{names: slices.Clone(names)} }

type checksOption struct{ names []string }

func (o checksOption) apply(r *runOptions) {
	var checks config.CheckSet

	for _, name := range o.names {
		if c, err := config.ParseCheck(name); err == nil {
			checks.Set(c, true)
		}
	}

	r.checks = checks
}

func (o checksOption) LogAttr() slog.Attr {
	return slog.Any("checks", o.names)
}

// WithDeadCode is an [Option] to configure whether dead scripts are reported.
func WithDeadCode(enabled bool) Option { return checkOption{config.DeadCode, enabled} }

// WithBroadcast is an [Option] to configure whether message wiring problems are reported.
func WithBroadcast(enabled bool) Option { return checkOption{config.Broadcast, enabled} }

// WithInitialization is an [Option] to configure whether attribute initialization is reported.
func WithInitialization(enabled bool) Option { return checkOption{config.Initialization, enabled} }

// WithVariables is an [Option] to configure whether variable initialization is reported.
func WithVariables(enabled bool) Option { return checkOption{config.Variables, enabled} }

// WithBlocks is an [Option] to configure whether operation counts are reported.
func WithBlocks(enabled bool) Option { return checkOption{config.Blocks, enabled} }

// WithDuplicates is an [Option] to configure whether duplicate scripts are reported.
func WithDuplicates(enabled bool) Option { return checkOption{config.Duplicates, enabled} }

// WithNaming is an [Option] to configure whether sprites with default names are reported.
func WithNaming(enabled bool) Option { return checkOption{config.Naming, enabled} }

type checkOption struct {
	check   config.Checks
	enabled bool
}

func (o checkOption) apply(r *runOptions) {
	r.checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.check.String(), o.enabled)
}

// WithMinDuplicateBlocks is an [Option] to configure the size a script must exceed to be reported as duplicate.
func WithMinDuplicateBlocks(minBlocks int) Option { return minDuplicateOption{minBlocks: minBlocks} }

type minDuplicateOption struct{ minBlocks int }

func (o minDuplicateOption) apply(r *runOptions) {
	r.minDuplicateBlocks = o.minBlocks
}

func (o minDuplicateOption) LogAttr() slog.Attr {
	return slog.Int("min-duplicate-blocks", o.minBlocks)
}

// WithDefaultNames is an [Option] to configure the sprite name prefixes considered default names.
func WithDefaultNames(names ...string) Option { return defaultNamesOption{names: slices.Clone(names)} }

type defaultNamesOption struct{ names []string }

func (o defaultNamesOption) apply(r *runOptions) {
	r.defaultNames = slices.Clone(o.names)
}

func (o defaultNamesOption) LogAttr() slog.Attr {
	return slog.Any("default-names", o.names)
}
