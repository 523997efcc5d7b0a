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

import "log/slog"

// Public API constants for the hairball analyzer.
const (
	name = "hairball"
	doc  = `hairball detects dead scripts, broadcast wiring errors and uninitialized attributes in block-based programs`
)

// Analyzer runs all analyses on a project and assembles a [Report].
// An Analyzer is immutable and may be used concurrently on distinct projects.
type Analyzer struct {
	opts *runOptions
	desc Options
}

// New creates a new instance of the hairball analyzer.
// Without options, all checks are enabled.
func New(opts ...Option) *Analyzer {
	return &Analyzer{
		opts: makeRunOptions(opts),
		desc: opts,
	}
}

// Name returns the analyzer name.
func (a *Analyzer) Name() string { return name }

// Doc returns a short description of the analyzer.
func (a *Analyzer) Doc() string { return doc }

// Checks returns the names of the enabled checks.
func (a *Analyzer) Checks() []string {
	return a.opts.checks.Names()
}

// LogValue implements [slog.LogValuer].
func (a *Analyzer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("checks", a.Checks()),
		slog.Any("options", a.desc),
	)
}
