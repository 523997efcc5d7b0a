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
	"slices"

	"github.com/ucsb-cs-education/hairball/checks"
	"github.com/ucsb-cs-education/hairball/internal/config"
)

// runOptions represent the configuration of a hairball analyzer.
type runOptions struct {
	// checks represents the checks to be reported.
	checks config.CheckSet

	// minDuplicateBlocks is the size a script must exceed to be reported as duplicate.
	minDuplicateBlocks int

	// defaultNames are the sprite name prefixes considered default names.
	defaultNames []string
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		checks:             config.DefaultChecks(),
		minDuplicateBlocks: checks.DefaultMinDuplicateBlocks,
		defaultNames:       slices.Clone(checks.DefaultSpriteNames),
	}
}
