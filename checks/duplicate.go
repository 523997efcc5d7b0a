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

package checks

import (
	"strings"

	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/walk"
)

// DefaultMinDuplicateBlocks is the default size a script must exceed to be reported as duplicate.
const DefaultMinDuplicateBlocks = 3

// Duplicate is a script repeating the operations of an earlier script.
type Duplicate struct {
	Actor  string   `json:"actor"`
	Index  int      `json:"index"`
	Blocks []string `json:"blocks"` // Canonical operation names
}

// Duplicates finds scripts with the same sequence of canonical operations as an earlier
// script of the project. Only scripts with more than minBlocks blocks are reported.
func Duplicates(p *model.Project, minBlocks int) []Duplicate {
	var (
		seen       = make(map[string]struct{})
		duplicates []Duplicate
	)

	for actor := range p.Actors() {
		for i, script := range actor.Scripts {
			if script == nil {
				continue
			}

			var names []string
			for step := range walk.Script(script) {
				names = append(names, step.Name)
			}

			key := strings.Join(names, "\x00")
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}

				continue
			}

			if len(names) > minBlocks {
				duplicates = append(duplicates, Duplicate{Actor: actor.Name, Index: i, Blocks: names})
			}
		}
	}

	return duplicates
}
