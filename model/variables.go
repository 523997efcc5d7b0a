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

package model

import (
	"maps"
	"slices"
)

// Scope tells where a variable name resolved.
type Scope uint8

const (
	// Local is a variable declared by the actor itself.
	Local Scope = iota + 1
	// Global is a project-wide variable.
	Global
)

// Lookup resolves a variable name as seen from the given actor:
// the actor's local variables shadow the project's global variables.
func (p *Project) Lookup(actor *Actor, name string) (Scope, bool) {
	if actor != nil {
		if _, ok := actor.Variables[name]; ok {
			return Local, true
		}
	}

	if _, ok := p.Variables[name]; ok {
		return Global, true
	}

	return 0, false
}

// Names returns the declared variable names in sorted order.
func (v Variables) Names() []string {
	return slices.Sorted(maps.Keys(v))
}
