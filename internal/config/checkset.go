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

package config

import "iter"

// CheckSet is a set of enabled [Checks].
type CheckSet struct {
	mask Checks
}

// NewCheckSet returns a set with the given checks enabled.
func NewCheckSet(checks ...Checks) CheckSet {
	var s CheckSet
	for _, c := range checks {
		s.mask |= c
	}

	return s
}

// Set enables or disables the given checks.
func (s *CheckSet) Set(c Checks, enabled bool) {
	if enabled {
		s.mask |= c
	} else {
		s.mask &^= c
	}
}

// Has reports whether any of the given checks is enabled.
func (s CheckSet) Has(c Checks) bool {
	return s.mask&c != 0
}

// Mask returns the enabled checks as flags.
func (s CheckSet) Mask() Checks {
	return s.mask
}

// All yields the enabled checks one at a time, in reporting order.
func (s CheckSet) All() iter.Seq[Checks] {
	return func(yield func(Checks) bool) {
		for _, n := range checkNames {
			if s.Has(n.check) && !yield(n.check) {
				return
			}
		}
	}
}

// Names returns the names of the enabled checks, in reporting order.
func (s CheckSet) Names() []string {
	var names []string
	for c := range s.All() {
		names = append(names, c.String())
	}

	return names
}
