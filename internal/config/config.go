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

import (
	"fmt"
	"strings"
)

// Checks represents analysis results to be reported.
type Checks uint8

const (
	// DeadCode reports scripts that can never run.
	DeadCode Checks = 1 << iota

	// Broadcast reports message wiring problems.
	Broadcast

	// Initialization reports attribute initialization states.
	Initialization

	// Variables reports variable initialization states.
	Variables

	// Blocks reports operation counts.
	Blocks

	// Duplicates reports duplicate scripts.
	Duplicates

	// Naming reports sprites with default names.
	Naming

	// AllChecks enables everything.
	AllChecks = DeadCode | Broadcast | Initialization | Variables | Blocks | Duplicates | Naming
)

// checkNames are the names of the checks, as used in settings and on the command line.
var checkNames = [...]struct {
	check Checks
	name  string
}{
	{DeadCode, "deadcode"},
	{Broadcast, "broadcast"},
	{Initialization, "initialization"},
	{Variables, "variables"},
	{Blocks, "blocks"},
	{Duplicates, "duplicates"},
	{Naming, "naming"},
}

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() CheckSet {
	return NewCheckSet(AllChecks)
}

// ParseCheck returns the check with the given name.
func ParseCheck(name string) (Checks, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range checkNames {
		if c.name == name {
			return c.check, nil
		}
	}

	return 0, fmt.Errorf("unknown check %q", name)
}

// ParseChecks returns the set of named checks.
func ParseChecks(names []string) (CheckSet, error) {
	var s CheckSet

	for _, name := range names {
		c, err := ParseCheck(name)
		if err != nil {
			return CheckSet{}, err
		}

		s.Set(c, true)
	}

	return s, nil
}

// CheckNames returns all check names in reporting order.
func CheckNames() []string {
	names := make([]string, len(checkNames))
	for i, c := range checkNames {
		names[i] = c.name
	}

	return names
}

func (c Checks) String() string {
	for _, n := range checkNames {
		if n.check == c {
			return n.name
		}
	}

	return fmt.Sprintf("Checks(%#x)", uint8(c))
}
