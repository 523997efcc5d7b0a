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

package initialization

// State is the initialization state of an attribute.
type State uint8

//go:generate go tool stringer -type State -linecomment
const (
	// NotModified means no script writes the attribute.
	NotModified State = iota // not modified
	// Modified means the attribute is written, but not properly initialized.
	Modified // modified
	// Initialized means a single program start script sets the attribute unconditionally before it is changed.
	Initialized // initialized
)

// Problem reports whether the attribute is modified without being initialized.
func (s State) Problem() bool {
	return s == Modified
}

// VariableLabel describes the state of a variable.
func (s State) VariableLabel() string {
	switch s {
	case NotModified:
		return "unused"

	case Modified:
		return "uninitialized"

	default:
		return s.String()
	}
}

// rank orders states by severity.
func (s State) rank() int {
	switch s {
	case Modified:
		return 2

	case Initialized:
		return 1

	default:
		return 0
	}
}

// Worst returns the most severe of the given states, [NotModified] when there are none.
func Worst[M ~map[K]State, K comparable](states M) State {
	worst := NotModified
	for _, s := range states {
		if s.rank() > worst.rank() {
			worst = s
		}
	}

	return worst
}

// MarshalText implements [encoding.TextMarshaler].
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (a Attribute) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
