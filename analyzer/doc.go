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

// Package analyzer runs the hairball analyses on a project.
//
// # Overview
//
// Hairball finds problems in block-based programs that a student can't see by running
// the program once: scripts that never run, messages nobody listens to and attributes
// that depend on the state left behind by a previous run.
//
// # Example
//
// A sprite that moves on every key press, but is never put back on program start,
// starts where the previous run left it:
//
//	when green flag clicked          when space key pressed
//	say "Hello"                      move 10 steps
//
// The report lists the sprite's position as modified, not initialized. Adding
// "go to x:0 y:0" at the top level of the green flag script, before any "broadcast
// and wait", initializes it.
//
// # Checks
//
// Every check can be enabled or disabled with an [Option]:
//
//   - deadcode: scripts that are never started
//   - broadcast: messages broadcast but not received, or received but not broadcast
//   - initialization: attribute groups modified without initialization
//   - variables: variables modified without initialization, or unused
//   - blocks: operation counts
//   - duplicates: scripts repeating another script
//   - naming: sprites with editor-assigned names
package analyzer
