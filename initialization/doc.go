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

// Package initialization checks whether actor attributes and variables that are modified
// during a program run are also initialized when the program starts.
//
// An attribute is initialized when exactly one "when green flag clicked" script sets it
// with an absolute write (like "go to x:0 y:0", not "move 10 steps") as one of its
// top-level blocks, before the script does anything else with that attribute and before
// it waits for a broadcast to be delivered. Once a "broadcast and wait" block ran, the
// receiving scripts may already have changed the attribute, so later writes don't count
// as initialization.
//
// The catalog of attribute groups and the operations writing them is available through [Writes].
package initialization
