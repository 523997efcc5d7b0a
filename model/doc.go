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

// Package model defines the decoded representation of a block-based program
// that all analyzers operate on.
//
// A [Project] owns one stage [Actor] and an ordered list of sprites. Every actor owns
// [Script]s, and every script is a non-empty sequence of [Block] trees whose first
// block is the trigger. Block arguments are either literals, nested expression
// blocks, or nested block sequences:
//
//	when green flag clicked            Block{Op: "EventHatMorph", Args: {Literal("Scratch-StartClicked")}}
//	repeat 10                          Block{Op: "doRepeat", Args: {Literal("10"), Body{...}}}
//	    move (x position) steps        Block{Op: "forward:", Args: {&Block{Op: "xpos"}}}
//
// The model is produced by an external decoder and is not modified by analysis,
// except for the reachability annotation of scripts.
package model
