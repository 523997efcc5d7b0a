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

import "iter"

// Project is the root of a decoded program.
//
// A Project is built once by a decoder and is read-only during analysis, except for the
// reachability annotation of its scripts and the one-time prepared marker.
type Project struct {
	Stage     *Actor    // The stage, owner of the backdrop scripts
	Sprites   []*Actor  // Sprites in declaration order
	Variables Variables // Global variables

	prepared bool
}

// ActorKind distinguishes the stage from sprites.
type ActorKind uint8

//go:generate go tool stringer -type ActorKind -linecomment
const (
	// Sprite is a movable actor with costumes.
	Sprite ActorKind = iota // sprite
	// Stage is the single backdrop actor of a project.
	Stage // stage
)

// Actor is a Stage or a Sprite.
type Actor struct {
	Kind      ActorKind
	Name      string    // Display name; "Stage" for the stage by convention
	Scripts   []*Script // Scripts in declaration order
	Variables Variables // Locally declared variables
}

// Script is an independently triggered sequence of top-level blocks.
// Blocks[0] is the trigger.
type Script struct {
	Blocks []*Block

	reachable bool
}

// Variables maps declared variable names to their initial value.
type Variables map[string]Literal

// NewScript creates a [Script] from the given top-level blocks.
func NewScript(blocks ...*Block) *Script {
	return &Script{Blocks: blocks}
}

// Reachable reports whether the script was found to be executable.
// It is false until reachability analysis has run.
func (s *Script) Reachable() bool {
	return s.reachable
}

// MarkReachable records the script as reachable. There is no way to undo it.
func (s *Script) MarkReachable() {
	s.reachable = true
}

// Prepared reports whether reachability analysis has already annotated the project.
func (p *Project) Prepared() bool {
	return p.prepared
}

// MarkPrepared sets the prepared marker and reports whether it was already set.
func (p *Project) MarkPrepared() (already bool) {
	already, p.prepared = p.prepared, true

	return already
}

// Actors yields the stage followed by all sprites.
func (p *Project) Actors() iter.Seq[*Actor] {
	return func(yield func(*Actor) bool) {
		if p.Stage != nil && !yield(p.Stage) {
			return
		}

		for _, sprite := range p.Sprites {
			if sprite == nil {
				continue
			}

			if !yield(sprite) {
				return
			}
		}
	}
}

// Scripts yields every script of the project together with its owning actor,
// stage scripts first.
func (p *Project) Scripts() iter.Seq2[*Actor, *Script] {
	return func(yield func(*Actor, *Script) bool) {
		for actor := range p.Actors() {
			for _, script := range actor.Scripts {
				if script == nil {
					continue
				}

				if !yield(actor, script) {
					return
				}
			}
		}
	}
}

// AllScripts yields every script of the project.
func (p *Project) AllScripts() iter.Seq[*Script] {
	return func(yield func(*Script) bool) {
		for _, script := range p.Scripts() {
			if !yield(script) {
				return
			}
		}
	}
}
