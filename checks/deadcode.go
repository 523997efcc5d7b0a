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
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/reachability"
	"github.com/ucsb-cs-education/hairball/walk"
)

// DeadScript identifies a script that can never run.
type DeadScript struct {
	Index   int    `json:"index"`   // Position in the actor's scripts
	Trigger string `json:"trigger"` // Canonical name of the first block
	Blocks  int    `json:"blocks"`  // Number of visited blocks
}

// ActorDeadCode lists the dead scripts of one actor.
type ActorDeadCode struct {
	Actor   string       `json:"actor"`
	Scripts []DeadScript `json:"scripts"`
}

// DeadCodeReport lists the dead scripts of a project.
type DeadCodeReport struct {
	// Actors with at least one dead script, in project order.
	Actors []ActorDeadCode `json:"actors,omitempty"`

	// DynamicBroadcast is set when some script broadcasts a computed message,
	// which makes the dead code findings potentially incomplete.
	DynamicBroadcast bool `json:"dynamic_broadcast"`
}

// Count returns the number of dead scripts.
func (r DeadCodeReport) Count() int {
	n := 0
	for _, a := range r.Actors {
		n += len(a.Scripts)
	}

	return n
}

// DeadCode reports all scripts not marked reachable.
// The project must have been analyzed by [reachability.Analyze].
func DeadCode(p *model.Project) DeadCodeReport {
	var r DeadCodeReport

	for actor := range p.Actors() {
		var dead []DeadScript

		for i, script := range actor.Scripts {
			if script == nil {
				continue
			}

			if _, dynamic := reachability.Emitted(script); dynamic {
				r.DynamicBroadcast = true
			}

			if script.Reachable() {
				continue
			}

			ds := DeadScript{Index: i}
			for step := range walk.Script(script) {
				if ds.Blocks == 0 {
					ds.Trigger = step.Name
				}
				ds.Blocks++
			}

			dead = append(dead, ds)
		}

		if len(dead) > 0 {
			r.Actors = append(r.Actors, ActorDeadCode{Actor: actor.Name, Scripts: dead})
		}
	}

	return r
}
