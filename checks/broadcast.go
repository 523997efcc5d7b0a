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
	"maps"
	"slices"

	"github.com/ucsb-cs-education/hairball/classify"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/reachability"
)

// BroadcastReport lists message wiring problems. All lists are sorted.
type BroadcastReport struct {
	Dynamic        []string `json:"dynamic,omitempty"`         // Actors broadcasting computed messages
	DeadBroadcast  []string `json:"dead_broadcast,omitempty"`  // Messages broadcast by a dead script
	NeverBroadcast []string `json:"never_broadcast,omitempty"` // Messages received but never broadcast
	NeverReceived  []string `json:"never_received,omitempty"`  // Messages broadcast but never received
}

// Empty reports whether no problem was found.
func (r BroadcastReport) Empty() bool {
	return len(r.Dynamic) == 0 && len(r.DeadBroadcast) == 0 &&
		len(r.NeverBroadcast) == 0 && len(r.NeverReceived) == 0
}

// Broadcasts checks that broadcast and receive blocks are wired up.
// The project must have been analyzed by [reachability.Analyze].
func Broadcasts(p *model.Project) BroadcastReport {
	var (
		dynamic  = make(map[string]struct{})
		dead     = make(map[string]struct{}) // Broadcast by an unreachable script
		sent     = make(map[string]struct{})
		received = make(map[string]struct{})
	)

	for actor, script := range p.Scripts() {
		if t := classify.Script(script); t.Kind == classify.OnMessage && !t.Message.IsDynamic() {
			received[t.Message.Name()] = struct{}{}
		}

		names, dyn := reachability.Emitted(script)
		if dyn {
			dynamic[actor.Name] = struct{}{}
		}

		for _, name := range names {
			sent[name] = struct{}{}
			if !script.Reachable() {
				dead[name] = struct{}{}
			}
		}
	}

	var r BroadcastReport

	r.Dynamic = sortedKeys(dynamic)
	r.DeadBroadcast = sortedKeys(dead)

	for name := range sent {
		if _, ok := received[name]; !ok {
			r.NeverReceived = append(r.NeverReceived, name)
		}
	}

	for name := range received {
		if _, ok := sent[name]; !ok {
			r.NeverBroadcast = append(r.NeverBroadcast, name)
		}
	}

	slices.Sort(r.NeverReceived)
	slices.Sort(r.NeverBroadcast)

	return r
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}

	return slices.Sorted(maps.Keys(m))
}
