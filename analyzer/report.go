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

package analyzer

import (
	"github.com/ucsb-cs-education/hairball/checks"
	"github.com/ucsb-cs-education/hairball/initialization"
	"github.com/ucsb-cs-education/hairball/stats"
)

// GlobalScope is the [VariableStates.Scope] of project-wide variables.
const GlobalScope = "global"

// Report holds the results of all enabled checks for one project.
// Results of disabled checks are nil.
type Report struct {
	Scripts   int `json:"scripts"`   // Number of scripts
	Reachable int `json:"reachable"` // Number of reachable scripts

	Initialization []ActorStates           `json:"initialization,omitempty"`
	Variables      []VariableStates        `json:"variables,omitempty"`
	Blocks         *stats.Counts           `json:"blocks,omitempty"`
	DeadCode       *checks.DeadCodeReport  `json:"deadcode,omitempty"`
	Broadcasts     *checks.BroadcastReport `json:"broadcasts,omitempty"`
	Duplicates     []checks.Duplicate      `json:"duplicates,omitempty"`
	DefaultNames   []string                `json:"default_names,omitempty"`
}

// ActorStates holds the attribute initialization states of one actor.
type ActorStates struct {
	Actor  string                                            `json:"actor"`
	States map[initialization.Attribute]initialization.State `json:"states"`
}

// Uninitialized returns the attributes modified without initialization, in catalog order.
func (a ActorStates) Uninitialized() []initialization.Attribute {
	var attrs []initialization.Attribute

	for _, attr := range initialization.Attributes {
		if a.States[attr].Problem() {
			attrs = append(attrs, attr)
		}
	}

	return attrs
}

// VariableStates holds the initialization states of the variables of one scope,
// labeled "unused", "uninitialized" or "initialized".
type VariableStates struct {
	Scope  string            `json:"scope"` // Actor name or [GlobalScope]
	States map[string]string `json:"states"`
}
