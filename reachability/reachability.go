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

package reachability

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/container/intsets"

	"github.com/ucsb-cs-education/hairball/classify"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/walk"
)

// Analyze marks every script of the project as reachable or dead.
//
// Scripts started by the program or by user input are reachable. A script started by
// a message is reachable when a reachable script broadcasts that message. Scripts
// without a trigger are dead.
//
// The project is analyzed only once; Analyze reports false when the project was
// already prepared and nothing was done.
func Analyze(ctx context.Context, p *model.Project) bool {
	if p.MarkPrepared() {
		return false
	}

	defer trace.StartRegion(ctx, "Reachability").End()

	var (
		scripts   []*model.Script
		pending   = make(map[string][]int) // Receivers by message name
		queue     []int                    // Reachable scripts with unprocessed broadcasts
		reachable intsets.Sparse           // Indices of scripts marked reachable
	)

	promote := func(idx int) {
		if reachable.Insert(idx) {
			scripts[idx].MarkReachable()
			queue = append(queue, idx)
		}
	}

	for s := range p.AllScripts() {
		idx := len(scripts)
		scripts = append(scripts, s)

		switch t := classify.Script(s); t.Kind {
		case classify.ProgramStart, classify.OnUserInput:
			promote(idx)

		case classify.OnMessage:
			if t.Message.IsDynamic() {
				continue // can't be matched by any broadcast
			}

			name := t.Message.Name()
			pending[name] = append(pending[name], idx)
		}
	}

	for qHead := 0; qHead < len(queue); qHead++ {
		names, _ := Emitted(scripts[queue[qHead]])
		for _, name := range names {
			for _, r := range pending[name] {
				promote(r)
			}
		}
	}

	trace.Logf(ctx, "reachability", "%d scripts, %d reachable", len(scripts), reachable.Len())

	return true
}

// Emitted returns the distinct concrete messages broadcast by a script, in order of
// first broadcast, and whether the script broadcasts any dynamic message.
func Emitted(s *model.Script) (names []string, dynamic bool) {
	seen := make(map[string]struct{})

	for step := range walk.Script(s) {
		if !step.Kind.IsBroadcast() {
			continue
		}

		msg := model.MessageOf(step.Block.Arg(0))
		if msg.IsDynamic() {
			dynamic = true

			continue
		}

		name := msg.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		names = append(names, name)
	}

	return names, dynamic
}
