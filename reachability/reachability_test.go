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

package reachability_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/ucsb-cs-education/hairball/internal/testproject"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/reachability"
)

func reachable(p *model.Project) []bool {
	var flags []bool
	for s := range p.AllScripts() {
		flags = append(flags, s.Reachable())
	}

	return flags
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		project func() *model.Project
		want    []bool
	}{
		{
			name: "start_anim",
			project: func() *model.Project {
				return Project(nil, Sprite("Cat",
					Script(GreenFlag(), Broadcast("start-anim")),
					Script(Receive("start-anim"), NextCostume()),
					Script(Receive("unused"), Hide()),
				))
			},
			want: []bool{true, true, false},
		},
		{
			name: "transitive",
			project: func() *model.Project {
				return Project(
					Scripts(Script(Receive("stop"), Say("done"))),
					Sprite("Cat",
						Script(Receive("go"), Broadcast("Stop")),
						Script(GreenFlag(), BroadcastAndWait("go")),
					),
				)
			},
			want: []bool{true, true, true},
		},
		{
			name: "user_input",
			project: func() *model.Project {
				return Project(nil, Sprite("Cat",
					Script(KeyPressed("space"), Broadcast("jump")),
					Script(Clicked(), Say("ouch")),
					Script(Receive("jump"), ChangeSize(10)),
				))
			},
			want: []bool{true, true, true},
		},
		{
			name: "no_trigger",
			project: func() *model.Project {
				return Project(nil, Sprite("Cat",
					Script(Move(10), Broadcast("go")),
					Script(Receive("go"), Hide()),
				))
			},
			want: []bool{false, false},
		},
		{
			name: "dead_chain",
			project: func() *model.Project {
				return Project(nil, Sprite("Cat",
					Script(Receive("a"), Broadcast("b")),
					Script(Receive("b"), Broadcast("a")),
				))
			},
			want: []bool{false, false},
		},
		{
			name: "dynamic",
			project: func() *model.Project {
				return Project(nil, Sprite("Cat",
					Script(GreenFlag(), BroadcastOf(ReadVariable("msg"))),
					Script(Receive("go"), Hide()),
				))
			},
			want: []bool{true, false},
		},
		{
			name: "nested_broadcast",
			project: func() *model.Project {
				return Project(nil, Sprite("Cat",
					Script(GreenFlag(), Forever(If(Touching("edge"), Broadcast("bounce")))),
					Script(Receive("bounce"), TurnRight(180)),
				))
			},
			want: []bool{true, true},
		},
		{
			name: "shared_message",
			project: func() *model.Project {
				return Project(
					Scripts(Script(GreenFlag(), Broadcast("go"), Broadcast("go"))),
					Sprite("Cat",
						Script(Clicked(), Broadcast("go"), Broadcast("done")),
						Script(Receive("go"), Broadcast("done")),
						Script(Receive("go"), Broadcast("go")),
						Script(Receive("done"), Hide()),
					),
				)
			},
			want: []bool{true, true, true, true, true},
		},
		{
			name: "commented_broadcast",
			project: func() *model.Project {
				return Project(nil, Sprite("Cat",
					Script(GreenFlag(), model.NewBlock("", model.Body{Broadcast("go")})),
					Script(Receive("go"), Hide()),
				))
			},
			want: []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := tt.project()

			if ok := reachability.Analyze(t.Context(), p); !ok {
				t.Fatal("Expected first analysis to run")
			}

			if diff := cmp.Diff(tt.want, reachable(p)); diff != "" {
				t.Errorf("Reachable mismatch (-want +got):\n%s", diff)
			}

			if ok := reachability.Analyze(t.Context(), p); ok {
				t.Error("Expected second analysis to be skipped")
			}

			if diff := cmp.Diff(tt.want, reachable(p)); diff != "" {
				t.Errorf("Reachable changed on second analysis (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeDeepChain(t *testing.T) {
	t.Parallel()

	const depth = 500

	scripts := []*model.Script{Script(GreenFlag(), Broadcast("m0"))}
	for i := range depth {
		scripts = append(scripts, Script(Receive(fmt.Sprintf("m%d", i)), Broadcast(fmt.Sprintf("m%d", i+1))))
	}

	p := Project(scripts)
	reachability.Analyze(t.Context(), p)

	for i, s := range scripts {
		if !s.Reachable() {
			t.Fatalf("Script %d not reachable", i)
		}
	}
}

func TestEmitted(t *testing.T) {
	t.Parallel()

	s := Script(
		GreenFlag(),
		Broadcast("B"),
		Repeat(3, BroadcastAndWait("a"), Broadcast("b")),
		BroadcastOf(ReadVariable("msg")),
	)

	names, dynamic := reachability.Emitted(s)

	if diff := cmp.Diff([]string{"b", "a"}, names); diff != "" {
		t.Errorf("Emitted() mismatch (-want +got):\n%s", diff)
	}

	if !dynamic {
		t.Error("Expected dynamic broadcast")
	}
}
