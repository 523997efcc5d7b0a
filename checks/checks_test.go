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

package checks_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/ucsb-cs-education/hairball/checks"
	"github.com/ucsb-cs-education/hairball/internal/testproject"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/reachability"
)

func analyzed(t *testing.T, p *model.Project) *model.Project {
	t.Helper()

	reachability.Analyze(t.Context(), p)

	return p
}

func TestDeadCode(t *testing.T) {
	t.Parallel()

	p := analyzed(t, testproject.Project(
		testproject.Scripts(testproject.Script(testproject.GreenFlag(), testproject.Broadcast("go"))),
		testproject.Sprite("Cat",
			testproject.Script(testproject.Receive("go"), testproject.Show()),
			testproject.Script(testproject.Receive("never"), testproject.Hide(), testproject.Say("hi")),
			testproject.Script(testproject.Move(10)),
		),
	))

	want := DeadCodeReport{
		Actors: []ActorDeadCode{{
			Actor: "Cat",
			Scripts: []DeadScript{
				{Index: 1, Trigger: "when I receive %e", Blocks: 3},
				{Index: 2, Trigger: "move %n steps", Blocks: 1},
			},
		}},
	}

	got := DeadCode(p)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeadCode() mismatch (-want +got):\n%s", diff)
	}

	if got, want := got.Count(), 2; got != want {
		t.Errorf("Got %d dead scripts, want %d", got, want)
	}
}

func TestDeadCodeDynamic(t *testing.T) {
	t.Parallel()

	p := analyzed(t, testproject.Project(
		testproject.Scripts(testproject.Script(testproject.GreenFlag(), testproject.BroadcastOf(testproject.ReadVariable("next")))),
	))

	if got := DeadCode(p); !got.DynamicBroadcast || got.Count() != 0 {
		t.Errorf("Got %+v, want dynamic broadcast without dead scripts", got)
	}
}

func TestBroadcasts(t *testing.T) {
	t.Parallel()

	p := analyzed(t, testproject.Project(
		testproject.Scripts(testproject.Script(testproject.GreenFlag(), testproject.Broadcast("go"), testproject.Broadcast("lost"))),
		testproject.Sprite("Cat",
			testproject.Script(testproject.Receive("Go"), testproject.Show()),
			testproject.Script(testproject.Receive("missing"), testproject.Broadcast("echo")),
			testproject.Script(testproject.Receive("echo"), testproject.Hide()),
		),
		testproject.Sprite("Dog",
			testproject.Script(testproject.Clicked(), testproject.BroadcastOf(testproject.ReadVariable("m"))),
		),
	))

	want := BroadcastReport{
		Dynamic:        []string{"Dog"},
		DeadBroadcast:  []string{"echo"},
		NeverBroadcast: []string{"missing"},
		NeverReceived:  []string{"lost"},
	}

	got := Broadcasts(p)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Broadcasts() mismatch (-want +got):\n%s", diff)
	}

	if got.Empty() {
		t.Error("Expected problems")
	}
}

func TestBroadcastsDeadBroadcast(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		project *model.Project
		want    []string
	}{
		{
			name: "live_and_dead",
			project: testproject.Project(nil, testproject.Sprite("Cat",
				testproject.Script(testproject.GreenFlag(), testproject.Broadcast("go")),
				testproject.Script(testproject.Move(10), testproject.Broadcast("go")),
				testproject.Script(testproject.Receive("go"), testproject.Hide()),
			)),
			want: []string{"go"},
		},
		{
			name: "live_only",
			project: testproject.Project(nil, testproject.Sprite("Cat",
				testproject.Script(testproject.GreenFlag(), testproject.Broadcast("go")),
				testproject.Script(testproject.Receive("go"), testproject.Hide()),
			)),
			want: nil,
		},
		{
			name: "dead_only",
			project: testproject.Project(nil, testproject.Sprite("Cat",
				testproject.Script(testproject.Say("hi"), testproject.Broadcast("b"), testproject.Broadcast("a")),
				testproject.Script(testproject.Receive("a"), testproject.Hide()),
				testproject.Script(testproject.Receive("b"), testproject.Show()),
			)),
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Broadcasts(analyzed(t, tt.project)).DeadBroadcast
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DeadBroadcast mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDuplicates(t *testing.T) {
	t.Parallel()

	long := func() *model.Script {
		return testproject.Script(testproject.Clicked(), testproject.Move(10), testproject.TurnRight(15), testproject.Say("hi"))
	}
	short := func() *model.Script {
		return testproject.Script(testproject.Clicked(), testproject.Hide())
	}

	p := testproject.Project(nil,
		testproject.Sprite("Cat", long(), short()),
		testproject.Sprite("Dog", long(), short(), long()),
	)

	got := Duplicates(p, DefaultMinDuplicateBlocks)

	want := []Duplicate{
		{Actor: "Dog", Index: 0, Blocks: []string{"when %m clicked", "move %n steps", "turn cw %n degrees", "say %s"}},
		{Actor: "Dog", Index: 2, Blocks: []string{"when %m clicked", "move %n steps", "turn cw %n degrees", "say %s"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Duplicates() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultNames(t *testing.T) {
	t.Parallel()

	p := testproject.Project(nil,
		testproject.Sprite("Sprite1"),
		testproject.Sprite("Cat"),
		testproject.Sprite("Objeto2"),
	)

	if diff := cmp.Diff([]string{"Sprite1", "Objeto2"}, DefaultNames(p, DefaultSpriteNames)); diff != "" {
		t.Errorf("DefaultNames() mismatch (-want +got):\n%s", diff)
	}

	if got := DefaultNames(p, nil); got != nil {
		t.Errorf("Got %v without defaults, want none", got)
	}
}
