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

package analyzer_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/ucsb-cs-education/hairball/analyzer"
	"github.com/ucsb-cs-education/hairball/initialization"
	"github.com/ucsb-cs-education/hairball/internal/ctxlog"
	"github.com/ucsb-cs-education/hairball/internal/testproject"
	"github.com/ucsb-cs-education/hairball/model"
)

func project() *model.Project {
	p := testproject.Project(
		testproject.Scripts(testproject.Script(testproject.GreenFlag(), testproject.SetVar("score", "0"), testproject.Broadcast("start"))),
		testproject.Sprite("Sprite1",
			testproject.Script(testproject.Receive("start"), testproject.GoToXY(0, 0), testproject.Show()),
			testproject.Script(testproject.KeyPressed("space"), testproject.Move(10), testproject.ChangeVar("score", 1)),
			testproject.Script(testproject.Receive("stop"), testproject.Hide()),
		),
	)
	p.Variables = model.Variables{"score": "0", "unused": "0"}

	return p
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		check   func(t *testing.T, r *Report)
	}{
		{
			name: "Default",
			check: func(t *testing.T, r *Report) {
				t.Helper()

				if r.Scripts != 4 || r.Reachable != 3 {
					t.Errorf("Got %d scripts, %d reachable, want 4, 3", r.Scripts, r.Reachable)
				}

				if r.DeadCode == nil || r.DeadCode.Count() != 1 {
					t.Errorf("Got dead code %+v, want one dead script", r.DeadCode)
				}

				if r.Broadcasts == nil || !cmp.Equal(r.Broadcasts.NeverBroadcast, []string{"stop"}) {
					t.Errorf("Got broadcasts %+v, want stop never broadcast", r.Broadcasts)
				}

				if diff := cmp.Diff([]string{"Sprite1"}, r.DefaultNames); diff != "" {
					t.Errorf("DefaultNames mismatch (-want +got):\n%s", diff)
				}

				if r.Blocks == nil || r.Blocks.Total() != 11 {
					t.Errorf("Got blocks %v, want 11", r.Blocks)
				}
			},
		},
		{
			name:    "Initialization",
			options: WithChecks("initialization", "variables"),
			check: func(t *testing.T, r *Report) {
				t.Helper()

				if r.DeadCode != nil || r.Broadcasts != nil || r.Blocks != nil || r.DefaultNames != nil {
					t.Errorf("Got disabled results: %+v", r)
				}

				want := []ActorStates{
					{Actor: "Stage", States: map[initialization.Attribute]initialization.State{
						initialization.Position:    initialization.NotModified,
						initialization.Orientation: initialization.NotModified,
						initialization.Costume:     initialization.NotModified,
						initialization.Size:        initialization.NotModified,
						initialization.Visibility:  initialization.NotModified,
					}},
					{Actor: "Sprite1", States: map[initialization.Attribute]initialization.State{
						initialization.Position:    initialization.Modified,
						initialization.Orientation: initialization.NotModified,
						initialization.Costume:     initialization.NotModified,
						initialization.Size:        initialization.NotModified,
						initialization.Visibility:  initialization.Modified,
					}},
				}
				if diff := cmp.Diff(want, r.Initialization); diff != "" {
					t.Errorf("Initialization mismatch (-want +got):\n%s", diff)
				}

				if diff := cmp.Diff([]initialization.Attribute{initialization.Position, initialization.Visibility},
					r.Initialization[1].Uninitialized()); diff != "" {
					t.Errorf("Uninitialized mismatch (-want +got):\n%s", diff)
				}

				wantVars := []VariableStates{
					{Scope: GlobalScope, States: map[string]string{"score": "initialized", "unused": "unused"}},
				}
				if diff := cmp.Diff(wantVars, r.Variables); diff != "" {
					t.Errorf("Variables mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "Disable",
			options: Options{WithNaming(false), WithBlocks(false), WithMinDuplicateBlocks(0)},
			check: func(t *testing.T, r *Report) {
				t.Helper()

				if r.DefaultNames != nil || r.Blocks != nil {
					t.Errorf("Got disabled results: %+v", r)
				}

				if r.Duplicates != nil {
					t.Errorf("Got duplicates %+v, want none", r.Duplicates)
				}
			},
		},
		{
			name:    "DefaultNames",
			options: WithDefaultNames("Cat"),
			check: func(t *testing.T, r *Report) {
				t.Helper()

				if r.DefaultNames != nil {
					t.Errorf("Got default names %v, want none", r.DefaultNames)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)

			r, err := a.Run(t.Context(), project())
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			tt.check(t, r)
		})
	}
}

func TestRunTwice(t *testing.T) {
	t.Parallel()

	p := project()
	a := New()

	first, err := a.Run(t.Context(), p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	second, err := a.Run(t.Context(), p)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if first.Reachable != second.Reachable || first.DeadCode.Count() != second.DeadCode.Count() {
		t.Errorf("Got %d/%d reachable on second run, want %d/%d",
			second.Reachable, second.DeadCode.Count(), first.Reachable, first.DeadCode.Count())
	}
}

func TestRunInvalid(t *testing.T) {
	t.Parallel()

	for _, p := range []*model.Project{nil, {}, testproject.Project(testproject.Scripts(testproject.Script()))} {
		if _, err := New().Run(t.Context(), p); !errors.Is(err, ErrInvalidProject) {
			t.Errorf("Got %v, want %v", err, ErrInvalidProject)
		}
	}
}

func TestRunLogsDynamicBroadcast(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(t.Context(), slog.New(slog.NewTextHandler(&buf, nil)))

	p := testproject.Project(testproject.Scripts(
		testproject.Script(testproject.GreenFlag(), testproject.BroadcastOf(testproject.ReadVariable("next"))),
	))

	if _, err := New().Run(ctx, p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("Got log %q, want warning", buf.String())
	}
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithDeadCode(false), Options{WithNaming(false), nil}}
	a := New(opts...)

	if diff := cmp.Diff([]string{"broadcast", "initialization", "variables", "blocks", "duplicates"}, a.Checks()); diff != "" {
		t.Errorf("Checks mismatch (-want +got):\n%s", diff)
	}

	got := opts.LogValue().String()
	for _, want := range []string{"deadcode=false", "naming=false", "nil=<nil>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Got %q, want it to contain %q", got, want)
		}
	}

	if a.Name() != "hairball" || a.Doc() == "" {
		t.Errorf("Got name %q, doc %q", a.Name(), a.Doc())
	}
}
