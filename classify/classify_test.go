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

package classify_test

import (
	"slices"
	"testing"

	. "github.com/ucsb-cs-education/hairball/classify"
	"github.com/ucsb-cs-education/hairball/internal/testproject"
	"github.com/ucsb-cs-education/hairball/model"
)

func TestScript(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		script *model.Script
		want   Trigger
	}{
		{"green_flag", testproject.Script(testproject.GreenFlag(), testproject.Show()), Trigger{Kind: ProgramStart}},
		{"receive", testproject.Script(testproject.Receive("Go")), Trigger{Kind: OnMessage, Message: model.NewMessage("go")}},
		{
			"receive_dynamic",
			testproject.Script(model.NewBlock("EventHatMorph", testproject.ReadVariable("msg"))),
			Trigger{Kind: OnMessage, Message: model.Dynamic},
		},
		{"key", testproject.Script(testproject.KeyPressed("space")), Trigger{Kind: OnUserInput}},
		{"click", testproject.Script(testproject.Clicked(), testproject.Hide()), Trigger{Kind: OnUserInput}},
		{"loose", testproject.Script(testproject.Move(10), testproject.GreenFlag()), Trigger{Kind: None}},
		{
			"leading_comment",
			testproject.Script(testproject.Comment("start"), testproject.GreenFlag(), testproject.Show()),
			Trigger{Kind: ProgramStart},
		},
		{"empty", testproject.Script(), Trigger{Kind: None}},
		{"nil", nil, Trigger{Kind: None}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Script(tt.script); got != tt.want {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()

	start1 := testproject.Script(testproject.GreenFlag(), testproject.Show())
	recv := testproject.Script(testproject.Receive("go"))
	start2 := testproject.Script(testproject.GreenFlag(), testproject.Hide())
	loose := testproject.Script(testproject.Say("hi"))

	match, other := Partition([]*model.Script{start1, recv, start2, loose}, ProgramStart)

	if want := []*model.Script{start1, start2}; !slices.Equal(match, want) {
		t.Errorf("Got %d matching scripts, want %d", len(match), len(want))
	}

	if want := []*model.Script{recv, loose}; !slices.Equal(other, want) {
		t.Errorf("Got %d other scripts, want %d", len(other), len(want))
	}
}

func TestTriggerString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		trigger Trigger
		want    string
	}{
		{Trigger{Kind: ProgramStart}, "program start"},
		{Trigger{Kind: OnMessage, Message: model.NewMessage("Go")}, "on message go"},
		{Trigger{Kind: OnMessage, Message: model.Dynamic}, "on message <dynamic>"},
		{Trigger{}, "none"},
	}

	for _, tt := range tests {
		if got := tt.trigger.String(); got != tt.want {
			t.Errorf("Got %q, want %q", got, tt.want)
		}
	}
}
