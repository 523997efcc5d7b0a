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

package stats_test

import (
	"slices"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"

	. "github.com/ucsb-cs-education/hairball/internal/testproject"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/stats"
)

func TestCount(t *testing.T) {
	t.Parallel()

	s := Script(Move(1), Move(2), Show())
	c := stats.Count(slices.Values([]*model.Script{s}))

	want := []stats.Entry{{Name: "move %n steps", Count: 2}, {Name: "show", Count: 1}}
	if diff := cmp.Diff(want, c.MostCommon()); diff != "" {
		t.Errorf("MostCommon() mismatch (-want +got):\n%s", diff)
	}

	if got, want := c.Total(), 3; got != want {
		t.Errorf("Got total %d, want %d", got, want)
	}
}

func TestMostCommonOrder(t *testing.T) {
	t.Parallel()

	var c stats.Counts
	c.Add("b", 1)
	c.Add("a", 2)
	c.Add("c", 1)

	want := []stats.Entry{{Name: "a", Count: 2}, {Name: "b", Count: 1}, {Name: "c", Count: 1}}
	if diff := cmp.Diff(want, c.MostCommon()); diff != "" {
		t.Errorf("MostCommon() mismatch (-want +got):\n%s", diff)
	}

	var names []string
	for name := range c.All() {
		names = append(names, name)
	}

	if diff := cmp.Diff([]string{"b", "a", "c"}, names); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	var totals stats.Counts
	totals.Merge(stats.Count(slices.Values([]*model.Script{Script(GreenFlag(), Show())})))
	totals.Merge(stats.Count(slices.Values([]*model.Script{Script(GreenFlag(), Hide())})))
	totals.Merge(nil)

	want := map[string]int{"when green flag clicked": 2, "show": 1, "hide": 1}
	if diff := cmp.Diff(want, totals.Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}

	if got, want := totals.Get("show"), 1; got != want {
		t.Errorf("Got %d, want %d", got, want)
	}

	if got, want := totals.Len(), 3; got != want {
		t.Errorf("Got %d names, want %d", got, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	var c stats.Counts

	got, err := json.Marshal(&c)
	if err != nil {
		t.Fatalf("Can't marshal counts: %v", err)
	}

	if want := `[]`; string(got) != want {
		t.Errorf("Got %s, want %s", got, want)
	}

	c.Add("show", 1)
	c.Add("hide", 2)

	if got, err = json.Marshal(&c); err != nil {
		t.Fatalf("Can't marshal counts: %v", err)
	}

	if want := `[{"name":"hide","count":2},{"name":"show","count":1}]`; string(got) != want {
		t.Errorf("Got %s, want %s", got, want)
	}
}
