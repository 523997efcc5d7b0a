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

package stats

import (
	"cmp"
	"iter"
	"slices"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/walk"
)

// Entry is the occurrence count of one canonical operation name.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Counts counts operation occurrences, remembering the order in which names were first seen.
// The zero value is ready to use.
type Counts struct {
	index   map[string]int // Position of a name in entries
	entries []Entry
}

// Count counts the canonical operation names of all blocks in the given scripts.
func Count(scripts iter.Seq[*model.Script]) *Counts {
	c := &Counts{}
	for s := range scripts {
		for step := range walk.Script(s) {
			c.Add(step.Name, 1)
		}
	}

	return c
}

// Add adds n occurrences of name.
func (c *Counts) Add(name string, n int) {
	if i, ok := c.index[name]; ok {
		c.entries[i].Count += n

		return
	}

	if c.index == nil {
		c.index = make(map[string]int)
	}

	c.index[name] = len(c.entries)
	c.entries = append(c.entries, Entry{Name: name, Count: n})
}

// Merge adds all occurrences counted by o.
func (c *Counts) Merge(o *Counts) {
	if o == nil {
		return
	}

	for _, e := range o.entries {
		c.Add(e.Name, e.Count)
	}
}

// Get returns the number of occurrences of name.
func (c *Counts) Get(name string) int {
	if i, ok := c.index[name]; ok {
		return c.entries[i].Count
	}

	return 0
}

// Len returns the number of distinct names.
func (c *Counts) Len() int {
	return len(c.entries)
}

// Total returns the number of all occurrences.
func (c *Counts) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}

	return total
}

// All yields names and counts in first-seen order.
func (c *Counts) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, e := range c.entries {
			if !yield(e.Name, e.Count) {
				return
			}
		}
	}
}

// Map returns the counts as a map.
func (c *Counts) Map() map[string]int {
	m := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		m[e.Name] = e.Count
	}

	return m
}

// MostCommon returns all entries ordered by descending count; equal counts keep first-seen order.
func (c *Counts) MostCommon() []Entry {
	entries := slices.Clone(c.entries)
	slices.SortStableFunc(entries, func(a, b Entry) int { return cmp.Compare(b.Count, a.Count) })

	return entries
}

// MarshalJSONTo implements [json.MarshalerTo], encoding the entries in [Counts.MostCommon] order.
func (c *Counts) MarshalJSONTo(enc *jsontext.Encoder) error {
	entries := c.MostCommon()
	if entries == nil {
		entries = []Entry{}
	}

	return json.MarshalEncode(enc, entries)
}
