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

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/ucsb-cs-education/hairball/analyzer"
	"github.com/ucsb-cs-education/hairball/stats"
)

// fileReport is the outcome of analyzing one model dump.
type fileReport struct {
	Path   string           `json:"path"`
	Report *analyzer.Report `json:"report,omitempty"`
	Error  string           `json:"error,omitempty"`
}

type jsonOutput struct {
	Files  []fileReport  `json:"files,omitempty"`
	Totals *stats.Counts `json:"totals"`
}

func writeJSON(w io.Writer, reports []fileReport, totals *stats.Counts, quiet bool) error {
	out := jsonOutput{Totals: totals}
	if !quiet {
		out.Files = reports
	}

	if err := json.MarshalWrite(w, out, jsontext.WithIndent("  "), json.Deterministic(true)); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

func writeText(w io.Writer, reports []fileReport, totals *stats.Counts, quiet bool) error {
	var b strings.Builder

	if !quiet {
		for _, fr := range reports {
			fmt.Fprintf(&b, "== %s ==\n", fr.Path)

			if fr.Error != "" {
				fmt.Fprintf(&b, "error: %s\n\n", fr.Error)

				continue
			}

			formatReport(&b, fr.Report)
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "Total blocks: %d\n", totals.Total())
	for _, e := range totals.MostCommon() {
		fmt.Fprintf(&b, "%6d %s\n", e.Count, e.Name)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func formatReport(b *strings.Builder, r *analyzer.Report) {
	fmt.Fprintf(b, "scripts: %d, reachable: %d\n", r.Scripts, r.Reachable)

	if r.DeadCode != nil {
		fmt.Fprintf(b, "dead code: %d scripts\n", r.DeadCode.Count())

		for _, a := range r.DeadCode.Actors {
			for _, s := range a.Scripts {
				fmt.Fprintf(b, "  %s script %d: %s (%d blocks)\n", a.Actor, s.Index, s.Trigger, s.Blocks)
			}
		}

		if r.DeadCode.DynamicBroadcast {
			b.WriteString("  (computed broadcasts, results may be incomplete)\n")
		}
	}

	if r.Broadcasts != nil && !r.Broadcasts.Empty() {
		b.WriteString("broadcasts:\n")
		formatList(b, "computed message in", r.Broadcasts.Dynamic)
		formatList(b, "broadcast by dead scripts", r.Broadcasts.DeadBroadcast)
		formatList(b, "never broadcast", r.Broadcasts.NeverBroadcast)
		formatList(b, "never received", r.Broadcasts.NeverReceived)
	}

	if r.Initialization != nil {
		b.WriteString("initialization:\n")

		for _, a := range r.Initialization {
			if attrs := a.Uninitialized(); len(attrs) > 0 {
				names := make([]string, len(attrs))
				for i, attr := range attrs {
					names[i] = attr.String()
				}

				fmt.Fprintf(b, "  %s: %s not initialized\n", a.Actor, strings.Join(names, ", "))
			}
		}
	}

	for _, v := range r.Variables {
		for _, name := range slices.Sorted(maps.Keys(v.States)) {
			fmt.Fprintf(b, "variable %s %q: %s\n", v.Scope, name, v.States[name])
		}
	}

	for _, d := range r.Duplicates {
		fmt.Fprintf(b, "duplicate: %s script %d (%d blocks)\n", d.Actor, d.Index, len(d.Blocks))
	}

	formatList(b, "default sprite name", r.DefaultNames)

	if r.Blocks != nil {
		fmt.Fprintf(b, "blocks: %d\n", r.Blocks.Total())
	}
}

func formatList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(b, "  %s: %s\n", label, strings.Join(items, ", "))
}
