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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"

	"github.com/ucsb-cs-education/hairball/checks"
	"github.com/ucsb-cs-education/hairball/initialization"
	"github.com/ucsb-cs-education/hairball/internal/config"
	"github.com/ucsb-cs-education/hairball/internal/ctxlog"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/reachability"
	"github.com/ucsb-cs-education/hairball/stats"
)

// ErrInvalidProject is returned when a project violates the structural contract of the model.
var ErrInvalidProject = errors.New("invalid project")

// Run executes the hairball pipeline on a project.
//
// Reachability analysis annotates the project; all further checks are read-only.
// Running a second time on the same project reuses the existing annotation.
func (a *Analyzer) Run(ctx context.Context, p *model.Project) (*Report, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil project", ErrInvalidProject)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	ctx, task := trace.NewTask(ctx, "Hairball")
	defer task.End()

	logger := ctxlog.FromContext(ctx)

	// Stage 1: Mark reachable scripts
	if !reachability.Analyze(ctx, p) {
		logger.DebugContext(ctx, "Project already prepared, reusing reachability")
	}

	r := &Report{}
	for script := range p.AllScripts() {
		r.Scripts++
		if script.Reachable() {
			r.Reachable++
		}
	}

	// Stage 2: Derive the enabled findings
	enabled := func(c config.Checks) bool { return a.opts.checks.Has(c) }

	if enabled(config.DeadCode) {
		dead := checks.DeadCode(p)
		r.DeadCode = &dead
	}

	if enabled(config.Broadcast) {
		broadcasts := checks.Broadcasts(p)
		r.Broadcasts = &broadcasts

		if len(broadcasts.Dynamic) > 0 {
			logger.WarnContext(ctx, "Computed broadcast messages, reachability may be incomplete",
				slog.Any("actors", broadcasts.Dynamic))
		}
	}

	if enabled(config.Initialization) {
		region := trace.StartRegion(ctx, "Initialization")
		for actor := range p.Actors() {
			r.Initialization = append(r.Initialization, ActorStates{
				Actor:  actor.Name,
				States: initialization.Actor(actor),
			})
		}
		region.End()
	}

	if enabled(config.Variables) {
		r.Variables = variableStates(p)
	}

	if enabled(config.Blocks) {
		r.Blocks = stats.Count(p.AllScripts())
	}

	if enabled(config.Duplicates) {
		r.Duplicates = checks.Duplicates(p, a.opts.minDuplicateBlocks)
	}

	if enabled(config.Naming) {
		r.DefaultNames = checks.DefaultNames(p, a.opts.defaultNames)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Analyzed project",
		slog.Int("scripts", r.Scripts),
		slog.Int("reachable", r.Reachable),
	)

	return r, nil
}

// variableStates returns the labeled variable states of every actor declaring
// variables, followed by the global variables.
func variableStates(p *model.Project) []VariableStates {
	var vs []VariableStates

	for actor := range p.Actors() {
		if len(actor.Variables) == 0 {
			continue
		}

		vs = append(vs, VariableStates{Scope: actor.Name, States: labels(initialization.LocalVariables(actor))})
	}

	if len(p.Variables) > 0 {
		vs = append(vs, VariableStates{Scope: GlobalScope, States: labels(initialization.GlobalVariables(p))})
	}

	return vs
}

func labels(states map[string]initialization.State) map[string]string {
	l := make(map[string]string, len(states))
	for name, state := range states {
		l[name] = state.VariableLabel()
	}

	return l
}
