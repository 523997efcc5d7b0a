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

// Package batch analyzes several inputs concurrently.
package batch

import (
	"context"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of processing one input.
type Result[O any] struct {
	Value O
	Err   error
}

// Run calls fn for every input, with at most workers calls in flight, and returns the
// results in input order. A failing call does not stop the others; its error is recorded
// in its [Result].
//
// When ctx is canceled no further calls are started, inputs not processed get the
// context's error and Run returns it.
func Run[I, O any](ctx context.Context, workers int, inputs []I, fn func(context.Context, I) (O, error)) ([]Result[O], error) {
	defer trace.StartRegion(ctx, "Batch").End()

	if workers < 1 {
		workers = 1
	}

	results := make([]Result[O], len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(inputs); j++ {
				results[j].Err = err
			}

			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err

				return nil
			}

			results[i].Value, results[i].Err = fn(ctx, input)

			return nil
		})
	}

	_ = g.Wait() // errors are recorded per input

	return results, ctx.Err()
}
