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
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ucsb-cs-education/hairball/analyzer"
	"github.com/ucsb-cs-education/hairball/internal/batch"
	"github.com/ucsb-cs-education/hairball/internal/ctxlog"
	"github.com/ucsb-cs-education/hairball/internal/modelio"
	"github.com/ucsb-cs-education/hairball/stats"
)

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	c, shouldExit, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	logger := newLogger(c.logLevel, c.logFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	a := analyzer.New(c.options...)
	logger.DebugContext(ctx, "Analyzer configured", "analyzer", a, "workers", c.workers)

	files, err := collect(c.paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		logger.WarnContext(ctx, "No model dumps found", "paths", c.paths)

		return nil
	}

	results, err := batch.Run(ctx, c.workers, files, func(ctx context.Context, file string) (*analyzer.Report, error) {
		p, err := modelio.ReadFile(file)
		if err != nil {
			return nil, err
		}

		return a.Run(ctx, p)
	})
	if err != nil {
		return err
	}

	var (
		totals stats.Counts
		out    = make([]fileReport, 0, len(files))
		failed int
	)

	for i, r := range results {
		fr := fileReport{Path: files[i], Report: r.Value}

		if r.Err != nil {
			failed++
			fr.Error = r.Err.Error()
			logger.ErrorContext(ctx, "Analysis failed", "path", files[i], "error", r.Err)
		} else if r.Value.Blocks != nil {
			totals.Merge(r.Value.Blocks)
		}

		out = append(out, fr)
	}

	if c.json {
		err = writeJSON(stdout, out, &totals, c.quiet)
	} else {
		err = writeText(stdout, out, &totals, c.quiet)
	}

	if err != nil {
		return fmt.Errorf("can't write report: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d projects failed", failed, len(files))
	}

	return nil
}

// collect returns the model dumps named by paths. Directories are walked in lexical
// order, picking *.json files.
func collect(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)

			continue
		}

		err = filepath.WalkDir(path, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && strings.EqualFold(filepath.Ext(name), ".json") {
				files = append(files, name)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
