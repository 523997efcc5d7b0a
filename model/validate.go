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

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStage is returned for a project without a stage.
	ErrNoStage = errors.New("project has no stage")

	// ErrNilActor is returned for a nil sprite entry.
	ErrNilActor = errors.New("nil actor")

	// ErrEmptyScript is returned for a script without blocks.
	ErrEmptyScript = errors.New("script has no blocks")
)

// Validate checks the structural contract a decoder must fulfill before analysis.
// All violations are reported, joined.
func (p *Project) Validate() error {
	if p.Stage == nil {
		return ErrNoStage
	}

	errs := validateActor(nil, p.Stage)

	for i, sprite := range p.Sprites {
		if sprite == nil {
			errs = append(errs, fmt.Errorf("sprite %d: %w", i, ErrNilActor))

			continue
		}

		errs = validateActor(errs, sprite)
	}

	return errors.Join(errs...)
}

func validateActor(errs []error, actor *Actor) []error {
	for i, script := range actor.Scripts {
		if script == nil || len(script.Blocks) == 0 {
			errs = append(errs, fmt.Errorf("%s %q script %d: %w", actor.Kind, actor.Name, i, ErrEmptyScript))
		}
	}

	return errs
}
