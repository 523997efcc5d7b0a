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

package checks

import (
	"strings"

	"github.com/ucsb-cs-education/hairball/model"
)

// DefaultSpriteNames are the name prefixes the editor assigns to new sprites.
var DefaultSpriteNames = []string{"Sprite", "Objeto"}

// DefaultNames returns the names of sprites that still carry an editor-assigned default name.
func DefaultNames(p *model.Project, defaults []string) []string {
	var names []string

	for _, sprite := range p.Sprites {
		if sprite == nil {
			continue
		}

		for _, d := range defaults {
			if strings.Contains(sprite.Name, d) {
				names = append(names, sprite.Name)

				break
			}
		}
	}

	return names
}
