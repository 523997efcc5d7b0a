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

package initialization

import (
	"slices"

	"github.com/ucsb-cs-education/hairball/op"
)

// Attribute is a group of actor properties written by related operations.
type Attribute uint8

//go:generate go tool stringer -type Attribute -linecomment
const (
	Position    Attribute = iota // position
	Orientation                  // orientation
	Costume                      // costume
	Size                         // size
	Visibility                   // visibility
	Variables                    // variables
)

// Attributes lists the attribute groups tracked per actor, excluding [Variables].
var Attributes = [...]Attribute{Position, Orientation, Costume, Size, Visibility}

// Mode classifies a write.
type Mode uint8

//go:generate go tool stringer -type Mode -linecomment
const (
	// Absolute writes set a value independent of the previous one.
	Absolute Mode = iota // absolute
	// Relative writes derive the new value from the previous one.
	Relative // relative
)

// Write is an operation modifying an attribute.
type Write struct {
	Kind op.Kind
	Mode Mode
}

var catalog = map[Attribute][]Write{
	Position: {
		{op.GoToXY, Absolute},
		{op.SetX, Absolute},
		{op.SetY, Absolute},
		{op.Move, Relative},
		{op.GoTo, Relative},
		{op.Glide, Relative},
		{op.ChangeX, Relative},
		{op.ChangeY, Relative},
	},
	Orientation: {
		{op.PointInDirection, Absolute},
		{op.TurnRight, Relative},
		{op.TurnLeft, Relative},
		{op.PointTowards, Relative},
	},
	Costume: {
		{op.SwitchCostume, Absolute},
		{op.SwitchBackground, Absolute},
		{op.NextCostume, Relative},
		{op.NextBackground, Relative},
	},
	Size: {
		{op.SetSize, Absolute},
		{op.ChangeSize, Relative},
	},
	Visibility: {
		{op.Show, Absolute},
		{op.Hide, Absolute},
	},
	Variables: {
		{op.SetVar, Absolute},
		{op.ChangeVar, Relative},
	},
}

// attributeWrite is the attribute and mode of a single operation.
type attributeWrite struct {
	attr Attribute
	mode Mode
}

// byKind is the inverted catalog.
var byKind = func() map[op.Kind]attributeWrite {
	m := make(map[op.Kind]attributeWrite)
	for attr, writes := range catalog {
		for _, w := range writes {
			m[w.Kind] = attributeWrite{attr, w.Mode}
		}
	}

	return m
}()

// Writes returns the operations modifying an attribute.
func Writes(attr Attribute) []Write {
	return slices.Clone(catalog[attr])
}

// Lookup returns the attribute and mode written by an operation.
func Lookup(kind op.Kind) (Attribute, Mode, bool) {
	w, ok := byKind[kind]

	return w.attr, w.mode, ok
}
