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

// Package testproject provides utilities for building projects in tests.
//
// Blocks are built with their raw operation identifiers, so tests exercise the same
// canonicalization as decoded dumps.
package testproject

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ucsb-cs-education/hairball/internal/modelio"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/op"
)

// Parse decodes a model dump into a project.
// The provided source is the content of the top-level object, without braces, so
// a test can write `"stage": {...}, "sprites": [...]`.
func Parse(tb testing.TB, src string) *model.Project {
	tb.Helper()

	p, err := modelio.Decode(strings.NewReader("{" + src + "}"))
	if err != nil {
		tb.Fatalf("Failed to decode dump %q: %v", src, err)
	}

	return p
}

// Project creates a project with the given stage scripts and sprites.
func Project(stage []*model.Script, sprites ...*model.Actor) *model.Project {
	return &model.Project{
		Stage:   &model.Actor{Kind: model.Stage, Name: "Stage", Scripts: stage},
		Sprites: sprites,
	}
}

// Sprite creates a sprite with the given scripts.
func Sprite(name string, scripts ...*model.Script) *model.Actor {
	return &model.Actor{Kind: model.Sprite, Name: name, Scripts: scripts}
}

// Scripts collects scripts, for use with [Project].
func Scripts(scripts ...*model.Script) []*model.Script { return scripts }

// Script creates a script from a trigger and the following blocks.
func Script(blocks ...*model.Block) *model.Script { return model.NewScript(blocks...) }

// GreenFlag is the "when green flag clicked" trigger.
func GreenFlag() *model.Block {
	return model.NewBlock(op.RawEventHat, model.Literal(op.RawStartClicked))
}

// Receive is the "when I receive" trigger.
func Receive(message string) *model.Block {
	return model.NewBlock(op.RawEventHat, model.Literal(message))
}

// KeyPressed is the "when key pressed" trigger.
func KeyPressed(key string) *model.Block {
	return model.NewBlock("KeyEventHatMorph", model.Literal(key))
}

// Clicked is the "when clicked" trigger.
func Clicked() *model.Block {
	return model.NewBlock("MouseClickEventHatMorph")
}

// Broadcast emits a message.
func Broadcast(message string) *model.Block {
	return model.NewBlock("broadcast:", model.Literal(message))
}

// BroadcastAndWait emits a message and waits for its receivers.
func BroadcastAndWait(message string) *model.Block {
	return model.NewBlock("doBroadcastAndWait", model.Literal(message))
}

// BroadcastOf emits a computed message.
func BroadcastOf(expr *model.Block) *model.Block {
	return model.NewBlock("broadcast:", expr)
}

// GoToXY sets the position.
func GoToXY(x, y int) *model.Block {
	return model.NewBlock("gotoX:y:", number(x), number(y))
}

// Move changes the position.
func Move(steps int) *model.Block {
	return model.NewBlock("forward:", number(steps))
}

// PointInDirection sets the orientation.
func PointInDirection(degrees int) *model.Block {
	return model.NewBlock("heading:", number(degrees))
}

// TurnRight changes the orientation.
func TurnRight(degrees int) *model.Block {
	return model.NewBlock("turnRight:", number(degrees))
}

// SwitchCostume sets the costume.
func SwitchCostume(costume string) *model.Block {
	return model.NewBlock("lookLike:", model.Literal(costume))
}

// NextCostume changes the costume.
func NextCostume() *model.Block {
	return model.NewBlock("nextCostume")
}

// SetSize sets the size.
func SetSize(percent int) *model.Block {
	return model.NewBlock("setSizeTo:", number(percent))
}

// ChangeSize changes the size.
func ChangeSize(by int) *model.Block {
	return model.NewBlock("changeSizeBy:", number(by))
}

// Show makes the actor visible.
func Show() *model.Block { return model.NewBlock("show") }

// Hide makes the actor invisible.
func Hide() *model.Block { return model.NewBlock("hide") }

// Say displays a speech bubble.
func Say(text string) *model.Block {
	return model.NewBlock("say:", model.Literal(text))
}

// Wait pauses the script.
func Wait(secs int) *model.Block {
	return model.NewBlock("wait:elapsed:from:", number(secs))
}

// SetVar sets a variable.
func SetVar(name, value string) *model.Block {
	return model.NewBlock(op.RawChangeVariable, model.Literal(name), model.Literal("setVar:to:"), model.Literal(value))
}

// ChangeVar changes a variable.
func ChangeVar(name string, by int) *model.Block {
	return model.NewBlock(op.RawChangeVariable, model.Literal(name), model.Literal("changeVar:by:"), number(by))
}

// ReadVariable reports the value of a variable.
func ReadVariable(name string) *model.Block {
	return model.NewBlock("readVariable", model.Literal(name))
}

// Forever repeats its body.
func Forever(body ...*model.Block) *model.Block {
	return model.NewBlock("doForever", model.Body(body))
}

// Repeat repeats its body a number of times.
func Repeat(times int, body ...*model.Block) *model.Block {
	return model.NewBlock("doRepeat", number(times), model.Body(body))
}

// If runs its body when the condition holds.
func If(cond *model.Block, body ...*model.Block) *model.Block {
	return model.NewBlock("doIf", cond, model.Body(body))
}

// IfElse runs one of its bodies.
func IfElse(cond *model.Block, then, els []*model.Block) *model.Block {
	return model.NewBlock("doIfElse", cond, model.Body(then), model.Body(els))
}

// Touching is a condition.
func Touching(what string) *model.Block {
	return model.NewBlock("touching:", model.Literal(what))
}

// Comment is a block without operation.
func Comment(text string) *model.Block {
	return model.NewBlock("", model.Literal(text))
}

func number(n int) model.Literal {
	return model.Literal(strconv.Itoa(n))
}
