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

package classify

import (
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/op"
	"github.com/ucsb-cs-education/hairball/walk"
)

// TriggerKind is the category of event starting a script.
type TriggerKind uint8

//go:generate go tool stringer -type TriggerKind -linecomment
const (
	// None is a script without a trigger. It never runs.
	None TriggerKind = iota // none
	// ProgramStart is a script run when the program starts.
	ProgramStart // program start
	// OnMessage is a script run when a message is broadcast.
	OnMessage // on message
	// OnUserInput is a script run on a key press or mouse click.
	OnUserInput // on user input
)

// Trigger describes how a script is started.
type Trigger struct {
	Kind    TriggerKind
	Message model.Message // The received message for [OnMessage]
}

// Script determines the trigger of a script from its first block. Comment blocks
// before the trigger are skipped.
func Script(s *model.Script) Trigger {
	if s == nil {
		return Trigger{}
	}

	first, ok := walk.First(s.Blocks)
	if !ok || first.Depth != 0 {
		return Trigger{}
	}

	return Step(first)
}

// Step determines the trigger represented by a single visited block.
func Step(step walk.Step) Trigger {
	switch step.Kind {
	case op.WhenGreenFlag:
		return Trigger{Kind: ProgramStart}

	case op.WhenIReceive:
		return Trigger{Kind: OnMessage, Message: model.MessageOf(step.Block.Arg(0))}

	case op.WhenKeyPressed, op.WhenClicked:
		return Trigger{Kind: OnUserInput}

	default:
		return Trigger{}
	}
}

// Partition splits scripts into those started by the given trigger kind and all others,
// keeping their order.
func Partition(scripts []*model.Script, kind TriggerKind) (match, other []*model.Script) {
	for _, s := range scripts {
		if Script(s).Kind == kind {
			match = append(match, s)
		} else {
			other = append(other, s)
		}
	}

	return match, other
}

func (t Trigger) String() string {
	if t.Kind == OnMessage {
		return t.Kind.String() + " " + t.Message.String()
	}

	return t.Kind.String()
}
