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
	"github.com/ucsb-cs-education/hairball/classify"
	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/op"
	"github.com/ucsb-cs-education/hairball/walk"
)

// ownedScript is a script together with the actor it belongs to, needed to resolve variable names.
type ownedScript struct {
	actor  *model.Actor
	script *model.Script
}

// StateOf returns the initialization state of an attribute group of an actor.
// For [Variables] this is the most severe state of the actor's local variables.
func StateOf(actor *model.Actor, attr Attribute) State {
	if attr == Variables {
		return Worst(LocalVariables(actor))
	}

	return Actor(actor)[attr]
}

// Actor returns the initialization states of all attribute groups of an actor, excluding [Variables].
func Actor(actor *model.Actor) map[Attribute]State {
	start, other := partition(actor)

	states := track(start, other, attributeWrites)
	for _, attr := range Attributes {
		if _, ok := states[attr]; !ok {
			states[attr] = NotModified
		}
	}

	return states
}

// LocalVariables returns the initialization states of the variables declared by an actor.
// Variables no script writes are [NotModified], reported as unused.
func LocalVariables(actor *model.Actor) map[string]State {
	start, other := partition(actor)

	match := func(_ *model.Actor, step walk.Step) (string, Mode, bool) {
		name, mode, ok := variableWrite(step)
		if !ok {
			return "", 0, false
		}

		if _, declared := actor.Variables[name]; !declared {
			return "", 0, false
		}

		return name, mode, true
	}

	return withDeclared(track(start, other, match), actor.Variables)
}

// GlobalVariables returns the initialization states of the project's global variables,
// considering the scripts of all actors. Writes to a name an actor declares locally
// don't affect the global variable.
func GlobalVariables(p *model.Project) map[string]State {
	var start, other []ownedScript

	for actor, script := range p.Scripts() {
		owned := ownedScript{actor, script}
		if classify.Script(script).Kind == classify.ProgramStart {
			start = append(start, owned)
		} else {
			other = append(other, owned)
		}
	}

	match := func(actor *model.Actor, step walk.Step) (string, Mode, bool) {
		name, mode, ok := variableWrite(step)
		if !ok {
			return "", 0, false
		}

		if scope, _ := p.Lookup(actor, name); scope != model.Global {
			return "", 0, false
		}

		return name, mode, true
	}

	return withDeclared(track(start, other, match), p.Variables)
}

// track runs the initialization state machine for every key written by the scripts.
//
// Within a program start script, the first write of a key decides that script's
// contribution: an absolute write at the top level before any "broadcast and wait"
// initializes the key, unless another script did already, anything else modifies it.
// Scripts not started by the program can't initialize, any write modifies a key
// that is not yet initialized.
//
// match reports the key and mode of the write performed by a visited block, if any.
func track[K comparable](start, other []ownedScript, match func(*model.Actor, walk.Step) (K, Mode, bool)) map[K]State {
	states := make(map[K]State)

	for _, s := range start {
		inZone := true
		decided := make(map[K]struct{})

		for step := range walk.Script(s.script) {
			if step.Kind == op.BroadcastAndWait {
				inZone = false // receivers run before the remaining blocks, in unknown order

				continue
			}

			key, mode, ok := match(s.actor, step)
			if !ok {
				continue
			}

			if _, ok := decided[key]; ok {
				continue
			}
			decided[key] = struct{}{}

			initializes := mode == Absolute && inZone && step.Depth == 0
			states[key] = transition(states[key], initializes)
		}
	}

	for _, s := range other {
		for step := range walk.Script(s.script) {
			key, _, ok := match(s.actor, step)
			if !ok {
				continue
			}

			if states[key] == NotModified {
				states[key] = Modified
			}
		}
	}

	return states
}

// transition returns the state after a program start script first wrote a key.
func transition(state State, initializes bool) State {
	switch {
	case !initializes:
		return Modified

	case state == NotModified:
		return Initialized

	default: // conflicting initializers, or already modified
		return Modified
	}
}

func partition(actor *model.Actor) (start, other []ownedScript) {
	for _, script := range actor.Scripts {
		if script == nil {
			continue
		}

		owned := ownedScript{actor, script}
		if classify.Script(script).Kind == classify.ProgramStart {
			start = append(start, owned)
		} else {
			other = append(other, owned)
		}
	}

	return start, other
}

func attributeWrites(_ *model.Actor, step walk.Step) (Attribute, Mode, bool) {
	attr, mode, ok := Lookup(step.Kind)
	if !ok || attr == Variables {
		return 0, 0, false
	}

	return attr, mode, true
}

// variableWrite returns the variable name and mode of a variable write.
func variableWrite(step walk.Step) (string, Mode, bool) {
	attr, mode, ok := Lookup(step.Kind)
	if !ok || attr != Variables {
		return "", 0, false
	}

	name, ok := step.Block.LiteralArg(0)
	if !ok {
		return "", 0, false
	}

	return string(name), mode, true
}

// withDeclared adds all declared variables missing from states as [NotModified].
func withDeclared(states map[string]State, declared model.Variables) map[string]State {
	for name := range declared {
		if _, ok := states[name]; !ok {
			states[name] = NotModified
		}
	}

	return states
}
