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

package op

// Kind is the canonical operation of a block.
//
// The string representation is the canonical operation name, as shown on the block
// with argument slots abbreviated (%n number, %s string, %e event, %v variable, ...).
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Unknown is any operation not in this vocabulary. Such blocks keep their raw identifier as name.
	Unknown Kind = iota // unknown

	// Triggers.
	WhenGreenFlag  // when green flag clicked
	WhenIReceive   // when I receive %e
	WhenKeyPressed // when %k key pressed
	WhenClicked    // when %m clicked

	// Messages.
	Broadcast        // broadcast %e
	BroadcastAndWait // broadcast %e and wait

	// Control.
	Wait        // wait %n secs
	Forever     // forever
	Repeat      // repeat %n
	If          // if %b
	IfElse      // if %b else
	WaitUntil   // wait until %b
	RepeatUntil // repeat until %b
	ForeverIf   // forever if %b
	StopScript  // stop script
	StopAll     // stop all

	// Motion.
	Move             // move %n steps
	TurnRight        // turn cw %n degrees
	TurnLeft         // turn ccw %n degrees
	PointInDirection // point in direction %d
	PointTowards     // point towards %m
	GoToXY           // go to x:%n y:%n
	GoTo             // go to %m
	Glide            // glide %n secs to x:%n y:%n
	ChangeX          // change x by %n
	SetX             // set x to %n
	ChangeY          // change y by %n
	SetY             // set y to %n
	XPosition        // x position
	YPosition        // y position
	Direction        // direction

	// Looks.
	SwitchCostume    // switch to costume %l
	NextCostume      // next costume
	SwitchBackground // switch to background %l
	NextBackground   // next background
	Say              // say %s
	SayFor           // say %s for %n secs
	Think            // think %s
	ThinkFor         // think %s for %n secs
	ChangeSize       // change size by %n
	SetSize          // set size to %n%
	Show             // show
	Hide             // hide
	GoToFront        // go to front

	// Sound.
	PlaySound          // play sound %S
	PlaySoundUntilDone // play sound %S until done
	StopAllSounds      // stop all sounds

	// Variables.
	SetVar       // set %v to %s
	ChangeVar    // change %v by %n
	ReadVariable // %v
	ShowVariable // show variable %v
	HideVariable // hide variable %v

	// Sensing.
	Ask        // ask %s and wait
	Answer     // answer
	KeyPressed // key %k pressed?
	Touching   // touching %m?

	numKinds = iota
)

// IsTrigger reports whether the operation starts a script.
func (k Kind) IsTrigger() bool {
	return WhenGreenFlag <= k && k <= WhenClicked
}

// IsBroadcast reports whether the operation emits a message.
func (k Kind) IsBroadcast() bool {
	return k == Broadcast || k == BroadcastAndWait
}
