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

// Raw identifiers that conflate several canonical operations and must be split
// by inspecting their arguments.
const (
	// RawEventHat is the trigger for both "when green flag clicked" and "when I receive".
	RawEventHat = "EventHatMorph"

	// RawStartClicked is the [RawEventHat] argument selecting "when green flag clicked".
	RawStartClicked = "Scratch-StartClicked"

	// RawChangeVariable is the variable write for both "set" and "change".
	RawChangeVariable = "changeVariable"

	// RawSetVarMarker is contained in the [RawChangeVariable] flag argument selecting "set".
	RawSetVarMarker = "setVar"
)

// rawKinds maps raw operation identifiers to their canonical operation.
var rawKinds = map[string]Kind{
	// keep-sorted start
	"KeyEventHatMorph":              WhenKeyPressed,
	"MouseClickEventHatMorph":       WhenClicked,
	"answer":                        Answer,
	"broadcast:":                    Broadcast,
	"changeSizeBy:":                 ChangeSize,
	"changeXposBy:":                 ChangeX,
	"changeYposBy:":                 ChangeY,
	"comeToFront":                   GoToFront,
	"doAsk":                         Ask,
	"doBroadcastAndWait":            BroadcastAndWait,
	"doForever":                     Forever,
	"doForeverIf":                   ForeverIf,
	"doIf":                          If,
	"doIfElse":                      IfElse,
	"doPlaySoundAndWait":            PlaySoundUntilDone,
	"doRepeat":                      Repeat,
	"doReturn":                      StopScript,
	"doUntil":                       RepeatUntil,
	"doWaitUntil":                   WaitUntil,
	"forward:":                      Move,
	"glideSecs:toX:y:elapsed:from:": Glide,
	"gotoSpriteOrMouse:":            GoTo,
	"gotoX:y:":                      GoToXY,
	"heading":                       Direction,
	"heading:":                      PointInDirection,
	"hide":                          Hide,
	"hideVariable:":                 HideVariable,
	"keyPressed:":                   KeyPressed,
	"lookLike:":                     SwitchCostume,
	"nextBackground":                NextBackground,
	"nextCostume":                   NextCostume,
	"playSound:":                    PlaySound,
	"pointTowards:":                 PointTowards,
	"readVariable":                  ReadVariable,
	"say:":                          Say,
	"say:duration:elapsed:from:":    SayFor,
	"setSizeTo:":                    SetSize,
	"show":                          Show,
	"showBackground:":               SwitchBackground,
	"showVariable:":                 ShowVariable,
	"stopAll":                       StopAll,
	"stopAllSounds":                 StopAllSounds,
	"think:":                        Think,
	"think:duration:elapsed:from:":  ThinkFor,
	"touching:":                     Touching,
	"turnLeft:":                     TurnLeft,
	"turnRight:":                    TurnRight,
	"wait:elapsed:from:":            Wait,
	"xpos":                          XPosition,
	"xpos:":                         SetX,
	"ypos":                          YPosition,
	"ypos:":                         SetY,
	// keep-sorted end
}

// Lookup returns the canonical operation of a raw identifier, or [Unknown].
//
// Identifiers that need their arguments for disambiguation ([RawEventHat],
// [RawChangeVariable]) are [Unknown] here.
func Lookup(raw string) Kind {
	return rawKinds[raw]
}
