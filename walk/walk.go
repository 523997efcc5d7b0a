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

package walk

import (
	"iter"
	"strings"

	"github.com/ucsb-cs-education/hairball/model"
	"github.com/ucsb-cs-education/hairball/op"
)

// Step is one visited block.
type Step struct {
	Kind  op.Kind      // Canonical operation
	Name  string       // Canonical name; the raw identifier for [op.Unknown]
	Depth int          // 0 for top-level blocks, +1 for each enclosing nested sequence
	Block *model.Block // The visited block
}

// frame is a pending block on the traversal stack.
type frame struct {
	block *model.Block
	depth int
}

// Blocks yields the canonicalized pre-order traversal of a block sequence.
//
// A block is yielded before its arguments. Arguments are expanded in order: nested
// sequences one level deeper, nested expression blocks at the same depth. All of a
// block's descendants are visited before its next sibling. Blocks with an empty raw
// identifier (comments) are skipped including their arguments.
func Blocks(blocks []*model.Block) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		stack := pushSequence(nil, blocks, 0)

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.block == nil || f.block.Op == "" {
				continue
			}

			kind, name := Canonical(f.block)
			if !yield(Step{Kind: kind, Name: name, Depth: f.depth, Block: f.block}) {
				return
			}

			stack = pushArgs(stack, f.block.Args, f.depth)
		}
	}
}

// Script yields the canonicalized pre-order traversal of a script.
func Script(s *model.Script) iter.Seq[Step] {
	if s == nil {
		return Blocks(nil)
	}

	return Blocks(s.Blocks)
}

// First returns the first visited block of a sequence.
func First(blocks []*model.Block) (Step, bool) {
	for step := range Blocks(blocks) {
		return step, true
	}

	return Step{}, false
}

// pushSequence pushes a block sequence so that its first block is popped first.
func pushSequence(stack []frame, blocks []*model.Block, depth int) []frame {
	for i := len(blocks) - 1; i >= 0; i-- {
		stack = append(stack, frame{block: blocks[i], depth: depth})
	}

	return stack
}

// pushArgs pushes the nested blocks of an argument list so that they are popped in argument order.
func pushArgs(stack []frame, args []model.Arg, depth int) []frame {
	for i := len(args) - 1; i >= 0; i-- {
		switch arg := args[i].(type) {
		case model.Body:
			stack = pushSequence(stack, arg, depth+1)

		case *model.Block:
			stack = append(stack, frame{block: arg, depth: depth})
		}
	}

	return stack
}

// Canonical returns the canonical operation and name of a single block.
func Canonical(b *model.Block) (op.Kind, string) {
	var kind op.Kind

	switch b.Op {
	case op.RawEventHat:
		if l, _ := b.LiteralArg(0); l == op.RawStartClicked {
			kind = op.WhenGreenFlag
		} else {
			kind = op.WhenIReceive
		}

	case op.RawChangeVariable:
		if l, _ := b.LiteralArg(1); strings.Contains(string(l), op.RawSetVarMarker) {
			kind = op.SetVar
		} else {
			kind = op.ChangeVar
		}

	default:
		kind = op.Lookup(b.Op)
		if kind == op.Unknown {
			return op.Unknown, b.Op
		}
	}

	return kind, kind.String()
}
