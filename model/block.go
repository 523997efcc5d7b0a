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

import "strings"

// Block is one operation node of a script.
type Block struct {
	Op   string // Raw operation identifier as produced by the decoder
	Args []Arg
}

// Arg is a block argument: a [Literal], a nested *[Block] (an expression) or a [Body] (a nested sequence).
type Arg interface {
	isArg()
}

// Literal is a constant argument value.
type Literal string

// Body is a nested block sequence, like the body of a loop or a branch.
type Body []*Block

func (Literal) isArg() {}
func (*Block) isArg()  {}
func (Body) isArg()    {}

// NewBlock creates a [Block] with the given raw identifier and arguments.
func NewBlock(op string, args ...Arg) *Block {
	return &Block{Op: op, Args: args}
}

// Arg returns the i-th argument, or nil if there is none.
func (b *Block) Arg(i int) Arg {
	if b == nil || i < 0 || i >= len(b.Args) {
		return nil
	}

	return b.Args[i]
}

// LiteralArg returns the i-th argument if it is a [Literal].
func (b *Block) LiteralArg(i int) (Literal, bool) {
	l, ok := b.Arg(i).(Literal)

	return l, ok
}

// Message is a normalized broadcast channel name, or the dynamic sentinel when the
// channel is computed at run time.
type Message struct {
	name    string
	dynamic bool
}

// Dynamic is the [Message] of a broadcast whose channel is not statically known.
var Dynamic = Message{dynamic: true}

// NewMessage creates a case-folded concrete [Message].
func NewMessage(name string) Message {
	return Message{name: strings.ToLower(name)}
}

// MessageOf converts a broadcast or receive argument into a [Message].
// Anything but a literal is dynamic.
func MessageOf(arg Arg) Message {
	if l, ok := arg.(Literal); ok {
		return NewMessage(string(l))
	}

	return Dynamic
}

// Name returns the case-folded channel name. It is empty for [Dynamic].
func (m Message) Name() string {
	return m.name
}

// IsDynamic reports whether the channel is not statically known.
func (m Message) IsDynamic() bool {
	return m.dynamic
}

func (m Message) String() string {
	if m.dynamic {
		return "<dynamic>"
	}

	return m.name
}
