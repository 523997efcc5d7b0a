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

// Package modelio decodes model dumps, the JSON representation of a [model.Project].
//
// A dump is an object with the members "stage", "sprites" and "variables":
//
//	{"stage": {"name": "Stage", "variables": {"score": 0},
//	           "scripts": [[["EventHatMorph", "Scratch-StartClicked"], ["broadcast:", "go"]]]},
//	 "sprites": [{"name": "Cat", "scripts": [], "variables": {}}],
//	 "variables": {"lives": 3}}
//
// A script is an array of blocks. A block is an array starting with its raw operation
// identifier, followed by its arguments. An argument is a nested block when it is an
// array starting with a string, a nested sequence when it is an array of arrays (or
// empty), and a literal otherwise.
package modelio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/ucsb-cs-education/hairball/model"
)

// ErrMalformed is returned for dumps that are not valid JSON or don't describe a project.
var ErrMalformed = errors.New("malformed model dump")

type projectDump struct {
	Stage     *actorDump                `json:"stage"`
	Sprites   []*actorDump              `json:"sprites"`
	Variables map[string]jsontext.Value `json:"variables"`
}

type actorDump struct {
	Name      string                    `json:"name"`
	Scripts   []jsontext.Value          `json:"scripts"`
	Variables map[string]jsontext.Value `json:"variables"`
}

// ReadFile decodes the model dump stored in the named file.
func ReadFile(name string) (*model.Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a model dump from r.
func Decode(r io.Reader) (*model.Project, error) {
	var d projectDump
	if err := json.UnmarshalRead(r, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if d.Stage == nil {
		return nil, fmt.Errorf("%w: missing stage", ErrMalformed)
	}

	stage, err := d.Stage.actor(model.Stage, "/stage")
	if err != nil {
		return nil, err
	}

	p := &model.Project{Stage: stage}

	if p.Variables, err = variables(d.Variables, "/variables"); err != nil {
		return nil, err
	}

	for i, s := range d.Sprites {
		loc := fmt.Sprintf("/sprites/%d", i)
		if s == nil {
			return nil, fmt.Errorf("%w at %s: null sprite", ErrMalformed, loc)
		}

		sprite, err := s.actor(model.Sprite, loc)
		if err != nil {
			return nil, err
		}

		p.Sprites = append(p.Sprites, sprite)
	}

	return p, nil
}

func (a *actorDump) actor(kind model.ActorKind, loc string) (*model.Actor, error) {
	actor := &model.Actor{Kind: kind, Name: a.Name}
	if actor.Name == "" && kind == model.Stage {
		actor.Name = "Stage"
	}

	var err error
	if actor.Variables, err = variables(a.Variables, loc+"/variables"); err != nil {
		return nil, err
	}

	for i, raw := range a.Scripts {
		blocks, err := sequence(raw, fmt.Sprintf("%s/scripts/%d", loc, i))
		if err != nil {
			return nil, err
		}

		if len(blocks) == 0 {
			return nil, fmt.Errorf("%w at %s/scripts/%d: %w", ErrMalformed, loc, i, model.ErrEmptyScript)
		}

		actor.Scripts = append(actor.Scripts, model.NewScript(blocks...))
	}

	return actor, nil
}

func variables(raw map[string]jsontext.Value, loc string) (model.Variables, error) {
	if raw == nil {
		return nil, nil
	}

	vars := make(model.Variables, len(raw))
	for name, v := range raw {
		l, err := literal(v, loc+"/"+name)
		if err != nil {
			return nil, err
		}

		vars[name] = l
	}

	return vars, nil
}

// sequence decodes an array of blocks.
func sequence(raw jsontext.Value, loc string) ([]*model.Block, error) {
	elems, err := array(raw, loc)
	if err != nil {
		return nil, err
	}

	blocks := make([]*model.Block, 0, len(elems))
	for i, elem := range elems {
		b, err := block(elem, fmt.Sprintf("%s/%d", loc, i))
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, b)
	}

	return blocks, nil
}

// block decodes an array starting with the raw operation identifier.
func block(raw jsontext.Value, loc string) (*model.Block, error) {
	elems, err := array(raw, loc)
	if err != nil {
		return nil, err
	}

	if len(elems) == 0 || elems[0].Kind() != '"' {
		return nil, fmt.Errorf("%w at %s: block without operation", ErrMalformed, loc)
	}

	var op string
	if err := json.Unmarshal(elems[0], &op); err != nil {
		return nil, fmt.Errorf("%w at %s/0: %w", ErrMalformed, loc, err)
	}

	var args []model.Arg
	for i, elem := range elems[1:] {
		arg, err := argument(elem, fmt.Sprintf("%s/%d", loc, i+1))
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	return model.NewBlock(op, args...), nil
}

func argument(raw jsontext.Value, loc string) (model.Arg, error) {
	if raw.Kind() != '[' {
		return literal(raw, loc)
	}

	elems, err := array(raw, loc)
	if err != nil {
		return nil, err
	}

	if len(elems) > 0 && elems[0].Kind() == '"' {
		return block(raw, loc)
	}

	blocks, err := sequence(raw, loc)
	if err != nil {
		return nil, err
	}

	return model.Body(blocks), nil
}

func array(raw jsontext.Value, loc string) ([]jsontext.Value, error) {
	if raw.Kind() != '[' {
		return nil, fmt.Errorf("%w at %s: expected array, got %s", ErrMalformed, loc, raw.Kind())
	}

	var elems []jsontext.Value
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrMalformed, loc, err)
	}

	return elems, nil
}

// literal formats a scalar. Numbers keep their textual representation, null is empty.
func literal(raw jsontext.Value, loc string) (model.Literal, error) {
	switch raw.Kind() {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%w at %s: %w", ErrMalformed, loc, err)
		}

		return model.Literal(s), nil

	case '0', 't', 'f':
		return model.Literal(strings.TrimSpace(string(raw))), nil

	case 'n':
		return "", nil

	default:
		return "", fmt.Errorf("%w at %s: unexpected %s", ErrMalformed, loc, raw.Kind())
	}
}
