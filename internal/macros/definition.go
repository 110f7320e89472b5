// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package macros

import (
	"fmt"
	"maps"
	"slices"
)

// StepKind discriminates the two step variants of a macro definition.
type StepKind int

const (
	// StepCommand is a literal shell command string.
	StepCommand StepKind = iota
	// StepCall is a call to another macro, expanded in place.
	StepCall
)

// Step is one element of a macro's command sequence.
// Exactly one of Command or Call is meaningful, selected by Kind.
type Step struct {
	Kind    StepKind
	Command string
	Call    string
}

// Definition is the canonical in-memory form of a macro.
// Both source shapes (bare sequence and structured mapping) normalize to it.
type Definition struct {
	Steps []Step
	Env   map[string]string
}

// CommandCount returns the number of literal command steps.
// Macro calls are excluded, they contribute their own nested indices.
func (d *Definition) CommandCount() int {
	n := 0

	for _, s := range d.Steps {
		if s.Kind == StepCommand {
			n++
		}
	}

	return n
}

// Set is the definition source: raw macro definitions keyed by name.
// Definitions stay raw until Normalize validates them, immediately before
// execution.
type Set map[string]any

// Names returns the macro names in sorted order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Normalize validates a raw definition and converts it to the canonical
// form. It returns a *ValidationError when the definition is malformed.
func Normalize(name string, raw any) (*Definition, error) {
	switch v := raw.(type) {
	case []any:
		steps, err := normalizeSteps(name, v)
		if err != nil {
			return nil, err
		}

		return &Definition{Steps: steps}, nil
	case nil:
		return nil, &ValidationError{
			Macro:  name,
			Detail: "must be a sequence of commands or a mapping, got nothing",
		}
	default:
		m, ok := asStringMap(raw)
		if !ok {
			return nil, &ValidationError{
				Macro:  name,
				Detail: fmt.Sprintf("must be a sequence of commands or a mapping, got %T", raw),
			}
		}

		return normalizeStructured(name, m)
	}
}

func normalizeStructured(name string, m map[string]any) (*Definition, error) {
	rawCommands, ok := m["commands"]
	if !ok {
		return nil, &ValidationError{
			Macro:  name,
			Field:  "commands",
			Detail: "is required; valid keys are 'commands' and 'env'",
		}
	}

	commands, ok := rawCommands.([]any)
	if !ok {
		return nil, &ValidationError{
			Macro:  name,
			Field:  "commands",
			Detail: fmt.Sprintf("must be a sequence, got %T", rawCommands),
		}
	}

	steps, err := normalizeSteps(name, commands)
	if err != nil {
		return nil, err
	}

	def := &Definition{Steps: steps}

	rawEnv, ok := m["env"]
	if !ok || rawEnv == nil {
		return def, nil
	}

	env, ok := asStringMap(rawEnv)
	if !ok {
		return nil, &ValidationError{
			Macro:  name,
			Field:  "env",
			Detail: fmt.Sprintf("must be a mapping, got %T", rawEnv),
		}
	}

	def.Env = make(map[string]string, len(env))

	for _, k := range slices.Sorted(maps.Keys(env)) {
		s, ok := env[k].(string)
		if !ok {
			return nil, &ValidationError{
				Macro:  name,
				Field:  "env." + k,
				Detail: fmt.Sprintf("must be a string, got %T", env[k]),
			}
		}

		def.Env[k] = s
	}

	return def, nil
}

func normalizeSteps(name string, raw []any) ([]Step, error) {
	steps := make([]Step, 0, len(raw))

	for i, v := range raw {
		switch s := v.(type) {
		case string:
			steps = append(steps, Step{Kind: StepCommand, Command: s})
		default:
			m, ok := asStringMap(v)
			if !ok {
				return nil, &ValidationError{
					Macro:  name,
					Field:  fmt.Sprintf("commands[%d]", i),
					Detail: fmt.Sprintf("must be a command string or a {call: name} mapping, got %T", v),
				}
			}

			call, ok := m["call"].(string)
			if !ok || call == "" {
				return nil, &ValidationError{
					Macro:  name,
					Field:  fmt.Sprintf("commands[%d].call", i),
					Detail: "must be a non-empty macro name",
				}
			}

			steps = append(steps, Step{Kind: StepCall, Call: call})
		}
	}

	return steps, nil
}

// asStringMap converts the mapping shapes a YAML decoder may produce into a
// string-keyed map.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))

		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}

			out[ks] = val
		}

		return out, true
	default:
		return nil, false
	}
}
