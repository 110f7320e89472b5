// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBareSequence(t *testing.T) {
	def, err := Normalize("build", []any{"go build ./...", "go vet ./..."})
	require.NoError(t, err)

	assert.Empty(t, def.Env)
	require.Len(t, def.Steps, 2)
	assert.Equal(t, StepCommand, def.Steps[0].Kind)
	assert.Equal(t, "go build ./...", def.Steps[0].Command)
	assert.Equal(t, 2, def.CommandCount())
}

func TestNormalizeStructured(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			"echo $X",
			map[string]any{"call": "deploy"},
		},
		"env": map[string]any{"X": "outer"},
	}

	def, err := Normalize("release", raw)
	require.NoError(t, err)

	require.Len(t, def.Steps, 2)
	assert.Equal(t, StepCommand, def.Steps[0].Kind)
	assert.Equal(t, StepCall, def.Steps[1].Kind)
	assert.Equal(t, "deploy", def.Steps[1].Call)
	assert.Equal(t, map[string]string{"X": "outer"}, def.Env)
	assert.Equal(t, 1, def.CommandCount(), "macro calls must not count as commands")
}

func TestNormalizeEmptyCommands(t *testing.T) {
	def, err := Normalize("noop", map[string]any{"commands": []any{}})
	require.NoError(t, err)
	assert.Empty(t, def.Steps)
	assert.Equal(t, 0, def.CommandCount())
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		wantField string
	}{
		{
			name:      "scalar definition",
			raw:       "not a macro",
			wantField: "",
		},
		{
			name:      "nil definition",
			raw:       nil,
			wantField: "",
		},
		{
			name:      "missing commands key",
			raw:       map[string]any{"env": map[string]any{"X": "1"}},
			wantField: "commands",
		},
		{
			name:      "commands not a sequence",
			raw:       map[string]any{"commands": "echo hi"},
			wantField: "commands",
		},
		{
			name:      "null commands",
			raw:       map[string]any{"commands": nil},
			wantField: "commands",
		},
		{
			name: "env not a mapping",
			raw: map[string]any{
				"commands": []any{"echo hi"},
				"env":      []any{"X=1"},
			},
			wantField: "env",
		},
		{
			name: "env value not a string",
			raw: map[string]any{
				"commands": []any{"echo hi"},
				"env":      map[string]any{"PORT": 8080},
			},
			wantField: "env.PORT",
		},
		{
			name:      "step neither string nor call",
			raw:       []any{42},
			wantField: "commands[0]",
		},
		{
			name:      "call not a string",
			raw:       []any{map[string]any{"call": 1}},
			wantField: "commands[0].call",
		},
		{
			name:      "empty call name",
			raw:       []any{map[string]any{"call": ""}},
			wantField: "commands[0].call",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize("bad", tt.raw)

			var verr *ValidationError

			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "bad", verr.Macro)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Contains(t, err.Error(), `"bad"`)
		})
	}
}

func TestSetNames(t *testing.T) {
	s := Set{"zeta": nil, "alpha": nil, "mid": nil}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, s.Names())
}
