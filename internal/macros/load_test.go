// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package macros

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRootShapes(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantNames []string
		wantErr   error
	}{
		{
			name: "plain mapping",
			yaml: `
build:
  - go build ./...
test:
  - go test ./...
`,
			wantNames: []string{"build", "test"},
		},
		{
			name: "wrapped in macros key",
			yaml: `
macros:
  build:
    - go build ./...
`,
			wantNames: []string{"build"},
		},
		{
			name:      "macros key next to others is a macro itself",
			yaml:      "macros:\n  - echo hi\nother:\n  - echo ho\n",
			wantNames: []string{"macros", "other"},
		},
		{
			name:      "empty document",
			yaml:      "",
			wantNames: []string{},
		},
		{
			name:      "empty macros key",
			yaml:      "macros:\n",
			wantNames: []string{},
		},
		{
			name:    "sequence root",
			yaml:    "- echo hi\n",
			wantErr: ErrInvalidRoot,
		},
		{
			name:    "invalid yaml",
			yaml:    "build: [unclosed\n",
			wantErr: ErrInvalidYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse([]byte(tt.yaml))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			if len(tt.wantNames) == 0 {
				assert.Empty(t, set)
				return
			}

			assert.Equal(t, tt.wantNames, set.Names())
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "runner.yaml", []byte("build:\n  - go build ./...\n"), 0o644))

	set, err := Load(fsys, "runner.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, set.Names())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "runner.yaml")
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, err.Error(), "runner.yaml")
}

func TestLoadThenNormalize(t *testing.T) {
	fsys := afero.NewMemMapFs()
	src := `
release:
  commands:
    - call: build
    - echo done
  env:
    TAG: v1
build:
  - go build ./...
`
	require.NoError(t, afero.WriteFile(fsys, "runner.yaml", []byte(src), 0o644))

	set, err := Load(fsys, "runner.yaml")
	require.NoError(t, err)

	def, err := Normalize("release", set["release"])
	require.NoError(t, err)
	require.Len(t, def.Steps, 2)
	assert.Equal(t, "build", def.Steps[0].Call)
	assert.Equal(t, map[string]string{"TAG": "v1"}, def.Env)
}
