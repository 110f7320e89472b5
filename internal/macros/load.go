// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package macros

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// DefaultFileName is the definition file looked up when no path is given.
const DefaultFileName = "runner.yaml"

var (
	// ErrFileNotFound is returned when the definition file does not exist.
	ErrFileNotFound = errors.New("macro file not found")
	// ErrInvalidYAML is returned when the definition file is not valid YAML.
	ErrInvalidYAML = errors.New("invalid YAML in macro file")
	// ErrInvalidRoot is returned when the root of the document is not a mapping.
	ErrInvalidRoot = errors.New("invalid macro file format: root must be a mapping")
)

// Load reads and parses the definition file at path.
func Load(fsys afero.Fs, path string) (Set, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}

	return Parse(data)
}

// Parse decodes a definition document. The root is either the macro mapping
// itself, or a mapping with the single recognized key "macros" wrapping it.
func Parse(data []byte) (Set, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}

	if doc == nil {
		return Set{}, nil
	}

	root, ok := asStringMap(doc)
	if !ok {
		return nil, ErrInvalidRoot
	}

	inner, wrapped := root["macros"]
	if !wrapped || len(root) != 1 {
		return Set(root), nil
	}

	if inner == nil {
		return Set{}, nil
	}

	m, ok := asStringMap(inner)
	if !ok {
		return nil, ErrInvalidRoot
	}

	return Set(m), nil
}
