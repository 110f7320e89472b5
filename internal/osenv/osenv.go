// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package osenv models the process environment as a string map and provides
// the merge operation used to build the effective environment of a macro
// scope. Later layers win on key collision.
package osenv

import (
	"maps"
	"os"
	"strings"
)

const envSeparatorParts = 2 // key and value either side of the first "="

// Environ returns the ambient process environment as a map.
// It is a package variable so that tests can substitute a deterministic base.
var Environ = func() map[string]string {
	env := os.Environ()
	m := make(map[string]string, len(env))

	for _, kv := range env {
		parts := strings.SplitN(kv, "=", envSeparatorParts)
		if len(parts) != envSeparatorParts {
			continue
		}

		m[parts[0]] = parts[1]
	}

	return m
}

// Merge returns a new map equal to base with every key from overrides set to
// the override value. Neither input is modified. A nil overrides map is a
// no-op merge.
func Merge(base, overrides map[string]string) map[string]string {
	merged := maps.Clone(base)
	if merged == nil {
		merged = make(map[string]string, len(overrides))
	}

	maps.Copy(merged, overrides)

	return merged
}

// Slice renders an environment map in the KEY=VALUE form expected by
// process-spawning APIs.
func Slice(env map[string]string) []string {
	s := make([]string, 0, len(env))
	for k, v := range env {
		s = append(s, k+"="+v)
	}

	return s
}
