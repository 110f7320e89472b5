// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"slices"
	"strings"
)

// CallStack is the ordered set of macro names currently being expanded.
// It is owned by one top-level invocation and shared by reference across
// the whole recursive expansion, never across invocations.
type CallStack struct {
	names []string
}

// Contains reports whether name is currently on the stack.
func (s *CallStack) Contains(name string) bool {
	return slices.Contains(s.names, name)
}

// Push appends name to the stack.
func (s *CallStack) Push(name string) {
	s.names = append(s.names, name)
}

// Pop removes the most recently pushed name.
func (s *CallStack) Pop() {
	if len(s.names) == 0 {
		return
	}

	s.names = s.names[:len(s.names)-1]
}

// Names returns a copy of the stack in call order.
func (s *CallStack) Names() []string {
	return slices.Clone(s.names)
}

// Chain renders the stack in call order, e.g. "a -> b -> c".
func (s *CallStack) Chain() string {
	return strings.Join(s.names, " -> ")
}
