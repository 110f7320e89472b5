// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package macros loads macro definitions from a YAML file and validates
// them into a canonical form before execution.
//
// A macro is either a bare sequence of steps, or a mapping with a required
// "commands" sequence and an optional "env" string mapping. A step is
// either a literal shell command string or a {call: name} mapping naming
// another macro. Both definition shapes normalize to the same Definition
// before any command runs.
package macros
