// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner implements the macro resolution engine: recursive macro
// expansion with per-scope environment layering, cycle enforcement via a
// shared call stack, and a per-step failure policy.
//
// Execution is a depth-first, strictly sequential walk of the macro tree.
// No step begins before the previous one, including any nested expansion it
// triggers, has fully completed. Each top-level Run owns a fresh call stack,
// so state never leaks between independent runs in the same process.
package runner
