// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report defines the execution events emitted by the macro
// resolution engine and the reporters that render or persist them.
package report
