// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeDisabled(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = false
	assert.Equal(t, "hello", Colorize("hello", FgRed))
}

func TestColorizeEnabled(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = true
	assert.Equal(t, "\033[31mhello\033[0m", Colorize("hello", FgRed))
	assert.Equal(t, "\033[1;33mhello\033[0m", Colorize("hello", Bold, FgYellow))
}
