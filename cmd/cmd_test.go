// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"testing"

	"github.com/matt-FFFFFF/remac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdVersion(t *testing.T) {
	require.NotEmpty(t, RootCmd.Version)
	assert.Contains(t, RootCmd.Version, remac.Version)
	assert.Contains(t, RootCmd.Version, remac.Commit)
}

func TestRootCmdSubcommands(t *testing.T) {
	names := make([]string, 0, len(RootCmd.Commands))
	for _, c := range RootCmd.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{"run", "list"}, names)
}
