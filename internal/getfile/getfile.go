// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package getfile retrieves the macro definition file. Plain local paths are
// read directly; anything else is fetched with Hashicorp's go-getter URL
// syntax into a temporary directory.
package getfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
	"github.com/spf13/afero"
)

// ErrGetDefinitionFile is returned when the definition file cannot be retrieved.
var ErrGetDefinitionFile = errors.New("failed to get definition file")

// FsFactory returns the filesystem used for local reads.
// It is a package variable so tests can substitute an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Get returns the contents of the definition file at src.
func Get(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, ErrGetDefinitionFile
	}

	fsys := FsFactory()

	if ok, err := afero.Exists(fsys, src); err == nil && ok {
		data, err := afero.ReadFile(fsys, src)
		if err != nil {
			return nil, errors.Join(ErrGetDefinitionFile, err)
		}

		return data, nil
	}

	return getURL(ctx, src)
}

// getURL fetches src with go-getter and reads the result.
// The temporary destination is removed after reading.
func getURL(ctx context.Context, src string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "remac-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetDefinitionFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetDefinitionFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, "runner.yaml")
	req := &getter.Request{
		Src:     src,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	if _, err := client.Get(ctx, req); err != nil {
		return nil, errors.Join(ErrGetDefinitionFile, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, errors.Join(ErrGetDefinitionFile, err)
	}

	return data, nil
}
