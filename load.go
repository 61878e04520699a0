// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shaderfs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gamefs/shaderfs/shader"
	"github.com/gamefs/shaderfs/vfs"
)

// loadShaders reads all shader definitions from the script directory.
//
// Scripts that fail to parse are skipped with a warning. Failures to
// enumerate or open scripts abort the pass.
func (f *FS) loadShaders() ([]shader.Shader, error) {
	if vfs.PathInfoOf(f.cfg.Fsys, f.cfg.ShaderDir) != vfs.PathInfoDirectory {
		return nil, nil
	}

	paths, err := vfs.Find(
		f.cfg.Fsys, f.cfg.ShaderDir, vfs.FindFlat, shaderExtensions,
	)
	if err != nil {
		return nil, fmt.Errorf("find shader scripts: %w", err)
	}

	var shaders []shader.Shader

	for _, path := range paths {
		parsed, err := f.loadScript(path)
		if err != nil {
			return nil, err
		}

		shaders = append(shaders, parsed...)
	}

	f.logger.Info(
		"Loaded shader definitions",
		slog.Int("count", len(shaders)),
	)

	return shaders, nil
}

func (f *FS) loadScript(name string) ([]shader.Shader, error) {
	file, err := f.cfg.Fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open shader script: %w", err)
	}
	defer file.Close()

	parsed, err := shader.Parse(name, file)
	if err != nil {
		if !errors.Is(err, &shader.ParseError{}) {
			return nil, err //nolint:wrapcheck
		}

		f.logger.Warn(
			"Skipping malformed shader script",
			slog.String("path", name),
			slog.Any("error", err),
		)

		return nil, nil
	}

	return parsed, nil
}
