// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shaderfs

import (
	"io/fs"
	"log/slog"

	"github.com/gamefs/shaderfs/vfs"
)

// Recognized file extensions.
//
//nolint:gochecknoglobals
var (
	shaderExtensions  = vfs.ExtensionFilter{".shader"}
	textureExtensions = vfs.ExtensionFilter{".tga", ".png", ".jpg", ".jpeg"}
)

// Config describes a shader file system.
type Config struct {
	// Fsys is the game content tree the namespace is synthesized from.
	Fsys fs.FS

	// ShaderDir is the directory scanned for shader scripts. Only its
	// direct entries with the .shader extension are read. A missing
	// directory yields no definitions and is not an error.
	ShaderDir string

	// TextureDirs are the directories scanned recursively for texture
	// images. Missing directories are skipped. The list may be empty,
	// in which case only standalone shader entries are created.
	TextureDirs []string

	// Logger receives progress and skip messages. Defaults to
	// [slog.Default].
	Logger *slog.Logger
}

func (c *Config) validate() error {
	if c.Fsys == nil {
		return ErrNoSourceFS
	}

	if c.ShaderDir == "" {
		return ErrNoShaderDir
	}

	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}
