// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shaderfs

import (
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/gamefs/shaderfs/shader"
	"github.com/gamefs/shaderfs/vfs"
)

// linkShaders populates the tree from the texture images and the
// pending shader definitions.
//
// Each texture is linked exactly once, either to its authored
// definition or to a synthesized one. Definitions left over afterwards
// are registered standalone.
func (f *FS) linkShaders(tree *vfs.FS, pending []shader.Shader) error {
	var textures []string

	for _, dir := range f.cfg.TextureDirs {
		if vfs.PathInfoOf(f.cfg.Fsys, dir) != vfs.PathInfoDirectory {
			continue
		}

		found, err := vfs.Find(
			f.cfg.Fsys, dir, vfs.FindRecursive, textureExtensions,
		)
		if err != nil {
			return fmt.Errorf("find textures in %s: %w", dir, err)
		}

		textures = append(textures, found...)
	}

	f.logger.Info(
		"Linking shaders",
		slog.Int("textures", len(textures)),
		slog.Int("definitions", len(pending)),
	)

	pending = f.linkTextures(tree, textures, pending)
	f.linkStandaloneShaders(tree, pending)

	return nil
}

func (f *FS) linkTextures(
	tree *vfs.FS,
	textures []string,
	pending []shader.Shader,
) []shader.Shader {
	f.logger.Debug("Linking textures", slog.Int("count", len(textures)))

	for _, texture := range textures {
		name := strings.TrimSuffix(texture, path.Ext(texture))

		// A real file at the shader path wins over any virtual entry,
		// and the first texture to derive a path keeps it.
		if tree.PathInfo(name) != vfs.PathInfoMissing ||
			vfs.PathInfoOf(f.cfg.Fsys, name) == vfs.PathInfoFile {
			continue
		}

		var record *shader.Shader

		record, pending = takePending(pending, name)
		if record == nil {
			record = shader.Synthesize(name, texture)
		}

		f.addShaderFile(tree, record)
	}

	return pending
}

func (f *FS) linkStandaloneShaders(tree *vfs.FS, pending []shader.Shader) {
	f.logger.Debug(
		"Linking standalone shaders",
		slog.Int("count", len(pending)),
	)

	for idx := range pending {
		f.addShaderFile(tree, pending[idx].Clone())
	}
}

// takePending removes the definition with the given identity path from
// the pending set and returns an owned copy of it.
func takePending(
	pending []shader.Shader,
	name string,
) (*shader.Shader, []shader.Shader) {
	for idx := range pending {
		if pending[idx].Path == name {
			record := pending[idx].Clone()
			return record, slices.Delete(pending, idx, idx+1)
		}
	}

	return nil, pending
}

func (f *FS) addShaderFile(tree *vfs.FS, record *shader.Shader) {
	err := tree.Add(record.Path, openShaderFile(record))
	if err != nil {
		// First registration wins. Duplicate definitions and path
		// conflicts do not abort the pass.
		f.logger.Warn(
			"Skipping shader with conflicting path",
			slog.String("path", record.Path),
			slog.Any("error", err),
		)
	}
}
