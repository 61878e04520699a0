// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shaderfs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/gamefs/shaderfs/shader"
	"github.com/gamefs/shaderfs/vfs"
)

var (
	_ fs.FS        = (*FS)(nil)
	_ fs.ReadDirFS = (*FS)(nil)
)

// FS is the synthesized shader namespace.
//
// It is safe for concurrent use. Reads are served from the tree built
// by the most recent successful load and link pass.
type FS struct {
	cfg    Config
	logger *slog.Logger

	// reloadMu serializes load and link passes. treeMu guards the
	// published tree pointer, so readers are not blocked while a pass
	// runs.
	reloadMu sync.Mutex
	treeMu   sync.RWMutex
	tree     *vfs.FS
}

// New creates a shader file system and runs the initial load and link
// pass.
func New(cfg Config) (*FS, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	fsys := &FS{
		cfg:    cfg,
		logger: cfg.logger(),
		tree:   vfs.New(),
	}

	err = fsys.Reload()
	if err != nil {
		return nil, err
	}

	return fsys, nil
}

// Reload re-runs the load and link pass against the current state of
// the source file system.
//
// The namespace is rebuilt from scratch and swapped in atomically.
// Readers observe either the old or the new namespace, never a mix. If
// the pass fails, the previous namespace stays in place and the error
// is returned.
func (f *FS) Reload() error {
	f.reloadMu.Lock()
	defer f.reloadMu.Unlock()

	tree := vfs.New()

	pending, err := f.loadShaders()
	if err != nil {
		return err
	}

	err = f.linkShaders(tree, pending)
	if err != nil {
		return err
	}

	f.treeMu.Lock()
	f.tree = tree
	f.treeMu.Unlock()

	return nil
}

// Open implements [fs.FS].
func (f *FS) Open(name string) (fs.File, error) {
	return f.snapshot().Open(name)
}

// ReadDir implements [fs.ReadDirFS].
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	return f.snapshot().ReadDir(name)
}

// Len returns the number of shader entries in the namespace.
func (f *FS) Len() int {
	return f.snapshot().Len()
}

func (f *FS) snapshot() *vfs.FS {
	f.treeMu.RLock()
	defer f.treeMu.RUnlock()

	return f.tree
}

// ResolveShader returns the shader record behind the named virtual
// entry.
//
// It works through any file system composition that preserves Stat
// results, including [vfs.Merge]. The returned record is shared, so
// callers must treat it as read-only or clone it.
func ResolveShader(fsys fs.FS, name string) (*shader.Shader, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("stat shader entry: %w", err)
	}

	record, isShader := info.Sys().(*shader.Shader)
	if !isShader {
		return nil, &fs.PathError{
			Op:   "resolve",
			Path: name,
			Err:  fmt.Errorf("%w: not a shader entry", fs.ErrNotExist),
		}
	}

	return record, nil
}
