// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gamefs/shaderfs"
	"github.com/gamefs/shaderfs/internal/mount"
	"github.com/gamefs/shaderfs/internal/watch"
	"github.com/gamefs/shaderfs/pakfs"
	"github.com/gamefs/shaderfs/shader"
	"github.com/gamefs/shaderfs/vfs"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// newSourceFS layers the configured asset packs below the base
// directory. Multiple packs are loaded concurrently.
func newSourceFS(flags *flags) (fs.FS, error) {
	layers := make([]fs.FS, 1+len(flags.pakFiles))
	layers[0] = os.DirFS(flags.baseDir)

	loadGroup := errgroup.Group{}

	for idx, pakFile := range flags.pakFiles {
		idx, pakFile := idx, pakFile

		loadGroup.Go(func() error {
			tree, err := pakfs.LoadFile(pakFile)
			if err != nil {
				return err //nolint:wrapcheck
			}

			layers[idx+1] = tree

			return nil
		})
	}

	err := loadGroup.Wait()
	if err != nil {
		return nil, fmt.Errorf("load packs: %w", err)
	}

	if len(layers) == 1 {
		return layers[0], nil
	}

	return vfs.Merge(layers...), nil
}

func list(w io.Writer, fsys fs.FS) error {
	walkFn := func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.IsDir() {
			fmt.Fprintln(w, name)
		}

		return nil
	}

	err := fs.WalkDir(fsys, ".", walkFn)
	if err != nil {
		return fmt.Errorf("list namespace: %w", err)
	}

	return nil
}

func dump(w io.Writer, view fs.FS, name string) error {
	record, err := shaderfs.ResolveShader(view, name)
	if err != nil {
		return fmt.Errorf("dump %s: %w", name, err)
	}

	err = shader.Write(w, record)
	if err != nil {
		return fmt.Errorf("dump %s: %w", name, err)
	}

	return nil
}

func export(fsys fs.FS, name string) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	err = pakfs.Write(fsys, file)
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("export namespace: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	slog.Info("Exported namespace", slog.String("path", name))

	return nil
}

// watchDirs returns the host paths of the directories the namespace is
// synthesized from.
func watchDirs(flags *flags) []string {
	dirs := make([]string, 0, 1+len(flags.textureDirs))
	dirs = append(
		dirs,
		filepath.Join(flags.baseDir, filepath.FromSlash(string(flags.shaderDir))),
	)

	for _, dir := range flags.textureDirs {
		dirs = append(
			dirs,
			filepath.Join(flags.baseDir, filepath.FromSlash(dir)),
		)
	}

	return dirs
}

// serve blocks running the mount and the watch loop, if requested. It
// returns nil immediately if neither is.
func serve(
	ctx context.Context,
	flags *flags,
	sfs *shaderfs.FS,
	view fs.FS,
) error {
	if flags.mountpoint == "" && !flags.watch {
		return nil
	}

	serveGroup, ctx := errgroup.WithContext(ctx)

	if flags.mountpoint != "" {
		serveGroup.Go(func() error {
			//nolint:wrapcheck
			return mount.Mount(
				ctx, view, string(flags.mountpoint), slog.Default(),
			)
		})
	}

	if flags.watch {
		watcher, err := watch.New(watch.Config{
			Dirs: watchDirs(flags),
			OnChange: func(_ context.Context) error {
				err := sfs.Reload()
				if err != nil {
					return fmt.Errorf("relink: %w", err)
				}

				slog.Info("Relinked shader namespace",
					slog.Int("entries", sfs.Len()))

				return nil
			},
		})
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}

		serveGroup.Go(func() error {
			return watcher.Run(ctx) //nolint:wrapcheck
		})
	}

	return serveGroup.Wait() //nolint:wrapcheck
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	source, err := newSourceFS(flags)
	if err != nil {
		return err
	}

	sfs, err := shaderfs.New(shaderfs.Config{
		Fsys:        source,
		ShaderDir:   string(flags.shaderDir),
		TextureDirs: flags.textureDirs,
	})
	if err != nil {
		return fmt.Errorf("synthesize namespace: %w", err)
	}

	// The composed view serves shaders and raw assets uniformly, with
	// the synthesized entries on top.
	view := vfs.Merge(sfs, source)

	if flags.list {
		err := list(cfg.Stdout, sfs)
		if err != nil {
			return err
		}
	}

	if flags.dumpPath != "" {
		err := dump(cfg.Stdout, view, string(flags.dumpPath))
		if err != nil {
			return err
		}
	}

	if flags.exportPath != "" {
		err := export(sfs, string(flags.exportPath))
		if err != nil {
			return err
		}
	}

	return serve(ctx, flags, sfs, view)
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help or version output is requested. So
	// exit without error in this case.
	if errors.Is(err, ErrHelp) {
		return exitSuccess
	}

	// ParseArgs already prints errors, so we just exit.
	return exitUsage
}

func handleRunError(err error, stdErr io.Writer) int {
	if err == nil {
		return exitSuccess
	}

	fmt.Fprintf(stdErr, "Error [%s]: %v\n", name, err)

	return exitFailure
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags := newFlags(cfg.Stderr)

	err := flags.ParseArgs(args[1:])
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(ctx, flags, cfg)

	return handleRunError(err, cfg.Stderr)
}
