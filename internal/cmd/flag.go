// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
)

const (
	name = "shaderfs"

	defaultShaderDir  = "scripts"
	defaultTextureDir = "textures"

	usageMessage = `Usage of 'shaderfs':
    shaderfs [flags...] basedir

Print the synthesized shader namespace of a game tree:
	shaderfs -list /games/quake3/baseq3

Dump the shader served for a path, with asset packs layered in:
	shaderfs -pak pak0.cpio -dump textures/base/foo /games/quake3/baseq3

Keep a mounted namespace up to date while assets are edited:
	shaderfs -mount /mnt/shaders -watch /games/quake3/baseq3

The base directory and pack files can also come from a game profile
given with -profile. Flags set on the command line win over profile
values.
`
)

type flags struct {
	flagSet *flag.FlagSet

	baseDir     string
	profilePath FilePath
	pakFiles    FilePathList
	shaderDir   TreePath
	textureDirs TreePathList
	list        bool
	dumpPath    TreePath
	exportPath  FilePath
	mountpoint  FilePath
	watch       bool
	debug       bool
	version     bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{}

	flags.initFlagset(output)

	return flags
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		&f.profilePath,
		"profile",
		"game profile file to read defaults from",
	)

	flagSet.Var(
		&f.pakFiles,
		"pak",
		"CPIO asset pack layered below the base directory. Flag may be "+
			"used more than once. Empty value clears the list.",
	)

	flagSet.Var(
		&f.shaderDir,
		"shader-dir",
		"shader script directory inside the game tree "+
			"(default \""+defaultShaderDir+"\")",
	)

	flagSet.Var(
		&f.textureDirs,
		"texture-dir",
		"texture directory inside the game tree. Flag may be used more "+
			"than once. Empty value clears the list. "+
			"(default \""+defaultTextureDir+"\")",
	)

	flagSet.BoolVar(
		&f.list,
		"list",
		f.list,
		"print the paths of the synthesized namespace",
	)

	flagSet.Var(
		&f.dumpPath,
		"dump",
		"print the shader served for the given path",
	)

	flagSet.Var(
		&f.exportPath,
		"export",
		"write the synthesized namespace as CPIO archive to the given file",
	)

	flagSet.Var(
		&f.mountpoint,
		"mount",
		"serve the composed namespace read-only at the given mountpoint",
	)

	flagSet.BoolVar(
		&f.watch,
		"watch",
		f.watch,
		"relink the namespace when shader or texture directories change",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	if f.profilePath != "" {
		err := f.applyProfile()
		if err != nil {
			return f.fail("game profile", err)
		}
	}

	switch f.flagSet.NArg() {
	case 0:
	case 1:
		baseDir, err := AbsoluteFilePath(f.flagSet.Arg(0))
		if err != nil {
			return f.fail("base directory", err)
		}

		f.baseDir = baseDir
	default:
		return f.fail("more than one base directory given", nil)
	}

	if f.baseDir == "" {
		return f.fail("no base directory given", nil)
	}

	if f.shaderDir == "" {
		f.shaderDir = defaultShaderDir
	}

	if len(f.textureDirs) == 0 {
		f.textureDirs = TreePathList{defaultTextureDir}
	}

	return nil
}

// applyProfile fills all flags the command line leaves unset from the
// profile file. The base directory is overridden by the positional
// argument later.
func (f *flags) applyProfile() error {
	profile, err := LoadProfile(string(f.profilePath))
	if err != nil {
		return err
	}

	setFlags := make(map[string]bool)
	f.flagSet.Visit(func(fl *flag.Flag) {
		setFlags[fl.Name] = true
	})

	if profile.Base != "" {
		f.baseDir = profile.Base
	}

	if !setFlags["pak"] && len(profile.Paks) > 0 {
		f.pakFiles = profile.Paks
	}

	if !setFlags["shader-dir"] && profile.Shaders != "" {
		err := f.shaderDir.Set(profile.Shaders)
		if err != nil {
			return err
		}
	}

	if !setFlags["texture-dir"] && len(profile.Textures) > 0 {
		f.textureDirs = nil

		for _, dir := range profile.Textures {
			err := f.textureDirs.Set(dir)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
