// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

// Package shaderfs synthesizes a virtual namespace of shader assets
// over an idTech 3 style game content tree.
//
// Authored shader scripts are loaded from a script directory and linked
// against the texture images found in a set of texture directories. The
// result is a read-only [io/fs.FS] containing one virtual file per
// shader, addressed by the shader's extensionless path. A texture with
// an authored definition serves that definition, a texture without one
// serves a synthesized default, and authored definitions without any
// texture are served standalone. Paths already taken by real files in
// the content tree are left alone.
//
// The namespace holds shader entries only. Compose it with the content
// tree via [vfs.Merge] to address shaders and raw assets uniformly:
//
//	sfs, err := shaderfs.New(shaderfs.Config{
//	    Fsys:        os.DirFS("/games/quake3/baseq3"),
//	    ShaderDir:   "scripts",
//	    TextureDirs: []string{"textures"},
//	})
//	if err != nil {
//	    // ...
//	}
//
//	game := vfs.Merge(sfs, os.DirFS("/games/quake3/baseq3"))
//
// Virtual entries serve the canonical text form of their shader record.
// The record itself is available without parsing via [ResolveShader].
package shaderfs
