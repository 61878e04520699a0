// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile is an on-disk description of a game content setup, so a
// pipeline invocation does not have to repeat it in flags.
//
// Relative paths in Base and Paks are resolved against the directory
// the profile file lives in.
type Profile struct {
	// Base is the game content directory.
	Base string `yaml:"base"`

	// Paks are CPIO asset packs layered below the base directory.
	Paks []string `yaml:"paks"`

	// Shaders is the shader script directory inside the game tree.
	Shaders string `yaml:"shaders"`

	// Textures are the texture directories inside the game tree.
	Textures []string `yaml:"textures"`
}

// LoadProfile reads the profile file at the given host path.
func LoadProfile(name string) (*Profile, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var profile Profile

	err = yaml.Unmarshal(content, &profile)
	if err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	profile.resolvePaths(filepath.Dir(name))

	return &profile, nil
}

func (p *Profile) resolvePaths(dir string) {
	if p.Base != "" && !filepath.IsAbs(p.Base) {
		p.Base = filepath.Join(dir, p.Base)
	}

	for idx, pak := range p.Paks {
		if !filepath.IsAbs(pak) {
			p.Paks[idx] = filepath.Join(dir, pak)
		}
	}
}
