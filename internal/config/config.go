// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package config handles wsdl2schema configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File names searched during discovery, in priority order.
const (
	YAMLFileName = ".wsdl2schema.yaml"
	TOMLFileName = ".wsdl2schema.toml"
)

// Config holds default values for generate options. CLI flags always take
// precedence over config values.
type Config struct {
	OutputDir string `yaml:"output_dir" toml:"output_dir"`
	RootModel string `yaml:"root_model" toml:"root_model"`
	Format    string `yaml:"format"     toml:"format"`
	KeepTemp  bool   `yaml:"keep_temp"  toml:"keep_temp"`
	Verbose   bool   `yaml:"verbose"    toml:"verbose"`
}

// Load reads a Config from a file path. The format is determined from the
// file extension: .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch {
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("invalid yaml config %s: %w", path, err)
		}
	case strings.HasSuffix(path, ".toml"):
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("invalid toml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	return &cfg, nil
}

// Discover searches startDir and its parents for a config file and loads
// the first one found. It returns the loaded config and its path, or
// (nil, "", nil) when no config file exists anywhere up the tree.
func Discover(startDir string) (*Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", err
	}

	for {
		for _, name := range []string{YAMLFileName, TOMLFileName} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err != nil {
					return nil, "", err
				}
				return cfg, path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}
