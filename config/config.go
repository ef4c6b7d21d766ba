// Copyright 2025 The lane2stardict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration for the conversion pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete pipeline configuration.
type Config struct {
	// Book holds the dictionary metadata recorded by dictfmt.
	Book BookConfig `yaml:"book"`

	// Artifact is the base name for every generated file.
	Artifact string `yaml:"artifact"`

	// Tools holds explicit external tool paths. Empty values fall back
	// to PATH and the built-in candidate locations.
	Tools ToolsConfig `yaml:"tools"`
}

// BookConfig is the dictionary metadata.
type BookConfig struct {
	// Name is the dictionary title.
	Name string `yaml:"name"`

	// Email is the maintainer contact.
	Email string `yaml:"email"`
}

// ToolsConfig holds external tool paths.
type ToolsConfig struct {
	Dictfmt    string `yaml:"dictfmt"`
	Pyglossary string `yaml:"pyglossary"`
	Tabfile    string `yaml:"tabfile"`
}

// Default returns the configuration for the Lane Lexicon conversion.
func Default() *Config {
	return &Config{
		Book: BookConfig{
			Name:  "Lane Arabic-English Lexicon",
			Email: "dfmcreator@gmail.com",
		},
		Artifact: "lane-lexicon",
	}
}

// Load reads the YAML file at path and merges it over the defaults.
func Load(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	var fileConfig Config
	if err := yaml.Unmarshal(b, &fileConfig); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	c.Merge(&fileConfig)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return c, nil
}

// Merge overlays non-empty values from other.
func (c *Config) Merge(other *Config) {
	if other.Book.Name != "" {
		c.Book.Name = other.Book.Name
	}
	if other.Book.Email != "" {
		c.Book.Email = other.Book.Email
	}
	if other.Artifact != "" {
		c.Artifact = other.Artifact
	}
	if other.Tools.Dictfmt != "" {
		c.Tools.Dictfmt = other.Tools.Dictfmt
	}
	if other.Tools.Pyglossary != "" {
		c.Tools.Pyglossary = other.Tools.Pyglossary
	}
	if other.Tools.Tabfile != "" {
		c.Tools.Tabfile = other.Tools.Tabfile
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Book.Name == "" {
		return fmt.Errorf("book name is required")
	}
	if c.Artifact == "" {
		return fmt.Errorf("artifact base name is required")
	}
	return nil
}
