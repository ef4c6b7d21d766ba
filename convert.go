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

package lane2stardict

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dfmcreator/lane2stardict/config"
	"github.com/dfmcreator/lane2stardict/dictd"
	"github.com/dfmcreator/lane2stardict/glossary"
	"github.com/dfmcreator/lane2stardict/internal/sentinel"
	"github.com/dfmcreator/lane2stardict/markup"
	"github.com/dfmcreator/lane2stardict/merge"
	"github.com/dfmcreator/lane2stardict/pack"
)

// Converter runs the full conversion pipeline: merge the source XML
// fragments, strip their markup, export to dictd, render to a combined
// tabular file, clean and colorize it, and package the result as a
// StarDict dictionary. Every stage reads and writes files in the output
// directory; state never crosses a stage boundary in memory.
type Converter struct {
	// SourceDir holds the lexicon's XML fragment files.
	SourceDir string

	// OutputDir receives all intermediate and final artifacts. Created
	// if absent.
	OutputDir string

	// Config holds book metadata, the artifact base name and external
	// tool paths. Defaults to config.Default when nil.
	Config *config.Config

	// KeepIntermediate skips the final cleanup of intermediate
	// artifacts.
	KeepIntermediate bool
}

func (c *Converter) config() *config.Config {
	if c.Config != nil {
		return c.Config
	}
	return config.Default()
}

// xmlPath is the merged working document.
func (c *Converter) xmlPath() string {
	return filepath.Join(c.OutputDir, c.config().Artifact+".xml")
}

// csvPath is the combined tabular file.
func (c *Converter) csvPath() string {
	return filepath.Join(c.OutputDir, c.config().Artifact+".csv")
}

// basePath is the artifact base path without extension.
func (c *Converter) basePath() string {
	return filepath.Join(c.OutputDir, c.config().Artifact)
}

// Outputs returns the paths of the final StarDict triple.
func (c *Converter) Outputs() []string {
	base := c.basePath()
	return []string{base + ".dict.dz", base + ".idx", base + ".ifo"}
}

// Convert runs the whole pipeline and returns the produced output files.
// Any stage failure aborts the run; re-running from the start is the
// only recovery path and is safe because every stage overwrites its own
// outputs.
func (c *Converter) Convert(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %q: %w", c.OutputDir, err)
	}

	slog.Info("merging XML fragments", slog.String("source", c.SourceDir))
	if err := merge.Merge(c.SourceDir, c.xmlPath()); err != nil {
		return nil, err
	}

	slog.Info("stripping markup")
	if err := c.strip(); err != nil {
		return nil, err
	}

	slog.Info("exporting to dictd")
	cfg := c.config()
	exporter := &dictd.Exporter{
		Path:     cfg.Tools.Dictfmt,
		Bookname: cfg.Book.Name,
		Email:    cfg.Book.Email,
	}
	if err := exporter.Export(ctx, c.xmlPath(), c.basePath()); err != nil {
		return nil, err
	}

	slog.Info("rendering glossary")
	g := &glossary.Exporter{Path: cfg.Tools.Pyglossary}
	if err := g.Export(ctx, c.basePath(), variantSuffixes(), c.csvPath()); err != nil {
		return nil, err
	}

	slog.Info("cleaning tabular output")
	if err := applyInPlace(c.csvPath(), markup.CleanTabs); err != nil {
		return nil, err
	}

	slog.Info("colorizing")
	if err := applyInPlace(c.csvPath(), markup.Colorize); err != nil {
		return nil, err
	}

	slog.Info("packaging StarDict output")
	p := &pack.Packager{Path: cfg.Tools.Tabfile}
	if err := p.Package(ctx, c.csvPath(), c.OutputDir); err != nil {
		return nil, err
	}

	if !c.KeepIntermediate {
		slog.Info("removing intermediate artifacts")
		if err := pack.Clean(c.intermediates()); err != nil {
			return nil, err
		}
	}

	var outputs []string
	for _, path := range c.Outputs() {
		if _, err := os.Stat(path); err == nil {
			outputs = append(outputs, path)
		}
	}
	return outputs, nil
}

// strip applies the markup stripping pass to the merged document.
func (c *Converter) strip() error {
	return applyInPlace(c.xmlPath(), func(text string) string {
		if sentinel.Collides(text) {
			// A collision corrupts entries on restoration but the
			// substitution itself cannot fail; surface it and proceed.
			slog.Warn("source text contains a reserved sentinel token")
		}
		return markup.Strip(text)
	})
}

// intermediates lists every artifact the pipeline produces besides the
// final StarDict triple.
func (c *Converter) intermediates() []string {
	base := c.basePath()
	paths := []string{
		c.xmlPath(),
		c.csvPath(),
	}
	for _, suffix := range variantSuffixes() {
		paths = append(paths,
			base+suffix+".txt",
			base+suffix+".index",
			base+suffix+".dict",
		)
	}
	// tabfile's staging directory.
	paths = append(paths, filepath.Join(c.OutputDir, "stardict-"+c.config().Artifact+"-2.4.2"))
	return paths
}

func variantSuffixes() []string {
	suffixes := make([]string, 0, len(dictd.DefaultVariants))
	for _, v := range dictd.DefaultVariants {
		suffixes = append(suffixes, v.Suffix)
	}
	return suffixes
}

// applyInPlace rewrites the file at path with fn applied to its content.
func applyInPlace(path string, fn func(string) string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(fn(string(b))), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
