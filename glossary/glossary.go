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

// Package glossary turns the dictd index/dictionary pairs into a single
// tab-separated headword/definition file by invoking the external
// pyglossary converter.
package glossary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dfmcreator/lane2stardict/internal/exttool"
)

// Exporter invokes pyglossary.
type Exporter struct {
	// Path is the pyglossary executable path. Resolved from PATH when
	// empty.
	Path string
}

// Export converts each index at basePath+suffix+".index" to a tabular
// text rendering and concatenates the renderings, in the order given,
// into outPath. Headwords are not deduplicated across renderings; the
// same entry legitimately appears once per variant and downstream
// tooling treats the duplicates as separate index entries.
func (e *Exporter) Export(ctx context.Context, basePath string, suffixes []string, outPath string) error {
	path := e.Path
	if path == "" {
		var err error
		path, err = exttool.Look("pyglossary")
		if err != nil {
			return fmt.Errorf("pyglossary not installed: %w", err)
		}
	}

	var txtPaths []string
	for _, suffix := range suffixes {
		indexPath := basePath + suffix + ".index"
		txtPath := basePath + suffix + ".txt"
		if _, err := os.Stat(indexPath); err != nil {
			if os.IsNotExist(err) {
				// dictfmt produced nothing for this variant.
				continue
			}
			return fmt.Errorf("checking %q: %w", indexPath, err)
		}

		slog.Info("converting glossary", slog.String("index", indexPath))
		err := exttool.Run(ctx, exttool.Cmd{
			Path: path,
			Args: []string{indexPath, txtPath},
		})
		if err != nil {
			return fmt.Errorf("pyglossary %s: %w", suffix, err)
		}
		txtPaths = append(txtPaths, txtPath)
	}

	return combine(txtPaths, outPath)
}

// combine concatenates the rendering files into outPath, preserving each
// source's internal line order.
func combine(paths []string, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outPath, err)
	}
	defer out.Close()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("opening %q: %w", path, err)
		}
		_, err = io.Copy(out, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", outPath, err)
	}
	return nil
}
