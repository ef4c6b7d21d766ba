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

// Package pack produces the final StarDict package from the finalized
// tabular file by invoking the external tabfile packager, and removes
// intermediate artifacts afterwards.
package pack

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfmcreator/lane2stardict/internal/exttool"
	"github.com/dfmcreator/lane2stardict/internal/sentinel"
)

// Packager invokes tabfile.
type Packager struct {
	// Path is an explicit tabfile executable path. When empty the
	// candidate locations are searched.
	Path string
}

// candidates returns the ordered list of locations to search for the
// tabfile executable: the explicit path, a bundled deps location, then
// the standard system binary directories.
func (p *Packager) candidates() []string {
	return []string{
		p.Path,
		filepath.Join("deps", "tabfile"),
		"/usr/local/bin/tabfile",
		"/usr/bin/tabfile",
	}
}

// Package finalizes the tabular file at csvPath and runs tabfile in
// outDir, producing the StarDict triple (.dict.dz, .idx, .ifo) there.
// Finalization restores the tab sentinel to a literal tab and makes sure
// the file ends with a newline; tabfile drops a final record that lacks
// one.
func (p *Packager) Package(ctx context.Context, csvPath, outDir string) error {
	if err := Finalize(csvPath); err != nil {
		return err
	}

	path, err := exttool.Find("tabfile", p.candidates())
	if err != nil {
		return err
	}

	absCsv, err := filepath.Abs(csvPath)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", csvPath, err)
	}

	slog.Info("packaging", slog.String("tabfile", path), slog.String("input", absCsv))
	return exttool.Run(ctx, exttool.Cmd{
		Path: path,
		Args: []string{absCsv},
		Dir:  outDir,
	})
}

// Finalize restores tab sentinels in the file at path and appends a
// trailing newline if the final byte is not one.
func Finalize(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	text := strings.ReplaceAll(string(b), sentinel.Tab, "\t")
	if text == "" || text[len(text)-1] != '\n' {
		text += "\n"
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// Clean removes the given artifact paths. Files and directories are both
// handled; absent paths are silently skipped so Clean is idempotent.
func Clean(paths []string) error {
	for _, path := range paths {
		err := os.RemoveAll(path)
		if err != nil {
			return fmt.Errorf("removing %q: %w", path, err)
		}
		slog.Debug("removed artifact", slog.String("path", path))
	}
	return nil
}
