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

// Package dictd exports the cleaned lexicon text to the dictd
// index/dictionary format by invoking the external dictfmt tool.
package dictd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dfmcreator/lane2stardict/internal/exttool"
)

// Variant describes one dictfmt run. The lexicon is exported twice: once
// with Arabic diacritics (tashkeel) preserved and once without, so that
// readers can look words up either way.
type Variant struct {
	// Suffix is appended to the artifact base name.
	Suffix string

	// AllChars passes --allchars to dictfmt, keeping diacritics in
	// headwords.
	AllChars bool

	// HeaderLines is the number of boilerplate header lines dictfmt
	// emits at the start of the index for this variant. The counts are
	// pinned to the dictfmt version used when the lexicon was first
	// packaged and are not verified against the installed tool.
	HeaderLines int
}

// DefaultVariants are the two exports, diacritic-stripped first.
var DefaultVariants = []Variant{
	{Suffix: "-no-tashkeel", AllChars: false, HeaderLines: 600},
	{Suffix: "-tashkeel", AllChars: true, HeaderLines: 602},
}

// Exporter invokes dictfmt.
type Exporter struct {
	// Path is the dictfmt executable path. Resolved from PATH when
	// empty.
	Path string

	// Bookname is the dictionary title recorded in the output.
	Bookname string

	// Email is the maintainer contact recorded in the output.
	Email string

	// Variants are the dictfmt runs to perform. Defaults to
	// DefaultVariants.
	Variants []Variant
}

func (e *Exporter) variants() []Variant {
	if len(e.Variants) > 0 {
		return e.Variants
	}
	return DefaultVariants
}

// Export runs dictfmt once per variant against the document at xmlPath,
// producing basePath+Suffix+".index" and basePath+Suffix+".dict" for
// each, then truncates each index's boilerplate header block.
func (e *Exporter) Export(ctx context.Context, xmlPath, basePath string) error {
	path := e.Path
	if path == "" {
		var err error
		path, err = exttool.Look("dictfmt")
		if err != nil {
			return fmt.Errorf("dictd-tools not installed: %w", err)
		}
	}

	for _, v := range e.variants() {
		out := basePath + v.Suffix
		slog.Info("exporting dictd variant",
			slog.String("out", out),
			slog.Bool("allchars", v.AllChars),
		)

		f, err := os.Open(xmlPath)
		if err != nil {
			return fmt.Errorf("opening %q: %w", xmlPath, err)
		}

		args := []string{"--utf8"}
		if v.AllChars {
			args = append(args, "--allchars")
		}
		args = append(args,
			"-u", e.Email,
			"-s", e.Bookname,
			"-c5", out,
		)

		err = exttool.Run(ctx, exttool.Cmd{Path: path, Args: args, Stdin: f})
		f.Close()
		if err != nil {
			return fmt.Errorf("dictfmt %s: %w", v.Suffix, err)
		}

		if err := truncateHeader(out+".index", v.HeaderLines); err != nil {
			return err
		}
	}
	return nil
}

// truncateHeader drops the first n lines of the index file at path. A
// missing index is skipped; dictfmt is responsible for creating it.
func truncateHeader(path string, n int) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %q: %w", path, err)
	}

	if err := os.WriteFile(path, dropLines(b, n), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// dropLines returns b with the first n newline-terminated lines removed.
// Fewer than n lines yields an empty result.
func dropLines(b []byte, n int) []byte {
	for ; n > 0; n-- {
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			return nil
		}
		b = b[i+1:]
	}
	return b
}
