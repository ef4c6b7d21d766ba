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

// Package merge concatenates the lexicon's source XML fragments into a
// single working document.
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoInput indicates that the source directory contains no XML files.
var ErrNoInput = errors.New("no XML files found")

// Merge concatenates all .xml files in srcDir, in lexicographic filename
// order, into outPath. Any previous content of outPath is overwritten.
// The fragment contents are not validated; well-formed markup is not
// required downstream.
func Merge(srcDir, outPath string) error {
	files, err := filepath.Glob(filepath.Join(srcDir, "*.xml"))
	if err != nil {
		return fmt.Errorf("listing %q: %w", srcDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %q", ErrNoInput, srcDir)
	}
	sort.Strings(files)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outPath, err)
	}
	defer out.Close()

	for _, path := range files {
		if err := appendFile(out, path); err != nil {
			return err
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", outPath, err)
	}
	return nil
}

func appendFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	return nil
}
