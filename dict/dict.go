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

// Package dict reads definition data out of StarDict .dict files. The
// tabfile packager compresses the dictionary with dictzip, which
// supports random access into the uncompressed stream.
package dict

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/dfmcreator/lane2stardict/idx"
)

// Reader reads definitions from a .dict or .dict.dz file.
type Reader struct {
	ra io.ReaderAt
	f  *os.File
}

// Open opens the dictionary data file at path. A .dz extension selects
// dictzip decompression.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	r := &Reader{f: f, ra: f}
	if strings.ToLower(filepath.Ext(path)) == ".dz" {
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		r.ra = z
	}
	return r, nil
}

// Data returns the definition bytes for the given index record.
func (r *Reader) Data(w *idx.Word) ([]byte, error) {
	b := make([]byte, w.Size)
	if _, err := r.ra.ReadAt(b, int64(w.Offset)); err != nil {
		return nil, fmt.Errorf("reading definition for %q: %w", w.Word, err)
	}
	return b, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if err := r.f.Close(); err != nil {
		return fmt.Errorf("closing dict file: %w", err)
	}
	return nil
}
