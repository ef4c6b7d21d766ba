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

// Package idx reads StarDict .idx files. The tabfile packager writes the
// 32-bit offset format: each record is a null-terminated utf-8 headword
// followed by big-endian offset and size into the dictionary data.
package idx

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Word is a single .idx record.
type Word struct {
	Word   string
	Offset uint32
	Size   uint32
}

// String implements fmt.Stringer.
func (w *Word) String() string {
	return w.Word
}

// recordTail is the fixed number of bytes following the null terminator.
const recordTail = 8

// Scanner scans an index from start to end.
type Scanner struct {
	r io.ReadCloser
	s *bufio.Scanner
}

// NewScanner returns a scanner over the index read from r. The Scanner
// takes ownership of the reader and should be closed with Close.
func NewScanner(r io.ReadCloser) *Scanner {
	s := &Scanner{
		r: r,
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
	s.s.Split(splitRecord)
	return s
}

// Open opens the .idx file at path.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return NewScanner(f), nil
}

// Scan advances to the next record. It returns false when the end of the
// index or an error is reached.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // scan errors are returned as is.
	return s.s.Err()
}

// Word returns the current record.
func (s *Scanner) Word() *Word {
	var w Word
	b := s.s.Bytes()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		w.Word = string(b[:i])
		w.Offset = binary.BigEndian.Uint32(b[i+1:])
		w.Size = binary.BigEndian.Uint32(b[i+5:])
	}
	return &w
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing idx file: %w", err)
	}
	return nil
}

// splitRecord splits one index record off the input.
func splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		size := i + 1 + recordTail
		if len(data) >= size {
			return size, data[:size], nil
		}
	}
	if atEOF {
		return 0, nil, fmt.Errorf("truncated index record")
	}
	// Request more data.
	return 0, nil, nil
}

// ReadAll reads every record from the .idx file at path.
func ReadAll(path string) ([]*Word, error) {
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var words []*Word
	for s.Scan() {
		words = append(words, s.Word())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return words, nil
}
