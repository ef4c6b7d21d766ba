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

// Package ifo reads StarDict .ifo metadata files. The packager emits one
// as part of the output triple; it is parsed back to check the build.
package ifo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Magic is the first line of a valid .ifo file.
const Magic = "StarDict's dict ifo file"

var (
	// ErrBadMagic indicates the file does not start with the StarDict
	// magic line.
	ErrBadMagic = errors.New("bad magic data")

	// ErrBadFormat indicates a malformed metadata line.
	ErrBadFormat = errors.New("bad ifo format")
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// Ifo holds the metadata of a .ifo file.
type Ifo struct {
	magic    string
	metadata map[string]string
}

// Open reads the .ifo file at path.
func Open(path string) (*Ifo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	i, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return i, nil
}

// New reads .ifo metadata from r. The first line must be the StarDict
// magic line; the first key must be version.
func New(r io.Reader) (*Ifo, error) {
	i := &Ifo{
		metadata: map[string]string{},
	}

	s := bufio.NewScanner(bufio.NewReader(r))
	if s.Scan() {
		i.magic = s.Text()
		if i.magic != Magic {
			return nil, fmt.Errorf("%w: %q", ErrBadMagic, i.magic)
		}
	}

	n := 0
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: line %q", ErrBadFormat, line)
		}
		key = strings.TrimRight(key, " ")
		value = strings.TrimLeft(value, " ")
		if !keyPattern.MatchString(key) {
			return nil, fmt.Errorf("%w: invalid key %q", ErrBadFormat, key)
		}
		if n == 0 && key != "version" {
			return nil, fmt.Errorf("%w: missing version", ErrBadFormat)
		}
		i.metadata[key] = value
		n++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning ifo: %w", err)
	}

	return i, nil
}

// Magic returns the magic line.
func (i *Ifo) Magic() string {
	return i.magic
}

// Value returns the metadata value for key, or the empty string.
func (i *Ifo) Value(key string) string {
	return i.metadata[key]
}

// Int returns the metadata value for key parsed as an integer.
func (i *Ifo) Int(key string) (int64, error) {
	v, err := strconv.ParseInt(i.metadata[key], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadFormat, key, err)
	}
	return v, nil
}
