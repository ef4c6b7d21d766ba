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

// Package exttool locates and runs the external conversion tools the
// pipeline shells out to.
package exttool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrNotFound indicates that a required external executable could not be
// located.
var ErrNotFound = errors.New("executable not found")

// ErrFailed indicates that an external tool exited with a failure status.
var ErrFailed = errors.New("command failed")

// Find returns the first existing path from candidates. Empty candidate
// entries are skipped so callers can pass optional explicit paths
// unconditionally.
func Find(name string, candidates []string) (string, error) {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s (checked %s)", ErrNotFound, name, strings.Join(candidates, ", "))
}

// Look resolves name on PATH.
func Look(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}

// Cmd describes a single external tool invocation.
type Cmd struct {
	// Path is the resolved executable path.
	Path string

	// Args are the command arguments, not including the executable name.
	Args []string

	// Stdin is an optional standard input stream.
	Stdin io.Reader

	// Dir is the working directory for the invocation. External packagers
	// write their outputs relative to it.
	Dir string
}

// Run executes the command and blocks until it exits. Tool diagnostics go
// to the parent's stderr. A non-zero exit is returned as ErrFailed.
func Run(ctx context.Context, c Cmd) error {
	//nolint:gosec // the executable path is resolved by Find/Look.
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = c.Stdin
	cmd.Stderr = os.Stderr
	cmd.Dir = c.Dir

	slog.Debug("running external tool",
		slog.String("path", c.Path),
		slog.Any("args", c.Args),
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFailed, c.Path, err)
	}
	return nil
}
