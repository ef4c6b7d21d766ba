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

package merge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		files    map[string]string
		expected string
	}{
		{
			name: "single file",
			files: map[string]string{
				"a.xml": "<text>one</text>",
			},
			expected: "<text>one</text>",
		},
		{
			name: "sorted filename order",
			files: map[string]string{
				"b.xml": "second",
				"a.xml": "first",
				"c.xml": "third",
			},
			expected: "firstsecondthird",
		},
		{
			name: "non-xml files ignored",
			files: map[string]string{
				"a.xml":  "kept",
				"b.txt":  "skipped",
				"README": "skipped",
			},
			expected: "kept",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			srcDir := t.TempDir()
			for name, content := range test.files {
				if err := os.WriteFile(filepath.Join(srcDir, name), []byte(content), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			outPath := filepath.Join(t.TempDir(), "merged.xml")
			if err := Merge(srcDir, outPath); err != nil {
				t.Fatalf("Merge: %v", err)
			}

			got, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.expected, string(got)); diff != "" {
				t.Fatalf("merged content (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_NoInput(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "merged.xml")
	err := Merge(t.TempDir(), outPath)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("Merge: want ErrNoInput, got: %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("output file created on empty source: %v", statErr)
	}
}

func TestMerge_Overwrite(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "a.xml"), []byte("new"), 0o600); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "merged.xml")
	if err := os.WriteFile(outPath, []byte("previous content that is longer"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Merge(srcDir, outPath); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("new", string(got)); diff != "" {
		t.Fatalf("merged content (-want, +got):\n%s", diff)
	}
}
