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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if want, got := "lane-lexicon", c.Artifact; want != got {
		t.Errorf("Artifact; want: %q, got: %q", want, got)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lane2stardict.yaml")
	data := `
book:
  name: Custom Lexicon
tools:
  tabfile: /opt/stardict/tabfile
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Book.Name = "Custom Lexicon"
	want.Tools.Tabfile = "/opt/stardict/tabfile"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load: expected failure")
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("book: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected failure")
	}
}

func TestMerge_EmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Merge(&Config{})
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Fatalf("Merge changed defaults (-want, +got):\n%s", diff)
	}
}
