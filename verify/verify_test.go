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

package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dfmcreator/lane2stardict/internal/testutil"
)

func TestPackage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := []testutil.Entry{
		{Word: "ذهب", Definition: "plain definition"},
		{Word: "ذَهَبَ", Definition: "vocalized definition"},
		{Word: "ذهب", Definition: "second sense"},
	}
	testutil.WritePackage(t, dir, "lane-lexicon", entries)

	r, err := Package(filepath.Join(dir, "lane-lexicon"))
	if err != nil {
		t.Fatalf("Package: %v", err)
	}

	if !r.Ok() {
		t.Fatalf("unexpected problems: %v", r.Problems)
	}
	if want, got := "Lane Arabic-English Lexicon", r.Bookname; want != got {
		t.Errorf("Bookname; want: %q, got: %q", want, got)
	}
	if want, got := "2.4.2", r.Version; want != got {
		t.Errorf("Version; want: %q, got: %q", want, got)
	}
	if want, got := 3, r.IndexWords; want != got {
		t.Errorf("IndexWords; want: %d, got: %d", want, got)
	}
	if want, got := 2, r.DistinctWords; want != got {
		t.Errorf("DistinctWords; want: %d, got: %d", want, got)
	}
}

func TestPackage_WordCountMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WritePackage(t, dir, "lane-lexicon", []testutil.Entry{
		{Word: "word", Definition: "def"},
	})

	// Corrupt the declared wordcount.
	ifoPath := filepath.Join(dir, "lane-lexicon.ifo")
	b, err := os.ReadFile(ifoPath)
	if err != nil {
		t.Fatal(err)
	}
	corrupted := strings.Replace(string(b), "wordcount=1", "wordcount=7", 1)
	if err := os.WriteFile(ifoPath, []byte(corrupted), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := Package(filepath.Join(dir, "lane-lexicon"))
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	if r.Ok() {
		t.Fatal("expected a wordcount problem")
	}
	found := false
	for _, p := range r.Problems {
		if strings.Contains(p, "wordcount") {
			found = true
		}
	}
	if !found {
		t.Errorf("no wordcount problem in %v", r.Problems)
	}
}

func TestPackage_TruncatedDict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WritePackage(t, dir, "lane-lexicon", []testutil.Entry{
		{Word: "word", Definition: "a definition long enough to truncate"},
	})

	// Grow the index record past the dictionary data.
	idxPath := filepath.Join(dir, "lane-lexicon.idx")
	b, err := os.ReadFile(idxPath)
	if err != nil {
		t.Fatal(err)
	}
	// The final 4 bytes are the big-endian size.
	b[len(b)-1] = 0xff
	if err := os.WriteFile(idxPath, b, 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := Package(filepath.Join(dir, "lane-lexicon"))
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	if r.Ok() {
		t.Fatal("expected an unreadable definition problem")
	}
}

func TestPackage_MissingIfo(t *testing.T) {
	t.Parallel()

	if _, err := Package(filepath.Join(t.TempDir(), "lane-lexicon")); err == nil {
		t.Fatal("Package: expected failure")
	}
}
