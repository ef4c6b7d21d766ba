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

package dict_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dfmcreator/lane2stardict/dict"
	"github.com/dfmcreator/lane2stardict/idx"
	"github.com/dfmcreator/lane2stardict/internal/testutil"
)

func TestReader_Data(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := []testutil.Entry{
		{Word: "ذهب", Definition: "He went, went away, passed along."},
		{Word: "كتب", Definition: "He wrote."},
	}
	testutil.WritePackage(t, dir, "lane-lexicon", entries)

	r, err := dict.Open(filepath.Join(dir, "lane-lexicon.dict.dz"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	words, err := idx.ReadAll(filepath.Join(dir, "lane-lexicon.idx"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if want, got := len(entries), len(words); want != got {
		t.Fatalf("unexpected # of index records; want: %d, got: %d", want, got)
	}

	for i, w := range words {
		data, err := r.Data(w)
		if err != nil {
			t.Fatalf("Data(%q): %v", w.Word, err)
		}
		if diff := cmp.Diff(entries[i].Definition, string(data)); diff != "" {
			t.Errorf("definition for %q (-want, +got):\n%s", w.Word, diff)
		}
	}
}

func TestOpen_Missing(t *testing.T) {
	t.Parallel()

	if _, err := dict.Open(filepath.Join(t.TempDir(), "missing.dict.dz")); err == nil {
		t.Fatal("Open: expected failure")
	}
}
