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

// Package testutil builds synthetic StarDict packages for tests.
package testutil

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// IndexWord is one .idx record to synthesize.
type IndexWord struct {
	Word   string
	Offset uint32
	Size   uint32
}

// MakeIndex builds .idx file content from records.
func MakeIndex(words []IndexWord) []byte {
	b := []byte{}
	for _, w := range words {
		b = append(b, []byte(w.Word)...)
		b = append(b, 0) // Null terminator.
		tail := make([]byte, 8)
		binary.BigEndian.PutUint32(tail[:4], w.Offset)
		binary.BigEndian.PutUint32(tail[4:8], w.Size)
		b = append(b, tail...)
	}
	return b
}

// Entry is a headword and its definition data.
type Entry struct {
	Word       string
	Definition string
}

// WritePackage writes a complete StarDict triple (.ifo, .idx, .dict.dz)
// for the given entries under dir with the given base name, in the same
// shape tabfile produces: version 2.4.2, 32-bit offsets,
// sametypesequence=m.
func WritePackage(t *testing.T, dir, base string, entries []Entry) {
	t.Helper()

	var dictData []byte
	var records []IndexWord
	for _, e := range entries {
		records = append(records, IndexWord{
			Word:   e.Word,
			Offset: uint32(len(dictData)),
			Size:   uint32(len(e.Definition)),
		})
		dictData = append(dictData, []byte(e.Definition)...)
	}
	idxData := MakeIndex(records)

	f, err := os.Create(filepath.Join(dir, base+".dict.dz"))
	if err != nil {
		t.Fatal(err)
	}
	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(dictData); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, base+".idx"), idxData, 0o600); err != nil {
		t.Fatal(err)
	}

	ifoData := fmt.Sprintf(`StarDict's dict ifo file
version=2.4.2
wordcount=%d
idxfilesize=%d
bookname=Lane Arabic-English Lexicon
sametypesequence=m
`, len(entries), len(idxData))
	if err := os.WriteFile(filepath.Join(dir, base+".ifo"), []byte(ifoData), 0o600); err != nil {
		t.Fatal(err)
	}
}
