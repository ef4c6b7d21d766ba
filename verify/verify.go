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

// Package verify checks a built StarDict package for internal
// consistency: the .ifo metadata must agree with the .idx contents, and
// every index record must resolve to readable data in the .dict.dz.
package verify

import (
	"fmt"
	"os"

	"github.com/dfmcreator/lane2stardict/dict"
	"github.com/dfmcreator/lane2stardict/idx"
	"github.com/dfmcreator/lane2stardict/ifo"
	"github.com/dfmcreator/lane2stardict/internal/folding"
)

// Report summarizes a package check.
type Report struct {
	// Bookname is the dictionary title from the .ifo.
	Bookname string

	// Version is the StarDict format version from the .ifo.
	Version string

	// WordCount is the word count declared in the .ifo.
	WordCount int64

	// IndexWords is the number of records actually present in the .idx.
	IndexWords int

	// DistinctWords is the number of distinct headwords after
	// whitespace folding. The pipeline exports every entry twice, once
	// per tashkeel variant, so this is normally well below IndexWords.
	DistinctWords int

	// Problems lists consistency failures. An empty list means the
	// package is sound.
	Problems []string
}

// Ok reports whether the check found no problems.
func (r *Report) Ok() bool {
	return len(r.Problems) == 0
}

// Package checks the StarDict triple with the given base path, e.g.
// "out/lane-lexicon" for out/lane-lexicon.{ifo,idx,dict.dz}.
func Package(basePath string) (*Report, error) {
	info, err := ifo.Open(basePath + ".ifo")
	if err != nil {
		return nil, err
	}

	r := &Report{
		Bookname: info.Value("bookname"),
		Version:  info.Value("version"),
	}

	if r.Bookname == "" {
		r.problem("missing bookname")
	}
	switch r.Version {
	case "2.4.2", "3.0.0":
	default:
		r.problem("invalid version: %q", r.Version)
	}

	r.WordCount, err = info.Int("wordcount")
	if err != nil {
		r.problem("bad wordcount: %v", err)
	}

	idxPath := basePath + ".idx"
	words, err := idx.ReadAll(idxPath)
	if err != nil {
		return nil, err
	}
	r.IndexWords = len(words)
	if int64(r.IndexWords) != r.WordCount {
		r.problem("wordcount %d does not match %d index records", r.WordCount, r.IndexWords)
	}

	if declared, err := info.Int("idxfilesize"); err == nil {
		st, err := os.Stat(idxPath)
		if err != nil {
			return nil, fmt.Errorf("checking %q: %w", idxPath, err)
		}
		if st.Size() != declared {
			r.problem("idxfilesize %d does not match actual size %d", declared, st.Size())
		}
	} else {
		r.problem("bad idxfilesize: %v", err)
	}

	d, err := dict.Open(basePath + ".dict.dz")
	if err != nil {
		return nil, err
	}
	defer d.Close()

	distinct := map[string]bool{}
	for _, w := range words {
		if w.Word == "" {
			r.problem("empty headword at offset %d", w.Offset)
		}
		distinct[folding.Fold(w.Word)] = true
		if _, err := d.Data(w); err != nil {
			r.problem("unreadable definition for %q: %v", w.Word, err)
		}
	}
	r.DistinctWords = len(distinct)

	return r, nil
}

func (r *Report) problem(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}
