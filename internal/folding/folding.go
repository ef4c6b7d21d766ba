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

// Package folding normalizes headwords for comparison. dictfmt and
// tabfile are loose about the whitespace they leave in headwords, so
// lookups and duplicate detection fold it first.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace folds whitespace: leading and trailing whitespace is
// removed and every internal whitespace run becomes a single ASCII
// space.
type Whitespace struct {
	// started is true once a non-whitespace rune has been seen.
	started bool

	// pending is true while inside an internal whitespace run.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (t *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			// Whitespace before the first word is dropped; anything
			// else is held until the next word arrives, so trailing
			// whitespace is never emitted.
			t.pending = t.started
			continue
		}

		if t.pending {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			t.pending = false
		}

		// c may be utf8.RuneError, whose encoded length differs from
		// size.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		t.started = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (t *Whitespace) Reset() {
	*t = Whitespace{}
}

// Fold returns s with whitespace folded.
func Fold(s string) string {
	out, _, err := transform.String(&Whitespace{}, s)
	if err != nil {
		// The transformer never returns a permanent error.
		return s
	}
	return out
}
