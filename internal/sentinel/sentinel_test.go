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

package sentinel

import (
	"strings"
	"testing"
)

// TestVocabulary_NoCollision checks the reserved tokens against realistic
// lexicon text. The whole sentinel technique rests on these strings never
// occurring organically.
func TestVocabulary_NoCollision(t *testing.T) {
	t.Parallel()

	samples := []string{
		"ذَهَبَ He went, went away, passed, or passed along or away",
		"see art. ذهب in the S and K; a dial. var. thereof",
		"(TA) [said of a man] His colour, or complexion, changed",
		"a1 ― The first of the senses; b2 ― the second; A3 ― a third.",
		"He gilded it; i. e. غَشَّاهُ بِالذَّهَبِ (Msb, K)",
		"HI OPEN TABLE _ ROW ___ open table",
	}

	for _, s := range samples {
		if Collides(s) {
			t.Errorf("Collides(%q) = true, want false", s)
		}
	}
}

func TestCollides(t *testing.T) {
	t.Parallel()

	for _, tok := range Vocabulary {
		if !Collides("before " + tok + " after") {
			t.Errorf("Collides did not detect token %q", tok)
		}
	}
}

// TestVocabulary_Distinct checks that no token is a prefix of text that
// another token's substitution could produce.
func TestVocabulary_Distinct(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, tok := range Vocabulary {
		if seen[tok] {
			t.Errorf("duplicate token %q", tok)
		}
		seen[tok] = true
	}

	// The entry separator is deliberately a substring of the tab sentinel.
	// All other pairs must not contain one another.
	for _, a := range Vocabulary {
		for _, b := range Vocabulary {
			if a == b || (a == EntrySeparator && b == Tab) {
				continue
			}
			if strings.Contains(b, a) {
				t.Errorf("token %q contains token %q", b, a)
			}
		}
	}
}
