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

// Package sentinel defines the reserved placeholder tokens that protect
// semantic markup and field separators across the external tool boundaries.
// Tokens are introduced by the markup stripping and tab cleanup stages and
// consumed again by the colorizing and packaging stages. They must never
// appear in organic lexicon text.
package sentinel

import "strings"

const (
	// Tab stands in for a literal tab character so that the field boundary
	// of a headword/definition record survives later substitution rules.
	Tab = "#####_____#####_____#####"

	// EntrySeparator marks the start of a new dictionary entry.
	EntrySeparator = "_____"

	// EmphasisOpen and EmphasisClose wrap text that was inside a <hi>
	// emphasis span in the source markup.
	EmphasisOpen  = "HI_OPEN"
	EmphasisClose = "HI_CLOSE"

	// ForeignOpen and ForeignClose wrap text that was inside a <foreign>
	// language span.
	ForeignOpen  = "FOREIGNOPEN"
	ForeignClose = "FOREIGNCLOSE"

	// Table structure tokens.
	TableOpen  = "OPENTABLE"
	TableClose = "CLOSETABLE"
	RowOpen    = "ROWROLDATA"
	RowClose   = "CLOSEROW"
	CellOpen   = "CELLROLEROWSDATA"
	CellClose  = "CLOSECELL"
)

// Vocabulary is the complete set of reserved tokens.
var Vocabulary = []string{
	Tab,
	EntrySeparator,
	EmphasisOpen,
	EmphasisClose,
	ForeignOpen,
	ForeignClose,
	TableOpen,
	TableClose,
	RowOpen,
	RowClose,
	CellOpen,
	CellClose,
}

// Collides reports whether text already contains any reserved token.
// Substituting sentinels into such text would corrupt it on restoration.
func Collides(text string) bool {
	for _, tok := range Vocabulary {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
