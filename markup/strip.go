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

// Package markup implements the textual cleanup passes of the conversion
// pipeline. The lexicon's TEI markup is never parsed structurally; each
// pass is an ordered table of pattern substitutions over the whole
// document text.
package markup

import (
	"github.com/dfmcreator/lane2stardict/internal/sentinel"
	"github.com/dfmcreator/lane2stardict/rules"
)

// StripRules removes the TEI structural markup from the merged lexicon
// text and replaces the semantic tags that must survive the dictd and
// glossary tool boundaries with sentinel tokens.
//
// The table is applied strictly in order. Entry boundaries are marked
// first, wrapper and bibliographic tags are deleted, emphasis, foreign
// and table tags become sentinels, and the trailing whitespace rules
// collapse the blank lines left behind by tag removal.
var StripRules = rules.List{
	rules.New(`<entryFree.*?[^<\n\r\f]*?>`, "\n\n"+sentinel.EntrySeparator+"\n\n"),
	rules.New(`</entryFree>`, ""),

	// A line break is forced after the headword before the orth tags
	// themselves are deleted below.
	rules.New(`</orth>`, "\n</orth>"),

	rules.New(`<\?xml version="1.0" encoding="UTF-8"\?>`, ""),
	rules.New(`<TEI.2>`, ""),
	rules.New(`<text>`, ""),
	rules.New(`<body>`, ""),
	rules.New(`<div1.*?[^<\n\r\f]>`, ""),
	rules.New(`<head.*?[^<\n\r\f]>`, ""),
	rules.New(`</head>`, ""),
	rules.New(`<div2.*?[^<\n\r\f]>`, ""),
	rules.New(`<form.*?[^<\n\r\f]*?>`, ""),
	rules.New(`</form>`, ""),
	rules.New(`<itype>.+?[^<\n\r\f]*?</itype>`, ""),
	rules.New(`<orth.*?[^<\n\r\f]*?>`, ""),
	rules.New(`</orth>`, ""),

	rules.New(`<hi.*?[^<\n\r\f]*?>`, sentinel.EmphasisOpen),
	rules.New(`</hi>`, sentinel.EmphasisClose),
	rules.New(`<foreign.*?[^<\n\r\f]*?>`, sentinel.ForeignOpen),
	rules.New(`</foreign>`, sentinel.ForeignClose),

	rules.New(`</div2>`, ""),
	rules.New(`<quote>`, ""),
	rules.New(`</quote>`, ""),
	rules.New(`<L>`, ""),
	rules.New(`</L>`, ""),
	rules.New(`<pb.*?[^<\n\r\f]*?>`, ""),
	rules.New(`<G/>`, ""),
	rules.New(`</div1>`, ""),
	rules.New(`</body>`, ""),
	rules.New(`</text>`, ""),
	rules.New(`</TEI.2>`, ""),
	rules.New(`<H>`, ""),
	rules.New(`</H>`, ""),
	rules.New(`<G>`, ""),
	rules.New(`</G>`, ""),
	rules.New(`<head>`, ""),

	// Bibliographic and header metadata is never displayed; deleted
	// outright, no sentinel needed.
	rules.New(`<analytic/>`, ""),
	rules.New(`</author>`, ""),
	rules.New(`<author>`, ""),
	rules.New(`</authority>`, ""),
	rules.New(`<authority>`, ""),
	rules.New(`</availability>`, ""),
	rules.New(`<availability status="free">`, ""),
	rules.New(`</biblStruct>`, ""),
	rules.New(`<biblStruct>`, ""),
	rules.New(`</date>`, ""),
	rules.New(`<date>`, ""),
	rules.New(`</fileDesc>`, ""),
	rules.New(`<fileDesc>`, ""),
	rules.New(`</imprint>`, ""),
	rules.New(`<imprint>`, ""),
	rules.New(`</item>`, ""),
	rules.New(`<item>`, ""),
	rules.New(`</list>`, ""),
	rules.New(`<list>`, ""),
	rules.New(`</listBibl>`, ""),
	rules.New(`<listBibl>`, ""),
	rules.New(`</monogr>`, ""),
	rules.New(`<monogr>`, ""),
	rules.New(`</note>`, ""),
	rules.New(`<note anchored="yes" place="unspecified">`, ""),
	rules.New(`</notesStmt>`, ""),
	rules.New(`<notesStmt>`, ""),
	rules.New(`</p>`, ""),
	rules.New(`<p>`, ""),
	rules.New(`</publicationStmt>`, ""),
	rules.New(`<publicationStmt>`, ""),
	rules.New(`</publisher>`, ""),
	rules.New(`<publisher>`, ""),
	rules.New(`</pubPlace>`, ""),
	rules.New(`<pubPlace>`, ""),
	rules.New(`</sourceDesc>`, ""),
	rules.New(`<sourceDesc>`, ""),
	rules.New(`</teiHeader>`, ""),
	rules.New(`<teiHeader type="text" status="new">`, ""),
	rules.New(`</title>`, ""),
	rules.New(`<title>`, ""),
	rules.New(`</titleStmt>`, ""),
	rules.New(`<titleStmt>`, ""),
	rules.New(`<H/>`, ""),
	rules.New(`<sense>`, ""),
	rules.New(`<dictScrap>`, ""),
	rules.New(`</dictScrap>`, ""),
	rules.New(`</sense>`, ""),

	rules.New(`<Table>`, sentinel.TableOpen),
	rules.New(`<row role="data">`, sentinel.RowOpen),
	rules.New(`<cell role="data" rows="1" cols="1">`, sentinel.CellOpen),
	rules.New(`</cell>`, sentinel.CellClose),
	rules.New(`</row>`, sentinel.RowClose),
	rules.New(`</Table>`, sentinel.TableClose),

	// Whitespace and control character normalization over the residue
	// left by tag removal.
	rules.New(`\n\n\n`, "\n"),
	rules.New(`\n\n`, "\n"),
	rules.New(sentinel.EntrySeparator, "\n\n\n"+sentinel.EntrySeparator+"\n"),
	rules.New(`^\s+`, ""),
	rules.New(`�`, " "),
	rules.New(`@`, " "),
	rules.New(`=`, " "),
	rules.New(`\r`, "\n"),

	// dictfmt lowercases headwords; stray lowercased foreign sentinels
	// are artifacts, not markers.
	rules.New(`foreignopen`, ""),

	// A cross-reference entry must not start a new visible block.
	rules.New(sentinel.EntrySeparator+`\s*(.*?see)`, "${1}"),

	rules.New(`\f`, "\n"),
}

// Strip applies the markup stripping pass to the merged document text.
func Strip(text string) string {
	return StripRules.Apply(text)
}
