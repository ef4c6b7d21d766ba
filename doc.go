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

// Package lane2stardict converts Lane's Arabic-English Lexicon from its
// TEI/XML source distribution into a StarDict dictionary package.
//
// The conversion is a sequence of textual cleanup passes over working
// files plus three external tools run as subprocesses:
//
//   - dictfmt (dictd-tools) builds dictd index/dictionary pairs, once
//     with Arabic diacritics and once without.
//   - pyglossary renders each pair as tab-separated text.
//   - tabfile packages the combined, colorized text as the StarDict
//     triple (.dict.dz, .idx, .ifo).
//
// The source markup is never parsed structurally. Tags are removed or
// replaced by ordered pattern substitution, with reserved sentinel
// tokens standing in for the markup that has to survive the external
// tool boundaries.
package lane2stardict
