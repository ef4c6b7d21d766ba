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

// Package rules implements ordered pattern substitution over document text.
//
// A rule list is applied strictly in order. Order is significant: later
// rules may target residue left behind by earlier rules, such as blank
// lines created by tag removal.
package rules

import "regexp"

// Rule is a single pattern substitution.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// List is an ordered list of rules.
type List []Rule

// New builds a rule with the pattern compiled in multi-line mode so that
// ^ and $ anchor at line boundaries.
func New(pattern, replacement string) Rule {
	return Rule{
		Pattern:     regexp.MustCompile("(?m)" + pattern),
		Replacement: replacement,
	}
}

// Apply runs every rule against text in order and returns the result.
// Substitution is total; a pattern that matches nothing leaves the text
// unchanged.
func (l List) Apply(text string) string {
	for _, r := range l {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	return text
}
