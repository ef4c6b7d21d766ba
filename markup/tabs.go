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

package markup

import (
	"github.com/dfmcreator/lane2stardict/internal/sentinel"
	"github.com/dfmcreator/lane2stardict/rules"
)

// TabRules cleans the combined tabular rendering produced by the glossary
// converter. The literal tab separating headword from definition is
// replaced with a sentinel so the colorizing rules never see a raw tab,
// escaped newlines are collapsed, and the key wrapper tags around
// headwords are stripped.
//
// The escaped-newline rule and the <br> rule are deliberately sequential
// rather than merged; the intermediate marker exists so later rules can
// target it distinctly.
var TabRules = rules.List{
	rules.New(`\t`, sentinel.Tab),
	rules.New(`\\n`, "<br>"),
	rules.New(`<k>`, ""),
	rules.New(`</k>`, ""),
	rules.New(`<br>`, " "),
}

// CleanTabs applies the tabular cleanup pass to the combined glossary
// rendering.
func CleanTabs(text string) string {
	return TabRules.Apply(text)
}
