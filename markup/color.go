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

// ColorRules restores the sentinel tokens into presentation markup and
// colorizes sense markers and parenthetical text.
//
// Dash normalization runs before the sense-label rules because those
// labels match on the dash character the normalization introduces. The
// four label classes (a/b/A/B plus digits) each get a distinct color.
var ColorRules = rules.List{
	rules.New(sentinel.ForeignOpen, ""),
	rules.New(sentinel.ForeignClose, ""),

	rules.New(sentinel.TableOpen, "<Table>"),
	rules.New(sentinel.RowOpen, `<row role="data">`),
	rules.New(sentinel.CellOpen, `<cell role="data" rows="1" cols="1">`),
	rules.New(sentinel.CellClose, "</cell>"),
	rules.New(sentinel.RowClose, "</row>"),
	rules.New(sentinel.TableClose, "</Table>"),

	rules.New(sentinel.EmphasisOpen, `<b><i><FONT COLOR="DarkBlue">`),
	rules.New(sentinel.EmphasisClose, "</FONT></i></b>"),

	rules.New(`― - `, "―"),
	rules.New(`-`, "―"),
	rules.New(`― ―`, "―"),

	rules.New(`((―|-)*a[0-9]+(―|-)+)`, `<p></p><b><FONT COLOR="DarkSlateGray">[${1}]</FONT></b>`),
	rules.New(`((―|-)*b[0-9]+(―|-)+)`, `<p></p><b><FONT COLOR="DarkRed">[${1}]</FONT></b>`),
	rules.New(`((―|-)*A[0-9]+(―|-)+)`, `<p></p><b><FONT COLOR="SaddleBrown">[${1}]</FONT></b>`),
	rules.New(`((―|-)*B[0-9]+(―|-)+)`, `<p></p><b><FONT COLOR="Indigo">[${1}]</FONT></b>`),

	rules.New(`(\(.+?[^(\n\f\r]\))`, `<b><i><FONT COLOR="DarkOliveGreen"> ${1} </FONT></i></b>`),

	rules.New(`[ ]{2,}`, " "),
}

// Colorize applies the presentation markup pass to the cleaned tabular
// text.
func Colorize(text string) string {
	return ColorRules.Apply(text)
}
