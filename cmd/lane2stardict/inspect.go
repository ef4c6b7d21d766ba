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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/cases"

	"github.com/dfmcreator/lane2stardict/dict"
	"github.com/dfmcreator/lane2stardict/idx"
	"github.com/dfmcreator/lane2stardict/ifo"
	"github.com/dfmcreator/lane2stardict/internal/folding"
	"github.com/dfmcreator/lane2stardict/internal/index"
)

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "Inspect a generated StarDict package",
	ArgsUsage: "[BASE] [QUERY]",
	Description: `Print metadata and index entries for the package sharing the
given base path. With a query, print the matching definitions as text.
Queries ignore case and whitespace.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "maximum number of index entries to print (0 for all)",
			Aliases: []string{"n"},
			Value:   20,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 || c.NArg() > 2 {
			check(cli.ShowSubcommandHelp(c))
			return fmt.Errorf("%w: expected a package base path and an optional query", ErrFlagParse)
		}
		basePath := c.Args().Get(0)

		if c.NArg() == 2 {
			return inspectQuery(c, basePath, c.Args().Get(1))
		}
		return inspectList(c, basePath)
	},
}

// inspectList prints package metadata and the leading index entries.
func inspectList(c *cli.Context, basePath string) error {
	info, err := ifo.Open(basePath + ".ifo")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLane2stardict, err)
	}
	words, err := idx.ReadAll(basePath + ".idx")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLane2stardict, err)
	}

	fmt.Fprintf(c.App.Writer, "Bookname:    %s\n", info.Value("bookname"))
	fmt.Fprintf(c.App.Writer, "Version:     %s\n", info.Value("version"))
	fmt.Fprintf(c.App.Writer, "Word count:  %s\n", info.Value("wordcount"))
	fmt.Fprintln(c.App.Writer)

	limit := c.Int("limit")
	if limit <= 0 || limit > len(words) {
		limit = len(words)
	}

	tbl := table.New("Headword", "Offset", "Size").WithWriter(c.App.Writer)
	for _, w := range words[:limit] {
		tbl.AddRow(w.Word, w.Offset, w.Size)
	}
	tbl.Print()

	if limit < len(words) {
		fmt.Fprintf(c.App.Writer, "... %d more\n", len(words)-limit)
	}
	return nil
}

// dictPath returns the package's data file, preferring the dictzipped
// form.
func dictPath(basePath string) string {
	dz := basePath + ".dict.dz"
	if _, err := os.Stat(dz); err == nil {
		return dz
	}
	return basePath + ".dict"
}

// inspectQuery prints the definitions whose folded headword matches the
// folded query.
func inspectQuery(c *cli.Context, basePath, query string) error {
	words, err := idx.ReadAll(basePath + ".idx")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLane2stardict, err)
	}

	caser := cases.Fold()
	folded := index.New(words, func(a, b string) int {
		return strings.Compare(caser.String(folding.Fold(a)), caser.String(folding.Fold(b)))
	})

	matches := folded.Search(query)
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q: no matching entries", ErrLane2stardict, query)
	}

	r, err := dict.Open(dictPath(basePath))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLane2stardict, err)
	}
	defer r.Close()

	for _, w := range matches {
		data, err := r.Data(w)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLane2stardict, err)
		}
		fmt.Fprintln(c.App.Writer, w.Word)
		fmt.Fprintln(c.App.Writer, html2text.HTML2Text(string(data)))
		fmt.Fprintln(c.App.Writer)
	}
	return nil
}
