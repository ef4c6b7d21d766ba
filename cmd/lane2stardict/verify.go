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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/dfmcreator/lane2stardict/verify"
)

var verifyCommand = &cli.Command{
	Name:      "verify",
	Usage:     "Check a generated StarDict package for consistency",
	ArgsUsage: "[BASE]",
	Description: `Check the .ifo, .idx, and .dict(.dz) files sharing the given
base path against each other.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			check(cli.ShowSubcommandHelp(c))
			return fmt.Errorf("%w: expected a package base path", ErrFlagParse)
		}
		basePath := c.Args().Get(0)

		report, err := verify.Package(basePath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLane2stardict, err)
		}

		tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
		tbl.AddRow("Bookname", report.Bookname)
		tbl.AddRow("Version", report.Version)
		tbl.AddRow("Word count", report.WordCount)
		tbl.AddRow("Index words", report.IndexWords)
		tbl.AddRow("Distinct words", report.DistinctWords)
		tbl.Print()

		if !report.Ok() {
			for _, p := range report.Problems {
				fmt.Fprintln(c.App.ErrWriter, p)
			}
			return &exitError{
				code: ExitCodeVerifyError,
				err:  fmt.Errorf("%w: %q: %d problem(s) found", ErrLane2stardict, basePath, len(report.Problems)),
			}
		}
		return nil
	},
}
