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

	"github.com/urfave/cli/v2"

	"github.com/dfmcreator/lane2stardict"
	"github.com/dfmcreator/lane2stardict/config"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "Build the StarDict package from the XML source",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "source-dir",
			Usage:   "directory containing the lexicon XML fragments",
			Aliases: []string{"s"},
			Value:   "../source-lane",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Usage:   "directory for generated files",
			Aliases: []string{"o"},
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to a YAML configuration file",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:  "dictfmt",
			Usage: "path to the dictfmt binary",
		},
		&cli.StringFlag{
			Name:  "pyglossary",
			Usage: "path to the pyglossary binary",
		},
		&cli.StringFlag{
			Name:  "tabfile",
			Usage: "path to the tabfile binary",
		},
		&cli.BoolFlag{
			Name:               "keep",
			Usage:              "keep intermediate files",
			Aliases:            []string{"k"},
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		cfg := config.Default()
		if path := c.String("config"); path != "" {
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLane2stardict, err)
			}
		}
		cfg.Merge(&config.Config{
			Tools: config.ToolsConfig{
				Dictfmt:    c.String("dictfmt"),
				Pyglossary: c.String("pyglossary"),
				Tabfile:    c.String("tabfile"),
			},
		})

		converter := &lane2stardict.Converter{
			SourceDir:        c.String("source-dir"),
			OutputDir:        c.String("output-dir"),
			Config:           cfg,
			KeepIntermediate: c.Bool("keep"),
		}

		outputs, err := converter.Convert(c.Context)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLane2stardict, err)
		}

		for _, path := range outputs {
			if _, err := fmt.Fprintln(c.App.Writer, path); err != nil {
				return fmt.Errorf("%w: %w", ErrLane2stardict, err)
			}
		}
		return nil
	},
}
