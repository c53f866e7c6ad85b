/*
Copyright (c) YugabyteDB, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/gosuri/uitable"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yugabyte/yb-objnames/src/namegen"
	"github.com/yugabyte/yb-objnames/src/objref"
	"github.com/yugabyte/yb-objnames/src/sqlname"
	"github.com/yugabyte/yb-objnames/src/testenv"
	"github.com/yugabyte/yb-objnames/src/utils"
	"github.com/yugabyte/yb-objnames/src/utils/jsonfile"
)

var (
	objectTypeFlag         string
	maxDepthFlag           int
	includePartialsFlag    bool
	includeNullsFlag       bool
	outputFormatFlag       string
	enumerateOutputFileArg string
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "List every qualified name of an object type for the test environment.",
	Long: `List every qualified name of an object type for the test environment.
Each simple test name (lower, upper and mixed case, leading digits, special characters) is crossed
with every container variant: fully qualified names, partially qualified names with --include-partials,
and names with absent qualifiers with --include-nulls.`,

	Run: func(cmd *cobra.Command, args []string) {
		err := enumerateObjectNames(cmd.OutOrStdout())
		if err != nil {
			utils.ErrExit("enumerate object names: %w", err)
		}
	},
}

type EnumeratedName struct {
	Name       *objref.ObjectReference `json:"name"`
	SQL        string                  `json:"sql"`
	Qualifiers int                     `json:"qualifiers"`
}

type EnumerationReport struct {
	DBType          string            `json:"db_type"`
	ObjectType      objref.ObjectType `json:"object_type"`
	MaxDepth        int               `json:"max_depth"`
	IncludePartials bool              `json:"include_partials"`
	IncludeNulls    bool              `json:"include_nulls"`
	Count           int               `json:"count"`
	Names           []EnumeratedName  `json:"names"`
}

func buildEnumerationReport(env *testenv.Environment, objType objref.ObjectType, opts namegen.Options) (*EnumerationReport, error) {
	refs, err := env.Enumerator().ObjectNamesWithOptions(objType, opts)
	if err != nil {
		return nil, err
	}
	log.Infof("generated %d %s names for %s", len(refs), objType, env)
	return &EnumerationReport{
		DBType:          env.DBType,
		ObjectType:      objType,
		MaxDepth:        opts.MaxDepth,
		IncludePartials: opts.IncludePartials,
		IncludeNulls:    opts.IncludeNulls,
		Count:           len(refs),
		Names: lo.Map(refs, func(ref *objref.ObjectReference, _ int) EnumeratedName {
			return EnumeratedName{
				Name:       ref,
				SQL:        sqlname.Render(env.DBType, ref).MinQuoted,
				Qualifiers: ref.Depth(),
			}
		}),
	}, nil
}

func enumerateObjectNames(w io.Writer) error {
	err := validateOutputFormat(outputFormatFlag)
	if err != nil {
		return err
	}
	if enumerateOutputFileArg != "" && outputFormatFlag != FORMAT_JSON {
		return fmt.Errorf("--output-file requires --format %s", FORMAT_JSON)
	}
	objType, err := parseObjectTypeFlag(objectTypeFlag)
	if err != nil {
		return err
	}
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	report, err := buildEnumerationReport(env, objType, namegen.Options{
		MaxDepth:        maxDepthFlag,
		IncludePartials: includePartialsFlag,
		IncludeNulls:    includeNullsFlag,
	})
	if err != nil {
		return err
	}

	switch {
	case enumerateOutputFileArg != "":
		err = jsonfile.NewJsonFile[EnumerationReport](enumerateOutputFileArg).Create(report)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s %s names to %s\n", humanize.Comma(int64(report.Count)), objType, enumerateOutputFileArg)
	case outputFormatFlag == FORMAT_JSON:
		bs, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		fmt.Fprintln(w, string(bs))
	default:
		displayEnumerationReport(w, report)
	}
	return nil
}

func displayEnumerationReport(w io.Writer, report *EnumerationReport) {
	table := uitable.New()
	addHeader(table, "#", "NAME", "SQL", "QUALIFIERS")
	for i, name := range report.Names {
		table.AddRow(i+1, name.Name.String(), name.SQL, name.Qualifiers)
	}
	if report.Count > 0 {
		printTable(w, table)
	}
	fmt.Fprintln(w, color.CyanString("Generated %s %s names for %s (max depth %d, partials %t, nulls %t)",
		humanize.Comma(int64(report.Count)), report.ObjectType, report.DBType,
		report.MaxDepth, report.IncludePartials, report.IncludeNulls))
}

func init() {
	rootCmd.AddCommand(enumerateCmd)

	enumerateCmd.Flags().StringVar(&objectTypeFlag, "object-type", "table",
		"object type to generate names for: table, view, column, sequence, index, primary_key, foreign_key, unique_constraint, stored_procedure, ...")
	enumerateCmd.Flags().IntVar(&maxDepthFlag, "max-depth", 2,
		"number of container levels kept above the object name: 0 generates unqualified names only")
	enumerateCmd.Flags().BoolVar(&includePartialsFlag, "include-partials", false,
		"also generate the partially qualified forms of each container path")
	enumerateCmd.Flags().BoolVar(&includeNullsFlag, "include-nulls", false,
		"also generate the forms with absent (null) qualifiers")
	enumerateCmd.Flags().StringVar(&outputFormatFlag, "format", FORMAT_TABLE,
		"output format: table or json")
	enumerateCmd.Flags().StringVar(&enumerateOutputFileArg, "output-file", "",
		"write the json report to this file instead of stdout")
}
