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

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/yugabyte/yb-objnames/src/objref"
	"github.com/yugabyte/yb-objnames/src/testenv"
	"github.com/yugabyte/yb-objnames/src/utils"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the connection details and canonical containers of the test environment.",

	Run: func(cmd *cobra.Command, args []string) {
		env, err := loadEnvironment()
		if err != nil {
			utils.ErrExit("describe environment: %w", err)
			return
		}
		describeEnvironment(cmd.OutOrStdout(), env)
	},
}

func describeEnvironment(w io.Writer, env *testenv.Environment) {
	fmt.Fprintf(w, "%s\n\n", env)
	fmt.Fprint(w, env.Description())

	containers := env.ContainerSet()
	table := uitable.New()
	addHeader(table, "LEVEL", "SUPPORTED", "PRIMARY", "ALTERNATE")
	table.AddRow(objref.CATALOG.NominalName(), containers.SupportsCatalogs, containers.PrimaryCatalog, containers.AlternateCatalog)
	table.AddRow(objref.SCHEMA.NominalName(), containers.SupportsSchemas, containers.PrimarySchema, containers.AlternateSchema)
	printTable(w, table)
	fmt.Fprintf(w, "Qualifier levels: %d\n", containers.Levels())
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
