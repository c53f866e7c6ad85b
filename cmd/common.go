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

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/yugabyte/yb-objnames/src/objref"
	"github.com/yugabyte/yb-objnames/src/testenv"
)

const (
	FORMAT_TABLE = "table"
	FORMAT_JSON  = "json"
)

var supportedOutputFormats = []string{FORMAT_TABLE, FORMAT_JSON}

// loadEnvironment builds the test environment from the config and the --db-type flag.
func loadEnvironment() (*testenv.Environment, error) {
	env, err := testenv.LoadEnvironment(cfg, dbType)
	if err != nil {
		return nil, err
	}
	log.Infof("using environment %s at %s", env, env.RedactedConnectionURL())
	return env, nil
}

func parseObjectTypeFlag(s string) (objref.ObjectType, error) {
	objType, err := objref.ParseObjectType(s)
	if err != nil {
		return objref.UNKNOWN, fmt.Errorf("--object-type: %w", err)
	}
	return objType, nil
}

func validateOutputFormat(format string) error {
	if !lo.Contains(supportedOutputFormats, format) {
		return fmt.Errorf("--format %q: supported formats are %v", format, supportedOutputFormats)
	}
	return nil
}

func addHeader(table *uitable.Table, cols ...string) {
	headerfmt := color.New(color.FgGreen, color.Underline).SprintFunc()
	columns := lo.Map(cols, func(col string, _ int) interface{} {
		return headerfmt(col)
	})
	table.AddRow(columns...)
}

func printTable(w io.Writer, table *uitable.Table) {
	fmt.Fprint(w, "\n")
	fmt.Fprintln(w, table)
	fmt.Fprint(w, "\n")
}
