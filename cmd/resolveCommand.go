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
	"github.com/gosuri/uitable"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yugabyte/yb-objnames/src/namereg"
	"github.com/yugabyte/yb-objnames/src/objref"
	"github.com/yugabyte/yb-objnames/src/sqlname"
	"github.com/yugabyte/yb-objnames/src/testenv"
	"github.com/yugabyte/yb-objnames/src/utils"
)

var (
	resolveObjectTypeFlag string
	resolveAllFlag        bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [NAME...]",
	Short: "Resolve dotted object names against the canonical objects of the test environment.",
	Long: `Resolve dotted object names against the canonical objects of the test environment.
Every fully qualified test name of the object type is registered first. Each NAME may be quoted,
partially qualified or have empty qualifiers (LBSCHEMA.testtable, "LBCAT"..testtable), which take
the default catalog and schema. With --all every generated name, including partial and null forms,
is resolved.`,

	Run: func(cmd *cobra.Command, args []string) {
		err := resolveObjectNames(cmd.OutOrStdout(), args)
		if err != nil {
			utils.ErrExit("resolve object names: %w", err)
		}
	},
}

type resolution struct {
	Input    *objref.ObjectReference
	Resolved *objref.ObjectReference
	Err      error
}

// newPopulatedRegistry registers every fully qualified name of objType that env generates.
func newPopulatedRegistry(env *testenv.Environment, objType objref.ObjectType) (*namereg.NameRegistry, error) {
	containers := env.ContainerSet()
	refs, err := env.Enumerator().ObjectNames(objType, containers.Levels(), false, false)
	if err != nil {
		return nil, err
	}
	reg := namereg.NewNameRegistry(env.DBType, containers)
	err = reg.RegisterAll(refs)
	if err != nil {
		return nil, err
	}
	log.Infof("registered %d canonical %s names for %s", len(refs), objType, env)
	return reg, nil
}

// namesToResolve parses the dotted names, or generates every name when all is set.
func namesToResolve(env *testenv.Environment, objType objref.ObjectType, args []string, all bool) ([]*objref.ObjectReference, error) {
	if all {
		return env.Enumerator().ObjectNames(objType, env.ContainerSet().Levels(), true, true)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no names given: pass one or more names or use --all")
	}
	refs := make([]*objref.ObjectReference, 0, len(args))
	for _, arg := range args {
		ref, err := sqlname.ParseName(arg)
		if err != nil {
			return nil, err
		}
		if ref.Name().Valid {
			ref = objref.NewTyped(objType, ref.Container(), ref.Name().String)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func resolveAll(reg *namereg.NameRegistry, refs []*objref.ObjectReference) []resolution {
	return lo.Map(refs, func(ref *objref.ObjectReference, _ int) resolution {
		resolved, err := reg.Resolve(ref)
		if err != nil {
			log.Warnf("%v", err)
		}
		return resolution{Input: ref, Resolved: resolved, Err: err}
	})
}

func resolveObjectNames(w io.Writer, args []string) error {
	objType, err := parseObjectTypeFlag(resolveObjectTypeFlag)
	if err != nil {
		return err
	}
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	reg, err := newPopulatedRegistry(env, objType)
	if err != nil {
		return err
	}
	refs, err := namesToResolve(env, objType, args, resolveAllFlag)
	if err != nil {
		return err
	}
	results := resolveAll(reg, refs)
	displayResolutions(w, env.DBType, results)

	failed := lo.CountBy(results, func(r resolution) bool { return r.Err != nil })
	if failed > 0 {
		return fmt.Errorf("%s of %s names did not resolve", humanize.Comma(int64(failed)), humanize.Comma(int64(len(results))))
	}
	return nil
}

func displayResolutions(w io.Writer, dbType string, results []resolution) {
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	addHeader(table, "INPUT", "RESOLVED", "SQL")
	for _, r := range results {
		if r.Err != nil {
			table.AddRow(r.Input.String(), color.RedString("ERROR"), r.Err.Error())
			continue
		}
		table.AddRow(r.Input.String(), r.Resolved.String(), sqlname.Render(dbType, r.Resolved).MinQuoted)
	}
	printTable(w, table)
	resolved := lo.CountBy(results, func(r resolution) bool { return r.Err == nil })
	fmt.Fprintln(w, color.CyanString("Resolved %s of %s names", humanize.Comma(int64(resolved)), humanize.Comma(int64(len(results)))))
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveObjectTypeFlag, "object-type", "table",
		"object type of the names to resolve")
	resolveCmd.Flags().BoolVar(&resolveAllFlag, "all", false,
		"resolve every generated name of the object type, including partial and null forms")
}
