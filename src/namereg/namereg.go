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
package namereg

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/yugabyte/yb-objnames/src/constants"
	"github.com/yugabyte/yb-objnames/src/namegen"
	"github.com/yugabyte/yb-objnames/src/objref"
	"github.com/yugabyte/yb-objnames/src/sqlname"
)

type NameRegistry struct {
	DBType string
	// Number of container levels of a fully qualified name: 2, 1 or 0.
	Levels int

	DefaultCatalogName string
	DefaultSchemaName  string

	// catalog -> schema -> object names, as stored in the DB catalog.
	// Levels the DB does not have are keyed by "".
	ObjectNames map[string]map[string][]string
}

func NewNameRegistry(dbType string, containers namegen.ContainerSet) *NameRegistry {
	reg := &NameRegistry{
		DBType:      dbType,
		Levels:      containers.Levels(),
		ObjectNames: make(map[string]map[string][]string),
	}
	switch reg.Levels {
	case 2:
		reg.DefaultCatalogName = containers.PrimaryCatalog
		reg.DefaultSchemaName = containers.PrimarySchema
	case 1:
		reg.DefaultSchemaName = containers.PrimarySchema
	}
	return reg
}

// Register records a fully qualified object name.
func (reg *NameRegistry) Register(ref *objref.ObjectReference) error {
	if ref.Len() != reg.Levels+1 {
		return fmt.Errorf("register %s: expected %d qualifiers, got %d", ref, reg.Levels, ref.Depth())
	}
	for seg := range ref.Values() {
		if !seg.Valid {
			return fmt.Errorf("register %s: all segments must be present", ref)
		}
	}
	catalogName, schemaName := reg.containerKeys(ref)
	schemas, ok := reg.ObjectNames[catalogName]
	if !ok {
		schemas = make(map[string][]string)
		reg.ObjectNames[catalogName] = schemas
	}
	objectName := ref.Name().String
	if !lo.Contains(schemas[schemaName], objectName) {
		schemas[schemaName] = append(schemas[schemaName], objectName)
	}
	return nil
}

func (reg *NameRegistry) RegisterAll(refs []*objref.ObjectReference) error {
	for _, ref := range refs {
		err := reg.Register(ref)
		if err != nil {
			return err
		}
	}
	return nil
}

func (reg *NameRegistry) containerKeys(ref *objref.ObjectReference) (string, string) {
	switch reg.Levels {
	case 2:
		return ref.Segment(0).String, ref.Segment(1).String
	case 1:
		return "", ref.Segment(0).String
	default:
		return "", ""
	}
}

/*
Resolve maps a possibly partial, possibly null-padded reference to the
registered fully qualified name.
Missing outer qualifiers and absent segments take the default catalog/schema.
Each segment may be quoted or unquoted. A quoted segment matches only the
same spelling. For an unquoted segment a case-sensitive match wins. Otherwise
a case-insensitive match is accepted only if it is unique, or if the name
folded to the DB's default case is among the candidates.

	testtable, "testtable", LBSCHEMA.testtable, <null>.testtable,
	LBCAT.LBSCHEMA.testtable, <null>.<null>.testtable, lbcat.<null>.TestTable
*/
func (reg *NameRegistry) Resolve(ref *objref.ObjectReference) (*objref.ObjectReference, error) {
	if ref.Len() == 0 {
		return nil, fmt.Errorf("resolve: empty name")
	}
	if !ref.Name().Valid {
		return nil, fmt.Errorf("resolve %s: object name is required", ref)
	}
	if ref.Depth() > reg.Levels {
		return nil, &ErrTooManyQualifiers{Name: ref.String(), Max: reg.Levels}
	}
	// Left-pad omitted outer qualifiers as absent.
	padded := make([]sql.NullString, reg.Levels-ref.Depth(), reg.Levels+1)
	padded = slices.AppendSeq(padded, ref.Values())

	var resolved *objref.ObjectReference
	var catalogName, schemaName string
	var err error
	if reg.Levels == 2 {
		catalogName, err = reg.resolveLevel("catalog", padded[0], reg.DefaultCatalogName,
			lo.Keys(reg.ObjectNames))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", ref, err)
		}
		resolved = objref.NewTyped(objref.CATALOG, nil, catalogName)
	}
	if reg.Levels >= 1 {
		schemaName, err = reg.resolveLevel("schema", padded[reg.Levels-1], reg.DefaultSchemaName,
			lo.Keys(reg.ObjectNames[catalogName]))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", ref, err)
		}
		resolved = objref.NewTyped(objref.SCHEMA, resolved, schemaName)
	}
	objType := lo.Ternary(ref.Type() == objref.UNKNOWN, "object", strings.ToLower(ref.Type().NominalName()))
	objectName, err := reg.match(objType, reg.ObjectNames[catalogName][schemaName], ref.Name().String)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}
	resolved = objref.NewTyped(ref.Type(), resolved, objectName)
	log.Debugf("resolved %s to %s", ref, resolved)
	return resolved, nil
}

func (reg *NameRegistry) resolveLevel(objType string, seg sql.NullString, defaultName string, names []string) (string, error) {
	name := seg.String
	if !seg.Valid {
		if defaultName == "" {
			return "", &ErrNoDefault{ObjectType: objType}
		}
		name = defaultName
	}
	return reg.match(objType, names, name)
}

func (reg *NameRegistry) match(objType string, names []string, name string) (string, error) {
	matched, err := matchName(objType, names, name)
	if err == nil {
		return matched, nil
	}
	errObj := &ErrMultipleMatchingNames{}
	if errors.As(err, &errObj) {
		folded := reg.foldCase(sqlname.Unquote(name))
		if lo.Contains(errObj.Names, folded) {
			return folded, nil
		}
	}
	return "", err
}

// foldCase applies the DB's case folding of unquoted identifiers.
func (reg *NameRegistry) foldCase(name string) string {
	switch reg.DBType {
	case constants.POSTGRESQL, constants.YUGABYTEDB:
		return strings.ToLower(name)
	case constants.ORACLE:
		return strings.ToUpper(name)
	default:
		return name
	}
}

type ErrMultipleMatchingNames struct {
	ObjectType string
	Names      []string
}

func (e *ErrMultipleMatchingNames) Error() string {
	return fmt.Sprintf("multiple matching %s names: %s", e.ObjectType, strings.Join(e.Names, ", "))
}

type ErrNameNotFound struct {
	ObjectType string
	Name       string
}

func (e *ErrNameNotFound) Error() string {
	return fmt.Sprintf("%s name not found: %s", e.ObjectType, e.Name)
}

type ErrNoDefault struct {
	ObjectType string
}

func (e *ErrNoDefault) Error() string {
	return fmt.Sprintf("no default %s name: qualify the name", e.ObjectType)
}

type ErrTooManyQualifiers struct {
	Name string
	Max  int
}

func (e *ErrTooManyQualifiers) Error() string {
	return fmt.Sprintf("name %s has more than %d qualifiers", e.Name, e.Max)
}

func matchName(objType string, names []string, name string) (string, error) {
	if len(name) > 0 && (name[0] == '"' || name[0] == '`') {
		if !sqlname.IsQuoted(name) {
			return "", fmt.Errorf("invalid quoted %s name: [%s]", objType, name)
		}
		name = sqlname.Unquote(name)
		// Quoted names are case sensitive.
		if lo.Contains(names, name) {
			return name, nil
		}
		return "", &ErrNameNotFound{ObjectType: objType, Name: name}
	}
	var candidateNames []string
	for _, n := range names {
		if n == name { // Exact match.
			return n, nil
		}
		if strings.EqualFold(n, name) {
			candidateNames = append(candidateNames, n)
		}
	}
	if len(candidateNames) == 1 {
		return candidateNames[0], nil
	}
	if len(candidateNames) > 1 {
		slices.Sort(candidateNames)
		return "", &ErrMultipleMatchingNames{ObjectType: objType, Names: candidateNames}
	}
	return "", &ErrNameNotFound{ObjectType: objType, Name: name}
}
