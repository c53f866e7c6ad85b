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
package objref

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ObjectType is the kind of database object a name segment denotes.
// Its value is the nominal name used to seed generated object names.
type ObjectType string

const (
	UNKNOWN           ObjectType = ""
	CATALOG           ObjectType = "Catalog"
	SCHEMA            ObjectType = "Schema"
	TABLE             ObjectType = "Table"
	VIEW              ObjectType = "View"
	COLUMN            ObjectType = "Column"
	SEQUENCE          ObjectType = "Sequence"
	INDEX             ObjectType = "Index"
	PRIMARY_KEY       ObjectType = "PrimaryKey"
	FOREIGN_KEY       ObjectType = "ForeignKey"
	UNIQUE_CONSTRAINT ObjectType = "UniqueConstraint"
	STORED_PROCEDURE  ObjectType = "StoredProcedure"
)

var AllObjectTypes = []ObjectType{
	CATALOG, SCHEMA, TABLE, VIEW, COLUMN, SEQUENCE, INDEX,
	PRIMARY_KEY, FOREIGN_KEY, UNIQUE_CONSTRAINT, STORED_PROCEDURE,
}

func (t ObjectType) NominalName() string {
	return string(t)
}

func (t ObjectType) IsContainer() bool {
	return t == CATALOG || t == SCHEMA
}

// ParseObjectType accepts nominal names case-insensitively, with or without
// underscores ("table", "PRIMARY_KEY", "primarykey").
func ParseObjectType(s string) (ObjectType, error) {
	normalized := strings.ReplaceAll(s, "_", "")
	objType, ok := lo.Find(AllObjectTypes, func(t ObjectType) bool {
		return strings.EqualFold(t.NominalName(), normalized)
	})
	if !ok {
		return UNKNOWN, fmt.Errorf("unknown object type: %q", s)
	}
	return objType, nil
}
