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
package namegen

import (
	"github.com/yugabyte/yb-objnames/src/objref"
)

// ContainerSet describes which containers a target environment supports and
// the two canonical values (primary and alternate) at each level.
type ContainerSet struct {
	SupportsCatalogs bool
	SupportsSchemas  bool

	PrimaryCatalog   string
	AlternateCatalog string
	PrimarySchema    string
	AlternateSchema  string
}

// Levels is the number of container segments a fully qualified name carries.
func (cs ContainerSet) Levels() int {
	switch {
	case cs.SupportsCatalogs:
		return 2
	case cs.SupportsSchemas:
		return 1
	default:
		return 0
	}
}

/*
AllContainers returns the canonical container paths, primary values first:

	catalogs supported: (P,P) (P,A) (A,P) (A,A) as catalog.schema
	schemas only:       (P) (A)
	neither:            none

Catalog support is checked first.
*/
func (cs ContainerSet) AllContainers() []*objref.ObjectReference {
	switch {
	case cs.SupportsCatalogs:
		schemaIn := func(catalog, schema string) *objref.ObjectReference {
			return objref.NewTyped(objref.SCHEMA, objref.NewTyped(objref.CATALOG, nil, catalog), schema)
		}
		return []*objref.ObjectReference{
			schemaIn(cs.PrimaryCatalog, cs.PrimarySchema),
			schemaIn(cs.PrimaryCatalog, cs.AlternateSchema),
			schemaIn(cs.AlternateCatalog, cs.PrimarySchema),
			schemaIn(cs.AlternateCatalog, cs.AlternateSchema),
		}
	case cs.SupportsSchemas:
		return []*objref.ObjectReference{
			objref.NewTyped(objref.SCHEMA, nil, cs.PrimarySchema),
			objref.NewTyped(objref.SCHEMA, nil, cs.AlternateSchema),
		}
	default:
		return []*objref.ObjectReference{}
	}
}
