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
	"strings"

	"github.com/yugabyte/yb-objnames/src/objref"
)

const SPECIAL_CHARS_PREFIX = "test!@#$%^&*()_+{}[]"

/*
SimpleNames returns the unqualified name variants for objType. For "Table":

	testtable, TESTTABLE, TestTable, 12numbers_Table, 12NUMBERS_Table,
	test!@#$%^&*()_+{}[]Table
*/
func SimpleNames(objType objref.ObjectType) []string {
	nominal := objType.NominalName()
	return []string{
		"test" + strings.ToLower(nominal),
		"TEST" + strings.ToUpper(nominal),
		"Test" + nominal,
		"12numbers_" + nominal,
		"12NUMBERS_" + nominal,
		SPECIAL_CHARS_PREFIX + nominal,
	}
}
