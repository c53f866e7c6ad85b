//go:build unit

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
package sqlname

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yugabyte/yb-objnames/src/constants"
	"github.com/yugabyte/yb-objnames/src/objref"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		dbType   string
		ref      *objref.ObjectReference
		expected Identifier
	}{
		{
			constants.POSTGRESQL, objref.FromNames("LBSCHEMA", "testtable"),
			Identifier{Quoted: `"LBSCHEMA"."testtable"`, Unquoted: `LBSCHEMA.testtable`, MinQuoted: `"LBSCHEMA".testtable`},
		},
		{
			constants.YUGABYTEDB, objref.FromSegments(objref.Absent(), objref.Present("lbschema"), objref.Present("table")),
			Identifier{Quoted: `"lbschema"."table"`, Unquoted: `lbschema.table`, MinQuoted: `lbschema."table"`},
		},
		{
			constants.POSTGRESQL, objref.FromNames("12numbers_Table"),
			Identifier{Quoted: `"12numbers_Table"`, Unquoted: `12numbers_Table`, MinQuoted: `"12numbers_Table"`},
		},
		{
			constants.POSTGRESQL, objref.FromNames(`a"b`),
			Identifier{Quoted: `"a""b"`, Unquoted: `a"b`, MinQuoted: `"a""b"`},
		},
		{
			constants.ORACLE, objref.FromNames("LBSCHEMA", "TESTTABLE"),
			Identifier{Quoted: `"LBSCHEMA"."TESTTABLE"`, Unquoted: `LBSCHEMA.TESTTABLE`, MinQuoted: `LBSCHEMA.TESTTABLE`},
		},
		{
			constants.ORACLE, objref.FromNames("LBSCHEMA", "testtable"),
			Identifier{Quoted: `"LBSCHEMA"."testtable"`, Unquoted: `LBSCHEMA.testtable`, MinQuoted: `LBSCHEMA."testtable"`},
		},
		{
			constants.MYSQL, objref.FromNames("LBCAT", "TestTable"),
			Identifier{Quoted: "`LBCAT`.`TestTable`", Unquoted: "LBCAT.TestTable", MinQuoted: "LBCAT.TestTable"},
		},
		{
			constants.MYSQL, objref.FromNames("test!@#$%^&*()_+{}[]Table"),
			Identifier{Quoted: "`test!@#$%^&*()_+{}[]Table`", Unquoted: "test!@#$%^&*()_+{}[]Table", MinQuoted: "`test!@#$%^&*()_+{}[]Table`"},
		},
		{
			constants.MSSQL, objref.FromNames("LBCAT", "LBSCHEMA", "select"),
			Identifier{Quoted: `"LBCAT"."LBSCHEMA"."select"`, Unquoted: `LBCAT.LBSCHEMA.select`, MinQuoted: `LBCAT.LBSCHEMA."select"`},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.dbType+" "+tc.ref.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, Render(tc.dbType, tc.ref))
		})
	}
}

func TestRenderAllAbsent(t *testing.T) {
	id := Render(constants.POSTGRESQL, objref.FromSegments(objref.Absent(), objref.Absent()))
	assert.True(t, id.Equals(Identifier{}))
}

func TestUnquote(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Foo", Unquote(`"Foo"`))
	assert.Equal("Foo", Unquote("`Foo`"))
	assert.Equal(`a"b`, Unquote(`"a""b"`))
	assert.Equal("foo", Unquote("foo"))
	assert.Equal(`"`, Unquote(`"`))
	assert.False(IsQuoted(""))
}

func TestIsReservedKeyword(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsReservedKeyword(constants.POSTGRESQL, "TABLE"))
	assert.False(IsReservedKeyword(constants.POSTGRESQL, "testtable"))
	assert.True(IsReservedKeyword(constants.ORACLE, "rownum"))
	assert.True(IsReservedKeyword(constants.MYSQL, "schema"))
	assert.False(IsReservedKeyword(constants.MSSQL, "LBSCHEMA"))
}
