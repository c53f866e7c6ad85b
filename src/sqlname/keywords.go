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
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/yugabyte/yb-objnames/src/constants"
)

// Reserved words that cannot appear unquoted as a table or schema name.
var pgReservedKeywords = mapset.NewThreadUnsafeSet[string](
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc", "asymmetric",
	"both", "case", "cast", "check", "collate", "column", "constraint", "create",
	"current_catalog", "current_date", "current_role", "current_time",
	"current_timestamp", "current_user", "default", "deferrable", "desc",
	"distinct", "do", "else", "end", "except", "false", "fetch", "for",
	"foreign", "from", "grant", "group", "having", "in", "initially",
	"intersect", "into", "lateral", "leading", "limit", "localtime",
	"localtimestamp", "not", "null", "offset", "on", "only", "or", "order",
	"placing", "primary", "references", "returning", "select", "session_user",
	"some", "symmetric", "table", "then", "to", "trailing", "true", "union",
	"unique", "user", "using", "variadic", "when", "where", "window", "with",
)

var oracleReservedKeywords = mapset.NewThreadUnsafeSet[string](
	"ACCESS", "ADD", "ALL", "ALTER", "AND", "ANY", "AS", "ASC", "AUDIT",
	"BETWEEN", "BY", "CHAR", "CHECK", "CLUSTER", "COLUMN", "COMMENT",
	"COMPRESS", "CONNECT", "CREATE", "CURRENT", "DATE", "DECIMAL", "DEFAULT",
	"DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "EXCLUSIVE", "EXISTS",
	"FILE", "FLOAT", "FOR", "FROM", "GRANT", "GROUP", "HAVING", "IDENTIFIED",
	"IMMEDIATE", "IN", "INCREMENT", "INDEX", "INITIAL", "INSERT", "INTEGER",
	"INTERSECT", "INTO", "IS", "LEVEL", "LIKE", "LOCK", "LONG", "MAXEXTENTS",
	"MINUS", "MODE", "MODIFY", "NOAUDIT", "NOCOMPRESS", "NOT", "NOWAIT",
	"NULL", "NUMBER", "OF", "OFFLINE", "ON", "ONLINE", "OPTION", "OR", "ORDER",
	"PCTFREE", "PRIOR", "PUBLIC", "RAW", "RENAME", "RESOURCE", "REVOKE",
	"ROW", "ROWID", "ROWNUM", "ROWS", "SELECT", "SESSION", "SET", "SHARE",
	"SIZE", "SMALLINT", "START", "SUCCESSFUL", "SYNONYM", "SYSDATE", "TABLE",
	"THEN", "TO", "TRIGGER", "UID", "UNION", "UNIQUE", "UPDATE", "USER",
	"VALIDATE", "VALUES", "VARCHAR", "VARCHAR2", "VIEW", "WHENEVER", "WHERE", "WITH",
)

// Shared subset of the MySQL and SQL Server reserved words, compared upper case.
var commonReservedKeywords = mapset.NewThreadUnsafeSet[string](
	"ADD", "ALL", "ALTER", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE",
	"CHECK", "COLUMN", "CONSTRAINT", "CREATE", "CROSS", "DATABASE", "DEFAULT",
	"DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "EXISTS", "FOREIGN", "FROM",
	"FULL", "GRANT", "GROUP", "HAVING", "IN", "INDEX", "INNER", "INSERT",
	"INTO", "IS", "JOIN", "KEY", "LEFT", "LIKE", "NOT", "NULL", "ON", "OR",
	"ORDER", "OUTER", "PRIMARY", "REFERENCES", "RIGHT", "SCHEMA", "SELECT",
	"SET", "TABLE", "THEN", "TO", "UNION", "UNIQUE", "UPDATE", "USE",
	"VALUES", "VIEW", "WHEN", "WHERE", "WITH",
)

func IsReservedKeyword(dbType, word string) bool {
	switch dbType {
	case constants.POSTGRESQL, constants.YUGABYTEDB, constants.SQLITE:
		return pgReservedKeywords.Contains(strings.ToLower(word))
	case constants.ORACLE:
		return oracleReservedKeywords.Contains(strings.ToUpper(word))
	default:
		return commonReservedKeywords.Contains(strings.ToUpper(word))
	}
}
