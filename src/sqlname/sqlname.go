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
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/yugabyte/yb-objnames/src/constants"
	"github.com/yugabyte/yb-objnames/src/objref"
)

type Identifier struct {
	Quoted, Unquoted, MinQuoted string
}

func (i Identifier) Equals(other Identifier) bool {
	return i.Quoted == other.Quoted && i.Unquoted == other.Unquoted && i.MinQuoted == other.MinQuoted
}

func (i Identifier) String() string {
	return i.MinQuoted
}

/*
Render formats the present segments of ref as SQL text for dbType.
Absent segments are skipped: a resolver fills them from its defaults, so
they have no textual form.

	postgresql: LBSCHEMA.testtable -> Quoted "LBSCHEMA"."testtable", MinQuoted "LBSCHEMA".testtable
*/
func Render(dbType string, ref *objref.ObjectReference) Identifier {
	parts := make([]string, 0, ref.Len())
	for seg := range ref.Values() {
		if seg.Valid {
			parts = append(parts, seg.String)
		}
	}
	return RenderParts(dbType, parts...)
}

func RenderParts(dbType string, parts ...string) Identifier {
	var quoted string
	switch dbType {
	case constants.POSTGRESQL, constants.YUGABYTEDB:
		quoted = pgx.Identifier(parts).Sanitize()
	default:
		quoted = strings.Join(lo.Map(parts, func(p string, _ int) string { return quote(dbType, p) }), ".")
	}
	return Identifier{
		Quoted:    quoted,
		Unquoted:  strings.Join(parts, "."),
		MinQuoted: strings.Join(lo.Map(parts, func(p string, _ int) string { return minQuote(dbType, p) }), "."),
	}
}

func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '`' && s[len(s)-1] == '`')
}

// Unquote strips one level of quotes and un-doubles embedded quote characters.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	q := s[:1]
	return strings.ReplaceAll(s[1:len(s)-1], q+q, q)
}

func quote(dbType, name string) string {
	switch dbType {
	case constants.POSTGRESQL, constants.YUGABYTEDB:
		return pgx.Identifier{name}.Sanitize()
	case constants.ORACLE, constants.MSSQL, constants.SQLITE:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	case constants.MYSQL:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	default:
		panic("unknown db type " + dbType)
	}
}

var (
	lowerCaseIdentifier = regexp.MustCompile(`^[a-z_][a-z0-9_$]*$`)
	upperCaseIdentifier = regexp.MustCompile(`^[A-Z][A-Z0-9_$#]*$`)
	mixedCaseIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func minQuote(dbType, name string) string {
	var bare bool
	switch dbType {
	case constants.POSTGRESQL, constants.YUGABYTEDB, constants.SQLITE:
		bare = lowerCaseIdentifier.MatchString(name) && !IsReservedKeyword(dbType, name)
	case constants.ORACLE:
		bare = upperCaseIdentifier.MatchString(name) && !IsReservedKeyword(dbType, name)
	case constants.MYSQL, constants.MSSQL:
		bare = mixedCaseIdentifier.MatchString(name) && !IsReservedKeyword(dbType, name)
	default:
		panic("unknown db type " + dbType)
	}
	if bare {
		return name
	}
	return quote(dbType, name)
}
