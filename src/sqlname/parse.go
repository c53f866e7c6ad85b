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
	"database/sql"
	"strings"

	goerrors "github.com/go-errors/errors"

	"github.com/yugabyte/yb-objnames/src/objref"
)

/*
ParseName splits a dotted name into a reference. Dots inside double quotes or
backticks do not split. Quoted segments keep their quotes so that a resolver
can tell them apart; an empty segment is absent.

	LBCAT..testtable     -> LBCAT.<null>.testtable
	"my.schema"."Table1" -> "my.schema"."Table1" (two segments)
*/
func ParseName(s string) (*objref.ObjectReference, error) {
	if strings.TrimSpace(s) == "" {
		return nil, goerrors.Errorf("empty name")
	}
	var segments []sql.NullString
	var current strings.Builder
	var quote byte
	flush := func() {
		part := strings.TrimSpace(current.String())
		segments = append(segments, sql.NullString{String: part, Valid: part != ""})
		current.Reset()
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			current.WriteByte(c)
			if c == quote {
				if i+1 < len(s) && s[i+1] == quote {
					current.WriteByte(c)
					i++
				} else {
					quote = 0
				}
			}
		case c == '"' || c == '`':
			quote = c
			current.WriteByte(c)
		case c == '.':
			flush()
		default:
			current.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, goerrors.Errorf("unterminated quote in name: %s", s)
	}
	flush()
	return objref.FromSegments(segments...), nil
}
