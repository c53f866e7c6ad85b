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
package objref

import (
	"database/sql"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleName(t *testing.T) {
	assert := assert.New(t)
	ref := New("table1")
	assert.Equal(0, ref.Depth())
	assert.Equal(1, ref.Len())
	assert.Nil(ref.Container())
	assert.Equal([]sql.NullString{Present("table1")}, ref.AsList())
	assert.Equal("table1", ref.String())
}

func TestContainedName(t *testing.T) {
	assert := assert.New(t)
	catalog := NewTyped(CATALOG, nil, "LBCAT")
	schema := NewTyped(SCHEMA, catalog, "LBSCHEMA")
	table := NewTyped(TABLE, schema, "table1")

	assert.Equal(2, table.Depth())
	assert.Equal(TABLE, table.Type())
	assert.Equal(SCHEMA, table.Container().Type())
	assert.Same(schema, table.Container())
	assert.Equal([]sql.NullString{Present("LBCAT"), Present("LBSCHEMA"), Present("table1")}, table.AsList())
	assert.Equal("LBCAT.LBSCHEMA.table1", table.String())

	// Building a longer chain leaves the shorter one untouched.
	assert.Equal(1, schema.Depth())
	assert.Equal("LBCAT.LBSCHEMA", schema.String())
}

func TestFromSegments(t *testing.T) {
	assert := assert.New(t)
	ref := FromSegments(Absent(), Present("LBSCHEMA"), Present("table1"))
	assert.Equal(2, ref.Depth())
	assert.Equal(Present("table1"), ref.Name())
	assert.Equal(Present("LBSCHEMA"), ref.Container().Name())
	assert.Equal(Absent(), ref.Container().Container().Name())
	assert.Nil(ref.Container().Container().Container())
	assert.Equal("<null>.LBSCHEMA.table1", ref.String())

	assert.True(ref.Equal(FromSegments(ref.AsList()...)))
	assert.True(FromNames("a", "b").Equal(FromSegments(Present("a"), Present("b"))))
}

func TestEmptyReference(t *testing.T) {
	ref := FromSegments()
	assert.Equal(t, 0, ref.Len())
	assert.Equal(t, -1, ref.Depth())
	assert.False(t, ref.IsAllAbsent())
	assert.Empty(t, ref.AsList())
}

func TestAsListIsACopy(t *testing.T) {
	ref := FromNames("LBSCHEMA", "table1")
	list := ref.AsList()
	list[0] = Absent()
	assert.Equal(t, Present("LBSCHEMA"), ref.Segment(0))
}

func TestSegmentIteration(t *testing.T) {
	ref := FromSegments(Present("LBCAT"), Absent(), Present("table1"))

	var indexes []int
	var values []sql.NullString
	for i, seg := range ref.All() {
		indexes = append(indexes, i)
		values = append(values, seg)
	}
	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, ref.AsList(), values)

	var first []sql.NullString
	for seg := range ref.Values() {
		first = append(first, seg)
		break
	}
	assert.Equal(t, []sql.NullString{Present("LBCAT")}, first)

	for range FromSegments().Values() {
		t.Fatal("empty reference yields no segments")
	}
}

func TestReadsDoNotAllocate(t *testing.T) {
	ref := FromNames("LBCAT", "LBSCHEMA", "table1")
	present := 0
	allocs := testing.AllocsPerRun(100, func() {
		for i := 0; i < ref.Len(); i++ {
			if ref.Segment(i).Valid {
				present++
			}
		}
		for seg := range ref.Values() {
			if seg.Valid {
				present++
			}
		}
	})
	assert.Zero(t, allocs)
	assert.Positive(t, present)
}

func TestEquality(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  *ObjectReference
		equal bool
	}{
		{"same names", FromNames("s", "t"), FromNames("s", "t"), true},
		{"type is ignored", NewTyped(TABLE, New("s"), "t"), FromNames("s", "t"), true},
		{"different leaf", FromNames("s", "t"), FromNames("s", "u"), false},
		{"different depth", FromNames("t"), FromNames("s", "t"), false},
		{"absent vs absent", FromSegments(Absent(), Present("t")), FromSegments(Absent(), Present("t")), true},
		{"absent vs empty", FromSegments(Absent(), Present("t")), FromSegments(Present(""), Present("t")), false},
		{"absent position matters", FromSegments(Absent(), Present("t")), FromSegments(Present("t"), Absent()), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, tc.a.Equal(tc.b))
			assert.Equal(t, tc.equal, tc.a.Key() == tc.b.Key())
		})
	}
}

func TestSuffix(t *testing.T) {
	assert := assert.New(t)
	ref := FromNames("LBCAT", "LBSCHEMA", "table1")
	assert.True(FromNames("table1").Equal(ref.Suffix(1)))
	assert.True(FromNames("LBSCHEMA", "table1").Equal(ref.Suffix(2)))
	assert.True(ref.Equal(ref.Suffix(3)))
	assert.True(ref.Equal(ref.Suffix(10)))
	assert.Equal(0, ref.Suffix(0).Len())
}

func TestIsAllAbsent(t *testing.T) {
	assert.True(t, FromSegments(Absent(), Absent()).IsAllAbsent())
	assert.False(t, FromSegments(Absent(), Present("x")).IsAllAbsent())
}

func TestJSON(t *testing.T) {
	ref := FromSegments(Present("LBCAT"), Absent(), Present("table1"))
	bs, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `["LBCAT", null, "table1"]`, string(bs))

	var decoded ObjectReference
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.True(t, ref.Equal(&decoded))
}

func TestParseObjectType(t *testing.T) {
	testCases := []struct {
		input    string
		expected ObjectType
	}{
		{"table", TABLE},
		{"TABLE", TABLE},
		{"Table", TABLE},
		{"primary_key", PRIMARY_KEY},
		{"ForeignKey", FOREIGN_KEY},
		{"schema", SCHEMA},
	}
	for _, tc := range testCases {
		objType, err := ParseObjectType(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, objType, tc.input)
	}

	_, err := ParseObjectType("widget")
	assert.Error(t, err)
}
