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
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

const NULL_SEGMENT = "<null>"

func Present(name string) sql.NullString {
	return sql.NullString{String: name, Valid: true}
}

func Absent() sql.NullString {
	return sql.NullString{}
}

// ObjectReference is a possibly partial, possibly null-padded qualified name.
// The container chain runs from the outermost scope to the leaf. A reference
// is never modified once built; every transformation returns a new one.
type ObjectReference struct {
	objType   ObjectType
	name      sql.NullString
	container *ObjectReference

	// root-to-leaf, computed at construction
	segments []sql.NullString
}

func New(name string) *ObjectReference {
	return newRef(UNKNOWN, nil, Present(name))
}

func NewContained(container *ObjectReference, name string) *ObjectReference {
	return newRef(UNKNOWN, container, Present(name))
}

func NewTyped(objType ObjectType, container *ObjectReference, name string) *ObjectReference {
	return newRef(objType, container, Present(name))
}

/*
FromSegments builds the chain from an ordered sequence of segments; the last
segment becomes the leaf. Any segment may be absent.
Called with no segments, it returns an empty reference (Len() == 0) which is
only useful as an accumulator.
*/
func FromSegments(segs ...sql.NullString) *ObjectReference {
	if len(segs) == 0 {
		return &ObjectReference{}
	}
	var ref *ObjectReference
	for _, seg := range segs {
		ref = newRef(UNKNOWN, ref, seg)
	}
	return ref
}

func FromNames(names ...string) *ObjectReference {
	return FromSegments(lo.Map(names, func(n string, _ int) sql.NullString { return Present(n) })...)
}

func newRef(objType ObjectType, container *ObjectReference, name sql.NullString) *ObjectReference {
	var segments []sql.NullString
	if container != nil {
		segments = make([]sql.NullString, 0, container.Len()+1)
		segments = append(segments, container.segments...)
	}
	return &ObjectReference{
		objType:   objType,
		name:      name,
		container: container,
		segments:  append(segments, name),
	}
}

func (r *ObjectReference) Type() ObjectType {
	return r.objType
}

func (r *ObjectReference) Name() sql.NullString {
	return r.name
}

func (r *ObjectReference) Container() *ObjectReference {
	return r.container
}

// Len is the number of segments, i.e. Depth()+1.
func (r *ObjectReference) Len() int {
	return len(r.segments)
}

// Depth is the number of containers above the leaf; -1 for an empty reference.
func (r *ObjectReference) Depth() int {
	return len(r.segments) - 1
}

func (r *ObjectReference) Segment(i int) sql.NullString {
	return r.segments[i]
}

// AsList returns the root-to-leaf segments. The returned slice is a copy;
// use All or Values to read without allocating.
func (r *ObjectReference) AsList() []sql.NullString {
	return slices.Clone(r.segments)
}

// All yields the index and value of each segment, root first.
func (r *ObjectReference) All() iter.Seq2[int, sql.NullString] {
	return slices.All(r.segments)
}

// Values yields each segment, root first.
func (r *ObjectReference) Values() iter.Seq[sql.NullString] {
	return slices.Values(r.segments)
}

// Suffix returns a reference made of the last n segments. n is clamped to Len().
func (r *ObjectReference) Suffix(n int) *ObjectReference {
	n = min(max(n, 0), r.Len())
	return FromSegments(r.segments[r.Len()-n:]...)
}

func (r *ObjectReference) IsAllAbsent() bool {
	return r.Len() > 0 && !lo.SomeBy(r.segments, func(s sql.NullString) bool { return s.Valid })
}

func (r *ObjectReference) Equal(other *ObjectReference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return slices.Equal(r.segments, other.segments)
}

// Key is a string form of the segments where equal keys mean Equal references.
// An absent segment and an empty name produce different keys.
func (r *ObjectReference) Key() string {
	var sb strings.Builder
	for i, seg := range r.segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		if seg.Valid {
			sb.WriteString(strconv.Quote(seg.String))
		} else {
			sb.WriteByte('~')
		}
	}
	return sb.String()
}

func (r *ObjectReference) String() string {
	parts := lo.Map(r.segments, func(s sql.NullString, _ int) string {
		return lo.Ternary(s.Valid, s.String, NULL_SEGMENT)
	})
	return strings.Join(parts, ".")
}

// Names returns the segments as nillable strings, nil marking an absent segment.
func (r *ObjectReference) Names() []*string {
	return lo.Map(r.segments, func(s sql.NullString, _ int) *string {
		if !s.Valid {
			return nil
		}
		return lo.ToPtr(s.String)
	})
}

func (r *ObjectReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Names())
}

func (r *ObjectReference) UnmarshalJSON(data []byte) error {
	var names []*string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	segs := lo.Map(names, func(n *string, _ int) sql.NullString {
		if n == nil {
			return Absent()
		}
		return Present(*n)
	})
	*r = *FromSegments(segs...)
	return nil
}
