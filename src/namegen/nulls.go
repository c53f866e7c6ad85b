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
	"database/sql"

	goerrors "github.com/go-errors/errors"

	"github.com/yugabyte/yb-objnames/src/objref"
)

// MaxNullableSegments bounds the power set: 2^3 = 8 variants per reference.
const MaxNullableSegments = 3

/*
NullSubstitutions returns every variant of ref obtained by marking a subset of
its segments absent. Bit i of the mask nulls segment i, so mask 0 (ref itself)
comes first and the all-absent variant comes last. Exactly 2^n variants are
returned for a reference of n segments.
*/
func NullSubstitutions(ref *objref.ObjectReference) ([]*objref.ObjectReference, error) {
	n := ref.Len()
	if n > MaxNullableSegments {
		return nil, goerrors.Errorf("null substitution over %d segments (max %d): %w",
			n, MaxNullableSegments, ErrInvalidArgument)
	}
	result := make([]*objref.ObjectReference, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		variant := make([]sql.NullString, n)
		for i, seg := range ref.All() {
			if mask&(1<<i) != 0 {
				seg = objref.Absent()
			}
			variant[i] = seg
		}
		result = append(result, objref.FromSegments(variant...))
	}
	return result, nil
}

func NullSubstitutionsOf(refs []*objref.ObjectReference) ([]*objref.ObjectReference, error) {
	var result []*objref.ObjectReference
	for _, ref := range refs {
		variants, err := NullSubstitutions(ref)
		if err != nil {
			return nil, err
		}
		result = append(result, variants...)
	}
	return result, nil
}
