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
	"github.com/samber/lo"

	"github.com/yugabyte/yb-objnames/src/objref"
)

// Partials returns the proper suffixes of ref, i.e. ref with 1..n-1 of its
// outermost segments dropped. The shortest suffix comes first; ref itself is
// not included.
func Partials(ref *objref.ObjectReference) []*objref.ObjectReference {
	n := ref.Len()
	if n <= 1 {
		return nil
	}
	result := make([]*objref.ObjectReference, 0, n-1)
	for keep := 1; keep < n; keep++ {
		result = append(result, ref.Suffix(keep))
	}
	return result
}

func PartialsOf(refs []*objref.ObjectReference) []*objref.ObjectReference {
	return lo.FlatMap(refs, func(ref *objref.ObjectReference, _ int) []*objref.ObjectReference {
		return Partials(ref)
	})
}
