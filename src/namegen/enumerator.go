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
	"errors"

	goerrors "github.com/go-errors/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/yugabyte/yb-objnames/src/objref"
)

var ErrInvalidArgument = errors.New("invalid argument")

type Options struct {
	// Number of container levels kept, counted from the leaf. Values larger
	// than the canonical path length keep the whole path.
	MaxDepth        int
	IncludePartials bool
	IncludeNulls    bool
}

func (o Options) validate() error {
	if o.MaxDepth < 0 {
		return goerrors.Errorf("max depth %d: %w", o.MaxDepth, ErrInvalidArgument)
	}
	return nil
}

// Enumerator generates qualified object names for one target environment.
// It holds no mutable state and is safe for concurrent use.
type Enumerator struct {
	containers ContainerSet
}

func NewEnumerator(containers ContainerSet) *Enumerator {
	return &Enumerator{containers: containers}
}

func (e *Enumerator) ContainerSet() ContainerSet {
	return e.containers
}

func (e *Enumerator) ObjectNames(objType objref.ObjectType, maxDepth int, includePartials, includeNulls bool) ([]*objref.ObjectReference, error) {
	return e.ObjectNamesWithOptions(objType, Options{
		MaxDepth:        maxDepth,
		IncludePartials: includePartials,
		IncludeNulls:    includeNulls,
	})
}

/*
ObjectNamesWithOptions crosses every simple name of objType with every
container variant. Simple names form the outer loop. With MaxDepth 0 the
simple names are returned unqualified and the other options are ignored.
If the environment has no containers and MaxDepth > 0 the result is empty.
*/
func (e *Enumerator) ObjectNamesWithOptions(objType objref.ObjectType, opts Options) ([]*objref.ObjectReference, error) {
	err := opts.validate()
	if err != nil {
		return nil, err
	}
	simpleNames := SimpleNames(objType)
	if opts.MaxDepth == 0 {
		return lo.Map(simpleNames, func(name string, _ int) *objref.ObjectReference {
			return objref.NewTyped(objType, nil, name)
		}), nil
	}

	containers, err := e.Containers(opts)
	if err != nil {
		return nil, err
	}
	if len(containers) == 0 {
		log.Debugf("no containers available for %s names at max depth %d", objType, opts.MaxDepth)
	}
	result := make([]*objref.ObjectReference, 0, len(simpleNames)*len(containers))
	for _, name := range simpleNames {
		for _, container := range containers {
			result = append(result, objref.NewTyped(objType, container, name))
		}
	}
	result = uniqueRefs(result)
	log.Debugf("generated %d %s names from %d simple names and %d containers: %+v",
		len(result), objType, len(simpleNames), len(containers), opts)
	return result, nil
}

/*
Containers returns the de-duplicated container variants, in first-seen order.
Per canonical path: the path cut to its last MaxDepth segments, then (if
requested) its partial qualifications, then (if requested) the null
substitutions of everything gathered so far for that path.
*/
func (e *Enumerator) Containers(opts Options) ([]*objref.ObjectReference, error) {
	err := opts.validate()
	if err != nil {
		return nil, err
	}
	if opts.MaxDepth == 0 {
		return nil, nil
	}
	var result []*objref.ObjectReference
	for _, path := range e.containers.AllContainers() {
		expanded := []*objref.ObjectReference{path.Suffix(opts.MaxDepth)}
		if opts.IncludePartials {
			expanded = append(expanded, PartialsOf(expanded)...)
		}
		if opts.IncludeNulls {
			nulls, err := NullSubstitutionsOf(expanded)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, nulls...)
		}
		result = append(result, expanded...)
	}
	return uniqueRefs(result), nil
}

func uniqueRefs(refs []*objref.ObjectReference) []*objref.ObjectReference {
	return lo.UniqBy(refs, (*objref.ObjectReference).Key)
}
