// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"sync/atomic"

	"github.com/gx-org/tacoir/base/uname"
)

var (
	indexVarNames  = uname.New()
	indexVarSeqGen atomic.Uint64
)

// indexVarContent is the allocation whose pointer identity an IndexVar
// compares by. Two IndexVar values are equal iff they point at the same
// content, irrespective of name.
type indexVarContent struct {
	name string
	seq  uint64 // creation order, used for a stable total order.
}

// IndexVar is an identity-based handle denoting a loop or summation
// dimension. The zero IndexVar is not valid; always obtain one from
// NewIndexVar or NewIndexVarNamed.
type IndexVar struct {
	content *indexVarContent
}

// NewIndexVar returns a fresh index variable with an auto-generated name
// drawn from the shared "i" prefix sequence.
func NewIndexVar() IndexVar {
	return NewIndexVarNamed(indexVarNames.Name("i"))
}

// NewIndexVarNamed returns a fresh index variable with a client-supplied
// display name. Collisions with other explicit or auto-generated names
// are not prevented: name uniqueness is the client's concern, only
// identity is guaranteed unique.
func NewIndexVarNamed(name string) IndexVar {
	return IndexVar{content: &indexVarContent{
		name: name,
		seq:  indexVarSeqGen.Add(1),
	}}
}

// Name returns the index variable's display name.
func (v IndexVar) Name() string {
	return v.content.name
}

// Equal reports whether v and o denote the same binding: identity, not
// display name. go-cmp and other reflection-based comparers use this
// method instead of recursing into the unexported content pointer.
func (v IndexVar) Equal(o IndexVar) bool {
	return v.content == o.content
}

// SetName changes the index variable's display name. Requires exclusive
// access to v: callers must not rename an IndexVar while another goroutine
// is formatting or comparing expressions that reference it by name.
func (v IndexVar) SetName(name string) {
	v.content.name = name
}

// Less defines a stable, arbitrary total order over index variables,
// usable to keep them in a sorted slice or as a deterministic map-iteration
// key. It has no semantic meaning beyond "some fixed order": it is based
// on creation sequence, not name or any lexical property.
func (v IndexVar) Less(other IndexVar) bool {
	return v.content.seq < other.content.seq
}

func (v IndexVar) String() string {
	return v.Name()
}
