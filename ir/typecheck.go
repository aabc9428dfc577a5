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

import "github.com/gx-org/tacoir/format"

// DimensionConflict records that an index variable was observed indexing
// two incompatible dimensions: once as a, once as b.
type DimensionConflict struct {
	Var  IndexVar
	A, B Dimension
}

// DimensionsTypecheck reports whether every occurrence of every index
// variable across the result's free set and every Access inside expr
// agrees on the dimension it indexes. On disagreement it returns false
// along with one DimensionConflict per first-seen mismatch.
//
// The result's own shape supplies the dimension for each free variable at
// its declared position; each Access inside expr supplies the dimension
// its tensor declares at the corresponding position.
func DimensionsTypecheck(free []IndexVar, expr Expr, shape Shape) (bool, []DimensionConflict) {
	dims := make(map[IndexVar]Dimension)
	var conflicts []DimensionConflict
	observe := func(v IndexVar, d Dimension) {
		existing, ok := dims[v]
		if !ok {
			dims[v] = d
			return
		}
		if !existing.Equal(d) {
			conflicts = append(conflicts, DimensionConflict{Var: v, A: existing, B: d})
		}
	}
	for i, v := range free {
		if i < len(shape) {
			observe(v, shape[i])
		}
	}
	Match(expr, Handlers{
		Access: func(n *AccessNode) {
			tensorShape := n.Tensor.Type().Shape
			for i, v := range n.Indices {
				if i < len(tensorShape) {
					observe(v, tensorShape[i])
				}
			}
		},
	})
	return len(conflicts) == 0, conflicts
}

// ContainsDistribution reports whether some variable in free does not
// occur in any Access within expr, a "distribution" pattern where the
// result would need to be broadcast along an axis the expression never
// actually produces.
func ContainsDistribution(free []IndexVar, expr Expr) bool {
	occurring := make(map[IndexVar]bool)
	for _, v := range IndexVars(expr) {
		occurring[v] = true
	}
	for _, v := range free {
		if !occurring[v] {
			return true
		}
	}
	return false
}

// ContainsTranspose reports whether producing the result in f's declared
// mode order would require permuting axes relative to the order the free
// variables are actually produced by expr.
//
// f.ModeOrder() gives, for each physical storage axis, which logical free
// position feeds it. ContainsTranspose compares the free variable visited
// at each physical axis against the order those same variables first occur
// while walking expr's Access nodes. Any disagreement means the result
// cannot be produced in the requested storage order without an explicit
// transpose, which this IR does not support.
func ContainsTranspose(f format.Format, free []IndexVar, expr Expr) bool {
	if len(free) == 0 {
		return false
	}
	modeOrder := f.ModeOrder()
	if len(modeOrder) != len(free) {
		return false
	}
	physical := make([]IndexVar, len(free))
	for axis, logical := range modeOrder {
		if logical < 0 || logical >= len(free) {
			return false
		}
		physical[axis] = free[logical]
	}
	inFree := make(map[IndexVar]bool, len(free))
	for _, v := range free {
		inFree[v] = true
	}
	var occurrence []IndexVar
	for _, v := range IndexVars(expr) {
		if inFree[v] {
			occurrence = append(occurrence, v)
		}
	}
	if len(occurrence) != len(free) {
		return false
	}
	for i, v := range physical {
		if v != occurrence[i] {
			return true
		}
	}
	return false
}
