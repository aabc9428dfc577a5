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

import "github.com/gx-org/tacoir/base/ordered"

// IndexVarRanges returns, for each index variable in t's free set or bound
// expression, the shape dimension it indexes: a free var at position i maps
// to t's own i-th shape dimension, and an index variable occurring at
// position i of some Access inside the expression maps to that access's
// tensor's i-th shape dimension.
//
// Conflicting dimensions across accesses of the same variable are not
// reported here: the first dimension observed for a variable wins and
// later ones are ignored. Conflict detection is DimensionsTypecheck's job.
func IndexVarRanges(t TensorVar) *ordered.Map[IndexVar, Dimension] {
	ranges := ordered.NewMap[IndexVar, Dimension]()
	shape := t.Type().Shape
	for i, v := range t.FreeVars() {
		if i < len(shape) {
			storeFirst(ranges, v, shape[i])
		}
	}
	Match(t.Expr(), Handlers{
		Access: func(n *AccessNode) {
			tensorShape := n.Tensor.Type().Shape
			for i, v := range n.Indices {
				if i < len(tensorShape) {
					storeFirst(ranges, v, tensorShape[i])
				}
			}
		},
	})
	return ranges
}

func storeFirst(m *ordered.Map[IndexVar, Dimension], v IndexVar, d Dimension) {
	if _, ok := m.Load(v); ok {
		return
	}
	m.Store(v, d)
}
