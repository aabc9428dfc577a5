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
	"fmt"

	"go.uber.org/multierr"

	basefmt "github.com/gx-org/tacoir/base/fmt"
)

// Assign runs the five-step assignment protocol and, on success, records
// (n.Indices, expr, accumulate=false) on n's tensor. Access-mediated
// assignment (result(i,j).Assign(expr)) is the primary path for
// non-scalar results.
func (n *AccessNode) Assign(expr Expr) error {
	return assign(n.Tensor, n.Indices, expr, false)
}

// AssignAccumulate is Assign with the accumulate flag set.
func (n *AccessNode) AssignAccumulate(expr Expr) error {
	return assign(n.Tensor, n.Indices, expr, true)
}

// assign implements the assignment protocol:
//  1. reject if the result already carries an assignment;
//  2. dimensional type-check, aggregating every conflict;
//  3. well-formedness (every variable in expr not bound by a Reduction
//     must be in free);
//  4. reject transposition and distribution patterns;
//  5. store (free, expr, accumulate) on the result.
//
// A scalar (order-zero) result accepts only an empty free list; a
// higher-order result requires exactly one free variable per mode, so
// scalar assignment to a higher-order tensor is rejected up front, since
// there would be no free variable for the later modes to index.
func assign(t TensorVar, free []IndexVar, expr Expr, accumulate bool) error {
	if t.Assigned() {
		return NewUserError("tensor %s is already assigned", t.Name())
	}
	if t.Order() == 0 && len(free) != 0 {
		return NewUserError("tensor %s is a scalar and cannot be assigned a free set %v", t.Name(), free)
	}
	if t.Order() != 0 && len(free) != t.Order() {
		return NewUserError("tensor %s has order %d but is assigned a free set of length %d: %v",
			t.Name(), t.Order(), len(free), free)
	}

	ok, conflicts := DimensionsTypecheck(free, expr, t.Type().Shape)
	if !ok {
		var err error
		for _, c := range conflicts {
			err = multierr.Append(err, fmt.Errorf(
				"index variable %s indexes incompatible dimensions %s and %s", c.Var, c.A, c.B))
		}
		return NewUserError("dimensional type-check failed for %s:\n%s",
			t.Name(), basefmt.Indent(err.Error()))
	}

	if !Verify(expr, free) {
		missing := missingFreeVars(expr, free)
		return NewUserError("%s(%s) %s %s is not well-formed: unbound index variables %v",
			t.Name(), joinIndexVars(free), assignOp(accumulate), expr, missing)
	}

	if ContainsTranspose(t.Format(), free, expr) {
		return NewUserError("assignment to %s requires a transposition, which is not supported", t.Name())
	}
	if ContainsDistribution(free, expr) {
		return NewUserError("assignment to %s distributes a free variable that is never accessed", t.Name())
	}

	t.content.mu.Lock()
	defer t.content.mu.Unlock()
	t.content.assignment = &Assignment{
		Free:       append([]IndexVar(nil), free...),
		Expr:       expr,
		Accumulate: accumulate,
	}
	return nil
}

func missingFreeVars(expr Expr, free []IndexVar) []IndexVar {
	inFree := make(map[IndexVar]bool, len(free))
	for _, v := range free {
		inFree[v] = true
	}
	var missing []IndexVar
	for v := range VarsWithoutReduction(expr) {
		if !inFree[v] {
			missing = append(missing, v)
		}
	}
	return missing
}

func joinIndexVars(vars []IndexVar) string {
	s := ""
	for i, v := range vars {
		if i > 0 {
			s += ","
		}
		s += v.String()
	}
	return s
}

func assignOp(accumulate bool) string {
	if accumulate {
		return "+="
	}
	return "="
}
