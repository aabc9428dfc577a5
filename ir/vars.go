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
	"golang.org/x/exp/maps"

	"github.com/gx-org/tacoir/base/ordered"
)

// IndexVars returns the in-order, de-duplicated sequence of index
// variables occurring in any Access within expr.
func IndexVars(expr Expr) []IndexVar {
	seen := ordered.NewMap[IndexVar, struct{}]()
	Match(expr, Handlers{
		Access: func(n *AccessNode) {
			for _, v := range n.Indices {
				seen.Store(v, struct{}{})
			}
		},
	})
	return slicesCollectKeys(seen)
}

func slicesCollectKeys(m *ordered.Map[IndexVar, struct{}]) []IndexVar {
	vars := make([]IndexVar, 0, m.Size())
	for v := range m.Keys() {
		vars = append(vars, v)
	}
	return vars
}

// VarsWithoutReduction returns the set of index variables that appear in
// an Access within expr but are not bound by an enclosing Reduction on
// the path from the root to that Access.
//
// The set is computed per-subtree, bottom-up, rather than via a single
// global insert-then-remove walk: each node returns its own free-variable
// set, and a Reduction node removes its bound variable from its child's
// set before returning. A variable accessed both inside and outside a
// reduction (for example A(i) + sum(i)(B(i))) is therefore still reported
// as free, because the left Access's contribution to the Add's set is
// never touched by the right branch's Reduction.
func VarsWithoutReduction(expr Expr) map[IndexVar]struct{} {
	if !Defined(expr) {
		return map[IndexVar]struct{}{}
	}
	return (&freeVarsVisitor{}).compute(expr)
}

type freeVarsVisitor struct {
	result map[IndexVar]struct{}
}

func (f *freeVarsVisitor) compute(expr Expr) map[IndexVar]struct{} {
	Accept(expr, f)
	return f.result
}

func (f *freeVarsVisitor) sub(expr Expr) map[IndexVar]struct{} {
	return (&freeVarsVisitor{}).compute(expr)
}

func (f *freeVarsVisitor) VisitAccess(n *AccessNode) {
	set := make(map[IndexVar]struct{}, len(n.Indices))
	for _, v := range n.Indices {
		set[v] = struct{}{}
	}
	f.result = set
}

func (f *freeVarsVisitor) VisitNeg(n *NegNode)   { f.result = f.sub(n.A) }
func (f *freeVarsVisitor) VisitSqrt(n *SqrtNode) { f.result = f.sub(n.A) }

func (f *freeVarsVisitor) union(a, b Expr) map[IndexVar]struct{} {
	setA := f.sub(a)
	setB := f.sub(b)
	merged := maps.Clone(setA)
	maps.Copy(merged, setB)
	return merged
}

func (f *freeVarsVisitor) VisitAdd(n *AddNode) { f.result = f.union(n.A, n.B) }
func (f *freeVarsVisitor) VisitSub(n *SubNode) { f.result = f.union(n.A, n.B) }
func (f *freeVarsVisitor) VisitMul(n *MulNode) { f.result = f.union(n.A, n.B) }
func (f *freeVarsVisitor) VisitDiv(n *DivNode) { f.result = f.union(n.A, n.B) }

func (f *freeVarsVisitor) VisitReduction(n *ReductionNode) {
	set := maps.Clone(f.sub(n.A))
	delete(set, n.Var)
	f.result = set
}

func (f *freeVarsVisitor) VisitIntImm(*IntImmNode)         { f.result = map[IndexVar]struct{}{} }
func (f *freeVarsVisitor) VisitUIntImm(*UIntImmNode)       { f.result = map[IndexVar]struct{}{} }
func (f *freeVarsVisitor) VisitFloatImm(*FloatImmNode)     { f.result = map[IndexVar]struct{}{} }
func (f *freeVarsVisitor) VisitComplexImm(*ComplexImmNode) { f.result = map[IndexVar]struct{}{} }

var _ Visitor = (*freeVarsVisitor)(nil)
