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

// IsEinsumEligible reports whether expr is composed only of Add, Sub and
// Mul over Access nodes and immediates, with no Add or Sub occurring
// beneath a Mul: a sum of products, never a product of sums. Any
// Reduction, Neg, Sqrt, Div, or the undefined expression disqualifies.
func IsEinsumEligible(expr Expr) bool {
	return Defined(expr) && einsumEligible(expr, false)
}

func einsumEligible(expr Expr, underMul bool) bool {
	switch n := expr.(type) {
	case *AccessNode, *IntImmNode, *UIntImmNode, *FloatImmNode, *ComplexImmNode:
		return true
	case *AddNode:
		return !underMul && einsumEligible(n.A, false) && einsumEligible(n.B, false)
	case *SubNode:
		return !underMul && einsumEligible(n.A, false) && einsumEligible(n.B, false)
	case *MulNode:
		return einsumEligible(n.A, true) && einsumEligible(n.B, true)
	default:
		return false
	}
}

// Einsum canonicalizes expr under the Einstein summation convention: every
// index variable occurring in expr but not in free is made an implicit
// reduction. It returns the undefined expression if expr is not
// einsum-eligible.
//
// A single product-or-access term is wrapped directly, outside in, in
// reverse of the term's occurrence order, yielding
// sum(v_k)(sum(v_{k-1})(...(term)...)). A top-level sum or difference of
// terms instead pushes the wrapping into each term independently: each
// addend is reduced over its own free variables not in free, rather than
// the sum being reduced once as a whole, preserving the convention that
// summation binds per term. Subtrees whose free variables are already all
// in free are returned unchanged by identity.
func Einsum(expr Expr, free []IndexVar) Expr {
	if !IsEinsumEligible(expr) {
		return nil
	}
	inFree := make(map[IndexVar]bool, len(free))
	for _, v := range free {
		inFree[v] = true
	}
	return einsumWrap(expr, inFree)
}

// einsumWrap recurses through top-level Add/Sub structure, reducing each
// leaf term (an Access, immediate, or Mul of such) independently.
func einsumWrap(expr Expr, inFree map[IndexVar]bool) Expr {
	switch n := expr.(type) {
	case *AddNode:
		a, b := einsumWrap(n.A, inFree), einsumWrap(n.B, inFree)
		if a == n.A && b == n.B {
			return n
		}
		return Add(a, b)
	case *SubNode:
		a, b := einsumWrap(n.A, inFree), einsumWrap(n.B, inFree)
		if a == n.A && b == n.B {
			return n
		}
		return Sub(a, b)
	default:
		return wrapReductions(expr, inFree)
	}
}

// wrapReductions wraps term in a Reduction for each index variable that
// occurs in it (in first-occurrence order) but is not in inFree, adding
// reductions from the innermost (first-occurring) outward, so the
// last-occurring unbound variable ends up as the outermost Reduction.
func wrapReductions(term Expr, inFree map[IndexVar]bool) Expr {
	result := term
	for _, v := range IndexVars(term) {
		if inFree[v] {
			continue
		}
		result = NewReduction(ReduceSum, v, result)
	}
	return result
}

// EinsumTensor applies Einsum to t's recorded assignment.
func EinsumTensor(t TensorVar) Expr {
	return Einsum(t.Expr(), t.FreeVars())
}
