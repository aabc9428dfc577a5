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

import "math"

// Equal reports whether a and b are structurally equal: same variant,
// same tensor identity and index-variable sequence for Access, recursive
// equality of children for unary/binary/reduction nodes, and bitwise
// equality of immediate payloads. Equality is by structure and identity,
// not by mathematical value: Add(a,b) is never equal to Add(b,a), and two
// distinct IndexVars sharing a display name are never equal.
//
// Both undefined is true; exactly one undefined is false.
func Equal(a, b Expr) bool {
	if !Defined(a) && !Defined(b) {
		return true
	}
	if !Defined(a) || !Defined(b) {
		return false
	}
	return (&equalVisitor{b: b}).check(a)
}

// equalVisitor implements Equal(a, b) by visiting a strictly and
// comparing against the fixed b, field by field, on both sides.
type equalVisitor struct {
	b  Expr
	eq bool
}

func (e *equalVisitor) check(a Expr) bool {
	Accept(a, e)
	return e.eq
}

func (e *equalVisitor) VisitAccess(a *AccessNode) {
	b, ok := e.b.(*AccessNode)
	if !ok || a.Tensor != b.Tensor || len(a.Indices) != len(b.Indices) {
		e.eq = false
		return
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			e.eq = false
			return
		}
	}
	e.eq = true
}

func (e *equalVisitor) VisitNeg(a *NegNode) {
	b, ok := e.b.(*NegNode)
	e.eq = ok && Equal(a.A, b.A)
}

func (e *equalVisitor) VisitSqrt(a *SqrtNode) {
	b, ok := e.b.(*SqrtNode)
	e.eq = ok && Equal(a.A, b.A)
}

func (e *equalVisitor) VisitAdd(a *AddNode) {
	b, ok := e.b.(*AddNode)
	e.eq = ok && Equal(a.A, b.A) && Equal(a.B, b.B)
}

func (e *equalVisitor) VisitSub(a *SubNode) {
	b, ok := e.b.(*SubNode)
	e.eq = ok && Equal(a.A, b.A) && Equal(a.B, b.B)
}

func (e *equalVisitor) VisitMul(a *MulNode) {
	b, ok := e.b.(*MulNode)
	e.eq = ok && Equal(a.A, b.A) && Equal(a.B, b.B)
}

func (e *equalVisitor) VisitDiv(a *DivNode) {
	b, ok := e.b.(*DivNode)
	e.eq = ok && Equal(a.A, b.A) && Equal(a.B, b.B)
}

func (e *equalVisitor) VisitReduction(a *ReductionNode) {
	b, ok := e.b.(*ReductionNode)
	e.eq = ok && a.Op == b.Op && a.Var == b.Var && Equal(a.A, b.A)
}

func (e *equalVisitor) VisitIntImm(a *IntImmNode) {
	b, ok := e.b.(*IntImmNode)
	e.eq = ok && a.Val == b.Val
}

func (e *equalVisitor) VisitUIntImm(a *UIntImmNode) {
	b, ok := e.b.(*UIntImmNode)
	e.eq = ok && a.Val == b.Val
}

func (e *equalVisitor) VisitFloatImm(a *FloatImmNode) {
	// Bitwise equality here, so NaN equals itself and -0 differs from 0.
	b, ok := e.b.(*FloatImmNode)
	e.eq = ok && math.Float64bits(a.Val) == math.Float64bits(b.Val)
}

func (e *equalVisitor) VisitComplexImm(a *ComplexImmNode) {
	b, ok := e.b.(*ComplexImmNode)
	e.eq = ok && math.Float64bits(real(a.Val)) == math.Float64bits(real(b.Val)) &&
		math.Float64bits(imag(a.Val)) == math.Float64bits(imag(b.Val))
}

var _ Visitor = (*equalVisitor)(nil)
