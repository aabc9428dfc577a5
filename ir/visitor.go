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

// Visitor is the strict double-dispatch interface: Accept requires the
// caller to handle every node variant. Implementations decide themselves
// whether and when to recurse into a node's children (by calling Accept
// again); there is no automatic traversal here.
type Visitor interface {
	VisitAccess(*AccessNode)
	VisitNeg(*NegNode)
	VisitSqrt(*SqrtNode)
	VisitAdd(*AddNode)
	VisitSub(*SubNode)
	VisitMul(*MulNode)
	VisitDiv(*DivNode)
	VisitReduction(*ReductionNode)
	VisitIntImm(*IntImmNode)
	VisitUIntImm(*UIntImmNode)
	VisitFloatImm(*FloatImmNode)
	VisitComplexImm(*ComplexImmNode)
}

// Accept dispatches expr to the matching method of v. It panics with an
// InternalError if expr is the undefined sentinel or a node type outside
// the sealed Expr set (the latter cannot happen through this package's
// public API, but is guarded against as the strict-visitor contract
// requires).
func Accept(expr Expr, v Visitor) {
	switch n := expr.(type) {
	case *AccessNode:
		v.VisitAccess(n)
	case *NegNode:
		v.VisitNeg(n)
	case *SqrtNode:
		v.VisitSqrt(n)
	case *AddNode:
		v.VisitAdd(n)
	case *SubNode:
		v.VisitSub(n)
	case *MulNode:
		v.VisitMul(n)
	case *DivNode:
		v.VisitDiv(n)
	case *ReductionNode:
		v.VisitReduction(n)
	case *IntImmNode:
		v.VisitIntImm(n)
	case *UIntImmNode:
		v.VisitUIntImm(n)
	case *FloatImmNode:
		v.VisitFloatImm(n)
	case *ComplexImmNode:
		v.VisitComplexImm(n)
	case nil:
		panic(NewInternalError("Accept called on the undefined expression"))
	default:
		panic(NewInternalError("Accept: unhandled node variant %T", n))
	}
}

// Rewriter is the strict rewriting interface: RewriteXxx returns the
// (possibly identical) replacement for a node of that variant. Rewrite
// dispatches post-order is up to each implementation: a rewriter
// recurses into a node's children itself (typically via Rewrite) before
// deciding whether to rebuild.
type Rewriter interface {
	RewriteAccess(*AccessNode) Expr
	RewriteNeg(*NegNode) Expr
	RewriteSqrt(*SqrtNode) Expr
	RewriteAdd(*AddNode) Expr
	RewriteSub(*SubNode) Expr
	RewriteMul(*MulNode) Expr
	RewriteDiv(*DivNode) Expr
	RewriteReduction(*ReductionNode) Expr
	RewriteIntImm(*IntImmNode) Expr
	RewriteUIntImm(*UIntImmNode) Expr
	RewriteFloatImm(*FloatImmNode) Expr
	RewriteComplexImm(*ComplexImmNode) Expr
}

// Rewrite dispatches expr to the matching method of r. Passing the
// undefined sentinel returns it unchanged (undefined propagates through
// rewriters), which is why, unlike Accept, Rewrite does not panic on a nil
// expr.
func Rewrite(expr Expr, r Rewriter) Expr {
	switch n := expr.(type) {
	case nil:
		return nil
	case *AccessNode:
		return r.RewriteAccess(n)
	case *NegNode:
		return r.RewriteNeg(n)
	case *SqrtNode:
		return r.RewriteSqrt(n)
	case *AddNode:
		return r.RewriteAdd(n)
	case *SubNode:
		return r.RewriteSub(n)
	case *MulNode:
		return r.RewriteMul(n)
	case *DivNode:
		return r.RewriteDiv(n)
	case *ReductionNode:
		return r.RewriteReduction(n)
	case *IntImmNode:
		return r.RewriteIntImm(n)
	case *UIntImmNode:
		return r.RewriteUIntImm(n)
	case *FloatImmNode:
		return r.RewriteFloatImm(n)
	case *ComplexImmNode:
		return r.RewriteComplexImm(n)
	default:
		panic(NewInternalError("Rewrite: unhandled node variant %T", n))
	}
}

// Handlers is a set of optional per-variant callbacks for Match. Unset
// fields are ignored: Match is the non-strict convenience traversal,
// as opposed to the exhaustive Visitor/Rewriter interfaces above.
type Handlers struct {
	Access     func(*AccessNode)
	Neg        func(*NegNode)
	Sqrt       func(*SqrtNode)
	Add        func(*AddNode)
	Sub        func(*SubNode)
	Mul        func(*MulNode)
	Div        func(*DivNode)
	Reduction  func(*ReductionNode)
	IntImm     func(*IntImmNode)
	UIntImm    func(*UIntImmNode)
	FloatImm   func(*FloatImmNode)
	ComplexImm func(*ComplexImmNode)
}

// Match walks expr depth-first, pre-order, invoking whichever handler in
// h matches each node's variant and always recursing into every child
// regardless of whether a handler was provided for the parent. This is
// the auto-recursing, non-strict traversal used for analyses like
// IndexVars that need to see every Access in the tree no matter how
// deeply it is nested under arithmetic or reductions.
func Match(expr Expr, h Handlers) {
	if !Defined(expr) {
		return
	}
	switch n := expr.(type) {
	case *AccessNode:
		if h.Access != nil {
			h.Access(n)
		}
	case *NegNode:
		if h.Neg != nil {
			h.Neg(n)
		}
		Match(n.A, h)
	case *SqrtNode:
		if h.Sqrt != nil {
			h.Sqrt(n)
		}
		Match(n.A, h)
	case *AddNode:
		if h.Add != nil {
			h.Add(n)
		}
		Match(n.A, h)
		Match(n.B, h)
	case *SubNode:
		if h.Sub != nil {
			h.Sub(n)
		}
		Match(n.A, h)
		Match(n.B, h)
	case *MulNode:
		if h.Mul != nil {
			h.Mul(n)
		}
		Match(n.A, h)
		Match(n.B, h)
	case *DivNode:
		if h.Div != nil {
			h.Div(n)
		}
		Match(n.A, h)
		Match(n.B, h)
	case *ReductionNode:
		if h.Reduction != nil {
			h.Reduction(n)
		}
		Match(n.A, h)
	case *IntImmNode:
		if h.IntImm != nil {
			h.IntImm(n)
		}
	case *UIntImmNode:
		if h.UIntImm != nil {
			h.UIntImm(n)
		}
	case *FloatImmNode:
		if h.FloatImm != nil {
			h.FloatImm(n)
		}
	case *ComplexImmNode:
		if h.ComplexImm != nil {
			h.ComplexImm(n)
		}
	default:
		panic(NewInternalError("Match: unhandled node variant %T", n))
	}
}
