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

// Simplify rewrites expr so that every Access present in zeroed is replaced
// by the undefined expression, propagating through the tree as a zero
// element: Add/Sub tolerate one undefined operand (returning the other);
// Mul/Div, Neg, Sqrt and Reduction propagate undefined if any operand is
// undefined. Immediates are never zeroed.
//
// zeroed is keyed by Expr node identity (the Access's own pointer), not by
// tensor-and-indices equality: two distinct AccessNodes that happen to
// Equal each other are zeroed independently.
//
// A subtree whose children are all unchanged is returned as the identical
// node (same identity), never rebuilt, so simplify(e, nil) returns e's own
// subtrees unchanged.
func Simplify(expr Expr, zeroed map[Expr]bool) Expr {
	return Rewrite(expr, &simplifyRewriter{zeroed: zeroed})
}

type simplifyRewriter struct {
	zeroed map[Expr]bool
}

func (s *simplifyRewriter) child(expr Expr) Expr {
	if !Defined(expr) {
		return nil
	}
	return Rewrite(expr, s)
}

func (s *simplifyRewriter) RewriteAccess(n *AccessNode) Expr {
	if s.zeroed[n] {
		return nil
	}
	return n
}

func (s *simplifyRewriter) RewriteNeg(n *NegNode) Expr {
	a := s.child(n.A)
	if !Defined(a) {
		return nil
	}
	if a == n.A {
		return n
	}
	return Neg(a)
}

func (s *simplifyRewriter) RewriteSqrt(n *SqrtNode) Expr {
	a := s.child(n.A)
	if !Defined(a) {
		return nil
	}
	if a == n.A {
		return n
	}
	return Sqrt(a)
}

func (s *simplifyRewriter) RewriteAdd(n *AddNode) Expr {
	a, b := s.child(n.A), s.child(n.B)
	switch {
	case !Defined(a) && !Defined(b):
		return nil
	case !Defined(a):
		return b
	case !Defined(b):
		return a
	case a == n.A && b == n.B:
		return n
	default:
		return Add(a, b)
	}
}

func (s *simplifyRewriter) RewriteSub(n *SubNode) Expr {
	a, b := s.child(n.A), s.child(n.B)
	switch {
	case !Defined(a) && !Defined(b):
		return nil
	case !Defined(a):
		return b
	case !Defined(b):
		return a
	case a == n.A && b == n.B:
		return n
	default:
		return Sub(a, b)
	}
}

func (s *simplifyRewriter) RewriteMul(n *MulNode) Expr {
	a, b := s.child(n.A), s.child(n.B)
	if !Defined(a) || !Defined(b) {
		return nil
	}
	if a == n.A && b == n.B {
		return n
	}
	return Mul(a, b)
}

func (s *simplifyRewriter) RewriteDiv(n *DivNode) Expr {
	a, b := s.child(n.A), s.child(n.B)
	if !Defined(a) || !Defined(b) {
		return nil
	}
	if a == n.A && b == n.B {
		return n
	}
	return Div(a, b)
}

func (s *simplifyRewriter) RewriteReduction(n *ReductionNode) Expr {
	a := s.child(n.A)
	if !Defined(a) {
		return nil
	}
	if a == n.A {
		return n
	}
	return NewReduction(n.Op, n.Var, a)
}

func (s *simplifyRewriter) RewriteIntImm(n *IntImmNode) Expr         { return n }
func (s *simplifyRewriter) RewriteUIntImm(n *UIntImmNode) Expr       { return n }
func (s *simplifyRewriter) RewriteFloatImm(n *FloatImmNode) Expr     { return n }
func (s *simplifyRewriter) RewriteComplexImm(n *ComplexImmNode) Expr { return n }

var _ Rewriter = (*simplifyRewriter)(nil)
