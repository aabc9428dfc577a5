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

// Package ir implements the index-expression algebra: the tagged-node
// expression tree, its traversal framework, the structural and
// free-variable analyses, the zero-propagation and einsum transforms, and
// the assignment protocol that binds an expression to a result tensor.
package ir

import (
	"sync"

	"github.com/gx-org/tacoir/dtype"
)

// Expr is a shared-ownership reference to an immutable expression node.
// The nil Expr is the undefined sentinel (see Defined); it propagates
// through Simplify and Einsum as documented on those functions.
//
// node() is unexported so that Expr can only be implemented by the
// concrete node types declared in this package.
type Expr interface {
	node()

	// DataType returns the element type of the expression: intrinsic for
	// immediates, the promoted type of children for composites.
	DataType() dtype.Kind

	// SplitOperator appends a client-supplied operator-split annotation to
	// this node. It mutates shared state: every Expr alias referencing the
	// same node observes the appended split.
	SplitOperator(old, left, right IndexVar)

	// OperatorSplits returns a copy of the splits attached to this node.
	OperatorSplits() []OperatorSplit
}

// Defined reports whether expr points to an actual node, as opposed to
// being the undefined sentinel (the nil Expr).
func Defined(expr Expr) bool {
	return expr != nil
}

// OperatorSplit is a client annotation recording that the old index
// variable of a binary node should later be split into a left and right
// variable during loop lowering. It is opaque to this package beyond
// bookkeeping: consumers downstream (loop lowering, out of scope here)
// interpret it.
type OperatorSplit struct {
	Old, Left, Right IndexVar
}

// base holds the state common to every node variant: its element type and
// its mutable operator-split list. Embedding *base (rather than base) lets
// every node variant share one mutex and one slice header across all
// aliases of that node.
type base struct {
	mu     sync.Mutex
	splits []OperatorSplit
	dtype  dtype.Kind
}

func newBase(dt dtype.Kind) *base {
	return &base{dtype: dt}
}

func (b *base) DataType() dtype.Kind {
	return b.dtype
}

func (b *base) SplitOperator(old, left, right IndexVar) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.splits = append(b.splits, OperatorSplit{Old: old, Left: left, Right: right})
}

func (b *base) OperatorSplits() []OperatorSplit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]OperatorSplit(nil), b.splits...)
}

// AccessNode indexes a tensor by a sequence of index variables. Its arity
// (len(Indices)) always equals the tensor's order: NewAccess is the only
// constructor and enforces invariant 1 at construction time.
type AccessNode struct {
	*base
	Tensor  TensorVar
	Indices []IndexVar
}

func (n *AccessNode) node() {}

// NewAccess builds an access of tensor by indices. It panics with a
// UserError if len(indices) does not match the tensor's order: arity is a
// structural invariant of the IR, not a recoverable runtime condition, so
// it is checked at the point the inconsistency is introduced, before any
// state changes.
func NewAccess(tensor TensorVar, indices []IndexVar) *AccessNode {
	if len(indices) != tensor.Order() {
		panic(NewUserError("tensor %s has order %d but is indexed with %d variables",
			tensor.Name(), tensor.Order(), len(indices)))
	}
	return &AccessNode{
		base:    newBase(tensor.Type().DType),
		Tensor:  tensor,
		Indices: append([]IndexVar(nil), indices...),
	}
}

// NegNode is unary negation.
type NegNode struct {
	*base
	A Expr
}

func (n *NegNode) node() {}

// Neg returns -a.
func Neg(a Expr) Expr {
	return &NegNode{base: newBase(a.DataType()), A: a}
}

// SqrtNode is the unary square root.
type SqrtNode struct {
	*base
	A Expr
}

func (n *SqrtNode) node() {}

// Sqrt returns sqrt(a).
func Sqrt(a Expr) Expr {
	return &SqrtNode{base: newBase(a.DataType()), A: a}
}

// AddNode is binary addition.
type AddNode struct {
	*base
	A, B Expr
}

func (n *AddNode) node() {}

// Add returns a+b.
func Add(a, b Expr) Expr {
	return &AddNode{base: newBase(dtype.Promote(a.DataType(), b.DataType())), A: a, B: b}
}

// SubNode is binary subtraction.
type SubNode struct {
	*base
	A, B Expr
}

func (n *SubNode) node() {}

// Sub returns a-b.
func Sub(a, b Expr) Expr {
	return &SubNode{base: newBase(dtype.Promote(a.DataType(), b.DataType())), A: a, B: b}
}

// MulNode is binary multiplication.
type MulNode struct {
	*base
	A, B Expr
}

func (n *MulNode) node() {}

// Mul returns a*b.
func Mul(a, b Expr) Expr {
	return &MulNode{base: newBase(dtype.Promote(a.DataType(), b.DataType())), A: a, B: b}
}

// DivNode is binary division.
type DivNode struct {
	*base
	A, B Expr
}

func (n *DivNode) node() {}

// Div returns a/b.
func Div(a, b Expr) Expr {
	return &DivNode{base: newBase(dtype.Promote(a.DataType(), b.DataType())), A: a, B: b}
}

// ReductionNode reduces a along var using op.
type ReductionNode struct {
	*base
	Op  ReduceOp
	Var IndexVar
	A   Expr
}

func (n *ReductionNode) node() {}

// NewReduction returns a node that reduces a along var using op.
func NewReduction(op ReduceOp, v IndexVar, a Expr) Expr {
	return &ReductionNode{base: newBase(a.DataType()), Op: op, Var: v, A: a}
}

// Sum returns a reduction builder: Sum(v)(expr) is the Einstein-notation
// sum(v)(expr), reducing expr along v by addition.
func Sum(v IndexVar) func(Expr) Expr {
	return func(a Expr) Expr { return NewReduction(ReduceSum, v, a) }
}

// Reduce returns a reduction builder for an arbitrary reduction operator:
// Reduce(Max, v)(expr) reduces expr along v by taking the maximum.
func Reduce(op ReduceOp, v IndexVar) func(Expr) Expr {
	return func(a Expr) Expr { return NewReduction(op, v, a) }
}

// IntImmNode is a signed integer immediate.
type IntImmNode struct {
	*base
	Val int64
}

func (n *IntImmNode) node() {}

// Int returns an int64 immediate.
func Int(v int64) Expr {
	return &IntImmNode{base: newBase(dtype.Int64), Val: v}
}

// UIntImmNode is an unsigned integer immediate.
type UIntImmNode struct {
	*base
	Val uint64
}

func (n *UIntImmNode) node() {}

// Uint returns a uint64 immediate.
func Uint(v uint64) Expr {
	return &UIntImmNode{base: newBase(dtype.Uint64), Val: v}
}

// FloatImmNode is a floating-point immediate.
type FloatImmNode struct {
	*base
	Val float64
}

func (n *FloatImmNode) node() {}

// Float returns a float64 immediate.
func Float(v float64) Expr {
	return &FloatImmNode{base: newBase(dtype.Float64), Val: v}
}

// ComplexImmNode is a complex-valued immediate.
type ComplexImmNode struct {
	*base
	Val complex128
}

func (n *ComplexImmNode) node() {}

// Complex returns a complex128 immediate.
func Complex(v complex128) Expr {
	return &ComplexImmNode{base: newBase(dtype.Complex128), Val: v}
}

var (
	_ Expr = (*AccessNode)(nil)
	_ Expr = (*NegNode)(nil)
	_ Expr = (*SqrtNode)(nil)
	_ Expr = (*AddNode)(nil)
	_ Expr = (*SubNode)(nil)
	_ Expr = (*MulNode)(nil)
	_ Expr = (*DivNode)(nil)
	_ Expr = (*ReductionNode)(nil)
	_ Expr = (*IntImmNode)(nil)
	_ Expr = (*UIntImmNode)(nil)
	_ Expr = (*FloatImmNode)(nil)
	_ Expr = (*ComplexImmNode)(nil)
)
