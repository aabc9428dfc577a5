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
	"sync"
	"sync/atomic"

	"github.com/gx-org/tacoir/base/uname"
	"github.com/gx-org/tacoir/format"
)

var (
	tensorVarNames  = uname.New()
	tensorVarSeqGen atomic.Uint64
)

// Assignment is the binding recorded by a successful TensorVar.Assign or
// AssignAccumulate: the free index variables, the bound expression, and
// whether the binding accumulates into existing storage.
type Assignment struct {
	Free       []IndexVar
	Expr       Expr
	Accumulate bool
}

// tensorVarContent is the allocation whose pointer identity a TensorVar
// compares by.
type tensorVarContent struct {
	mu   sync.Mutex
	seq  uint64
	name string
	typ  Type
	fmt  format.Format

	assignment *Assignment
}

// TensorVar is an identity-based handle for a named, typed, formatted
// tensor, optionally carrying a recorded assignment. The zero TensorVar
// is not valid; always obtain one from NewTensorVar or NewTensorVarNamed.
type TensorVar struct {
	content *tensorVarContent
}

// NewTensorVar returns a fresh tensor variable with an auto-generated
// name drawn from the shared "A" prefix sequence.
func NewTensorVar(typ Type, fmt format.Format) TensorVar {
	return NewTensorVarNamed(tensorVarNames.Name("A"), typ, fmt)
}

// NewTensorVarNamed returns a fresh tensor variable with a client-supplied
// display name.
func NewTensorVarNamed(name string, typ Type, fmt format.Format) TensorVar {
	return TensorVar{content: &tensorVarContent{
		seq:  tensorVarSeqGen.Add(1),
		name: name,
		typ:  typ,
		fmt:  fmt,
	}}
}

// Name returns the tensor's display name.
func (t TensorVar) Name() string {
	return t.content.name
}

// Equal reports whether t and o denote the same tensor: identity, not
// display name. go-cmp and other reflection-based comparers use this
// method instead of recursing into the unexported content pointer.
func (t TensorVar) Equal(o TensorVar) bool {
	return t.content == o.content
}

// SetName changes the tensor's display name. Requires exclusive access to
// t.
func (t TensorVar) SetName(name string) {
	t.content.mu.Lock()
	defer t.content.mu.Unlock()
	t.content.name = name
}

// Order returns the tensor's order (the length of its shape).
func (t TensorVar) Order() int {
	return t.content.typ.Shape.Order()
}

// Type returns the tensor's element type and shape.
func (t TensorVar) Type() Type {
	return t.content.typ
}

// Format returns the tensor's storage-format descriptor.
func (t TensorVar) Format() format.Format {
	return t.content.fmt
}

// Less defines a stable, arbitrary total order over tensor variables,
// based on creation sequence (see IndexVar.Less for the same contract).
func (t TensorVar) Less(other TensorVar) bool {
	return t.content.seq < other.content.seq
}

func (t TensorVar) String() string {
	return t.Name() + " : " + t.content.typ.String()
}

// Assigned reports whether the tensor already carries a recorded
// assignment: TensorVar is single-assignment in the IR.
func (t TensorVar) Assigned() bool {
	t.content.mu.Lock()
	defer t.content.mu.Unlock()
	return t.content.assignment != nil
}

// FreeVars returns the free index variables of the tensor's assignment,
// or nil if unassigned.
func (t TensorVar) FreeVars() []IndexVar {
	t.content.mu.Lock()
	defer t.content.mu.Unlock()
	if t.content.assignment == nil {
		return nil
	}
	return append([]IndexVar(nil), t.content.assignment.Free...)
}

// Expr returns the tensor's bound expression, or the undefined sentinel
// if unassigned.
func (t TensorVar) Expr() Expr {
	t.content.mu.Lock()
	defer t.content.mu.Unlock()
	if t.content.assignment == nil {
		return nil
	}
	return t.content.assignment.Expr
}

// Accumulate reports whether the tensor's assignment accumulates into
// existing storage. False (including when unassigned) means plain
// assignment.
func (t TensorVar) Accumulate() bool {
	t.content.mu.Lock()
	defer t.content.mu.Unlock()
	if t.content.assignment == nil {
		return false
	}
	return t.content.assignment.Accumulate
}

// Access indexes the tensor by indices, returning an AccessNode. Arity is
// checked in NewAccess.
func (t TensorVar) Access(indices ...IndexVar) *AccessNode {
	return NewAccess(t, indices)
}

// Assign runs the assignment protocol and, on success, records (free,
// expr, accumulate=false) on the tensor.
func (t TensorVar) Assign(free []IndexVar, expr Expr) error {
	return assign(t, free, expr, false)
}

// AssignAccumulate is Assign with the accumulate flag set.
func (t TensorVar) AssignAccumulate(free []IndexVar, expr Expr) error {
	return assign(t, free, expr, true)
}

// Schedule rebuilds the tensor's schedule by walking its bound
// expression and collecting every binary node's operator splits in
// traversal order. The result is recomputed, not cached, on each call.
func (t TensorVar) Schedule() []OperatorSplit {
	t.content.mu.Lock()
	defer t.content.mu.Unlock()
	return collectSchedule(t.exprLocked())
}

// exprLocked returns the bound expression; callers must hold content.mu.
func (t TensorVar) exprLocked() Expr {
	if t.content.assignment == nil {
		return nil
	}
	return t.content.assignment.Expr
}
