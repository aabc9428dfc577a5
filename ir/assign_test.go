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

package ir_test

import (
	"testing"

	"github.com/gx-org/tacoir/dtype"
	"github.com/gx-org/tacoir/format"
	"github.com/gx-org/tacoir/ir"
)

func newMatrix(name string, dims ...ir.Dimension) ir.TensorVar {
	return ir.NewTensorVarNamed(name, ir.Type{DType: dtype.Float64, Shape: ir.Shape(dims)}, format.DenseRowMajor(len(dims)))
}

func TestAssignMatmul(t *testing.T) {
	// S1: C(i,k) = A(i,j) * B(j,k).
	dimM, dimN, dimK := ir.Symbolic("m"), ir.Symbolic("n"), ir.Symbolic("k")
	a := newMatrix("A", dimM, dimN)
	b := newMatrix("B", dimN, dimK)
	c := newMatrix("C", dimM, dimK)
	i, j, k := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j"), ir.NewIndexVarNamed("k")

	if err := c.Access(i, k).Assign(ir.Mul(a.Access(i, j), b.Access(j, k))); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if !ir.VerifyTensor(c) {
		t.Errorf("VerifyTensor(C) = false, want true")
	}
}

func TestAssignTransposeRejected(t *testing.T) {
	// S3: B(j,i) = A(i,j) with A, B both row-major dense.
	dimM, dimN := ir.Symbolic("m"), ir.Symbolic("n")
	a := newMatrix("A", dimM, dimN)
	b := newMatrix("B", dimN, dimM)
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")

	err := b.Access(j, i).Assign(a.Access(i, j))
	if err == nil {
		t.Fatalf("Assign(B(j,i) = A(i,j)) succeeded, want a transposition error")
	}
}

func TestAssignReassignmentRejected(t *testing.T) {
	// S5: after a successful assignment, any further assignment to the
	// same tensor fails, even if dimensionally consistent.
	dimM, dimN, dimK := ir.Symbolic("m"), ir.Symbolic("n"), ir.Symbolic("k")
	a := newMatrix("A", dimM, dimN)
	b := newMatrix("B", dimN, dimK)
	c := newMatrix("C", dimM, dimK)
	i, j, k := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j"), ir.NewIndexVarNamed("k")

	if err := c.Access(i, k).Assign(ir.Mul(a.Access(i, j), b.Access(j, k))); err != nil {
		t.Fatalf("first Assign() error = %v", err)
	}
	err := c.Access(i, k).Assign(ir.Add(a.Access(i, j), b.Access(j, k)))
	if err == nil {
		t.Fatalf("second Assign() to C succeeded, want reassignment error")
	}
}

func TestAssignIllFormedScalar(t *testing.T) {
	// S6: c = A(i,j)*B(j,k) with free set {} and c scalar: verify fails.
	dimM, dimN, dimK := ir.Symbolic("m"), ir.Symbolic("n"), ir.Symbolic("k")
	a := newMatrix("A", dimM, dimN)
	b := newMatrix("B", dimN, dimK)
	c := ir.NewTensorVarNamed("c", ir.Type{DType: dtype.Float64, Shape: ir.Shape{}}, format.DenseRowMajor(0))
	i, j, k := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j"), ir.NewIndexVarNamed("k")

	err := c.Assign(nil, ir.Mul(a.Access(i, j), b.Access(j, k)))
	if err == nil {
		t.Fatalf("Assign(c = A(i,j)*B(j,k), free={}) succeeded, want a well-formedness error")
	}
}

func TestAssignScalarWithEmptyFreeSucceeds(t *testing.T) {
	c := ir.NewTensorVarNamed("c", ir.Type{DType: dtype.Float64, Shape: ir.Shape{}}, format.DenseRowMajor(0))
	if err := c.Assign(nil, ir.Float(3.5)); err != nil {
		t.Fatalf("Assign(c = 3.5) error = %v", err)
	}
}

func TestAssignScalarRejectsNonEmptyFree(t *testing.T) {
	c := ir.NewTensorVarNamed("c", ir.Type{DType: dtype.Float64, Shape: ir.Shape{}}, format.DenseRowMajor(0))
	i := ir.NewIndexVarNamed("i")
	if err := c.Assign([]ir.IndexVar{i}, ir.Float(3.5)); err == nil {
		t.Fatalf("Assign(scalar with non-empty free) succeeded, want an error")
	}
}

func TestAssignRejectsScalarAssignmentToHigherOrderTensor(t *testing.T) {
	m := newMatrix("M", ir.Symbolic("m"), ir.Symbolic("n"))
	if err := m.Assign(nil, ir.Float(3.5)); err == nil {
		t.Fatalf("Assign(matrix = 3.5, free={}) succeeded, want an order-mismatch error")
	}
}

func TestAssignRejectsFreeShorterThanOrder(t *testing.T) {
	m := newMatrix("M", ir.Symbolic("m"), ir.Symbolic("n"))
	i := ir.NewIndexVarNamed("i")
	if err := m.Assign([]ir.IndexVar{i}, m.Access(i, i)); err == nil {
		t.Fatalf("Assign(matrix with free of length 1) succeeded, want an order-mismatch error")
	}
}

func TestAssignAccumulateRoundTrips(t *testing.T) {
	dimM, dimN := ir.Symbolic("m"), ir.Symbolic("n")
	a := newMatrix("A", dimM, dimN)
	b := newMatrix("B", dimM, dimN)
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")

	if err := a.Access(i, j).AssignAccumulate(b.Access(i, j)); err != nil {
		t.Fatalf("AssignAccumulate() error = %v", err)
	}
	if !a.Accumulate() {
		t.Errorf("Accumulate() = false, want true")
	}
}

func TestAssignDistributionRejected(t *testing.T) {
	dimM, dimN := ir.Symbolic("m"), ir.Symbolic("n")
	a := newMatrix("A", dimM, dimN)
	// Declaring a free var k that never occurs in the expression is a
	// distribution pattern.
	b := ir.NewTensorVarNamed("B", ir.Type{DType: dtype.Float64, Shape: ir.Shape{dimM, dimN, ir.Symbolic("k")}}, format.DenseRowMajor(3))
	i, j, k := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j"), ir.NewIndexVarNamed("k")
	err := b.Access(i, j, k).Assign(a.Access(i, j))
	if err == nil {
		t.Fatalf("Assign with an unreferenced free var succeeded, want a distribution error")
	}
}
