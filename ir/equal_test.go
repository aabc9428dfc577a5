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

func matrixVar(name string) ir.TensorVar {
	return ir.NewTensorVarNamed(name, ir.Type{
		DType: dtype.Float64,
		Shape: ir.Shape{ir.Fixed(4), ir.Fixed(4)},
	}, format.DenseRowMajor(2))
}

func TestEqualReflexive(t *testing.T) {
	a := matrixVar("A")
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")
	expr := a.Access(i, j)
	if !ir.Equal(expr, expr) {
		t.Errorf("Equal(expr, expr) = false, want true")
	}
}

func TestEqualUndefined(t *testing.T) {
	if !ir.Equal(nil, nil) {
		t.Errorf("Equal(nil, nil) = false, want true")
	}
	a := matrixVar("A")
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")
	expr := a.Access(i, j)
	if ir.Equal(expr, nil) || ir.Equal(nil, expr) {
		t.Errorf("Equal(defined, undefined) = true, want false")
	}
}

func TestEqualAccessComparesBothSides(t *testing.T) {
	// The comparison must be between a's and b's index lengths, not a's
	// length against itself.
	a := matrixVar("A")
	i, j, k := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j"), ir.NewIndexVarNamed("k")

	same := a.Access(i, j)
	sameAgain := a.Access(i, j)
	if !ir.Equal(same, sameAgain) {
		t.Errorf("Equal(A(i,j), A(i,j)) = false, want true")
	}

	differentVars := a.Access(i, k)
	if ir.Equal(same, differentVars) {
		t.Errorf("Equal(A(i,j), A(i,k)) = true, want false")
	}

	vec := ir.NewTensorVarNamed("V", ir.Type{
		DType: dtype.Float64,
		Shape: ir.Shape{ir.Fixed(4)},
	}, format.DenseRowMajor(1))
	differentArity := vec.Access(i)
	if ir.Equal(same, differentArity) || ir.Equal(differentArity, same) {
		t.Errorf("Equal across differing Access arity = true, want false")
	}
}

func TestEqualDistinctTensorsNotEqual(t *testing.T) {
	a := matrixVar("A")
	b := matrixVar("B")
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")
	if ir.Equal(a.Access(i, j), b.Access(i, j)) {
		t.Errorf("Equal(A(i,j), B(i,j)) = true, want false")
	}
}

func TestEqualAddNotCommutative(t *testing.T) {
	a := matrixVar("A")
	b := matrixVar("B")
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")
	lhs := ir.Add(a.Access(i, j), b.Access(i, j))
	rhs := ir.Add(b.Access(i, j), a.Access(i, j))
	if ir.Equal(lhs, rhs) {
		t.Errorf("Equal(Add(a,b), Add(b,a)) = true, want false")
	}
}

func TestEqualReductionComparesOpAndVar(t *testing.T) {
	a := matrixVar("A")
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")
	sum := ir.NewReduction(ir.ReduceSum, j, a.Access(i, j))
	prod := ir.NewReduction(ir.ReduceProd, j, a.Access(i, j))
	if ir.Equal(sum, prod) {
		t.Errorf("Equal(sum(j)(..), prod(j)(..)) = true, want false")
	}

	k := ir.NewIndexVarNamed("k")
	sumOverK := ir.NewReduction(ir.ReduceSum, k, a.Access(i, j))
	if ir.Equal(sum, sumOverK) {
		t.Errorf("Equal(sum(j)(..), sum(k)(..)) = true, want false")
	}
}

func TestEqualReduceBuilderMatchesNewReduction(t *testing.T) {
	a := matrixVar("A")
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")
	viaBuilder := ir.Reduce(ir.ReduceMax, j)(a.Access(i, j))
	viaConstructor := ir.NewReduction(ir.ReduceMax, j, a.Access(i, j))
	if !ir.Equal(viaBuilder, viaConstructor) {
		t.Errorf("Equal(Reduce(Max,j)(A(i,j)), NewReduction(Max,j,A(i,j))) = false, want true")
	}
}

func TestEqualImmediates(t *testing.T) {
	if !ir.Equal(ir.Int(3), ir.Int(3)) {
		t.Errorf("Equal(Int(3), Int(3)) = false, want true")
	}
	if ir.Equal(ir.Int(3), ir.Int(4)) {
		t.Errorf("Equal(Int(3), Int(4)) = true, want false")
	}
	if ir.Equal(ir.Int(3), ir.Uint(3)) {
		t.Errorf("Equal(Int(3), Uint(3)) = true, want false")
	}
}
