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

	"github.com/gx-org/tacoir/format"
	"github.com/gx-org/tacoir/ir"
)

func TestDimensionsTypecheckConsistent(t *testing.T) {
	dimM, dimN, dimK := ir.Symbolic("m"), ir.Symbolic("n"), ir.Symbolic("k")
	a := newMatrix("A", dimM, dimN)
	b := newMatrix("B", dimN, dimK)
	i, j, k := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j"), ir.NewIndexVarNamed("k")

	ok, conflicts := ir.DimensionsTypecheck([]ir.IndexVar{i, k}, ir.Mul(a.Access(i, j), b.Access(j, k)), ir.Shape{dimM, dimK})
	if !ok || len(conflicts) != 0 {
		t.Errorf("DimensionsTypecheck() = (%v, %v), want (true, nil)", ok, conflicts)
	}
}

func TestDimensionsTypecheckConflict(t *testing.T) {
	dimM, dimN, dimP := ir.Symbolic("m"), ir.Symbolic("n"), ir.Symbolic("p")
	a := newMatrix("A", dimM, dimN)
	b := newMatrix("B", dimP, dimN) // b's first dimension (p) disagrees with a's (m), both indexed by i.
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")

	ok, conflicts := ir.DimensionsTypecheck(nil, ir.Add(a.Access(i, j), b.Access(i, j)), ir.Shape{})
	if ok {
		t.Fatalf("DimensionsTypecheck() = true, want false (m vs p conflict on i)")
	}
	if len(conflicts) != 1 || conflicts[0].Var != i {
		t.Errorf("DimensionsTypecheck() conflicts = %v, want one conflict on i", conflicts)
	}
}

func TestContainsDistribution(t *testing.T) {
	a := matrixVar("A")
	i, j, k := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j"), ir.NewIndexVarNamed("k")
	if !ir.ContainsDistribution([]ir.IndexVar{i, j, k}, a.Access(i, j)) {
		t.Errorf("ContainsDistribution() = false, want true (k never accessed)")
	}
	if ir.ContainsDistribution([]ir.IndexVar{i, j}, a.Access(i, j)) {
		t.Errorf("ContainsDistribution() = true, want false")
	}
}

func TestContainsTranspose(t *testing.T) {
	dimM, dimN := ir.Symbolic("m"), ir.Symbolic("n")
	a := newMatrix("A", dimM, dimN)
	i, j := ir.NewIndexVarNamed("i"), ir.NewIndexVarNamed("j")
	rowMajor := format.DenseRowMajor(2)

	if ir.ContainsTranspose(rowMajor, []ir.IndexVar{i, j}, a.Access(i, j)) {
		t.Errorf("ContainsTranspose(matching order) = true, want false")
	}
	if !ir.ContainsTranspose(rowMajor, []ir.IndexVar{j, i}, a.Access(i, j)) {
		t.Errorf("ContainsTranspose(reversed order) = false, want true")
	}
}
