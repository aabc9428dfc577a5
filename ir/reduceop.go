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

// ReduceOp is the binary operator a Reduction applies while collapsing
// its bound index variable, kept as an explicit enum rather than recording
// the operator as a degenerate IndexExpr (e.g. an Add with no operands
// standing for "sum").
type ReduceOp uint8

// Reduction operators.
const (
	ReduceSum ReduceOp = iota
	ReduceProd
	ReduceMin
	ReduceMax
)

// String returns the reduction operator's printed name, used by the
// infix printer ("sum(v)(expr)", "prod(v)(expr)", ...).
func (op ReduceOp) String() string {
	switch op {
	case ReduceSum:
		return "sum"
	case ReduceProd:
		return "prod"
	case ReduceMin:
		return "min"
	case ReduceMax:
		return "max"
	default:
		return "reduce"
	}
}
