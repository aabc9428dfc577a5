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

// Verify reports whether expr is well-formed for the free set free: every
// index variable that occurs in an Access and is not bound by an enclosing
// Reduction must belong to free.
func Verify(expr Expr, free []IndexVar) bool {
	allowed := make(map[IndexVar]struct{}, len(free))
	for _, v := range free {
		allowed[v] = struct{}{}
	}
	for v := range VarsWithoutReduction(expr) {
		if _, ok := allowed[v]; !ok {
			return false
		}
	}
	return true
}

// VerifyTensor applies Verify to t's recorded assignment. An unassigned
// tensor is not well-formed.
func VerifyTensor(t TensorVar) bool {
	if !t.Assigned() {
		return false
	}
	return Verify(t.Expr(), t.FreeVars())
}
