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

// collectSchedule walks expr and collects the operator splits recorded on
// every binary node, in traversal order.
func collectSchedule(expr Expr) []OperatorSplit {
	var splits []OperatorSplit
	Match(expr, Handlers{
		Add: func(n *AddNode) { splits = append(splits, n.OperatorSplits()...) },
		Sub: func(n *SubNode) { splits = append(splits, n.OperatorSplits()...) },
		Mul: func(n *MulNode) { splits = append(splits, n.OperatorSplits()...) },
		Div: func(n *DivNode) { splits = append(splits, n.OperatorSplits()...) },
	})
	return splits
}
