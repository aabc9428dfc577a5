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

// Package dtype defines the element data types carried by index
// expressions and the arithmetic-promotion lattice used to infer the
// dtype of a composite node from its children.
package dtype

// Kind identifies an element data type.
type Kind uint8

// Kinds supported by the index-expression algebra. These mirror the four
// immediate node variants of the IR (IntImm, UIntImm, FloatImm,
// ComplexImm) plus Bool, which has no immediate variant and takes part
// in no promotion.
const (
	Invalid Kind = iota
	Bool
	Int64
	Uint64
	Float64
	Complex128
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	}
	return "invalid"
}

// IsNumber reports whether the kind denotes a numeric type, i.e. any kind
// other than Bool or Invalid.
func IsNumber(k Kind) bool {
	switch k {
	case Int64, Uint64, Float64, Complex128:
		return true
	}
	return false
}

// rank orders kinds from narrowest to widest for promotion purposes.
// Bool does not participate: an expression combining a Bool with a
// numeric kind has no defined promotion and Promote reports Invalid.
var rank = map[Kind]int{
	Int64:      0,
	Uint64:     1,
	Float64:    2,
	Complex128: 3,
}

// Promote returns the data type of combining two operands of kinds a and
// b under the usual arithmetic-promotion rules: the wider of the two
// numeric kinds wins (int64 < uint64 < float64 < complex128). Promoting
// with Bool, or any kind outside the numeric set, is Invalid.
func Promote(a, b Kind) Kind {
	if a == b {
		if !IsNumber(a) {
			return Invalid
		}
		return a
	}
	ra, aok := rank[a]
	rb, bok := rank[b]
	if !aok || !bok {
		return Invalid
	}
	if ra > rb {
		return a
	}
	return b
}
