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
	"fmt"
	"strings"

	"github.com/gx-org/tacoir/dtype"
)

// Dimension is one axis of a tensor's shape: either a fixed extent or a
// symbolic dimension whose extent is only known by name (bound at
// lowering time, out of scope here).
type Dimension struct {
	fixed  bool
	extent int
	name   string
}

// Fixed returns a dimension with a known, constant extent.
func Fixed(extent int) Dimension {
	return Dimension{fixed: true, extent: extent}
}

// Symbolic returns a dimension whose extent is named but not yet known.
func Symbolic(name string) Dimension {
	return Dimension{fixed: false, name: name}
}

// IsFixed reports whether the dimension has a known extent.
func (d Dimension) IsFixed() bool { return d.fixed }

// Extent returns the dimension's extent. It panics if the dimension is
// symbolic; callers must check IsFixed first.
func (d Dimension) Extent() int {
	if !d.fixed {
		panic(NewInternalError("Extent() called on symbolic dimension %q", d.name))
	}
	return d.extent
}

// SymbolicName returns the dimension's name. It panics if the dimension
// is fixed; callers must check IsFixed first.
func (d Dimension) SymbolicName() string {
	if d.fixed {
		panic(NewInternalError("SymbolicName() called on fixed dimension %d", d.extent))
	}
	return d.name
}

// Equal reports whether two dimensions denote the same extent: two fixed
// dimensions with the same extent, or two symbolic dimensions with the
// same name. A fixed and a symbolic dimension are never equal, even if
// the symbolic one could plausibly resolve to that extent. That
// resolution is DimensionsTypecheck's job, not dimension equality itself.
func (d Dimension) Equal(other Dimension) bool {
	if d.fixed != other.fixed {
		return false
	}
	if d.fixed {
		return d.extent == other.extent
	}
	return d.name == other.name
}

func (d Dimension) String() string {
	if d.fixed {
		return fmt.Sprintf("%d", d.extent)
	}
	return d.name
}

// Shape is an ordered sequence of dimensions, one per tensor mode.
type Shape []Dimension

// Order returns the number of modes (the tensor's order).
func (s Shape) Order() int { return len(s) }

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, "x") + "]"
}

// Type is a tensor's element data type plus its shape.
type Type struct {
	DType dtype.Kind
	Shape Shape
}

func (t Type) String() string {
	return fmt.Sprintf("%s%s", t.DType, t.Shape)
}
