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

// Package format describes per-mode tensor storage formats. It is kept
// deliberately thin: the index-expression algebra treats a format mostly
// opaquely, consulting only its mode order in the transposition check. A
// format also records whether a result layout admits in-place
// accumulation (AccumulatesInPlace); the assignment protocol does not
// consult it.
package format

import (
	"strings"

	"github.com/pkg/errors"
)

// ModeKind is the storage kind of a single tensor mode (dimension).
type ModeKind rune

// Mode kinds, named after the level-format characters of the tensor tree
// they describe: dense, sparse, fixed (bounded nonzero count) and
// replicated (broadcast across an outer mode).
const (
	Dense      ModeKind = 'd'
	Sparse     ModeKind = 's'
	Fixed      ModeKind = 'f'
	Replicated ModeKind = 'r'
)

func (k ModeKind) String() string {
	return string(rune(k))
}

// Format is a per-mode storage descriptor plus the mode ordering used to
// lay indices out in memory (mode i of the ordering is the i-th fastest
// or slowest varying index, depending only on convention the code
// generator owns, this package just records the permutation).
type Format struct {
	Modes    []ModeKind
	Ordering []int
}

// Parse builds a Format from a mode-character string, one character per
// tensor mode in declaration order (not storage order), defaulting the
// mode ordering to identity (row-major). An order-0 (scalar) tensor has
// an empty mode string.
func Parse(modes string) (Format, error) {
	f := Format{
		Modes:    make([]ModeKind, 0, len(modes)),
		Ordering: make([]int, 0, len(modes)),
	}
	for i, c := range modes {
		switch ModeKind(c) {
		case Dense, Sparse, Fixed, Replicated:
			f.Modes = append(f.Modes, ModeKind(c))
			f.Ordering = append(f.Ordering, i)
		default:
			return Format{}, errors.Errorf("format character not recognized: %q", c)
		}
	}
	return f, nil
}

// DenseRowMajor returns the all-dense, row-major format for order modes.
func DenseRowMajor(order int) Format {
	f := Format{Modes: make([]ModeKind, order), Ordering: make([]int, order)}
	for i := range order {
		f.Modes[i] = Dense
		f.Ordering[i] = i
	}
	return f
}

// WithOrdering returns a copy of f with its mode ordering replaced.
func (f Format) WithOrdering(ordering []int) Format {
	f.Ordering = append([]int(nil), ordering...)
	return f
}

// Order returns the number of modes described by f.
func (f Format) Order() int {
	return len(f.Modes)
}

// AccumulatesInPlace reports whether a tensor with this format supports
// accumulating (+=) into existing storage without a separate scatter
// step, true iff every mode is dense.
func (f Format) AccumulatesInPlace() bool {
	for _, m := range f.Modes {
		if m != Dense {
			return false
		}
	}
	return true
}

// ModeOrder returns the mode ordering, defaulting to identity (row-major)
// if none was set explicitly.
func (f Format) ModeOrder() []int {
	if f.Ordering != nil {
		return f.Ordering
	}
	ordering := make([]int, len(f.Modes))
	for i := range ordering {
		ordering[i] = i
	}
	return ordering
}

// String renders the format as its mode-character string, e.g. "dds".
func (f Format) String() string {
	var s strings.Builder
	for _, m := range f.Modes {
		s.WriteRune(rune(m))
	}
	return s.String()
}
