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

import "github.com/pkg/errors"

// UserError reports a fault introduced by the client of this package:
// dimensional mismatch, an ill-formed assignment, reassignment of an
// already-bound tensor, an Access arity mismatch, or an unsupported
// transposition or distribution pattern. It wraps github.com/pkg/errors so
// diagnostics keep a stack trace. A bad format character is reported by
// format.Parse as its own error, not as a UserError.
type UserError struct {
	err error
}

// NewUserError builds a UserError from a format string and arguments.
func NewUserError(format string, args ...any) *UserError {
	return &UserError{err: errors.Errorf(format, args...)}
}

func (e *UserError) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped error for errors.Is/errors.As.
func (e *UserError) Unwrap() error { return e.err }

// InternalError reports a violated invariant inside the IR itself, e.g. a
// strict Visitor asked to dispatch on a node variant it does not cover.
// It indicates a bug in this package or a caller that fabricated a node
// type outside this package's sealed Expr set (impossible through the
// public API, but guarded against all the same).
type InternalError struct {
	err error
}

// NewInternalError builds an InternalError from a format string and arguments.
func NewInternalError(format string, args ...any) *InternalError {
	return &InternalError{err: errors.Errorf(format, args...)}
}

func (e *InternalError) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped error for errors.Is/errors.As.
func (e *InternalError) Unwrap() error { return e.err }
