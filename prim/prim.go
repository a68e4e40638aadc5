// Copyright 2026 The ukanren Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prim provides the primitive Unif instances for atomic value
// types: booleans, integers of every standard width, floats, runes, and
// strings. Unification for these reduces to equality.
//
// Go's method sets can only be defined on types declared in the same
// package, so attaching a Unify method directly to the built-in
// bool/int/string types is not expressible here. Atom is the substitute: a
// single generic wrapper around any comparable type, instantiated once per
// atomic type actually used, instead of repeating the same three-line
// method body for every width.
package prim

import "github.com/ukanren-go/ukanren/state"

// Atom wraps a comparable value so it satisfies state.Unif by plain
// equality. NaN float64/float32 values, like the host language's own ==,
// never unify with themselves or anything else. This is a documented
// caveat inherited from IEEE 754, not a bug in Atom.
type Atom[T comparable] struct {
	Value T
}

// Of constructs an Atom wrapping v.
func Of[T comparable](v T) Atom[T] {
	return Atom[T]{Value: v}
}

// Unify implements state.Unif: two Atoms unify iff their wrapped values are
// equal, in which case the single returned state is prev, unchanged.
func (a Atom[T]) Unify(other Atom[T], prev state.State[Atom[T]]) []state.State[Atom[T]] {
	if a.Value == other.Value {
		return []state.State[Atom[T]]{prev}
	}
	return nil
}

// Convenience aliases for the common atomic types. These exist only to
// give call sites a short, self-documenting name; they are not distinct
// types.
type (
	Bool    = Atom[bool]
	Int     = Atom[int]
	Int8    = Atom[int8]
	Int16   = Atom[int16]
	Int32   = Atom[int32]
	Int64   = Atom[int64]
	Uint    = Atom[uint]
	Uint8   = Atom[uint8]
	Uint16  = Atom[uint16]
	Uint32  = Atom[uint32]
	Uint64  = Atom[uint64]
	Float32 = Atom[float32]
	Float64 = Atom[float64]
	Rune    = Atom[rune]
	String  = Atom[string]
)
