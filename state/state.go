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

// Package state implements the persistent logical state at the core of the
// engine: an immutable table of variable bindings with union-find-style
// aliasing between variables, built on top of package pmap.
//
// State never mutates. Every operation that would change a state instead
// returns zero or more new State values, sharing pmap structure with their
// ancestor.
package state

import (
	log "github.com/golang/glog"

	"github.com/ukanren-go/ukanren/pmap"
)

// Var is an opaque handle into a State. It is created by State.MakeVar and
// is cheap to copy; two Vars are equal iff their indices match.
type Var struct {
	index int
}

// Index returns the variable's integer index. Exposed for diagnostics and
// for callers (such as the debug checker) that need to relate a Var back to
// the State that produced it; the engine itself never interprets the index
// beyond equality and ordering.
func (v Var) Index() int {
	return v.index
}

// Unif is the capability a value type T must provide to be used as a
// State[T]'s value type: a way to reconcile two values of T against a
// State, producing the states in which they are equal. Implementations
// return a one-element slice when a == b (by whatever notion of equality T
// chooses), or an empty slice when they cannot be reconciled. Package prim
// provides instances for the usual atomic scalar and string types.
type Unif[T any] interface {
	comparable
	Unify(other T, prev State[T]) []State[T]
}

// State is an immutable snapshot of variable bindings. bindings maps a
// variable's index to a slot (an internal equivalence-class id); slots maps
// a slot to the value bound to that equivalence class, if any. A variable
// whose slot has no entry in slots is aliased (possibly to other variables
// sharing the same slot) but unbound.
type State[T Unif[T]] struct {
	bindings  pmap.Map[int, int]
	slots     pmap.Map[int, T]
	nextIndex int
}

// Empty returns a State with no variables and no bindings.
func Empty[T Unif[T]]() State[T] {
	return State[T]{
		bindings: pmap.Empty[int, int](),
		slots:    pmap.Empty[int, T](),
	}
}

// MakeVar returns a fresh Var together with the successor State in which it
// is usable. The variable is not recorded in the bindings table until it is
// first involved in a unification. Callers must thread the returned State
// through to any goal that uses the new Var: a State that is not a
// descendant of the one MakeVar was called on does not know the Var exists.
func (s State[T]) MakeVar() (Var, State[T]) {
	v := Var{index: s.nextIndex}
	next := State[T]{
		bindings:  s.bindings,
		slots:     s.slots,
		nextIndex: s.nextIndex + 1,
	}
	return v, next
}

// NextIndex returns the index that the next call to MakeVar would assign.
func (s State[T]) NextIndex() int {
	return s.nextIndex
}

// BindsVar reports whether v is bound to a concrete value in s: it has a
// slot, and that slot has an entry in the value table.
func (s State[T]) BindsVar(v Var) bool {
	slot, ok := s.bindings.Get(v.index)
	if !ok {
		return false
	}
	_, ok = s.slots.Get(slot)
	return ok
}

// Get returns the value bound to v, or false if v is unaliased or aliased
// but unbound.
func (s State[T]) Get(v Var) (T, bool) {
	slot, ok := s.bindings.Get(v.index)
	if !ok {
		var zero T
		return zero, false
	}
	return s.slots.Get(slot)
}

// mustInsert wraps a pmap insert that the caller has established, by
// construction, cannot collide: the key is known absent from the map being
// inserted into. A collision here means the engine's own bookkeeping is
// wrong, not a logical-failure condition a caller can recover from, so it
// is a fatal abort rather than a returned error.
func mustInsert[K pmap.Ordered, V any](m pmap.Map[K, V], key K, val V) pmap.Map[K, V] {
	next, err := m.Insert(key, val)
	if err != nil {
		log.Fatalf("state: internal invariant violated, duplicate key %v: %v", key, err)
	}
	return next
}

// UnifyVal attempts to unify the variable v with the value val. If v has no
// slot yet, it gets a fresh one bound directly to val. If v has a slot but
// that slot has no value, the slot is bound to val. If the slot is already
// bound, unification is delegated to the existing value's Unify method.
func (s State[T]) UnifyVal(v Var, val T) []State[T] {
	slot, hasSlot := s.bindings.Get(v.index)
	if !hasSlot {
		return []State[T]{{
			bindings:  mustInsert(s.bindings, v.index, v.index),
			slots:     mustInsert(s.slots, v.index, val),
			nextIndex: s.nextIndex,
		}}
	}
	existing, hasVal := s.slots.Get(slot)
	if !hasVal {
		return []State[T]{{
			bindings:  s.bindings,
			slots:     mustInsert(s.slots, slot, val),
			nextIndex: s.nextIndex,
		}}
	}
	return existing.Unify(val, s)
}

// UnifyVar attempts to unify the two variables v1 and v2, aliasing them so
// that binding one value binds the other.
//
// The case where both variables already have slots but disagree on whether
// those slots are bound ("mixed bound/unbound") is a logical failure, as is
// the case where both have distinct, unbound slots: existing classes are
// never merged. The mixed case arises, for example, when one variable was
// aliased to a third by UnifyVar and the other was bound by UnifyVal; it is
// preserved here verbatim as a faithful rendition of the engine's contract.
func (s State[T]) UnifyVar(v1, v2 Var) []State[T] {
	if v1 == v2 {
		// Reflexive unification: trivially consistent, and not reachable
		// through the case table below without colliding an insert of the
		// same binding key twice.
		return []State[T]{s}
	}

	s1, has1 := s.bindings.Get(v1.index)
	s2, has2 := s.bindings.Get(v2.index)

	switch {
	case has1 && has2:
		val1, bound1 := s.slots.Get(s1)
		val2, bound2 := s.slots.Get(s2)
		switch {
		case bound1 && bound2:
			return val1.Unify(val2, s)
		case bound1 != bound2:
			return nil // one side bound, the other not: fail.
		case s1 == s2:
			return []State[T]{s} // neither bound; same class already.
		default:
			return nil // neither bound; distinct classes can't be merged here.
		}
	case has1:
		return []State[T]{{
			bindings:  mustInsert(s.bindings, v2.index, s1),
			slots:     s.slots,
			nextIndex: s.nextIndex,
		}}
	case has2:
		return []State[T]{{
			bindings:  mustInsert(s.bindings, v1.index, s2),
			slots:     s.slots,
			nextIndex: s.nextIndex,
		}}
	default:
		slot := v1.index
		bindings := mustInsert(s.bindings, v1.index, slot)
		bindings = mustInsert(bindings, v2.index, slot)
		return []State[T]{{
			bindings:  bindings,
			slots:     s.slots,
			nextIndex: s.nextIndex,
		}}
	}
}
