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

// Package goal implements the closed goal algebra: a small family of
// combinators that evaluate a state.State[T] to zero or more successor
// states. Composition is purely by value: a Goal built from other Goals
// can be evaluated against any number of states, including states it has
// never seen before.
package goal

import "github.com/ukanren-go/ukanren/state"

// Goal maps a State to the (possibly empty) sequence of States in which it
// holds. Evaluation is total and eager: Eval always returns, and always
// returns a fully materialized slice, never a lazy stream.
type Goal[T state.Unif[T]] interface {
	Eval(s state.State[T]) []state.State[T]
}

// failGoal always evaluates to the empty sequence.
type failGoal[T state.Unif[T]] struct{}

func (failGoal[T]) Eval(state.State[T]) []state.State[T] {
	return nil
}

// Fail returns a Goal that never succeeds.
func Fail[T state.Unif[T]]() Goal[T] {
	return failGoal[T]{}
}

// unifyValGoal attempts to unify a variable with a value.
type unifyValGoal[T state.Unif[T]] struct {
	v   state.Var
	val T
}

func (g unifyValGoal[T]) Eval(s state.State[T]) []state.State[T] {
	return s.UnifyVal(g.v, g.val)
}

// UnifyVal returns a Goal that unifies v with val. val is a plain Go value
// (values are always copied on assignment in Go, so there is no need for an
// explicit clone-per-evaluation as in languages without value semantics);
// the same Goal may still be evaluated against many different states.
func UnifyVal[T state.Unif[T]](v state.Var, val T) Goal[T] {
	return unifyValGoal[T]{v: v, val: val}
}

// unifyVarGoal attempts to unify two variables.
type unifyVarGoal[T state.Unif[T]] struct {
	v1, v2 state.Var
}

func (g unifyVarGoal[T]) Eval(s state.State[T]) []state.State[T] {
	return s.UnifyVar(g.v1, g.v2)
}

// UnifyVar returns a Goal that unifies v1 and v2.
func UnifyVar[T state.Unif[T]](v1, v2 state.Var) Goal[T] {
	return unifyVarGoal[T]{v1: v1, v2: v2}
}

// conjunctionGoal evaluates a against the input state, then evaluates b
// against every state a produced, concatenating the results in order.
type conjunctionGoal[T state.Unif[T]] struct {
	a, b Goal[T]
}

func (g conjunctionGoal[T]) Eval(s state.State[T]) []state.State[T] {
	ra := g.a.Eval(s)
	var result []state.State[T]
	for _, s := range ra {
		result = append(result, g.b.Eval(s)...)
	}
	return result
}

// Conj returns the conjunction (logical AND) of a and b: every way of
// satisfying a, followed by every way of satisfying b against that result.
func Conj[T state.Unif[T]](a, b Goal[T]) Goal[T] {
	return conjunctionGoal[T]{a: a, b: b}
}

// disjunctionGoal evaluates a and b independently against the input state
// and interleaves their result sequences round-robin.
type disjunctionGoal[T state.Unif[T]] struct {
	a, b Goal[T]
}

func (g disjunctionGoal[T]) Eval(s state.State[T]) []state.State[T] {
	ra := g.a.Eval(s)
	rb := g.b.Eval(s)
	result := make([]state.State[T], 0, len(ra)+len(rb))
	n := len(ra)
	if len(rb) > n {
		n = len(rb)
	}
	for i := 0; i < n; i++ {
		if i < len(ra) {
			result = append(result, ra[i])
		}
		if i < len(rb) {
			result = append(result, rb[i])
		}
	}
	return result
}

// Disj returns the disjunction (logical OR) of a and b. The result
// round-robin interleaves a's and b's result sequences (a0, b0, a1, b1,
// ...), with any trailing tail of the longer sequence appended in order.
// This interleaving is the µKanren fairness discipline: a left-first
// concatenation would starve the right branch were either stream unbounded,
// and the engine mandates interleaving even though all current streams are
// finite so that future extensions toward unbounded streams stay sound.
func Disj[T state.Unif[T]](a, b Goal[T]) Goal[T] {
	return disjunctionGoal[T]{a: a, b: b}
}

// predicateGoal filters: it succeeds with the unchanged input state iff f
// reports true for it.
type predicateGoal[T state.Unif[T]] struct {
	f func(state.State[T]) bool
}

func (g predicateGoal[T]) Eval(s state.State[T]) []state.State[T] {
	if g.f(s) {
		return []state.State[T]{s}
	}
	return nil
}

// Pred returns a Goal that succeeds, producing the unchanged state, iff f
// returns true for it. f must be a pure function of its State argument.
func Pred[T state.Unif[T]](f func(state.State[T]) bool) Goal[T] {
	return predicateGoal[T]{f: f}
}
