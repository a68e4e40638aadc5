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

package state

import (
	"testing"
)

// intVal is a tiny Unif[intVal] instance local to this test file so that
// state.go's case tables can be exercised without importing package prim
// (which itself depends on state, and would create an import cycle inside
// the test binary's own dependency graph if state_test.go pulled it in).
type intVal int

func (v intVal) Unify(other intVal, prev State[intVal]) []State[intVal] {
	if v == other {
		return []State[intVal]{prev}
	}
	return nil
}

func TestMakeVarAssignsSequentialIndices(t *testing.T) {
	s := Empty[intVal]()
	a, s := s.MakeVar()
	if a.Index() != 0 || s.NextIndex() != 1 {
		t.Fatalf("first MakeVar: a.Index()=%d NextIndex()=%d, want 0, 1", a.Index(), s.NextIndex())
	}
	b, s := s.MakeVar()
	if b.Index() != 1 || s.NextIndex() != 2 {
		t.Fatalf("second MakeVar: b.Index()=%d NextIndex()=%d, want 1, 2", b.Index(), s.NextIndex())
	}
}

func TestFreshVarIsUnboundAndUnaliased(t *testing.T) {
	s := Empty[intVal]()
	v, s := s.MakeVar()
	if _, ok := s.Get(v); ok {
		t.Fatalf("Get(fresh var) = ok, want absent")
	}
	if s.BindsVar(v) {
		t.Fatalf("BindsVar(fresh var) = true, want false")
	}
}

func TestUnifyValBindsFreshVar(t *testing.T) {
	s := Empty[intVal]()
	v, s := s.MakeVar()
	results := s.UnifyVal(v, 34)
	if len(results) != 1 {
		t.Fatalf("UnifyVal = %d states, want 1", len(results))
	}
	got, ok := results[0].Get(v)
	if !ok || got != 34 {
		t.Fatalf("Get(v) = (%v, %v), want (34, true)", got, ok)
	}
	if !results[0].BindsVar(v) {
		t.Fatalf("BindsVar(v) = false, want true")
	}
}

func TestUnifyValPersistence(t *testing.T) {
	s0 := Empty[intVal]()
	v, s0 := s0.MakeVar()
	results := s0.UnifyVal(v, 34)
	s1 := results[0]

	// The prior state must be unaffected by the derivation.
	if _, ok := s0.Get(v); ok {
		t.Fatalf("ancestor state's Get(v) became bound after deriving a new state")
	}
	if s0.BindsVar(v) {
		t.Fatalf("ancestor state's BindsVar(v) became true after deriving a new state")
	}
	if got, ok := s1.Get(v); !ok || got != 34 {
		t.Fatalf("Get(v) on derived state = (%v, %v), want (34, true)", got, ok)
	}
}

func TestUnifyValReUnifySameValueSucceeds(t *testing.T) {
	s := Empty[intVal]()
	v, s := s.MakeVar()
	s = s.UnifyVal(v, 34)[0]
	again := s.UnifyVal(v, 34)
	if len(again) != 1 {
		t.Fatalf("re-UnifyVal(same value) = %d states, want 1", len(again))
	}
	if got, ok := again[0].Get(v); !ok || got != 34 {
		t.Fatalf("Get(v) = (%v, %v), want (34, true)", got, ok)
	}
}

func TestUnifyValReUnifyDifferentValueFails(t *testing.T) {
	s := Empty[intVal]()
	v, s := s.MakeVar()
	s = s.UnifyVal(v, 34)[0]
	again := s.UnifyVal(v, 99)
	if len(again) != 0 {
		t.Fatalf("re-UnifyVal(different value) = %d states, want 0", len(again))
	}
}

func TestUnifyVarAliasingThenBind(t *testing.T) {
	s := Empty[intVal]()
	a, s := s.MakeVar()
	b, s := s.MakeVar()

	aliased := s.UnifyVar(a, b)
	if len(aliased) != 1 {
		t.Fatalf("UnifyVar(a, b) = %d states, want 1", len(aliased))
	}
	bound := aliased[0].UnifyVal(b, 12)
	if len(bound) != 1 {
		t.Fatalf("UnifyVal(b, 12) = %d states, want 1", len(bound))
	}
	finalState := bound[0]
	if got, ok := finalState.Get(a); !ok || got != 12 {
		t.Fatalf("Get(a) = (%v, %v), want (12, true)", got, ok)
	}
	if got, ok := finalState.Get(b); !ok || got != 12 {
		t.Fatalf("Get(b) = (%v, %v), want (12, true)", got, ok)
	}
}

func TestUnifyVarBothBoundDelegatesToUnify(t *testing.T) {
	s := Empty[intVal]()
	a, s := s.MakeVar()
	b, s := s.MakeVar()
	s = s.UnifyVal(a, 7)[0]
	s = s.UnifyVal(b, 7)[0]
	if got := s.UnifyVar(a, b); len(got) != 1 {
		t.Fatalf("UnifyVar(a, b) with equal bound values = %d states, want 1", len(got))
	}

	s2 := Empty[intVal]()
	a2, s2 := s2.MakeVar()
	b2, s2 := s2.MakeVar()
	s2 = s2.UnifyVal(a2, 7)[0]
	s2 = s2.UnifyVal(b2, 8)[0]
	if got := s2.UnifyVar(a2, b2); len(got) != 0 {
		t.Fatalf("UnifyVar(a, b) with unequal bound values = %d states, want 0", len(got))
	}
}

func TestUnifyVarMixedBoundUnboundFails(t *testing.T) {
	// Construct two variables that each have their own, distinct slot, one
	// bound and one not, to reach the "mixed" row of the case table.
	s := Empty[intVal]()
	a, s := s.MakeVar()
	b, s := s.MakeVar()
	c, s := s.MakeVar()

	// a and c alias into one unbound class; b is bound on its own.
	s = s.UnifyVar(a, c)[0]
	s = s.UnifyVal(b, 5)[0]

	// Now force a and b into the "both have slots" branch with mismatched
	// boundness by unifying b (bound) against a (unbound, aliased to c).
	got := s.UnifyVar(a, b)
	if len(got) != 0 {
		t.Fatalf("UnifyVar(unbound-aliased, bound) = %d states, want 0 (preserved asymmetric failure)", len(got))
	}
}

func TestUnifyVarSelfIsReflexive(t *testing.T) {
	s := Empty[intVal]()
	v, s := s.MakeVar()
	if got := s.UnifyVar(v, v); len(got) != 1 {
		t.Fatalf("UnifyVar(v, v) = %d states, want 1", len(got))
	}
}

func TestCheckFindsNoViolationsOnWellFormedState(t *testing.T) {
	s := Empty[intVal]()
	a, s := s.MakeVar()
	b, s := s.MakeVar()
	s = s.UnifyVar(a, b)[0]
	s = s.UnifyVal(a, 3)[0]

	if err := Check(s, []Var{a, b}); err != nil {
		t.Fatalf("Check on well-formed state: %v", err)
	}
}
