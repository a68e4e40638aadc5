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
	"fmt"

	"go.uber.org/multierr"
)

// Check walks s and reports every violation of invariants I1, I2 and I4 it
// can find, rather than stopping at the first one. I3 is not checked. It is not called by any
// State operation itself: the operations in state.go maintain the
// invariants by construction. It is useful in engine self-tests and fuzz
// harnesses that want a single assertion covering the whole state.
//
// knownVars is the set of variable indices the caller expects to have been
// created against s's ancestry (typically every Var returned by MakeVar
// along the path to s); Check inspects only these variables, since State
// itself does not track which indices were ever handed out as Vars versus
// merely reserved by NextIndex.
func Check[T Unif[T]](s State[T], knownVars []Var) error {
	var errs error
	for _, v := range knownVars {
		if v.index >= s.nextIndex {
			errs = multierr.Append(errs, fmt.Errorf("I1 violated: var index %d >= next_index %d", v.index, s.nextIndex))
		}
	}

	seenSlots := make(map[int]bool)
	for _, v := range knownVars {
		slot, hasSlot := s.bindings.Get(v.index)
		if !hasSlot {
			continue
		}
		seenSlots[slot] = true
		if slot >= s.nextIndex {
			errs = multierr.Append(errs, fmt.Errorf("I2 violated: slot %d for var %d is not a valid var index, and slots only grow from var indices", slot, v.index))
		}
	}

	aliasGroups := make(map[int][]Var)
	for _, v := range knownVars {
		slot, hasSlot := s.bindings.Get(v.index)
		if !hasSlot {
			continue
		}
		aliasGroups[slot] = append(aliasGroups[slot], v)
	}
	for slot, vars := range aliasGroups {
		if len(vars) < 2 {
			continue
		}
		_, bound := s.slots.Get(slot)
		for _, v := range vars {
			if got := s.BindsVar(v); got != bound {
				errs = multierr.Append(errs, fmt.Errorf("I4 violated: var %d in alias class (slot %d) disagrees with class binding state", v.index, slot))
			}
		}
	}

	return errs
}
