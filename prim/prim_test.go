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

package prim

import (
	"math"
	"testing"

	"github.com/ukanren-go/ukanren/state"
)

func TestAtomUnifyEqual(t *testing.T) {
	s := state.Empty[Atom[int]]()
	got := Of(34).Unify(Of(34), s)
	if len(got) != 1 {
		t.Fatalf("Unify(34, 34) = %d states, want 1", len(got))
	}
}

func TestAtomUnifyUnequal(t *testing.T) {
	s := state.Empty[Atom[int]]()
	got := Of(34).Unify(Of(35), s)
	if len(got) != 0 {
		t.Fatalf("Unify(34, 35) = %d states, want 0", len(got))
	}
}

func TestAtomUnifyString(t *testing.T) {
	s := state.Empty[String]()
	if got := Of("a").Unify(Of("a"), s); len(got) != 1 {
		t.Fatalf("Unify(a, a) = %d states, want 1", len(got))
	}
	if got := Of("a").Unify(Of("b"), s); len(got) != 0 {
		t.Fatalf("Unify(a, b) = %d states, want 0", len(got))
	}
}

func TestAtomNaNNeverUnifies(t *testing.T) {
	s := state.Empty[Float64]()
	nan := Of(math.NaN())
	if got := nan.Unify(nan, s); len(got) != 0 {
		t.Fatalf("Unify(NaN, NaN) = %d states, want 0 (IEEE 754 equality caveat)", len(got))
	}
}
