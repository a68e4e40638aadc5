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

// Binary ukanren-repl is a tiny interactive shell over the engine, used to
// exercise it by hand. It is not a query language: the core engine has no
// surface syntax, so this shell only offers a fixed set of commands that
// call straight into package state and package goal.
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/chzyer/readline"
	log "github.com/golang/glog"

	"github.com/ukanren-go/ukanren/goal"
	"github.com/ukanren-go/ukanren/prim"
	"github.com/ukanren-go/ukanren/state"
)

var historyFile = flag.String("history-file", "", "path to a readline history file; empty disables history persistence")

// session holds the shell's current state: the engine State plus a name ->
// Var table for the variables the operator has declared with "fresh".
type session struct {
	current state.State[prim.Int]
	vars    map[string]state.Var
	names   stringset.Set
}

func newSession() *session {
	return &session{
		current: state.Empty[prim.Int](),
		vars:    make(map[string]state.Var),
		names:   stringset.New(),
	}
}

func (sess *session) fresh(name string) error {
	if sess.names.Contains(name) {
		return fmt.Errorf("variable %q already declared this session", name)
	}
	v, next := sess.current.MakeVar()
	sess.current = next
	sess.vars[name] = v
	sess.names.Add(name)
	log.V(1).Infof("fresh %s -> var index %d, next_index=%d", name, v.Index(), sess.current.NextIndex())
	return nil
}

func (sess *session) lookup(name string) (state.Var, error) {
	v, ok := sess.vars[name]
	if !ok {
		return state.Var{}, fmt.Errorf("no such variable %q (use \"fresh %s\" first)", name, name)
	}
	return v, nil
}

func (sess *session) eq(name string, value int) error {
	v, err := sess.lookup(name)
	if err != nil {
		return err
	}
	results := goal.UnifyVal[prim.Int](v, prim.Of(value)).Eval(sess.current)
	log.V(1).Infof("eq %s %d -> %d successor state(s)", name, value, len(results))
	if len(results) == 0 {
		return fmt.Errorf("unification failed: %s cannot be %d given the current state", name, value)
	}
	sess.current = results[0]
	return nil
}

func (sess *session) eqVar(name1, name2 string) error {
	v1, err := sess.lookup(name1)
	if err != nil {
		return err
	}
	v2, err := sess.lookup(name2)
	if err != nil {
		return err
	}
	results := goal.UnifyVar[prim.Int](v1, v2).Eval(sess.current)
	log.V(1).Infof("eqvar %s %s -> %d successor state(s)", name1, name2, len(results))
	if len(results) == 0 {
		return fmt.Errorf("unification failed: %s and %s cannot be aliased given the current state", name1, name2)
	}
	sess.current = results[0]
	return nil
}

func (sess *session) show() string {
	var sb strings.Builder
	for name, v := range sess.vars {
		if val, ok := sess.current.Get(v); ok {
			fmt.Fprintf(&sb, "%s = %d\n", name, val.Value)
		} else {
			fmt.Fprintf(&sb, "%s = <unbound>\n", name)
		}
	}
	return sb.String()
}

func (sess *session) reset() {
	sess.current = state.Empty[prim.Int]()
	sess.vars = make(map[string]state.Var)
	sess.names = stringset.New()
}

func dispatch(sess *session, line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	switch fields[0] {
	case "fresh":
		if len(fields) != 2 {
			return "usage: fresh <name>", false
		}
		if err := sess.fresh(fields[1]); err != nil {
			return err.Error(), false
		}
		return "ok", false
	case "eq":
		if len(fields) != 3 {
			return "usage: eq <name> <int>", false
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Sprintf("not an integer: %s", fields[2]), false
		}
		if err := sess.eq(fields[1], n); err != nil {
			return err.Error(), false
		}
		return "ok", false
	case "eqvar":
		if len(fields) != 3 {
			return "usage: eqvar <name1> <name2>", false
		}
		if err := sess.eqVar(fields[1], fields[2]); err != nil {
			return err.Error(), false
		}
		return "ok", false
	case "show":
		return sess.show(), false
	case "reset":
		sess.reset()
		return "ok", false
	case "exit", "quit":
		return "bye", true
	default:
		return fmt.Sprintf("unknown command: %s", fields[0]), false
	}
}

func main() {
	flag.Parse()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "ukanren> ",
		HistoryFile: *historyFile,
	})
	if err != nil {
		log.Exitf("readline: %v", err)
	}
	defer rl.Close()

	sess := newSession()
	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		out, done := dispatch(sess, strings.TrimSpace(line))
		if out != "" {
			fmt.Println(out)
		}
		if done {
			return
		}
	}
}
