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

// Package pmap implements a minimal insert-only persistent ordered map.
//
// A Map is immutable: Insert never mutates the receiver, it returns a new
// Map that shares every untouched subtree with the original. This is what
// makes branching a search over many candidate states cheap: each branch
// only pays for the path it actually changes.
package pmap

import "errors"

// ErrKeyPresent is returned by Insert when the key already has an entry.
var ErrKeyPresent = errors.New("pmap: key already present")

// Ordered constrains the key type to one with a total order via the usual
// comparison operators. Equivalent to golang.org/x/exp/constraints.Ordered,
// restated here so the package carries no third-party dependency for a
// single, closed set of built-in kinds.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

type node[K Ordered, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
}

// Map is an immutable map keyed by an ordered type K. The zero value is an
// empty Map, the same value Empty returns.
type Map[K Ordered, V any] struct {
	root *node[K, V]
	size int
}

// Empty returns an empty Map.
func Empty[K Ordered, V any]() Map[K, V] {
	return Map[K, V]{}
}

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int {
	return m.size
}

func (n *node[K, V]) get(key K) (V, bool) {
	for n != nil {
		switch {
		case key == n.key:
			return n.val, true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero V
	return zero, false
}

// Get returns the value stored under key, and whether it was present.
func (m Map[K, V]) Get(key K) (V, bool) {
	return m.root.get(key)
}

// Contains reports whether key has an entry in the map.
func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Insert returns a new Map containing every entry of m plus (key, val). It
// returns ErrKeyPresent, and the receiver unchanged in spirit (the returned
// Map is the zero value), if key is already present. The map is
// insert-only, never an update.
func (m Map[K, V]) Insert(key K, val V) (Map[K, V], error) {
	newRoot, err := insert(m.root, key, val)
	if err != nil {
		return Map[K, V]{}, err
	}
	return Map[K, V]{root: newRoot, size: m.size + 1}, nil
}

func insert[K Ordered, V any](n *node[K, V], key K, val V) (*node[K, V], error) {
	if n == nil {
		return &node[K, V]{key: key, val: val}, nil
	}
	switch {
	case key == n.key:
		return nil, ErrKeyPresent
	case key < n.key:
		left, err := insert(n.left, key, val)
		if err != nil {
			return nil, err
		}
		return &node[K, V]{key: n.key, val: n.val, left: left, right: n.right}, nil
	default:
		right, err := insert(n.right, key, val)
		if err != nil {
			return nil, err
		}
		return &node[K, V]{key: n.key, val: n.val, left: n.left, right: right}, nil
	}
}
