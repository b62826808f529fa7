// Copyright 2016 Google Inc. All Rights Reserved.
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

// Package btreestore implements merkle.NodeStore over an in-memory
// google/btree, keeping node digests in sorted order so administrative
// tooling (cmd/smtctl's "list" command) can enumerate a store's
// contents without a full external database.
package btreestore

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"github.com/google/merkletree/merkle"
)

const defaultDegree = 32

// item is the btree.Item stored for each node: ordered by its
// composite key (prefix || 0x00 || digest).
type item struct {
	key  string
	data []byte
}

func (a item) Less(than btree.Item) bool {
	return a.key < than.(item).key
}

// Store is an ordered, in-memory merkle.NodeStore.
type Store struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

// New returns an empty Store.
func New() *Store {
	return &Store{tree: btree.New(defaultDegree)}
}

func compositeKey(key []byte, prefix merkle.Prefix) string {
	return string(prefix) + "\x00" + string(key)
}

// Get implements merkle.NodeStore.
func (s *Store) Get(key []byte, prefix merkle.Prefix) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := s.tree.Get(item{key: compositeKey(key, prefix)})
	if found == nil {
		return nil, false, nil
	}
	it := found.(item)
	return append([]byte(nil), it.data...), true, nil
}

// Contains implements merkle.NodeStore.
func (s *Store) Contains(key []byte, prefix merkle.Prefix) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Get(item{key: compositeKey(key, prefix)}) != nil, nil
}

// Emplace implements merkle.NodeStore.
func (s *Store) Emplace(key []byte, prefix merkle.Prefix, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.ReplaceOrInsert(item{
		key:  compositeKey(key, prefix),
		data: append([]byte(nil), data...),
	})
	return nil
}

// Remove implements merkle.NodeStore.
func (s *Store) Remove(key []byte, prefix merkle.Prefix) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Delete(item{key: compositeKey(key, prefix)})
	return nil
}

// Keys returns every digest stored under prefix, in ascending order.
// Used by cmd/smtctl's "list" command.
func (s *Store) Keys(prefix merkle.Prefix) [][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := string(prefix) + "\x00"
	var out [][]byte
	s.tree.AscendGreaterOrEqual(item{key: want}, func(i btree.Item) bool {
		it := i.(item)
		if !bytes.HasPrefix([]byte(it.key), []byte(want)) {
			return false
		}
		out = append(out, []byte(it.key[len(want):]))
		return true
	})
	return out
}

var _ merkle.NodeStore = (*Store)(nil)
