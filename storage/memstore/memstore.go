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

// Package memstore implements merkle.NodeStore as a process-local map.
// It is the default backend: no third-party library improves on a
// plain map for a pure in-process store (see DESIGN.md).
package memstore

import (
	"sync"

	"github.com/google/merkletree/merkle"
)

// Store is an in-memory, concurrency-safe merkle.NodeStore.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func compositeKey(key []byte, prefix merkle.Prefix) string {
	return string(prefix) + "\x00" + string(key)
}

// Get implements merkle.NodeStore.
func (s *Store) Get(key []byte, prefix merkle.Prefix) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[compositeKey(key, prefix)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Contains implements merkle.NodeStore.
func (s *Store) Contains(key []byte, prefix merkle.Prefix) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[compositeKey(key, prefix)]
	return ok, nil
}

// Emplace implements merkle.NodeStore.
func (s *Store) Emplace(key []byte, prefix merkle.Prefix, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[compositeKey(key, prefix)] = append([]byte(nil), data...)
	return nil
}

// Remove implements merkle.NodeStore.
func (s *Store) Remove(key []byte, prefix merkle.Prefix) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, compositeKey(key, prefix))
	return nil
}

// Len returns the number of nodes currently held, across all prefixes.
// Administrative convenience; not part of merkle.NodeStore.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

var _ merkle.NodeStore = (*Store)(nil)
