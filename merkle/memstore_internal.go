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

package merkle

import "sync"

// memNodeStore is a minimal in-process NodeStore, used internally by
// StorageProof.IntoStore to reconstitute a store from a proof without
// this package depending on the storage/memstore subpackage (which
// itself depends on merkle). Application code wanting an in-memory
// NodeStore for its own trees should use storage/memstore, which has
// the same semantics plus size accounting (Len).
type memNodeStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newMemNodeStore() *memNodeStore {
	return &memNodeStore{data: make(map[string][]byte)}
}

func memKey(key []byte, prefix Prefix) string {
	return string(prefix) + "\x00" + string(key)
}

func (s *memNodeStore) Get(key []byte, prefix Prefix) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[memKey(key, prefix)]
	if !ok {
		return nil, false, nil
	}
	out := append([]byte(nil), v...)
	return out, true, nil
}

func (s *memNodeStore) Contains(key []byte, prefix Prefix) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[memKey(key, prefix)]
	return ok, nil
}

func (s *memNodeStore) Emplace(key []byte, prefix Prefix, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := append([]byte(nil), data...)
	s.data[memKey(key, prefix)] = cp
	return nil
}

func (s *memNodeStore) Remove(key []byte, prefix Prefix) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, memKey(key, prefix))
	return nil
}

var _ NodeStore = (*memNodeStore)(nil)
