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

// Package storagetest holds a backend-agnostic conformance suite for
// merkle.NodeStore implementations, in the spirit of trillian's shared
// storage test helpers (storage/testdb and friends): every backend
// under storage/ runs the same suite against its own _test.go rather
// than re-deriving the same assertions per backend.
package storagetest

import (
	"bytes"
	"testing"

	"github.com/google/merkletree/merkle"
)

// RunConformance exercises the full merkle.NodeStore contract against
// store. store must start out empty of the keys this suite uses.
func RunConformance(t *testing.T, store merkle.NodeStore) {
	t.Helper()

	t.Run("MissingKeyIsAbsent", func(t *testing.T) {
		_, ok, err := store.Get([]byte("missing"), nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Errorf("Get reported ok=true for a key never emplaced")
		}
		has, err := store.Contains([]byte("missing"), nil)
		if err != nil {
			t.Fatalf("Contains failed: %v", err)
		}
		if has {
			t.Errorf("Contains reported true for a key never emplaced")
		}
	})

	t.Run("EmplaceThenGet", func(t *testing.T) {
		key := []byte("key-a")
		want := []byte("value-a")
		if err := store.Emplace(key, nil, want); err != nil {
			t.Fatalf("Emplace failed: %v", err)
		}
		got, ok, err := store.Get(key, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatalf("Get reported ok=false after Emplace")
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get returned %x, want %x", got, want)
		}
		has, err := store.Contains(key, nil)
		if err != nil {
			t.Fatalf("Contains failed: %v", err)
		}
		if !has {
			t.Errorf("Contains reported false after Emplace")
		}
	})

	t.Run("EmplaceIsIdempotent", func(t *testing.T) {
		key := []byte("key-b")
		val := []byte("value-b")
		if err := store.Emplace(key, nil, val); err != nil {
			t.Fatalf("first Emplace failed: %v", err)
		}
		if err := store.Emplace(key, nil, val); err != nil {
			t.Fatalf("second Emplace failed: %v", err)
		}
		got, ok, err := store.Get(key, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok || !bytes.Equal(got, val) {
			t.Errorf("Get after double Emplace = (%x, %v), want (%x, true)", got, ok, val)
		}
	})

	t.Run("RemoveDeletesEntry", func(t *testing.T) {
		key := []byte("key-c")
		if err := store.Emplace(key, nil, []byte("value-c")); err != nil {
			t.Fatalf("Emplace failed: %v", err)
		}
		if err := store.Remove(key, nil); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		_, ok, err := store.Get(key, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Errorf("Get reported ok=true for a key after Remove")
		}
	})

	t.Run("DistinctPrefixesDoNotCollide", func(t *testing.T) {
		key := []byte("shared-key")
		if err := store.Emplace(key, merkle.Prefix("p1"), []byte("under-p1")); err != nil {
			t.Fatalf("Emplace p1 failed: %v", err)
		}
		if err := store.Emplace(key, merkle.Prefix("p2"), []byte("under-p2")); err != nil {
			t.Fatalf("Emplace p2 failed: %v", err)
		}
		got1, ok, err := store.Get(key, merkle.Prefix("p1"))
		if err != nil || !ok {
			t.Fatalf("Get(p1) = (%x, %v, %v)", got1, ok, err)
		}
		got2, ok, err := store.Get(key, merkle.Prefix("p2"))
		if err != nil || !ok {
			t.Fatalf("Get(p2) = (%x, %v, %v)", got2, ok, err)
		}
		if bytes.Equal(got1, got2) {
			t.Errorf("Get(p1) and Get(p2) returned the same bytes for the same key under different prefixes")
		}
	})
}
