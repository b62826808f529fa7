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

package memstore

import (
	"testing"

	"github.com/google/merkletree/storage/storagetest"
)

func TestConformance(t *testing.T) {
	storagetest.RunConformance(t, New())
}

func TestLen(t *testing.T) {
	s := New()
	if got := s.Len(); got != 0 {
		t.Fatalf("Len() on empty store = %d, want 0", got)
	}
	if err := s.Emplace([]byte("k1"), nil, []byte("v1")); err != nil {
		t.Fatalf("Emplace failed: %v", err)
	}
	if err := s.Emplace([]byte("k2"), nil, []byte("v2")); err != nil {
		t.Fatalf("Emplace failed: %v", err)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len() after two Emplace = %d, want 2", got)
	}
	if err := s.Remove([]byte("k1"), nil); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len() after Remove = %d, want 1", got)
	}
}
