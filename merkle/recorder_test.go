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

import "testing"

func TestRecorderIgnoresSyntheticNullNodes(t *testing.T) {
	h := SHA3Hasher{}
	store := newMemNodeStore()
	nulls := NewNullHashes(testDepth, h)
	rec := NewRecorder()
	tr := NewTreeDB(store, nulls.At(0), testDepth, h, rec)

	if _, err := tr.GetValue(keyOf(0, testDepth)); err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if got := rec.Drain(); len(got) != 0 {
		t.Errorf("recorder captured %d nodes reading an all-null tree, want 0", len(got))
	}
}

func TestRecorderDedupesByExactBytes(t *testing.T) {
	store, root, h := buildScenarioA(t)
	rec := NewRecorder()
	tr := NewTreeDB(store, root, testDepth, h, rec)

	// Reading the same key twice should record the root and path nodes
	// twice into the raw sequence, but StorageProof must dedup them.
	k := keyOf(0, testDepth)
	if _, err := tr.GetValue(k); err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if _, err := tr.GetValue(k); err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	nodes := rec.Drain()
	if len(nodes) != 2*(testDepth+1) {
		t.Fatalf("recorded %d nodes for two identical reads, want %d", len(nodes), 2*(testDepth+1))
	}

	rec2 := NewRecorder()
	tr2 := NewTreeDB(store, root, testDepth, h, rec2)
	if _, err := tr2.GetValue(k); err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if _, err := tr2.GetValue(k); err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	proof := rec2.DrainStorageProof()
	if len(proof) != testDepth+1 {
		t.Errorf("StorageProof has %d entries after dedup, want %d", len(proof), testDepth+1)
	}
}

func TestStorageProofIntoStoreUsesContentAddressedKeys(t *testing.T) {
	store, root, h := buildScenarioA(t)
	rec := NewRecorder()
	tr := NewTreeDB(store, root, testDepth, h, rec)
	if _, err := tr.GetValue(keyOf(5, testDepth)); err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	sp := rec.DrainStorageProof()
	replay, err := sp.IntoStore(h)
	if err != nil {
		t.Fatalf("IntoStore failed: %v", err)
	}
	for _, enc := range sp.IntoNodes() {
		var key []byte
		switch enc[0] {
		case tagValue:
			key = h.Hash(enc[1:])
		case tagInner:
			key = h.Hash(enc[1:])
		}
		ok, err := replay.Contains(key, nil)
		if err != nil {
			t.Fatalf("Contains failed: %v", err)
		}
		if !ok {
			t.Errorf("reconstituted store missing node under its own content-addressed key %x", key)
		}
	}
}
