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

import "github.com/golang/glog"

// TreeDB is the immutable reader over a NodeStore: it navigates a path
// from a fixed root, synthesizing empty subtrees via NullHashes so
// that an unpopulated tree reads as if every empty subtree existed.
type TreeDB struct {
	store    NodeStore
	root     []byte
	depth    int
	hasher   HashFn
	nulls    *NullHashes
	recorder *Recorder
}

// NewTreeDB constructs a TreeDB over store, rooted at root, for a tree
// of the given depth. recorder may be nil; if non-nil it is notified of
// every node this TreeDB reads from store (never of synthetic
// null-hash expansions).
func NewTreeDB(store NodeStore, root []byte, depth int, h HashFn, recorder *Recorder) *TreeDB {
	return &TreeDB{
		store:    store,
		root:     root,
		depth:    depth,
		hasher:   h,
		nulls:    NewNullHashes(depth, h),
		recorder: recorder,
	}
}

// Root returns the stored root digest, which is null[0] for an empty
// tree.
func (t *TreeDB) Root() []byte { return t.root }

// Depth returns D.
func (t *TreeDB) Depth() int { return t.depth }

// lookup is the reader's core primitive:
//  1. if store has h, decode and return it, notifying the recorder;
//  2. else if h == null[level], synthesize the canonical empty node;
//  3. else fail with DataNotFound.
func (t *TreeDB) lookup(h []byte, level int) (Node, error) {
	return lookupIn(t.store, t.hasher, t.nulls, t.recorder, h, level)
}

// lookupIn is factored out of TreeDB.lookup so that TreeDBMut can reuse
// the exact same store-then-null-hash resolution order after its own
// overlay check misses.
func lookupIn(store NodeStore, hasher HashFn, nulls *NullHashes, recorder *Recorder, h []byte, level int) (Node, error) {
	data, ok, err := store.Get(h, nil)
	if err != nil {
		glog.Errorf("merkle: NodeStore.Get failed: %v", err)
		return Node{}, newError(KindDataNotFound, "store error: %v", err)
	}
	if ok {
		n, err := decodeNode(data, hasher.Size())
		if err != nil {
			return Node{}, err
		}
		if recorder != nil {
			recorder.record(n)
		}
		return n, nil
	}
	if bytesEqual(h, nulls.At(level)) {
		if level == nulls.Depth() {
			return NewValue(nil), nil
		}
		childNull := nulls.At(level + 1)
		return NewInner(
			ChildRef{Hash: childNull, Provenance: Stored},
			ChildRef{Hash: childNull, Provenance: Stored},
		), nil
	}
	return Node{}, newError(KindDataNotFound, "digest not found at level %d", level)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// walk starts at the root and follows key bit-by-bit, returning the
// Value node reached after depth steps.
func (t *TreeDB) walk(key Key) (Node, error) {
	return walkFrom(t.lookup, t.root, key, t.depth)
}

// walkFrom descends key from root using the supplied lookup function,
// shared between TreeDB and TreeDBMut.
func walkFrom(lookup func(h []byte, level int) (Node, error), root []byte, key Key, depth int) (Node, error) {
	h := root
	n, err := lookup(h, 0)
	if err != nil {
		return Node{}, err
	}
	for i := 0; i < depth; i++ {
		if n.IsValue() {
			return Node{}, newError(KindUnexpectedNodeType, "expected Inner at level %d, got Value", i)
		}
		child := n.Child(key[i])
		n, err = lookup(child.Hash, i+1)
		if err != nil {
			return Node{}, err
		}
	}
	if !n.IsValue() {
		return Node{}, newError(KindUnexpectedNodeType, "expected Value at leaf, got Inner")
	}
	return n, nil
}

// GetValue returns the value stored at key, or the empty byte slice if
// key's path resolves entirely through null hashes.
func (t *TreeDB) GetValue(key Key) ([]byte, error) {
	if err := validateKey(key, t.depth); err != nil {
		return nil, err
	}
	n, err := t.walk(key)
	if err != nil {
		return nil, err
	}
	return n.Value(), nil
}

// GetLeaf returns the leaf digest for key: the child digest of the last
// internal node along the path (a value's own hash), or null[D] if
// key's path is entirely absent.
func (t *TreeDB) GetLeaf(key Key) ([]byte, error) {
	if err := validateKey(key, t.depth); err != nil {
		return nil, err
	}
	n, err := walkToParent(t.lookup, t.root, key, t.depth)
	if err != nil {
		return nil, err
	}
	return n.Child(key[t.depth-1]).Hash, nil
}

// walkToParent descends key[0:depth-1] and returns the Inner node one
// level above the leaf, shared between TreeDB and TreeDBMut.
func walkToParent(lookup func(h []byte, level int) (Node, error), root []byte, key Key, depth int) (Node, error) {
	h := root
	n, err := lookup(h, 0)
	if err != nil {
		return Node{}, err
	}
	for i := 0; i < depth-1; i++ {
		if n.IsValue() {
			return Node{}, newError(KindUnexpectedNodeType, "expected Inner at level %d, got Value", i)
		}
		child := n.Child(key[i])
		n, err = lookup(child.Hash, i+1)
		if err != nil {
			return Node{}, err
		}
	}
	if n.IsValue() {
		return Node{}, newError(KindUnexpectedNodeType, "expected Inner at level %d, got Value", depth-1)
	}
	return n, nil
}

// GetProof produces the canonical proof tuples for key: the value at
// index 0, the root at index 1, and for each level the sibling pair of
// child digests bracketing the path.
func (t *TreeDB) GetProof(key Key) (Proof, error) {
	if err := validateKey(key, t.depth); err != nil {
		return nil, err
	}
	return proofFrom(t.lookup, t.root, key, t.depth)
}

// proofFrom assembles the proof tuples for key using the supplied
// lookup function, shared between TreeDB and TreeDBMut.
func proofFrom(lookup func(h []byte, level int) (Node, error), root []byte, key Key, depth int) (Proof, error) {
	proof := make(Proof, 0, 2+2*depth)

	h := root
	n, err := lookup(h, 0)
	if err != nil {
		return nil, err
	}
	proof = append(proof, ProofElem{Index: 1, Bytes: append([]byte(nil), root...)})

	for i := 1; i <= depth; i++ {
		if n.IsValue() {
			return nil, newError(KindUnexpectedNodeType, "expected Inner at level %d, got Value", i-1)
		}
		left, right := n.Left(), n.Right()
		kLeft, kRight := siblingPairIndices(key, i)
		proof = append(proof,
			ProofElem{Index: kLeft, Bytes: append([]byte(nil), left.Hash...)},
			ProofElem{Index: kRight, Bytes: append([]byte(nil), right.Hash...)},
		)
		if i == depth {
			valueChild := n.Child(key[i-1])
			vn, err := lookup(valueChild.Hash, i)
			if err != nil {
				return nil, err
			}
			if !vn.IsValue() {
				return nil, newError(KindUnexpectedNodeType, "expected Value at leaf, got Inner")
			}
			proof = append(proof, ProofElem{Index: 0, Bytes: append([]byte(nil), vn.Value()...)})
			break
		}
		child := n.Child(key[i-1])
		n, err = lookup(child.Hash, i)
		if err != nil {
			return nil, err
		}
	}
	return proof, nil
}
