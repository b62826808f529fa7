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

// TreeDBMut is the mutable builder: a staged in-memory overlay over a
// NodeStore, with path-copy insert and a deferred, idempotent commit.
// It holds an exclusive reference to its NodeStore and to the mutable
// root digest cell for its lifetime; it is not safe for concurrent use
// by multiple goroutines.
type TreeDBMut struct {
	store    NodeStore
	root     ChildRef
	depth    int
	hasher   HashFn
	nulls    *NullHashes
	recorder *Recorder
	overlay  map[string]Node
}

// NewTreeDBMut constructs a TreeDBMut over store, starting from root
// as a Stored reference, for a tree of the given depth.
func NewTreeDBMut(store NodeStore, root []byte, depth int, h HashFn, recorder *Recorder) *TreeDBMut {
	return &TreeDBMut{
		store:    store,
		root:     ChildRef{Hash: root, Provenance: Stored},
		depth:    depth,
		hasher:   h,
		nulls:    NewNullHashes(depth, h),
		recorder: recorder,
		overlay:  make(map[string]Node),
	}
}

// Depth returns D.
func (t *TreeDBMut) Depth() int { return t.depth }

// OverlaySize returns the number of nodes currently staged in the
// overlay, awaiting Commit.
func (t *TreeDBMut) OverlaySize() int { return len(t.overlay) }

// lookup checks the overlay first, then falls through to the reader's
// store-then-null-hash resolution. Overlay hits are writer-local and
// are never reported to the recorder.
func (t *TreeDBMut) lookup(h []byte, level int) (Node, error) {
	if n, ok := t.overlay[string(h)]; ok {
		return n, nil
	}
	return lookupIn(t.store, t.hasher, t.nulls, t.recorder, h, level)
}

// replaceChild returns a copy of the Inner node n with its child at
// bit replaced by newChild.
func replaceChild(n Node, bit byte, newChild ChildRef) Node {
	left, right := n.left, n.right
	if bit == 0 {
		left = newChild
	} else {
		right = newChild
	}
	return NewInner(left, right)
}

// insertRec performs the recursive path-copy descent: h/level identify
// the node currently at this point in the path; key and value are the
// operation being applied. It returns the digest of the rewritten node
// at this level, plus the value previously stored at key (empty if the
// path resolved through null hashes).
func (t *TreeDBMut) insertRec(h []byte, level int, key Key, value []byte) (newHash []byte, oldValue []byte, err error) {
	n, err := t.lookup(h, level)
	if err != nil {
		return nil, nil, err
	}
	if n.IsValue() {
		return nil, nil, newError(KindUnexpectedNodeType, "expected Inner at level %d, got Value", level)
	}

	bit := key[level]

	if level == t.depth-1 {
		// Leaf level: one bit remains. Resolve the old child to capture
		// its value, then overwrite it.
		oldChild := n.Child(bit)
		oldValueNode, err := t.lookup(oldChild.Hash, level+1)
		if err != nil {
			return nil, nil, err
		}
		if !oldValueNode.IsValue() {
			return nil, nil, newError(KindUnexpectedNodeType, "expected Value at leaf, got Inner")
		}
		oldVal := oldValueNode.Value()

		newValueNode := NewValue(value)
		newValueHash := newValueNode.hash(t.hasher)
		t.overlay[string(newValueHash)] = newValueNode

		newInner := replaceChild(n, bit, ChildRef{Hash: newValueHash, Provenance: Staged})
		newInnerHash := newInner.hash(t.hasher)
		t.overlay[string(newInnerHash)] = newInner

		return newInnerHash, oldVal, nil
	}

	child := n.Child(bit)
	childNewHash, oldVal, err := t.insertRec(child.Hash, level+1, key, value)
	if err != nil {
		return nil, nil, err
	}

	newInner := replaceChild(n, bit, ChildRef{Hash: childNewHash, Provenance: Staged})
	newInnerHash := newInner.hash(t.hasher)
	t.overlay[string(newInnerHash)] = newInner

	return newInnerHash, oldVal, nil
}

// Insert writes value at key via path copy: every ancestor of the
// affected leaf is rewritten in the overlay, and the root reference
// transitions Stored->Staged (or Staged->Staged with a new digest).
// Nothing is written to the NodeStore until Commit. Insert returns the
// value previously stored at key.
func (t *TreeDBMut) Insert(key Key, value []byte) ([]byte, error) {
	if err := validateKey(key, t.depth); err != nil {
		return nil, err
	}
	newRootHash, oldVal, err := t.insertRec(t.root.Hash, 0, key, value)
	if err != nil {
		return nil, err
	}
	t.root = ChildRef{Hash: newRootHash, Provenance: Staged}
	return oldVal, nil
}

// drain recursively pops staged nodes out of the overlay and emplaces
// them into the NodeStore, descending into Staged children only
// (Stored children are already persisted and are left alone).
func (t *TreeDBMut) drain(h []byte) error {
	n, ok := t.overlay[string(h)]
	if !ok {
		return nil
	}
	delete(t.overlay, string(h))
	if err := t.store.Emplace(h, nil, n.encode()); err != nil {
		glog.Errorf("merkle: commit: emplace failed: %v", err)
		return err
	}
	if n.IsValue() {
		return nil
	}
	if n.left.Provenance == Staged {
		if err := t.drain(n.left.Hash); err != nil {
			return err
		}
	}
	if n.right.Provenance == Staged {
		if err := t.drain(n.right.Hash); err != nil {
			return err
		}
	}
	return nil
}

// Commit drains the overlay into the NodeStore and rebases the root
// reference Staged->Stored. Staged nodes that are no longer reachable
// from the root (superseded by later inserts) are discarded rather than
// written. It is a no-op if the root is already Stored, making
// commit();commit() idempotent.
func (t *TreeDBMut) Commit() error {
	if t.root.Provenance != Staged {
		return nil
	}
	if err := t.drain(t.root.Hash); err != nil {
		return err
	}
	t.overlay = make(map[string]Node)
	t.root = ChildRef{Hash: t.root.Hash, Provenance: Stored}
	return nil
}

// Root commits any staged changes, then returns the root digest —
// calling Root always flushes.
func (t *TreeDBMut) Root() ([]byte, error) {
	if err := t.Commit(); err != nil {
		return nil, err
	}
	return t.root.Hash, nil
}

// GetValue mirrors TreeDB.GetValue, resolving through the overlay
// first.
func (t *TreeDBMut) GetValue(key Key) ([]byte, error) {
	if err := validateKey(key, t.depth); err != nil {
		return nil, err
	}
	n, err := walkFrom(t.lookup, t.root.Hash, key, t.depth)
	if err != nil {
		return nil, err
	}
	return n.Value(), nil
}

// GetLeaf mirrors TreeDB.GetLeaf, resolving through the overlay first.
func (t *TreeDBMut) GetLeaf(key Key) ([]byte, error) {
	if err := validateKey(key, t.depth); err != nil {
		return nil, err
	}
	n, err := walkToParent(t.lookup, t.root.Hash, key, t.depth)
	if err != nil {
		return nil, err
	}
	return n.Child(key[t.depth-1]).Hash, nil
}

// GetProof mirrors TreeDB.GetProof, resolving through the overlay
// first (including over as-yet-uncommitted inserts).
func (t *TreeDBMut) GetProof(key Key) (Proof, error) {
	if err := validateKey(key, t.depth); err != nil {
		return nil, err
	}
	return proofFrom(t.lookup, t.root.Hash, key, t.depth)
}
