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

// Recorder is an append-only observer of decoded nodes, attached to at
// most one TreeDB (or TreeDBMut) at a time through an exclusive borrow.
// It never observes synthetic null-hash expansions, only nodes that
// were actually read from a NodeStore.
type Recorder struct {
	nodes []Node
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// record appends n to the recorded sequence. Called only by lookup
// paths that resolved n from a NodeStore.
func (r *Recorder) record(n Node) {
	glog.V(3).Infof("recorder: recording node (isValue=%v)", n.IsValue())
	r.nodes = append(r.nodes, n)
}

// Drain returns the recorded nodes in read order and resets the
// recorder to empty.
func (r *Recorder) Drain() []Node {
	nodes := r.nodes
	r.nodes = nil
	return nodes
}

// DrainStorageProof encodes every recorded node into its canonical
// wire form and packages the result as a StorageProof, deduplicating
// by exact byte equality; ordering carries no meaning.
func (r *Recorder) DrainStorageProof() StorageProof {
	nodes := r.Drain()
	set := make(map[string][]byte, len(nodes))
	for _, n := range nodes {
		enc := n.encode()
		set[string(enc)] = enc
	}
	proof := make(StorageProof, 0, len(set))
	for _, enc := range set {
		proof = append(proof, enc)
	}
	return proof
}

// StorageProof is a set of encoded nodes sufficient to replay a prior
// read sequence under the same root. It is constructed from, and
// exposes, raw byte strings rather than decoded Nodes: a verifier
// holding only a StorageProof never needs this package's internal Node
// representation.
type StorageProof [][]byte

// NewStorageProof builds a StorageProof from an arbitrary sequence of
// encoded nodes, deduplicating by exact byte equality.
func NewStorageProof(encoded [][]byte) StorageProof {
	set := make(map[string][]byte, len(encoded))
	for _, e := range encoded {
		set[string(e)] = e
	}
	out := make(StorageProof, 0, len(set))
	for _, e := range set {
		out = append(out, e)
	}
	return out
}

// IntoNodes returns the set of encoded nodes as a slice (order
// unspecified).
func (p StorageProof) IntoNodes() [][]byte {
	out := make([][]byte, len(p))
	copy(out, p)
	return out
}

// IntoStore reconstitutes an in-memory NodeStore from p by re-hashing
// each encoded node with h to derive its content-addressed key — the
// same digest under which the producer originally stored it:
//
//	tag 0x01: key = h(body), body = the 2*L child-digest bytes
//	tag 0x00: key = h(value_bytes)
func (p StorageProof) IntoStore(h HashFn) (NodeStore, error) {
	store := newMemNodeStore()
	for _, enc := range p {
		if len(enc) == 0 {
			return nil, newError(KindMalformedNode, "empty proof entry")
		}
		var key []byte
		switch enc[0] {
		case tagValue:
			key = h.Hash(enc[1:])
		case tagInner:
			key = h.Hash(enc[1:])
		default:
			return nil, newError(KindMalformedNode, "tag %#x not 0x00 or 0x01", enc[0])
		}
		if err := store.Emplace(key, nil, enc); err != nil {
			return nil, err
		}
	}
	return store, nil
}
