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

// NullHashes holds the precomputed digest of the canonical empty
// subtree at every level of a tree of depth D:
//
//	null[D]   = HashFn(empty)
//	null[k]   = HashFn(null[k+1] || null[k+1])   for k = D-1 .. 0
//
// Construction costs O(D) hash invocations. The array is immutable
// after construction and safe to share across any number of readers
// and writers.
type NullHashes struct {
	depth  int
	hashes [][]byte // indexed by level, 0 = root
}

// NewNullHashes precomputes null[0..depth] for the given hash function.
func NewNullHashes(depth int, h HashFn) *NullHashes {
	hashes := make([][]byte, depth+1)
	hashes[depth] = h.Hash(nil)
	for k := depth - 1; k >= 0; k-- {
		buf := make([]byte, 0, 2*len(hashes[k+1]))
		buf = append(buf, hashes[k+1]...)
		buf = append(buf, hashes[k+1]...)
		hashes[k] = h.Hash(buf)
	}
	return &NullHashes{depth: depth, hashes: hashes}
}

// At returns null[level]. level must be in [0, depth].
func (n *NullHashes) At(level int) []byte {
	return n.hashes[level]
}

// Depth returns D.
func (n *NullHashes) Depth() int { return n.depth }
