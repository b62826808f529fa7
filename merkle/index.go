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

// heapIndex computes the canonical 1-based heap index of the path
// prefix path[0:i]:
//
//	index(p) = 2^i + sum_{j=0}^{i-1} p[j] * 2^(i-1-j)
//
// The root (i=0) has index 1. Children of index k are 2k and 2k+1.
func heapIndex(path []byte, i int) uint64 {
	idx := uint64(1) << uint(i)
	for j := 0; j < i; j++ {
		if path[j] == 1 {
			idx += uint64(1) << uint(i-1-j)
		}
	}
	return idx
}

// siblingPairIndices returns the pair of heap indices (k_left, k_left+1)
// of the two children of the node at heapIndex(path, i-1), i.e. the
// parent-of-(i-1) node's children at level i.
func siblingPairIndices(path []byte, i int) (left, right uint64) {
	k := heapIndex(path, i)
	if k%2 == 0 {
		return k, k + 1
	}
	return k - 1, k
}
