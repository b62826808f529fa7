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

// TestNullHashChain checks that null[0] equals iterating h <- HashFn(h||h)
// starting from h = HashFn(empty) exactly D times.
func TestNullHashChain(t *testing.T) {
	const depth = 3
	h := SHA3Hasher{}
	nulls := NewNullHashes(depth, h)

	want := h.Hash(nil)
	levels := make([][]byte, depth+1)
	levels[depth] = want
	for k := depth - 1; k >= 0; k-- {
		buf := append(append([]byte(nil), levels[k+1]...), levels[k+1]...)
		levels[k] = h.Hash(buf)
	}

	for k := 0; k <= depth; k++ {
		if got := nulls.At(k); !bytesEqual(got, levels[k]) {
			t.Errorf("null[%d] = %x, want %x", k, got, levels[k])
		}
	}
}

func TestNullHashesShareable(t *testing.T) {
	h := SHA3Hasher{}
	a := NewNullHashes(4, h)
	b := NewNullHashes(4, h)
	for k := 0; k <= 4; k++ {
		if !bytesEqual(a.At(k), b.At(k)) {
			t.Errorf("null[%d] differs across independently constructed NullHashes", k)
		}
	}
}
