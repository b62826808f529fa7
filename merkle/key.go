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

// Key is a bit path addressing a single leaf of a tree of depth D: it
// is exactly D bytes long, each byte either 0 ("take left child") or 1
// ("take right child"). The key is never hashed; it *is* the path.
type Key []byte

// validateKey checks that k has exactly depth bytes, each 0 or 1.
func validateKey(k Key, depth int) error {
	if len(k) != depth {
		return newError(KindIndexOutOfBounds, "key length %d, want %d", len(k), depth)
	}
	for _, b := range k {
		if b != 0 && b != 1 {
			return newError(KindInvalidKey, "byte %#x not in {0,1}", b)
		}
	}
	return nil
}
