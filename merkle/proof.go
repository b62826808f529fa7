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

// ProofElem is a single (index, bytes) tuple of a Merkle proof. Index 0
// is reserved for the leaf value payload; index 1 is the root digest;
// all other indices are heap indices of sibling digests along the
// authentication path.
type ProofElem struct {
	Index uint64
	Bytes []byte
}

// Proof is the unordered set (in content, ordered sequence in type) of
// proof elements produced by TreeDB.GetProof.
type Proof []ProofElem
