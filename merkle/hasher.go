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

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// HashFn is a deterministic, fixed-length digest function over byte
// sequences. Implementations must be pure: the same input always
// produces the same output, and Size() is constant for the lifetime of
// the value.
type HashFn interface {
	// Hash returns the digest of data.
	Hash(data []byte) []byte
	// Size returns L, the digest length in bytes.
	Size() int
}

// SHA3Hasher is the default HashFn (SHA3-256).
type SHA3Hasher struct{}

// Hash implements HashFn.
func (SHA3Hasher) Hash(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// Size implements HashFn.
func (SHA3Hasher) Size() int { return 32 }

// SHA256Hasher is a stdlib HashFn for stores that prefer a FIPS-approved
// primitive over SHA3.
type SHA256Hasher struct{}

// Hash implements HashFn.
func (SHA256Hasher) Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Size implements HashFn.
func (SHA256Hasher) Size() int { return 32 }
