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

// Prefix is an opaque namespacing token passed through to a NodeStore.
// The core always passes Prefix(nil); backends that multiplex several
// trees in one physical store use it to separate keyspaces.
type Prefix []byte

// NodeStore is the external, content-addressed byte store this package
// is built on: get/contains/emplace/remove keyed by digest. Nodes are
// immutable once emplaced; "mutation" at the Tree level means writing a
// new node under a new key.
//
// Implementations must be safe for concurrent Get/Contains/Emplace from
// multiple goroutines; TreeDBMut requires exclusive access to whichever
// NodeStore backs it, but the store interface itself makes no such
// assumption of its callers.
type NodeStore interface {
	// Get returns the bytes stored under key, or ok=false if absent.
	Get(key []byte, prefix Prefix) (data []byte, ok bool, err error)
	// Contains reports whether key is present.
	Contains(key []byte, prefix Prefix) (bool, error)
	// Emplace idempotently stores data under key.
	Emplace(key []byte, prefix Prefix, data []byte) error
	// Remove deletes key, if present. Not invoked by the core: commit
	// never collects superseded ancestors, so this exists for
	// completeness and for callers that implement their own GC.
	Remove(key []byte, prefix Prefix) error
}
