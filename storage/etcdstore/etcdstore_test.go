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

package etcdstore

import (
	"os"
	"strings"
	"testing"

	"github.com/google/merkletree/storage/storagetest"
)

// TestConformance requires a reachable etcd cluster; it is skipped
// unless MERKLE_ETCD_TEST_ENDPOINTS names one (comma-separated).
func TestConformance(t *testing.T) {
	raw := os.Getenv("MERKLE_ETCD_TEST_ENDPOINTS")
	if raw == "" {
		t.Skip("MERKLE_ETCD_TEST_ENDPOINTS not set, skipping etcd conformance test")
	}
	s, err := Open(Options{Endpoints: strings.Split(raw, ","), KeyPrefix: "storagetest"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	storagetest.RunConformance(t, s)
}

func TestEtcdKeyNamespacing(t *testing.T) {
	s := &Store{prefix: "ns"}
	got := s.etcdKey([]byte("digest"), nil)
	want := "ns//digest"
	if got != want {
		t.Errorf("etcdKey() = %q, want %q", got, want)
	}
}
