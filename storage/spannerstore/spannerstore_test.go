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

package spannerstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/merkletree/storage/storagetest"
)

// TestConformance requires a reachable Spanner database (or emulator);
// it is skipped unless MERKLE_SPANNER_TEST_DB names one.
func TestConformance(t *testing.T) {
	db := os.Getenv("MERKLE_SPANNER_TEST_DB")
	if db == "" {
		t.Skip("MERKLE_SPANNER_TEST_DB not set, skipping Spanner conformance test")
	}
	s, err := Open(context.Background(), db)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	storagetest.RunConformance(t, s)
}
