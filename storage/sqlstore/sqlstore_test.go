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

package sqlstore

import (
	"os"
	"testing"

	"github.com/google/merkletree/storage/storagetest"
)

// These tests require a live database and a pre-provisioned
// merkle_nodes table (see the package doc comment for the schema).
// They are skipped unless the corresponding DSN environment variable
// is set, matching how trillian's own storage tests are gated on a
// reachable MySQL instance.

func TestMySQLConformance(t *testing.T) {
	dsn := os.Getenv("MERKLE_MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MERKLE_MYSQL_TEST_DSN not set, skipping MySQL conformance test")
	}
	s, err := OpenMySQL(dsn)
	if err != nil {
		t.Fatalf("OpenMySQL failed: %v", err)
	}
	defer s.Close()
	storagetest.RunConformance(t, s)
}

func TestPostgresConformance(t *testing.T) {
	dsn := os.Getenv("MERKLE_POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("MERKLE_POSTGRES_TEST_DSN not set, skipping Postgres conformance test")
	}
	s, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("OpenPostgres failed: %v", err)
	}
	defer s.Close()
	storagetest.RunConformance(t, s)
}

func TestPlaceholderFuncs(t *testing.T) {
	if got := mysqlPlaceholder(1); got != "?" {
		t.Errorf("mysqlPlaceholder(1) = %q, want \"?\"", got)
	}
	if got := mysqlPlaceholder(2); got != "?" {
		t.Errorf("mysqlPlaceholder(2) = %q, want \"?\"", got)
	}
	if got := postgresPlaceholder(1); got != "$1" {
		t.Errorf("postgresPlaceholder(1) = %q, want \"$1\"", got)
	}
	if got := postgresPlaceholder(3); got != "$3" {
		t.Errorf("postgresPlaceholder(3) = %q, want \"$3\"", got)
	}
}
