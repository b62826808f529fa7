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

// Package sqlstore implements merkle.NodeStore over a database/sql
// connection. It is dialect-agnostic; OpenMySQL and OpenPostgres wire
// up the two drivers the teacher's go.mod carries for this purpose.
//
// Schema (caller-provisioned, matching trillian's own migration-based
// storage backends):
//
//	CREATE TABLE merkle_nodes (
//	    prefix VARBINARY(255) NOT NULL,
//	    digest VARBINARY(255) NOT NULL,
//	    data   BLOB NOT NULL,
//	    PRIMARY KEY (prefix, digest)
//	);
package sqlstore

import (
	"database/sql"
	"fmt"

	// MySQL driver, registered under "mysql".
	_ "github.com/go-sql-driver/mysql"
	// Postgres driver, registered under "postgres".
	_ "github.com/lib/pq"

	"github.com/google/merkletree/merkle"
)

// Store is a merkle.NodeStore backed by a SQL table.
type Store struct {
	db    *sql.DB
	table string
	ph    placeholderFunc
}

// placeholderFunc renders the i-th (1-based) bind parameter in a
// dialect's native placeholder syntax ("?" for MySQL, "$1" for
// Postgres).
type placeholderFunc func(i int) string

func mysqlPlaceholder(int) string      { return "?" }
func postgresPlaceholder(i int) string { return fmt.Sprintf("$%d", i) }

// OpenMySQL opens a Store against a MySQL DSN, using
// github.com/go-sql-driver/mysql.
func OpenMySQL(dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, table: "merkle_nodes", ph: mysqlPlaceholder}, nil
}

// OpenPostgres opens a Store against a Postgres DSN, using
// github.com/lib/pq.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, table: "merkle_nodes", ph: postgresPlaceholder}, nil
}

// Close closes the underlying *sql.DB.
func (s *Store) Close() error { return s.db.Close() }

// Get implements merkle.NodeStore.
func (s *Store) Get(key []byte, prefix merkle.Prefix) ([]byte, bool, error) {
	q := fmt.Sprintf("SELECT data FROM %s WHERE prefix = %s AND digest = %s", s.table, s.ph(1), s.ph(2))
	var data []byte
	err := s.db.QueryRow(q, []byte(prefix), key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Contains implements merkle.NodeStore.
func (s *Store) Contains(key []byte, prefix merkle.Prefix) (bool, error) {
	q := fmt.Sprintf("SELECT 1 FROM %s WHERE prefix = %s AND digest = %s", s.table, s.ph(1), s.ph(2))
	var one int
	err := s.db.QueryRow(q, []byte(prefix), key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Emplace implements merkle.NodeStore. It is idempotent: re-emplacing
// the same digest with the same (content-addressed) bytes is a no-op
// upsert.
func (s *Store) Emplace(key []byte, prefix merkle.Prefix, data []byte) error {
	var q string
	switch s.ph(1) {
	case "?":
		q = fmt.Sprintf("INSERT IGNORE INTO %s (prefix, digest, data) VALUES (%s, %s, %s)",
			s.table, s.ph(1), s.ph(2), s.ph(3))
	default:
		q = fmt.Sprintf("INSERT INTO %s (prefix, digest, data) VALUES (%s, %s, %s) ON CONFLICT (prefix, digest) DO NOTHING",
			s.table, s.ph(1), s.ph(2), s.ph(3))
	}
	_, err := s.db.Exec(q, []byte(prefix), key, data)
	return err
}

// Remove implements merkle.NodeStore.
func (s *Store) Remove(key []byte, prefix merkle.Prefix) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE prefix = %s AND digest = %s", s.table, s.ph(1), s.ph(2))
	_, err := s.db.Exec(q, []byte(prefix), key)
	return err
}

var _ merkle.NodeStore = (*Store)(nil)
