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

// Package spannerstore implements merkle.NodeStore over Cloud Spanner,
// mirroring the storage backend trillian itself ships for CockroachDB-
// and Spanner-class deployments: a single table keyed on the node's
// content-addressed digest.
//
// Schema (caller-provisioned):
//
//	CREATE TABLE MerkleNodes (
//	    Prefix BYTES(MAX) NOT NULL,
//	    Digest BYTES(MAX) NOT NULL,
//	    Data   BYTES(MAX) NOT NULL,
//	) PRIMARY KEY (Prefix, Digest);
package spannerstore

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/google/merkletree/merkle"
)

const tableName = "MerkleNodes"

// Store is a merkle.NodeStore backed by a Cloud Spanner database. Its
// methods use context.Background(), so individual calls carry no
// deadline of their own.
type Store struct {
	client *spanner.Client
}

// Open returns a Store bound to the Spanner database at db, a path of
// the form "projects/P/instances/I/databases/D".
func Open(ctx context.Context, db string) (*Store, error) {
	client, err := spanner.NewClient(ctx, db)
	if err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

// Close releases the underlying Spanner client.
func (s *Store) Close() { s.client.Close() }

// Get implements merkle.NodeStore.
func (s *Store) Get(key []byte, prefix merkle.Prefix) ([]byte, bool, error) {
	ctx := context.Background()
	row, err := s.client.Single().ReadRow(ctx, tableName,
		spanner.Key{[]byte(prefix), key}, []string{"Data"})
	if spanner.ErrCode(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var data []byte
	if err := row.Column(0, &data); err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Contains implements merkle.NodeStore.
func (s *Store) Contains(key []byte, prefix merkle.Prefix) (bool, error) {
	_, ok, err := s.Get(key, prefix)
	return ok, err
}

// Emplace implements merkle.NodeStore. Writes use InsertOrUpdate so
// re-emplacing the same content-addressed digest is a no-op in effect.
func (s *Store) Emplace(key []byte, prefix merkle.Prefix, data []byte) error {
	ctx := context.Background()
	mut := spanner.InsertOrUpdate(tableName,
		[]string{"Prefix", "Digest", "Data"},
		[]interface{}{[]byte(prefix), key, data})
	_, err := s.client.Apply(ctx, []*spanner.Mutation{mut})
	return err
}

// Remove implements merkle.NodeStore.
func (s *Store) Remove(key []byte, prefix merkle.Prefix) error {
	ctx := context.Background()
	mut := spanner.Delete(tableName, spanner.Key{[]byte(prefix), key})
	_, err := s.client.Apply(ctx, []*spanner.Mutation{mut})
	return err
}

var _ merkle.NodeStore = (*Store)(nil)
