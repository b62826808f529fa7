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

package main

import (
	"context"
	"fmt"

	"github.com/google/merkletree/merkle"
	"github.com/google/merkletree/storage/btreestore"
	"github.com/google/merkletree/storage/etcdstore"
	"github.com/google/merkletree/storage/memstore"
	"github.com/google/merkletree/storage/redisstore"
	"github.com/google/merkletree/storage/spannerstore"
	"github.com/google/merkletree/storage/sqlstore"
)

// openBackend constructs the NodeStore named by kind. addr is
// interpreted per backend: a DSN for "mysql"/"postgres", a host:port
// for "redis", a single etcd endpoint for "etcd", a database path for
// "spanner"; unused for "mem" and "btree".
func openBackend(kind, addr string) (merkle.NodeStore, error) {
	switch kind {
	case "mem":
		return memstore.New(), nil
	case "btree":
		return btreestore.New(), nil
	case "mysql":
		return sqlstore.OpenMySQL(addr)
	case "postgres":
		return sqlstore.OpenPostgres(addr)
	case "redis":
		return redisstore.New(redisstore.Options{Addr: addr, KeyPrefix: "smtctl"}), nil
	case "etcd":
		return etcdstore.Open(etcdstore.Options{Endpoints: []string{addr}, KeyPrefix: "smtctl"})
	case "spanner":
		return spannerstore.Open(context.Background(), addr)
	default:
		return nil, fmt.Errorf("unknown backend %q (want one of mem, btree, mysql, postgres, redis, etcd, spanner)", kind)
	}
}

func openHasher(kind string) (merkle.HashFn, error) {
	switch kind {
	case "sha3", "":
		return merkle.SHA3Hasher{}, nil
	case "sha256":
		return merkle.SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hash %q (want sha3 or sha256)", kind)
	}
}
