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

// Package redisstore implements merkle.NodeStore over Redis, using the
// teacher's go-redis client.
package redisstore

import (
	"github.com/go-redis/redis"
	"github.com/google/merkletree/merkle"
)

// Store is a merkle.NodeStore backed by a single Redis instance. Nodes
// are content-addressed and never updated in place, so entries are
// written without an expiry.
type Store struct {
	client *redis.Client
	prefix string // key namespace for this store, distinct from merkle.Prefix
}

// Options configures a Store.
type Options struct {
	Addr     string
	Password string
	DB       int
	// KeyPrefix namespaces this store's keys within a shared Redis
	// instance, independent of the per-call merkle.Prefix.
	KeyPrefix string
}

// New returns a Store connected to the Redis instance described by opts.
func New(opts Options) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
		prefix: opts.KeyPrefix,
	}
}

func (s *Store) redisKey(key []byte, prefix merkle.Prefix) string {
	return s.prefix + "\x00" + string(prefix) + "\x00" + string(key)
}

// Get implements merkle.NodeStore.
func (s *Store) Get(key []byte, prefix merkle.Prefix) ([]byte, bool, error) {
	v, err := s.client.Get(s.redisKey(key, prefix)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Contains implements merkle.NodeStore.
func (s *Store) Contains(key []byte, prefix merkle.Prefix) (bool, error) {
	n, err := s.client.Exists(s.redisKey(key, prefix)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Emplace implements merkle.NodeStore.
func (s *Store) Emplace(key []byte, prefix merkle.Prefix, data []byte) error {
	return s.client.Set(s.redisKey(key, prefix), data, 0).Err()
}

// Remove implements merkle.NodeStore.
func (s *Store) Remove(key []byte, prefix merkle.Prefix) error {
	return s.client.Del(s.redisKey(key, prefix)).Err()
}

// Close releases the underlying Redis connection pool.
func (s *Store) Close() error { return s.client.Close() }

var _ merkle.NodeStore = (*Store)(nil)
