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

// Package etcdstore implements merkle.NodeStore over an etcd cluster,
// for deployments that already run etcd as their coordination store
// and want to avoid standing up a second storage system for a small
// tree.
package etcdstore

import (
	"context"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/google/merkletree/merkle"
)

// Store is a merkle.NodeStore backed by an etcd v3 client.
type Store struct {
	client  *clientv3.Client
	prefix  string
	timeout time.Duration
}

// Options configures a Store.
type Options struct {
	Endpoints []string
	// KeyPrefix namespaces this store's keys within a shared etcd
	// cluster, independent of the per-call merkle.Prefix.
	KeyPrefix string
	// Timeout bounds each etcd request; defaults to 5s if zero.
	Timeout time.Duration
}

// Open dials the etcd cluster described by opts.
func Open(opts Options) (*Store, error) {
	client, err := clientv3.New(clientv3.Config{Endpoints: opts.Endpoints})
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Store{client: client, prefix: opts.KeyPrefix, timeout: timeout}, nil
}

// Close releases the underlying etcd client.
func (s *Store) Close() error { return s.client.Close() }

func (s *Store) etcdKey(key []byte, prefix merkle.Prefix) string {
	return s.prefix + "/" + string(prefix) + "/" + string(key)
}

func (s *Store) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get implements merkle.NodeStore.
func (s *Store) Get(key []byte, prefix merkle.Prefix) ([]byte, bool, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	resp, err := s.client.Get(ctx, s.etcdKey(key, prefix))
	if err != nil {
		return nil, false, err
	}
	if len(resp.Kvs) == 0 {
		return nil, false, nil
	}
	return resp.Kvs[0].Value, true, nil
}

// Contains implements merkle.NodeStore.
func (s *Store) Contains(key []byte, prefix merkle.Prefix) (bool, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	resp, err := s.client.Get(ctx, s.etcdKey(key, prefix), clientv3.WithCountOnly())
	if err != nil {
		return false, err
	}
	return resp.Count > 0, nil
}

// Emplace implements merkle.NodeStore.
func (s *Store) Emplace(key []byte, prefix merkle.Prefix, data []byte) error {
	ctx, cancel := s.ctx()
	defer cancel()
	_, err := s.client.Put(ctx, s.etcdKey(key, prefix), string(data))
	return err
}

// Remove implements merkle.NodeStore.
func (s *Store) Remove(key []byte, prefix merkle.Prefix) error {
	ctx, cancel := s.ctx()
	defer cancel()
	_, err := s.client.Delete(ctx, s.etcdKey(key, prefix))
	return err
}

var _ merkle.NodeStore = (*Store)(nil)
