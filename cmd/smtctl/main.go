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

// Command smtctl is a small REPL over a sparse Merkle tree, for
// poking at a store from the shell without writing a Go program.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"bitbucket.org/creachadair/shell"
	"golang.org/x/sync/errgroup"

	"github.com/golang/glog"

	"github.com/google/merkletree/merkle"
	"github.com/google/merkletree/storage/btreestore"
	"github.com/google/merkletree/telemetry"
)

var (
	backend         = flag.String("backend", "mem", "node store backend: mem, btree, mysql, postgres, redis, etcd, spanner")
	addr            = flag.String("addr", "", "backend-specific address (DSN, host:port, endpoint, or database path)")
	hash            = flag.String("hash", "sha3", "hash function: sha3 or sha256")
	depth           = flag.Int("depth", 3, "tree depth D")
	stackdriverProj = flag.String("stackdriver_project", "", "if set, export traces to this GCP project via Stackdriver")
)

func main() {
	flag.Parse()

	if *stackdriverProj != "" {
		stop, err := telemetry.EnableStackdriver(*stackdriverProj)
		if err != nil {
			glog.Exitf("smtctl: %v", err)
		}
		defer stop()
	}

	store, err := openBackend(*backend, *addr)
	if err != nil {
		glog.Exitf("smtctl: %v", err)
	}
	h, err := openHasher(*hash)
	if err != nil {
		glog.Exitf("smtctl: %v", err)
	}

	nulls := merkle.NewNullHashes(*depth, h)
	tree := merkle.NewTreeDBMut(store, nulls.At(0), *depth, h, nil)

	repl := &repl{store: store, tree: tree, depth: *depth}
	repl.run(os.Stdin, os.Stdout)
}

type repl struct {
	store merkle.NodeStore
	tree  *merkle.TreeDBMut
	depth int
}

func (r *repl) run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		fields, ok := shell.Split(line)
		if !ok {
			fmt.Fprintln(out, "error: unbalanced quotes")
			continue
		}
		if len(fields) == 0 {
			continue
		}
		if err := r.dispatch(out, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (r *repl) dispatch(out io.Writer, cmd string, args []string) error {
	switch cmd {
	case "get":
		return r.cmdGet(out, args)
	case "leaf":
		return r.cmdLeaf(out, args)
	case "proof":
		return r.cmdProof(out, args)
	case "insert":
		return r.cmdInsert(out, args)
	case "commit":
		return r.cmdCommit(out)
	case "root":
		return r.cmdRoot(out)
	case "list":
		return r.cmdList(out)
	case "warm":
		return r.cmdWarm(out, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func keyFromBits(s string, depth int) (merkle.Key, error) {
	if len(s) != depth {
		return nil, fmt.Errorf("key %q has length %d, want %d", s, len(s), depth)
	}
	k := make(merkle.Key, depth)
	for i, c := range s {
		switch c {
		case '0':
			k[i] = 0
		case '1':
			k[i] = 1
		default:
			return nil, fmt.Errorf("key %q: byte %d is %q, want '0' or '1'", s, i, c)
		}
	}
	return k, nil
}

func (r *repl) cmdGet(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <key>")
	}
	key, err := keyFromBits(args[0], r.depth)
	if err != nil {
		return err
	}
	_, end := telemetry.StartSpan(context.Background(), "walk")
	v, err := r.tree.GetValue(key)
	end()
	telemetry.RecordLookup("get_value", err)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", hex.EncodeToString(v))
	return nil
}

func (r *repl) cmdLeaf(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: leaf <key>")
	}
	key, err := keyFromBits(args[0], r.depth)
	if err != nil {
		return err
	}
	_, end := telemetry.StartSpan(context.Background(), "walk")
	d, err := r.tree.GetLeaf(key)
	end()
	telemetry.RecordLookup("get_leaf", err)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", hex.EncodeToString(d))
	return nil
}

func (r *repl) cmdProof(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: proof <key>")
	}
	key, err := keyFromBits(args[0], r.depth)
	if err != nil {
		return err
	}
	_, end := telemetry.StartSpan(context.Background(), "walk")
	p, err := r.tree.GetProof(key)
	end()
	telemetry.RecordLookup("get_proof", err)
	if err != nil {
		return err
	}
	for _, e := range p {
		fmt.Fprintf(out, "%d %s\n", e.Index, hex.EncodeToString(e.Bytes))
	}
	return nil
}

func (r *repl) cmdInsert(out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: insert <key> <hex-value>")
	}
	key, err := keyFromBits(args[0], r.depth)
	if err != nil {
		return err
	}
	value, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("value: %v", err)
	}
	_, end := telemetry.StartSpan(context.Background(), "insert")
	old, err := r.tree.Insert(key, value)
	end()
	telemetry.SetOverlaySize(r.tree.OverlaySize())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "previous: %s\n", hex.EncodeToString(old))
	return nil
}

func (r *repl) cmdCommit(out io.Writer) error {
	_, end := telemetry.StartSpan(context.Background(), "commit")
	stop := telemetry.TimeCommit()
	err := r.tree.Commit()
	stop()
	end()
	if err != nil {
		return err
	}
	telemetry.SetOverlaySize(0)
	fmt.Fprintln(out, "ok")
	return nil
}

func (r *repl) cmdRoot(out io.Writer) error {
	root, err := r.tree.Root()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", hex.EncodeToString(root))
	return nil
}

// cmdList enumerates every digest in the store, in ascending order.
// Only meaningful for backends that support ordered enumeration.
func (r *repl) cmdList(out io.Writer) error {
	bs, ok := r.store.(*btreestore.Store)
	if !ok {
		return fmt.Errorf("list requires the btree backend")
	}
	keys := bs.Keys(nil)
	sort.Slice(keys, func(i, j int) bool { return hex.EncodeToString(keys[i]) < hex.EncodeToString(keys[j]) })
	for _, k := range keys {
		fmt.Fprintf(out, "%s\n", hex.EncodeToString(k))
	}
	return nil
}

// cmdWarm issues concurrent GetValue calls for every given key, to
// prime a remote backend's cache before a benchmark or demo.
func (r *repl) cmdWarm(out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: warm <key> [<key>...]")
	}
	var g errgroup.Group
	for _, a := range args {
		key, err := keyFromBits(a, r.depth)
		if err != nil {
			return err
		}
		key := key
		g.Go(func() error {
			_, end := telemetry.StartSpan(context.Background(), "walk")
			_, err := r.tree.GetValue(key)
			end()
			telemetry.RecordLookup("get_value", err)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(out, "warmed %d keys\n", len(args))
	return nil
}
