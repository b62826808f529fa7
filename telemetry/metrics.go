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

// Package telemetry carries the Prometheus metrics and OpenCensus
// tracing this module exposes around tree operations. The merkle
// package itself takes no dependency on telemetry; callers that want
// observability wrap their TreeDB/TreeDBMut calls with the helpers
// here, the way cmd/smtctl does around its get, leaf, proof, insert,
// commit and warm commands.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "merkle"

var (
	lookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookup_total",
		Help:      "count of GetValue/GetLeaf/GetProof calls, by result",
	}, []string{"op", "result"})

	commitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "commit_duration_seconds",
		Help:      "time taken by TreeDBMut.Commit, including the overlay flush",
		Buckets:   prometheus.DefBuckets,
	})

	overlaySize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "overlay_size",
		Help:      "number of staged nodes held by a TreeDBMut since its last commit",
	})
)

// RecordLookup reports the outcome of a single lookup-style operation
// (op is one of "get_value", "get_leaf", "get_proof"). result is
// "ok" or "error".
func RecordLookup(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	lookupTotal.WithLabelValues(op, result).Inc()
}

// TimeCommit returns a func to be called (typically via defer) when a
// Commit finishes, recording its wall-clock duration.
func TimeCommit() func() {
	start := time.Now()
	return func() {
		commitDuration.Observe(time.Since(start).Seconds())
	}
}

// SetOverlaySize reports the current number of staged, uncommitted
// nodes held by a TreeDBMut.
func SetOverlaySize(n int) {
	overlaySize.Set(float64(n))
}
