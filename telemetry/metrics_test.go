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

package telemetry

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordLookupLabelsResult(t *testing.T) {
	before := testutil.ToFloat64(lookupTotal.WithLabelValues("get_value", "ok"))
	RecordLookup("get_value", nil)
	after := testutil.ToFloat64(lookupTotal.WithLabelValues("get_value", "ok"))
	if after != before+1 {
		t.Errorf("lookup_total{op=get_value,result=ok} = %v, want %v", after, before+1)
	}

	before = testutil.ToFloat64(lookupTotal.WithLabelValues("get_proof", "error"))
	RecordLookup("get_proof", errors.New("boom"))
	after = testutil.ToFloat64(lookupTotal.WithLabelValues("get_proof", "error"))
	if after != before+1 {
		t.Errorf("lookup_total{op=get_proof,result=error} = %v, want %v", after, before+1)
	}
}

func TestSetOverlaySize(t *testing.T) {
	SetOverlaySize(7)
	if got := testutil.ToFloat64(overlaySize); got != 7 {
		t.Errorf("overlay_size = %v, want 7", got)
	}
	SetOverlaySize(0)
	if got := testutil.ToFloat64(overlaySize); got != 0 {
		t.Errorf("overlay_size = %v, want 0", got)
	}
}

func TestTimeCommitRecordsAnObservation(t *testing.T) {
	before := commitSampleCount(t)
	done := TimeCommit()
	done()
	after := commitSampleCount(t)
	if after != before+1 {
		t.Errorf("commit_duration_seconds sample count = %d, want %d", after, before+1)
	}
}

// commitSampleCount returns the number of observations recorded so far
// by the commit_duration_seconds histogram.
func commitSampleCount(t *testing.T) uint64 {
	t.Helper()
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == namespace+"_commit_duration_seconds" {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("commit_duration_seconds is not registered")
	return 0
}
