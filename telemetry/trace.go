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
	"context"

	"contrib.go.opencensus.io/exporter/stackdriver"
	"go.opencensus.io/trace"

	"github.com/golang/glog"
)

// StartSpan opens an OpenCensus span named "merkle.<op>" for the
// duration of a single walk/insert/commit, returning the span's
// context and an End func.
func StartSpan(ctx context.Context, op string) (context.Context, func()) {
	ctx, span := trace.StartSpan(ctx, "merkle."+op)
	return ctx, span.End
}

// EnableStackdriver registers a Stackdriver exporter for the given GCP
// project, sampling every trace. It is optional: callers that don't
// invoke it simply get unexported local spans with no sink.
func EnableStackdriver(projectID string) (func(), error) {
	exporter, err := stackdriver.NewExporter(stackdriver.Options{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	trace.RegisterExporter(exporter)
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})
	glog.Infof("telemetry: stackdriver exporter registered for project %q", projectID)
	return func() {
		exporter.Flush()
		trace.UnregisterExporter(exporter)
	}, nil
}
