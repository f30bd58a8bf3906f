// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package otel provides OpenTelemetry tracing and metrics for requests
// carried out by an xhr.Executor.
//
// Install adds event handlers to an xhr.HandlerGroup. Each execution
// then gets:
//   - a client span named "xhr.request", with one event per transport
//     signal and an error status when the execution fails;
//   - trace context injected into the outgoing request headers, using
//     the configured propagators;
//   - the metrics "xhr.client.request.in_flight" and
//     "xhr.client.request.duration".
//
// Handlers can reach the span of an execution with SpanFromExecution.
package otel
