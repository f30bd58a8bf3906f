// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"
	"strings"

	otelglobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type config struct {
	propagators     propagation.TextMapPropagator
	parent          func() context.Context
	redactedHeaders map[string]struct{}
}

// An Option configures Install.
type Option func(*config)

// WithPropagators sets the propagators used to inject trace context
// into request headers. The default is the global propagator.
func WithPropagators(v propagation.TextMapPropagator) Option {
	return func(c *config) {
		c.propagators = v
	}
}

// WithParent sets a function returning the context every span is
// started in. The default starts root spans.
func WithParent(f func() context.Context) Option {
	return func(c *config) {
		c.parent = f
	}
}

// WithRedactedHeaders masks the values of the named request headers in
// span attributes. Names are case-insensitive.
func WithRedactedHeaders(headers ...string) Option {
	return func(c *config) {
		for _, h := range headers {
			c.redactedHeaders[strings.ToLower(h)] = struct{}{}
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		propagators: otelglobal.GetTextMapPropagator(),
		parent:      context.Background,
		redactedHeaders: map[string]struct{}{
			"authorization":       {},
			"proxy-authorization": {},
			"cookie":              {},
		},
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
