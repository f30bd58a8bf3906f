// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"
	urlpkg "net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelMetric "go.opentelemetry.io/otel/metric"
	metricNoop "go.opentelemetry.io/otel/metric/noop"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	otelTrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/gogama/xhr"
	"github.com/gogama/xhr/request"
)

const (
	instrumentationName = "github.com/gogama/xhr"
	spanName            = "xhr.request"
	meterPrefix         = "xhr.client."
	maskedAttrValue     = "****"

	attrID         = attribute.Key("xhr.id")
	attrHost       = attribute.Key("xhr.url.host")
	attrOutcome    = attribute.Key("xhr.outcome")
	attrErrorCode  = attribute.Key("xhr.error.code")
	attrStatusZero = attribute.Key("xhr.status_zero")
	attrReadyState = attribute.Key("xhr.ready_state")
	attrTimeout    = attribute.Key("xhr.timeout_ms")
	headerAttrPfx  = "xhr.request.header."
)

type stateKey struct{}

type state struct {
	ctx   context.Context
	span  otelTrace.Span
	attrs []attribute.KeyValue
}

// Install adds tracing and metrics handlers to g. A nil provider is
// replaced with a no-op one.
func Install(g *xhr.HandlerGroup, tracerProvider otelTrace.TracerProvider, meterProvider otelMetric.MeterProvider, opts ...Option) {
	cfg := newConfig(opts)
	if tracerProvider == nil {
		tracerProvider = noop.NewTracerProvider()
	}
	if meterProvider == nil {
		meterProvider = metricNoop.NewMeterProvider()
	}
	h := &handler{
		config: cfg,
		tracer: tracerProvider.Tracer(instrumentationName),
		meters: newMeters(meterProvider.Meter(instrumentationName)),
	}
	for _, evt := range xhr.Events() {
		g.PushBack(evt, h)
	}
}

// SpanFromExecution returns the span of an execution, or a
// non-recording span if the execution is not traced.
func SpanFromExecution(e *request.Execution) otelTrace.Span {
	if s, ok := e.Value(stateKey{}).(*state); ok {
		return s.span
	}
	return otelTrace.SpanFromContext(context.Background())
}

type handler struct {
	config config
	tracer otelTrace.Tracer
	meters *meters
}

func (h *handler) Handle(evt xhr.Event, e *request.Execution) {
	if evt == xhr.BeforeExecutionStart {
		h.start(e)
		return
	}

	s, ok := e.Value(stateKey{}).(*state)
	if !ok {
		return
	}

	switch evt {
	case xhr.BeforeAttach:
		if h.config.propagators != nil {
			h.config.propagators.Inject(s.ctx, &e.Header)
		}
	case xhr.BeforeSend:
		s.span.SetAttributes(h.headerAttrs(e)...)
		s.span.AddEvent("send")
	case xhr.AfterStateChange:
		s.span.AddEvent("ready_state_change", otelTrace.WithAttributes(
			attrReadyState.String(e.Transport.ReadyState().String()),
		))
	case xhr.AfterNetworkError:
		s.span.AddEvent("network_error")
	case xhr.AfterTimeout:
		s.span.AddEvent("timeout")
	case xhr.AfterExecutionEnd:
		h.end(s, e)
	}
}

func (h *handler) start(e *request.Execution) {
	cfg := e.Config
	attrs := []attribute.KeyValue{
		semconv.HTTPMethodKey.String(cfg.NormalizedMethod()),
	}
	if u, err := urlpkg.Parse(cfg.URL); err == nil {
		attrs = append(attrs, attrHost.String(u.Host))
	}

	s := &state{attrs: attrs}
	h.meters.inFlight.Add(context.Background(), 1, otelMetric.WithAttributes(s.attrs...))
	s.ctx, s.span = h.tracer.Start(
		h.config.parent(),
		spanName,
		otelTrace.WithSpanKind(otelTrace.SpanKindClient),
		otelTrace.WithTimestamp(e.Start),
		otelTrace.WithAttributes(attrs...),
		otelTrace.WithAttributes(
			attrID.String(e.ID),
			semconv.HTTPURLKey.String(redactURL(cfg.URL)),
			attrTimeout.Int64(e.Timeout.Milliseconds()),
		),
	)
	e.SetValue(stateKey{}, s)
}

func (h *handler) end(s *state, e *request.Execution) {
	elapsed := float64(e.Duration()) / float64(time.Millisecond)
	outcome := outcomeOf(e.Err)
	resultAttrs := append(append([]attribute.KeyValue{}, s.attrs...),
		semconv.HTTPStatusCodeKey.Int(e.StatusCode()),
		attrOutcome.String(outcome),
	)

	h.meters.inFlight.Add(context.Background(), -1, otelMetric.WithAttributes(s.attrs...))
	h.meters.duration.Record(context.Background(), elapsed, otelMetric.WithAttributes(resultAttrs...))

	s.span.SetAttributes(
		semconv.HTTPStatusCodeKey.Int(e.StatusCode()),
		attrOutcome.String(outcome),
		attrStatusZero.Int(e.StatusZero),
	)
	if re, ok := e.Err.(*request.Error); ok && re.Code != "" {
		s.span.SetAttributes(attrErrorCode.String(re.Code))
	}
	if e.Err != nil {
		s.span.RecordError(e.Err)
		s.span.SetStatus(codes.Error, e.Err.Error())
	}
	s.span.End(otelTrace.WithTimestamp(e.End))
}

// headerAttrs records one attribute per header name. A repeated name
// becomes a string slice holding every value in order.
func (h *handler) headerAttrs(e *request.Execution) []attribute.KeyValue {
	var names []string
	values := make(map[string][]string)
	for _, f := range e.Header.Fields() {
		name := strings.ToLower(f.Name)
		value := f.Value
		if _, found := h.config.redactedHeaders[name]; found {
			value = maskedAttrValue
		}
		if _, seen := values[name]; !seen {
			names = append(names, name)
		}
		values[name] = append(values[name], value)
	}
	attrs := make([]attribute.KeyValue, 0, len(names))
	for _, name := range names {
		key := attribute.Key(headerAttrPfx + name)
		if v := values[name]; len(v) == 1 {
			attrs = append(attrs, key.String(v[0]))
		} else {
			attrs = append(attrs, key.StringSlice(v))
		}
	}
	return attrs
}

func outcomeOf(err error) string {
	if err == nil {
		return "response"
	}
	if re, ok := err.(*request.Error); ok {
		return re.Kind().String()
	}
	return "SetupError"
}

func redactURL(raw string) string {
	u, err := urlpkg.Parse(raw)
	if err != nil {
		return raw
	}
	if u.User != nil {
		u.User = urlpkg.User(maskedAttrValue)
	}
	return u.String()
}
