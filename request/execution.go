// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"time"

	"github.com/gogama/xhr/header"
	"github.com/gogama/xhr/transient"
	"github.com/gogama/xhr/transport"
)

// An Execution represents the state of a single Config execution.
//
// When a Config is executed, an Execution is created for it. The
// Execution is updated as the execution progresses (for example when
// the transport is opened, or when the response arrives) and is
// passed to event handlers at each plug-in point.
//
// Event handlers may set values on an Execution using its SetValue
// method and read them back using the Value method. They should treat
// the exported fields as read-only, with one exception: handlers for
// the BeforeAttach event may edit Header, which is the executor's own
// working copy of the config headers.
type Execution struct {
	// Config specifies the request configuration being executed. It
	// is never nil.
	Config *Config

	// ID uniquely identifies the execution.
	ID string

	// Start is the time the execution started. It is assigned when the
	// execution starts and remains constant thereafter.
	Start time.Time

	// End is the time the execution settled. It contains the zero
	// value until then.
	End time.Time

	// Transport is the transport carrying out the exchange. It is set
	// when the execution starts.
	Transport transport.Transport

	// Header is the executor's working copy of Config.Headers. Fields
	// are removed from it, never from Config.Headers, when they must
	// not be sent.
	Header header.Header

	// Timeout is the timeout set on the transport, or zero if none
	// was set.
	Timeout time.Duration

	// StatusZero counts how many times the transport reached the Done
	// ready state with a status of 0. Such observations do not end the
	// execution on their own.
	StatusZero int

	// Response is the response envelope, if a complete response was
	// received. It is set on success and on StatusError failure.
	Response *Response

	// Err is the error the execution failed with, or nil.
	Err error

	data context.Context
}

// StatusCode returns the status code of the response, or 0 if no
// complete response has been received.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.Status
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has settled. Once it returns
// true there will be no further changes to the execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// TimedOut indicates whether Err is a timeout.
func (e *Execution) TimedOut() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • it may not be nil;
//
// • it must be comparable;
//
// • it should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
