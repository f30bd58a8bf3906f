// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gogama/xhr/transport"
)

const (
	// CodeTimeout is the Code of an Error caused by the request
	// timeout elapsing.
	CodeTimeout = "ECONNABORTED"
	// CodeAborted is the Code of an Error caused by the transport
	// ending the exchange with no status and no failure signal.
	CodeAborted = "ECONNABORTED"

	// NetworkErrorMessage is the Message of every network Error.
	NetworkErrorMessage = "Network Error"
	// AbortedMessage is the Message of every abort Error.
	AbortedMessage = "Request aborted"
)

// A Kind identifies which of the ways an execution can fail produced
// an Error.
type Kind int

const (
	// NetworkError means the transport signalled a failure before any
	// response status was available.
	NetworkError Kind = iota
	// TimeoutError means the request timeout elapsed before the
	// exchange completed.
	TimeoutError
	// StatusError means a complete response was received but its
	// status was outside the range [200, 300).
	StatusError
	// AbortError means the transport ended the exchange with no status
	// and then raised no failure signal within the executor's abort
	// grace period.
	AbortError
)

var kindNames = []string{
	"NetworkError",
	"TimeoutError",
	"StatusError",
	"AbortError",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[int(k)]
}

// An Error describes an execution which failed during the HTTP
// exchange. It carries the same information whatever the cause, and
// callers tell causes apart with Kind, or by looking at Code and
// Response directly.
type Error struct {
	// Message is a human-readable description of the failure.
	Message string

	// Config is the request configuration, exactly as passed by the
	// caller.
	Config *Config

	// Code is a stable identifier for the failure, or the empty string
	// if there is none. Timeouts have the code CodeTimeout.
	Code string

	// Request is the transport which carried out the exchange.
	Request transport.Transport

	// Response is the response received, if the failure was decided
	// after a complete response arrived (StatusError). Otherwise it is
	// nil.
	Response *Response

	aborted bool
}

// NewError returns a new Error. It never fails.
func NewError(message string, cfg *Config, code string, t transport.Transport, res *Response) *Error {
	return &Error{
		Message:  message,
		Config:   cfg,
		Code:     code,
		Request:  t,
		Response: res,
	}
}

// NewStatusError returns the Error for a response whose status is
// outside the range [200, 300).
func NewStatusError(res *Response) *Error {
	return NewError(StatusMessage(res.Status), res.Config, "", res.Request, res)
}

// NewNetworkError returns the Error for a transport Error signal.
func NewNetworkError(cfg *Config, t transport.Transport) *Error {
	return NewError(NetworkErrorMessage, cfg, "", t, nil)
}

// NewTimeoutError returns the Error for a transport Timeout signal,
// where d is the timeout which was set on the transport.
func NewTimeoutError(cfg *Config, t transport.Transport, d time.Duration) *Error {
	return NewError(TimeoutMessage(d), cfg, CodeTimeout, t, nil)
}

// NewAbortError returns the Error for an exchange which ended with no
// status and no failure signal.
func NewAbortError(cfg *Config, t transport.Transport) *Error {
	e := NewError(AbortedMessage, cfg, CodeAborted, t, nil)
	e.aborted = true
	return e
}

// StatusMessage returns the Message of a StatusError.
func StatusMessage(status int) string {
	return fmt.Sprintf("Request failed with status code %d", status)
}

// TimeoutMessage returns the Message of a TimeoutError. The duration
// is rendered in whole milliseconds.
func TimeoutMessage(d time.Duration) string {
	return fmt.Sprintf("Timeout of %d ms exceed", d.Milliseconds())
}

// Error returns the message.
func (e *Error) Error() string {
	return e.Message
}

// Kind returns the kind of failure.
func (e *Error) Kind() Kind {
	switch {
	case e.aborted:
		return AbortError
	case e.Response != nil:
		return StatusError
	case e.Code == CodeTimeout:
		return TimeoutError
	default:
		return NetworkError
	}
}

// Timeout reports whether the error is a TimeoutError. Because of this
// method, package transient categorizes timeout Errors as timeouts.
func (e *Error) Timeout() bool {
	return e.Kind() == TimeoutError
}
