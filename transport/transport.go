// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"errors"
	"time"
)

var (
	// ErrSyncUnsupported is returned by Open when a synchronous
	// exchange is requested.
	ErrSyncUnsupported = errors.New("xhr/transport: synchronous exchange not supported")
	// ErrInvalidState is returned when an operation is attempted in a
	// ready state which does not allow it, for example setting a
	// header on a transport which was never opened, or sending twice.
	ErrInvalidState = errors.New("xhr/transport: invalid state")
)

// A Transport is one HTTP exchange.
//
// The setup methods (SetResponseType, SetTimeout, Open,
// SetRequestHeader, On and Send) are called from a single goroutine.
// Signals may be raised on any goroutine after Send; the accessor
// methods must be safe to call from a signal listener.
type Transport interface {
	// SetResponseType sets the hint for decoding the response body.
	SetResponseType(rt ResponseType)
	// SetTimeout sets the time limit for the whole exchange. Zero
	// means no limit.
	SetTimeout(d time.Duration)
	// Open initializes the exchange with a method and a target URL.
	// Implementations may refuse synchronous exchanges.
	Open(method, url string, async bool) error
	// SetRequestHeader attaches a request header field. It may only be
	// called after Open and before Send.
	SetRequestHeader(name, value string) error
	// Send transmits the request with the given body, which may be
	// nil, and returns without waiting for the exchange to end.
	Send(body []byte) error
	// On registers fn to run each time sig is raised.
	On(sig Signal, fn func())

	// ReadyState returns the current ready state.
	ReadyState() ReadyState
	// Status returns the HTTP status code, or 0 if no response status
	// is available.
	Status() int
	// StatusText returns the status reason phrase.
	StatusText() string
	// AllResponseHeaders returns the raw response header blob, one
	// "name: value" line per field, each terminated by CRLF.
	AllResponseHeaders() string
	// Response returns the response body decoded according to the
	// response type.
	Response() interface{}
	// ResponseText returns the response body as text.
	ResponseText() string
}

// A ReadyState is the lifecycle state of a Transport.
type ReadyState int

const (
	// Unsent means Open has not been called.
	Unsent ReadyState = iota
	// Opened means Open has been called.
	Opened
	// HeadersReceived means the response status and headers are
	// available.
	HeadersReceived
	// Loading means the response body is being received.
	Loading
	// Done means the exchange is over, successfully or not.
	Done
)

var readyStateNames = []string{
	"Unsent",
	"Opened",
	"HeadersReceived",
	"Loading",
	"Done",
}

// String returns the name of the ready state.
func (s ReadyState) String() string {
	if s < Unsent || s > Done {
		return "ReadyState(?)"
	}
	return readyStateNames[s]
}

// A ResponseType tells a Transport how to decode the response body.
type ResponseType string

const (
	// Default leaves decoding to the transport. HTTP decodes to string.
	Default ResponseType = ""
	// Text decodes the body to a string.
	Text ResponseType = "text"
	// JSON decodes the body as JSON into an interface{} value, or nil
	// if the body is not valid JSON.
	JSON ResponseType = "json"
	// ArrayBuffer leaves the body as raw bytes.
	ArrayBuffer ResponseType = "arraybuffer"
)
