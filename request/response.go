// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"github.com/gogama/xhr/header"
	"github.com/gogama/xhr/transport"
)

// A Response is the envelope built once a transport reports a complete
// HTTP response.
//
// A Response is the success value of an execution when its status is
// in the range [200, 300). Otherwise the execution fails with an *Error
// whose Response field references it.
type Response struct {
	// Data is the response body. When the config's response type is
	// transport.Text, Data is the body text; otherwise it is whatever
	// the transport decoded.
	Data interface{}

	// Status is the HTTP status code. It is never zero.
	Status int

	// StatusText is the reason phrase from the status line.
	StatusText string

	// Headers contains the response headers, parsed from the
	// transport's raw header blob.
	Headers header.Response

	// Config is the request configuration, exactly as passed by the
	// caller.
	Config *Config

	// Request is the transport which carried out the exchange. It is
	// intended for introspection and debugging.
	Request transport.Transport
}

// OK reports whether the status is in the range [200, 300).
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
