// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	urlpkg "net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/xhr/header"
	"github.com/gogama/xhr/transport"
)

// A Config describes a single HTTP request for execution.
//
// A Config is owned by the caller. The executor reads it but never
// modifies it, and every Response and Error echoes back the same
// pointer. Callers must not modify a Config while an execution using it
// is in flight.
type Config struct {
	// URL is the request target. It is required.
	URL string

	// Method specifies the HTTP method (GET, POST, PUT, etc.). It is
	// case-insensitive and upper-cased before sending. An empty string
	// means GET.
	Method string

	// Data is the request body, or nil if there is none. It may be a
	// string, []byte, url.Values, io.Reader, or io.ReadCloser.
	//
	// When Data is nil, any Content-Type field in Headers is not sent.
	Data interface{}

	// Headers contains the request header fields, which are sent in
	// order and spelled as given.
	Headers header.Header

	// ResponseType tells the transport how to decode the response
	// body. When it is transport.Text, Response.Data is always the body
	// as a string.
	ResponseType transport.ResponseType

	// Timeout limits the whole exchange. Zero means no limit.
	Timeout time.Duration
}

// NewConfig returns a new Config given a method, URL, and optional
// body.
//
// The method must be empty or a valid HTTP token, and the URL must
// parse. Parameter body may be nil (no body), or it may be a string,
// []byte, url.Values, io.Reader, or io.ReadCloser. Non-nil bodies are
// buffered into a []byte with BodyBytes.
func NewConfig(method, url string, body interface{}) (*Config, error) {
	if !validMethod(method) {
		return nil, fmt.Errorf("xhr/request: invalid method %q", method)
	}
	if _, err := urlpkg.Parse(url); err != nil {
		return nil, err
	}
	var data interface{}
	if body != nil {
		b, err := BodyBytes(body)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return &Config{
		Method: method,
		URL:    url,
		Data:   data,
	}, nil
}

// NormalizedMethod returns the method to send: Method upper-cased, or
// GET if Method is empty.
func (cfg *Config) NormalizedMethod() string {
	if cfg.Method == "" {
		return "GET"
	}
	return strings.ToUpper(cfg.Method)
}

// HasData reports whether the request carries a body.
func (cfg *Config) HasData() bool {
	return cfg.Data != nil
}

func validMethod(method string) bool {
	/*
	     Method         = "OPTIONS"                ; Section 9.2
	                    | "GET"                    ; Section 9.3
	                    | "HEAD"                   ; Section 9.4
	                    | "POST"                   ; Section 9.5
	                    | "PUT"                    ; Section 9.6
	                    | "DELETE"                 ; Section 9.7
	                    | "TRACE"                  ; Section 9.8
	                    | "CONNECT"                ; Section 9.9
	                    | extension-method
	   extension-method = token
	     token          = 1*<any CHAR except CTLs or separators>

	   We don't need to check for length more than 1 because we always
	   interpret the empty string as "GET".
	*/
	return strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
