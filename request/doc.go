// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the value types which flow through one xhr
request execution: Config (the input), Response and Error (the two
possible outcomes), and Execution (the state of the execution as seen
by event handlers).

A Config is a fully-resolved description of a single HTTP request. URL
resolution, defaults and interceptors are the business of the caller;
by the time a Config reaches the executor it is final.

	cfg, err := request.NewConfig("POST", "https://example.com/upload", body)
	...
	cfg.Headers.Set("Content-Type", "application/json")
	cfg.Timeout = 5 * time.Second
	res, err := executor.Do(cfg)

An execution ends in exactly one of two ways. Either it resolves with a
Response, whose status is in the range [200, 300), or it rejects with
an error. When the HTTP exchange itself went wrong, or returned a
non-2XX status, the error is an *Error, which records what the
failure was:

	var xerr *request.Error
	if errors.As(err, &xerr) {
		switch xerr.Kind() {
		case request.StatusError:  // xerr.Response is set
		case request.TimeoutError: // xerr.Code == request.CodeTimeout
		case request.NetworkError:
		case request.AbortError:   // opt-in, see xhr.Executor.AbortGrace
		}
	}

Errors which occur before anything is sent, for example an invalid
header name, are returned as ordinary errors.
*/
package request
