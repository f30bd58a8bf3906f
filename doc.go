// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package xhr carries out a single HTTP request over an event-driven
transport and settles it with exactly one outcome: a response, or a
classified error.

Create an Executor to begin making requests.

	x := &xhr.Executor{}
	res, err := x.Get("https://www.example.com")
	...
	res, err := x.Post("https://www.example.com/upload",
		"application/json", &buf)

For full control over the request, build a request.Config and execute
it. Execution is asynchronous: Go returns a Call immediately, and the
Call settles when the exchange ends.

	cfg := &request.Config{
		Method:       "PUT",
		URL:          "https://www.example.com/widgets/1",
		Data:         `{"name":"sprocket"}`,
		Headers:      header.Of("Content-Type", "application/json"),
		ResponseType: transport.JSON,
		Timeout:      5 * time.Second,
	}
	call := x.Go(cfg)
	...
	res, err := call.Result()

Every error that happens during the HTTP exchange is a *request.Error.
Use its Kind method to tell a status error, which carries the response,
from a network error or a timeout.

	var re *request.Error
	if errors.As(err, &re) && re.Kind() == request.StatusError {
		log.Printf("server said %d", re.Response.Status)
	}

A response status of 2XX is a success. Every other non-zero status is a
status error. A Content-Type header is never sent on a request with no
body.

For control over how the executor talks HTTP, supply a transport
factory. The default factory makes a transport.HTTP using
http.DefaultClient.

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	x := &xhr.Executor{
		NewTransport: func() transport.Transport {
			return transport.NewHTTP(doer)
		},
	}

To hook into the fine-grained details of the executor's logic, install
a handler into the appropriate handler chain:

	handlers := &xhr.HandlerGroup{}
	handlers.PushBack(xhr.BeforeSend, xhr.HandlerFunc(
		func(_ xhr.Event, e *request.Execution) {
			log.Printf("Sending %s to %s", e.ID, e.Config.URL)
		})
	)
	x := &xhr.Executor{
		Handlers: handlers,
	}

Package xhr provides basic interfaces for each method of the executor
(Doer, Getter, Header, Deleter, and Poster); a combined interface that
composes all the basic methods (Requester); and utility functions for
working with a Doer (Inflate, Get, Head, Delete, and Post).
*/
package xhr
