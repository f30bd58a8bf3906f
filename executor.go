// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gogama/xhr/header"
	"github.com/gogama/xhr/request"
	"github.com/gogama/xhr/timeout"
	"github.com/gogama/xhr/transport"
)

var emptyHandlers = HandlerGroup{}

// An Executor carries out single HTTP requests over a transport and
// settles each one with exactly one outcome. Its zero value is a valid
// configuration.
//
// The zero value executor creates a transport.HTTP on
// http.DefaultClient for every request, uses timeout.DefaultPolicy as
// the timeout policy, runs no event handlers and does not log.
//
// Every request gets a fresh transport, which is never shared. Executor
// is safe for concurrent use by multiple goroutines.
//
// An execution ends in one of these ways:
//
// • the transport reaches the Done ready state with a status in the
// range [200, 300), and the outcome is a *request.Response;
//
// • the transport reaches the Done ready state with any other non-zero
// status, and the outcome is a *request.Error whose Response is set
// and whose message is "Request failed with status code N";
//
// • the transport signals Error, and the outcome is a *request.Error
// with the message "Network Error";
//
// • the transport signals Timeout, and the outcome is a *request.Error
// with the message "Timeout of N ms exceed" and the code ECONNABORTED;
//
// • setting up the transport fails, and the outcome is the setup
// error, wrapped.
//
// Reaching the Done ready state with status 0 is not an outcome. A
// transport that does so normally follows up with an Error or Timeout
// signal. If it never does, the execution never settles, unless
// AbortGrace is set.
type Executor struct {
	// NewTransport creates the transport for one request. It must
	// return a new, unsent transport each time it is called.
	//
	// If NewTransport is nil, a transport.HTTP using
	// http.DefaultClient is created for each request.
	NewTransport func() transport.Transport
	// TimeoutPolicy specifies the timeout to set on the transport.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used, which
	// takes the timeout from the request configuration.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during an execution.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger receives debug-level narration of each execution.
	//
	// If Logger is nil, nothing is logged.
	Logger *zap.Logger
	// AbortGrace bounds how long an execution waits for an Error or
	// Timeout signal after the transport reaches the Done ready state
	// with status 0. When the grace period elapses with no such
	// signal, the execution fails with a *request.Error with the
	// message "Request aborted" and the code ECONNABORTED.
	//
	// If AbortGrace is zero or negative, the execution waits
	// indefinitely.
	AbortGrace time.Duration
}

// Go starts executing cfg and returns a Call which settles when the
// execution ends. Go does not wait for the HTTP exchange.
//
// The configuration is never modified, and every outcome refers back to
// the same cfg pointer. The caller must not modify cfg until the Call
// settles.
func (x *Executor) Go(cfg *request.Config) *Call {
	c := newCall()
	ex := &exchange{
		call:     c,
		handlers: x.handlers(),
		logger:   x.logger(),
		grace:    x.AbortGrace,
	}
	c.exec = &ex.e
	ex.e.Config = cfg
	ex.e.ID = uuid.NewString()
	ex.e.Timeout = x.timeoutPolicy().Timeout(cfg)
	if ex.e.Timeout < 0 {
		ex.e.Timeout = 0
	}
	ex.logger = ex.logger.With(
		zap.String("id", ex.e.ID),
		zap.String("method", cfg.NormalizedMethod()),
		zap.String("url", cfg.URL),
	)

	ex.e.Start = time.Now()
	ex.handlers.run(BeforeExecutionStart, &ex.e)
	ex.start(x.newTransport)
	return c
}

// Do executes cfg and waits for the outcome.
//
// On success, Do returns the response and a nil error. Otherwise it
// returns a nil response and an error, which is a *request.Error when
// the failure happened during the HTTP exchange. For a status error,
// the *request.Error carries the response.
func (x *Executor) Do(cfg *request.Config) (*request.Response, error) {
	return x.Go(cfg).Result()
}

// Get issues a GET to the specified URL and waits for the outcome.
//
// To make a request with custom headers, use request.NewConfig and
// Executor.Do.
func (x *Executor) Get(url string) (*request.Response, error) {
	return Get(x, url)
}

// Head issues a HEAD to the specified URL and waits for the outcome.
//
// To make a request with custom headers, use request.NewConfig and
// Executor.Do.
func (x *Executor) Head(url string) (*request.Response, error) {
	return Head(x, url)
}

// Delete issues a DELETE to the specified URL and waits for the
// outcome.
//
// To make a request with custom headers, use request.NewConfig and
// Executor.Do.
func (x *Executor) Delete(url string) (*request.Response, error) {
	return Delete(x, url)
}

// Post issues a POST to the specified URL and waits for the outcome.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.NewConfig and request.BodyBytes, namely:
// string; []byte; url.Values; io.Reader; and io.ReadCloser.
//
// To make a request with custom headers, use request.NewConfig and
// Executor.Do.
func (x *Executor) Post(url, contentType string, body interface{}) (*request.Response, error) {
	return Post(x, url, contentType, body)
}

func (x *Executor) newTransport() transport.Transport {
	if x.NewTransport == nil {
		return transport.NewHTTP(http.DefaultClient)
	}

	t := x.NewTransport()
	if t == nil {
		panic("xhr: nil transport")
	}

	return t
}

func (x *Executor) timeoutPolicy() timeout.Policy {
	if x.TimeoutPolicy == nil {
		return timeout.DefaultPolicy
	}

	return x.TimeoutPolicy
}

func (x *Executor) handlers() *HandlerGroup {
	if x.Handlers == nil {
		return &emptyHandlers
	}

	return x.Handlers
}

func (x *Executor) logger() *zap.Logger {
	if x.Logger == nil {
		return zap.NewNop()
	}

	return x.Logger
}

// An exchange is the executor's private state for one execution.
//
// Once the transport's listeners are registered, every read or write of
// e happens with lock held.
type exchange struct {
	e        request.Execution
	call     *Call
	handlers *HandlerGroup
	logger   *zap.Logger
	grace    time.Duration

	lock  sync.Mutex
	abort *time.Timer
}

func (ex *exchange) start(newTransport func() transport.Transport) {
	cfg := ex.e.Config
	body, err := request.BodyBytes(cfg.Data)
	if err != nil {
		ex.settle(nil, fmt.Errorf("xhr: %w", err))
		return
	}

	t := newTransport()
	ex.e.Transport = t
	if cfg.ResponseType != transport.Default {
		t.SetResponseType(cfg.ResponseType)
	}
	if ex.e.Timeout > 0 {
		t.SetTimeout(ex.e.Timeout)
	}
	if err = t.Open(cfg.NormalizedMethod(), cfg.URL, true); err != nil {
		ex.settle(nil, fmt.Errorf("xhr: open: %w", err))
		return
	}

	ex.e.Header = cfg.Headers.Clone()
	ex.handlers.run(BeforeAttach, &ex.e)

	for _, f := range ex.e.Header.Fields() {
		if !cfg.HasData() && isContentType(f.Name) {
			ex.e.Header.Del(f.Name)
			continue
		}
		if err = t.SetRequestHeader(f.Name, f.Value); err != nil {
			ex.settle(nil, fmt.Errorf("xhr: set request header %q: %w", f.Name, err))
			return
		}
	}

	ex.handlers.run(BeforeSend, &ex.e)
	ex.logger.Debug("sending request", zap.Int("headers", ex.e.Header.Len()), zap.Duration("timeout", ex.e.Timeout))

	t.On(transport.ReadyStateChange, ex.stateChange)
	t.On(transport.Error, ex.networkError)
	t.On(transport.Timeout, ex.timeout)

	if err = t.Send(body); err != nil {
		ex.settle(nil, fmt.Errorf("xhr: send: %w", err))
	}
}

func isContentType(name string) bool {
	return strings.EqualFold(name, "content-type")
}

func (ex *exchange) stateChange() {
	ex.lock.Lock()
	defer ex.lock.Unlock()

	if ex.e.Ended() {
		return
	}

	ex.handlers.run(AfterStateChange, &ex.e)

	t := ex.e.Transport
	if t.ReadyState() != transport.Done {
		return
	}

	status := t.Status()
	if status == 0 {
		ex.e.StatusZero++
		ex.logger.Debug("done with status 0, awaiting error signal", zap.Int("count", ex.e.StatusZero))
		if ex.grace > 0 && ex.abort == nil {
			ex.abort = time.AfterFunc(ex.grace, ex.aborted)
		}
		return
	}

	cfg := ex.e.Config
	res := &request.Response{
		Status:     status,
		StatusText: t.StatusText(),
		Headers:    header.Parse(t.AllResponseHeaders()),
		Config:     cfg,
		Request:    t,
	}
	if cfg.ResponseType == transport.Text {
		res.Data = t.ResponseText()
	} else {
		res.Data = t.Response()
	}

	if res.OK() {
		ex.settleLocked(res, nil)
	} else {
		ex.settleLocked(res, request.NewStatusError(res))
	}
}

func (ex *exchange) networkError() {
	ex.lock.Lock()
	defer ex.lock.Unlock()

	if ex.e.Ended() {
		return
	}

	err := request.NewNetworkError(ex.e.Config, ex.e.Transport)
	ex.e.Err = err
	ex.handlers.run(AfterNetworkError, &ex.e)
	ex.settleLocked(nil, err)
}

func (ex *exchange) timeout() {
	ex.lock.Lock()
	defer ex.lock.Unlock()

	if ex.e.Ended() {
		return
	}

	err := request.NewTimeoutError(ex.e.Config, ex.e.Transport, ex.e.Timeout)
	ex.e.Err = err
	ex.handlers.run(AfterTimeout, &ex.e)
	ex.settleLocked(nil, err)
}

func (ex *exchange) aborted() {
	ex.lock.Lock()
	defer ex.lock.Unlock()

	if ex.e.Ended() {
		return
	}

	ex.settleLocked(nil, request.NewAbortError(ex.e.Config, ex.e.Transport))
}

func (ex *exchange) settle(res *request.Response, err error) {
	ex.lock.Lock()
	defer ex.lock.Unlock()

	if ex.e.Ended() {
		return
	}

	ex.settleLocked(res, err)
}

func (ex *exchange) settleLocked(res *request.Response, err error) {
	if ex.abort != nil {
		ex.abort.Stop()
	}

	ex.e.Response = res
	ex.e.Err = err
	ex.e.End = time.Now()

	if err == nil {
		ex.logger.Debug("request succeeded",
			zap.Int("status", res.Status),
			zap.String("outcome", "response"),
			zap.Duration("duration", ex.e.Duration()))
	} else {
		ex.logger.Debug("request failed",
			zap.Int("status", ex.e.StatusCode()),
			zap.String("outcome", outcome(err)),
			zap.Duration("duration", ex.e.Duration()),
			zap.Error(err))
	}

	ex.handlers.run(AfterExecutionEnd, &ex.e)

	if err != nil {
		res = nil
	}
	ex.call.complete(res, err)
}

func outcome(err error) string {
	if re, ok := err.(*request.Error); ok {
		return re.Kind().String()
	}

	return "SetupError"
}
