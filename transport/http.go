// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/xhr/transient"
)

// A Doer sends an HTTP request and returns an HTTP response, in the
// same manner as http.Client from the standard net/http package.
type Doer interface {
	Do(r *http.Request) (*http.Response, error)
}

// HTTP is a Transport which carries out its exchange using a Doer,
// typically an *http.Client.
//
// HTTP emulates the observable behavior of a browser XMLHttpRequest:
// ready state advances through HeadersReceived and Loading to Done,
// compressed bodies are decoded transparently, and a failed exchange
// ends in Done with status 0 followed by an Error or Timeout signal.
//
// An HTTP value is good for exactly one exchange. Create a new one,
// with NewHTTP, for each request.
type HTTP struct {
	Listeners

	doer Doer

	lock         sync.Mutex
	state        ReadyState
	responseType ResponseType
	timeout      time.Duration
	method       string
	url          *urlpkg.URL
	header       http.Header
	sent         bool
	status       int
	statusText   string
	rawHeader    string
	body         []byte
	response     interface{}
	err          error
}

// NewHTTP returns a new, unsent HTTP transport which uses doer to
// carry out its exchange. If doer is nil, http.DefaultClient is used.
func NewHTTP(doer Doer) *HTTP {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &HTTP{doer: doer}
}

// SetResponseType sets the response type used to decode the body.
// Unknown response types decode the same as Default.
func (t *HTTP) SetResponseType(rt ResponseType) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.responseType = rt
}

// SetTimeout sets the time limit for the whole exchange, from Send
// until the body is fully read. Zero means no limit.
func (t *HTTP) SetTimeout(d time.Duration) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.timeout = d
}

// Open initializes the exchange. The method must be a valid HTTP token
// and is sent as given. Only asynchronous exchanges are supported:
// if async is false, Open returns ErrSyncUnsupported.
func (t *HTTP) Open(method, url string, async bool) error {
	if !async {
		return ErrSyncUnsupported
	}
	if method == "" || strings.IndexFunc(method, isNotToken) >= 0 {
		return fmt.Errorf("xhr/transport: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return err
	}

	t.lock.Lock()
	if t.sent {
		t.lock.Unlock()
		return ErrInvalidState
	}
	t.state = Opened
	t.method = method
	t.url = u
	t.header = make(http.Header)
	t.lock.Unlock()

	t.Fire(ReadyStateChange)
	return nil
}

// SetRequestHeader adds a request header field. The name is kept
// exactly as given rather than canonicalized. Repeated names
// accumulate values.
func (t *HTTP) SetRequestHeader(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("xhr/transport: invalid header field name %q", name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		// Don't include the value in the error, because it may be sensitive.
		return fmt.Errorf("xhr/transport: invalid header field value for %q", name)
	}

	t.lock.Lock()
	defer t.lock.Unlock()
	if t.state != Opened || t.sent {
		return ErrInvalidState
	}
	t.header[name] = append(t.header[name], value)
	return nil
}

// Send starts the exchange on a new goroutine and returns immediately.
// The body is ignored for GET and HEAD requests.
func (t *HTTP) Send(body []byte) error {
	t.lock.Lock()
	if t.state != Opened || t.sent {
		t.lock.Unlock()
		return ErrInvalidState
	}
	t.sent = true
	method, u, header, timeout := t.method, t.url, t.header, t.timeout
	t.lock.Unlock()

	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	var r io.Reader
	if len(body) > 0 && method != http.MethodGet && method != http.MethodHead {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		cancel()
		return err
	}
	req.Header = header

	go t.exchange(req, cancel)
	return nil
}

func (t *HTTP) exchange(req *http.Request, cancel context.CancelFunc) {
	defer cancel()

	res, err := t.doer.Do(req)
	if err != nil {
		t.fail(err)
		return
	}
	defer func() {
		_ = res.Body.Close()
	}()

	t.lock.Lock()
	t.state = HeadersReceived
	t.status = res.StatusCode
	t.statusText = reasonPhrase(res)
	t.rawHeader = renderHeader(res.Header)
	t.lock.Unlock()
	t.Fire(ReadyStateChange)

	t.advance(Loading)
	b, err := readBody(res)
	if err != nil {
		t.fail(err)
		return
	}

	t.lock.Lock()
	t.body = b
	t.response = decodeResponse(t.responseType, b)
	t.state = Done
	t.lock.Unlock()
	t.Fire(ReadyStateChange)
}

func (t *HTTP) advance(s ReadyState) {
	t.lock.Lock()
	t.state = s
	t.lock.Unlock()
	t.Fire(ReadyStateChange)
}

func (t *HTTP) fail(err error) {
	t.lock.Lock()
	t.state = Done
	t.status = 0
	t.statusText = ""
	t.rawHeader = ""
	t.body = nil
	t.response = nil
	t.err = err
	t.lock.Unlock()

	t.Fire(ReadyStateChange)
	if transient.Categorize(err) == transient.Timeout {
		t.Fire(Timeout)
	} else {
		t.Fire(Error)
	}
}

// ReadyState returns the current ready state.
func (t *HTTP) ReadyState() ReadyState {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.state
}

// Status returns the response status code, or 0 before response
// headers arrive and after a failed exchange.
func (t *HTTP) Status() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.status
}

// StatusText returns the reason phrase from the response status line.
// If the server sent none, the standard text for the status code is
// returned.
func (t *HTTP) StatusText() string {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.statusText
}

// AllResponseHeaders returns the response header blob. Names are
// lower-case and sorted. Repeated fields are joined with ", ", except
// Set-Cookie which gets one line per value.
func (t *HTTP) AllResponseHeaders() string {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.rawHeader
}

// Response returns the decoded response body once the exchange is
// Done, and nil before then or after a failure.
func (t *HTTP) Response() interface{} {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.response
}

// ResponseText returns the response body as a string, regardless of
// the response type.
func (t *HTTP) ResponseText() string {
	t.lock.Lock()
	defer t.lock.Unlock()
	return string(t.body)
}

// Err returns the error which ended a failed exchange, or nil.
func (t *HTTP) Err() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.err
}

func reasonPhrase(res *http.Response) string {
	code := strconv.Itoa(res.StatusCode)
	text := strings.TrimSpace(strings.TrimPrefix(res.Status, code))
	if text == "" {
		return http.StatusText(res.StatusCode)
	}
	return text
}

func renderHeader(h http.Header) string {
	merged := make(map[string][]string, len(h))
	for name, values := range h {
		lower := strings.ToLower(name)
		merged[lower] = append(merged[lower], values...)
	}
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		values := merged[name]
		if name == "set-cookie" {
			for _, v := range values {
				b.WriteString(name + ": " + v + "\r\n")
			}
			continue
		}
		b.WriteString(name + ": " + strings.Join(values, ", ") + "\r\n")
	}
	return b.String()
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
