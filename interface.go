// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"github.com/gogama/xhr/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes a request configuration and returns its outcome. Executor
// implements the Doer interface, and any other Doer implementation must
// behave substantially the same as Executor.Do.
//
// Any Doer can be converted into a Requester via the Inflate function.
type Doer interface {
	Do(cfg *request.Config) (*request.Response, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Any Doer can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*request.Response, error)
}

// Header is the interface that wraps the basic Head method.
//
// Any Doer can be used to emulate a Header via the Head function.
type Header interface {
	Head(url string) (*request.Response, error)
}

// Deleter is the interface that wraps the basic Delete method.
//
// Any Doer can be used to emulate a Deleter via the Delete function.
type Deleter interface {
	Delete(url string) (*request.Response, error)
}

// Poster is the interface that wraps the basic Post method.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.NewConfig and request.BodyBytes, namely:
// string; []byte; url.Values; io.Reader; and io.ReadCloser.
//
// Any Doer can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url, contentType string, body interface{}) (*request.Response, error)
}

// Requester is the interface that groups the basic Do, Get, Head,
// Delete, and Post methods.
//
// Any Doer can be converted into a Requester via the Inflate function.
type Requester interface {
	Doer
	Getter
	Header
	Deleter
	Poster
}

// Get uses the specified Doer to issue a GET to the specified URL.
func Get(d Doer, url string) (*request.Response, error) {
	return do(d, "GET", url, nil, "")
}

// Head uses the specified Doer to issue a HEAD to the specified URL.
func Head(d Doer, url string) (*request.Response, error) {
	return do(d, "HEAD", url, nil, "")
}

// Delete uses the specified Doer to issue a DELETE to the specified
// URL.
func Delete(d Doer, url string) (*request.Response, error) {
	return do(d, "DELETE", url, nil, "")
}

// Post uses the specified Doer to issue a POST to the specified URL,
// with the given content type.
//
// If body is nil the content type is not sent, since there is no body
// for it to describe.
func Post(d Doer, url, contentType string, body interface{}) (*request.Response, error) {
	return do(d, "POST", url, body, contentType)
}

func do(d Doer, method, url string, body interface{}, contentType string) (*request.Response, error) {
	cfg, err := request.NewConfig(method, url, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		cfg.Headers.Set("Content-Type", contentType)
	}
	return d.Do(cfg)
}

// Inflate converts any non-nil Doer into a Requester. This may be
// helpful for interop across library boundaries, i.e. if code that only
// has access to a Doer needs to call a function that requires a
// Requester.
func Inflate(d Doer) Requester {
	if d == nil {
		panic("xhr: nil doer")
	}

	if r, ok := d.(Requester); ok {
		return r
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(cfg *request.Config) (*request.Response, error) {
	return i.doer.Do(cfg)
}

func (i inflated) Get(url string) (*request.Response, error) {
	return Get(i.doer, url)
}

func (i inflated) Head(url string) (*request.Response, error) {
	return Head(i.doer, url)
}

func (i inflated) Delete(url string) (*request.Response, error) {
	return Delete(i.doer, url)
}

func (i inflated) Post(url, contentType string, body interface{}) (*request.Response, error) {
	return Post(i.doer, url, contentType, body)
}
