// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	"net/url"
)

const badBodyTypeMsg = "xhr/request: invalid type (for body use nil, " +
	"string, []byte, url.Values, io.Reader or io.ReadCloser)"

// BodyBytes flattens a Config.Data value into the bytes handed to
// Transport.Send.
//
// Supported types:
//
// • nil yields a nil slice. The request has no body.
//
// • string and []byte are passed through. An empty string yields an
// empty, non-nil slice, so the request still counts as having a body.
//
// • url.Values is form-encoded with its Encode method.
//
// • io.Reader is drained, and closed if it is also an io.Closer. A
// read or close error is returned with a nil slice.
//
// Any other type is an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case url.Values:
		return []byte(x.Encode()), nil
	case io.Reader:
		return drain(x)
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}

func drain(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if c, ok := r.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
