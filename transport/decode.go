// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// readBody reads the whole response body, undoing any content coding
// the standard library has not already removed.
func readBody(res *http.Response) ([]byte, error) {
	var r io.Reader = res.Body
	if !res.Uncompressed {
		switch strings.ToLower(strings.TrimSpace(res.Header.Get("Content-Encoding"))) {
		case "gzip", "x-gzip":
			gz, err := gzip.NewReader(res.Body)
			if err == io.EOF {
				return []byte{}, nil
			} else if err != nil {
				return nil, err
			}
			defer func() {
				_ = gz.Close()
			}()
			r = gz
		case "br":
			r = brotli.NewReader(res.Body)
		}
	}
	return io.ReadAll(r)
}

func decodeResponse(rt ResponseType, b []byte) interface{} {
	switch rt {
	case ArrayBuffer:
		return b
	case JSON:
		var v interface{}
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
		return v
	default:
		return string(b)
	}
}
