// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected Response
	}{
		{
			name:     "empty",
			raw:      "",
			expected: Response{},
		},
		{
			name:     "only line breaks",
			raw:      "\r\n\n\r\n",
			expected: Response{},
		},
		{
			name: "CRLF",
			raw:  "Content-Type: text/html\r\nContent-Length: 12\r\n",
			expected: Response{
				"content-type":   {"text/html"},
				"content-length": {"12"},
			},
		},
		{
			name: "LF",
			raw:  "content-type: text/html\nx-foo: bar",
			expected: Response{
				"content-type": {"text/html"},
				"x-foo":        {"bar"},
			},
		},
		{
			name: "bare CR",
			raw:  "Content-Type: text/html\rX-Foo: bar\r",
			expected: Response{
				"content-type": {"text/html"},
				"x-foo":        {"bar"},
			},
		},
		{
			name: "mixed line breaks",
			raw:  "a: 1\r\nb: 2\nc: 3\rd: 4",
			expected: Response{
				"a": {"1"},
				"b": {"2"},
				"c": {"3"},
				"d": {"4"},
			},
		},
		{
			name: "colon in value",
			raw:  "Date: Tue, 15 Nov 1994 08:12:31 GMT\r\nLocation: http://ham:8080/eggs\r\n",
			expected: Response{
				"date":     {"Tue, 15 Nov 1994 08:12:31 GMT"},
				"location": {"http://ham:8080/eggs"},
			},
		},
		{
			name: "surrounding whitespace",
			raw:  "  X-Spaced  :   padded value \t\r\n",
			expected: Response{
				"x-spaced": {"padded value"},
			},
		},
		{
			name: "empty value",
			raw:  "x-empty:\r\n",
			expected: Response{
				"x-empty": {""},
			},
		},
		{
			name: "later value overwrites",
			raw:  "X-Dup: first\r\nx-dup: second\r\n",
			expected: Response{
				"x-dup": {"second"},
			},
		},
		{
			name: "set-cookie accumulates",
			raw:  "Set-Cookie: a=1\r\nset-cookie: b=2\r\nSET-COOKIE: c=3\r\n",
			expected: Response{
				"set-cookie": {"a=1", "b=2", "c=3"},
			},
		},
		{
			name: "malformed lines skipped",
			raw:  "HTTP/1.1 200 OK\r\nno separator here\r\n: no name\r\nx-ok: yes\r\n",
			expected: Response{
				"x-ok": {"yes"},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			h := Parse(testCase.raw)
			require.NotNil(t, h)
			assert.Equal(t, testCase.expected, h)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	names := []string{"Content-Type", "X-Request-ID", "cache-control", "ETag", "X-MiXeD-CaSe"}
	values := []string{"application/json", " 1234 ", "no-cache, no-store", `"abc:def"`, "\tx\t"}
	for _, sep := range []string{"\r\n", "\n", "\r"} {
		t.Run(fmt.Sprintf("separator %q", sep), func(t *testing.T) {
			lines := make([]string, len(names))
			expected := make(Response, len(names))
			for i := range names {
				lines[i] = names[i] + ": " + values[i]
				expected[strings.ToLower(names[i])] = []string{strings.TrimSpace(values[i])}
			}
			assert.Equal(t, expected, Parse(strings.Join(lines, sep)))
		})
	}
}

func TestResponse_Accessors(t *testing.T) {
	h := Parse("Content-Type: text/plain\r\nSet-Cookie: a=1\r\nSet-Cookie: b=2\r\n")
	assert.Equal(t, "text/plain", h.Get("Content-Type"))
	assert.Equal(t, "text/plain", h.Get("content-type"))
	assert.Equal(t, "a=1", h.Get("set-cookie"))
	assert.Equal(t, []string{"a=1", "b=2"}, h.Values("Set-Cookie"))
	assert.True(t, h.Has("SET-COOKIE"))
	assert.False(t, h.Has("x-missing"))
	assert.Empty(t, h.Get("x-missing"))
	assert.Nil(t, h.Values("x-missing"))

	var nilHeader Response
	assert.Empty(t, nilHeader.Get("foo"))
	assert.False(t, nilHeader.Has("foo"))
}
