// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

import (
	"strings"
)

// SetCookie is the one response header whose repeated occurrences are
// kept as a sequence rather than overwritten.
const SetCookie = "set-cookie"

// A Response is the parsed form of a raw response header blob. Keys
// are lower-case header names.
//
// Every name maps to a single value except SetCookie, which maps to
// every value in the order received.
type Response map[string][]string

// Parse turns a raw, line-delimited header blob into a Response.
// Lines may end in CRLF, LF or a bare CR.
//
// Each non-empty line must have the form "name: value". Only the first
// colon separates the name from the value, so values may contain
// colons. Names are trimmed and lower-cased, values are trimmed. A
// repeated name overwrites the earlier value, except for SetCookie
// whose values accumulate. Lines with no colon, or with an empty name,
// are skipped: Parse never fails, and the empty blob yields an empty,
// non-nil Response.
func Parse(raw string) Response {
	h := make(Response)
	for _, line := range strings.FieldsFunc(raw, isLineBreak) {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(line[:i]))
		if name == "" {
			continue
		}
		value := strings.TrimSpace(line[i+1:])
		if name == SetCookie {
			h[name] = append(h[name], value)
		} else {
			h[name] = []string{value}
		}
	}
	return h
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// Get returns the value of the named header, or the empty string if
// there is none. The name is matched case-insensitively. For
// SetCookie, the first value is returned; use Values to see them all.
func (h Response) Get(name string) string {
	v := h[strings.ToLower(name)]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Values returns all values of the named header. The returned slice
// must not be modified.
func (h Response) Values(name string) []string {
	return h[strings.ToLower(name)]
}

// Has reports whether the named header is present.
func (h Response) Has(name string) bool {
	_, ok := h[strings.ToLower(name)]
	return ok
}
