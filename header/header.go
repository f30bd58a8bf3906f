// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

import (
	"strings"
)

// A Field is one request header line.
type Field struct {
	Name  string
	Value string
}

// A Header is an ordered set of request header fields.
//
// Unlike http.Header, a Header remembers insertion order and does not
// canonicalize names: fields reach the transport in the order they
// were added, spelled the way they were added. Lookups are
// case-insensitive.
//
// The zero value is an empty Header ready to use.
type Header struct {
	fields []Field
}

// Of builds a Header from alternating name and value strings. It
// panics if given an odd number of arguments.
func Of(kv ...string) Header {
	if len(kv)%2 != 0 {
		panic("xhr/header: odd number of arguments")
	}
	var h Header
	for i := 0; i < len(kv); i += 2 {
		h.Add(kv[i], kv[i+1])
	}
	return h
}

// Add appends a field, keeping any existing fields with the same name.
func (h *Header) Add(name, value string) {
	h.fields = append(h.fields, Field{Name: name, Value: value})
}

// Set replaces the value of the first field matching name and removes
// any later matches. If there is no match, the field is appended.
func (h *Header) Set(name, value string) {
	i := h.index(name)
	if i < 0 {
		h.Add(name, value)
		return
	}
	h.fields[i].Value = value
	h.delFrom(i+1, name)
}

// Get returns the value of the first field matching name, or the empty
// string.
func (h Header) Get(name string) string {
	i := h.index(name)
	if i < 0 {
		return ""
	}
	return h.fields[i].Value
}

// Has reports whether any field matches name.
func (h Header) Has(name string) bool {
	return h.index(name) >= 0
}

// Del removes every field matching name.
func (h *Header) Del(name string) {
	h.delFrom(0, name)
}

// Len returns the number of fields.
func (h Header) Len() int {
	return len(h.fields)
}

// Fields returns the fields in insertion order, or nil if there are
// none. The returned slice is a copy.
func (h Header) Fields() []Field {
	if len(h.fields) == 0 {
		return nil
	}
	f := make([]Field, len(h.fields))
	copy(f, h.fields)
	return f
}

// Clone returns a deep copy of h.
func (h Header) Clone() Header {
	return Header{fields: h.Fields()}
}

// Keys returns the field names in insertion order, one per field.
// Together with Get and Set it lets a *Header act as an OpenTelemetry
// propagation.TextMapCarrier.
func (h Header) Keys() []string {
	keys := make([]string, len(h.fields))
	for i := range h.fields {
		keys[i] = h.fields[i].Name
	}
	return keys
}

func (h Header) index(name string) int {
	for i := range h.fields {
		if strings.EqualFold(h.fields[i].Name, name) {
			return i
		}
	}
	return -1
}

func (h *Header) delFrom(start int, name string) {
	j := start
	for i := start; i < len(h.fields); i++ {
		if !strings.EqualFold(h.fields[i].Name, name) {
			h.fields[j] = h.fields[i]
			j++
		}
	}
	for k := j; k < len(h.fields); k++ {
		h.fields[k] = Field{}
	}
	h.fields = h.fields[:j]
}
