// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var h Header
		assert.Equal(t, 0, h.Len())
		assert.Nil(t, h.Fields())
		assert.Empty(t, h.Keys())
		assert.Empty(t, h.Get("foo"))
		assert.False(t, h.Has("foo"))
		h.Del("foo")
		assert.Equal(t, 0, h.Len())
	})
	t.Run("insertion order and spelling kept", func(t *testing.T) {
		h := Of("X-B", "2", "content-TYPE", "text/plain", "X-A", "1")
		assert.Equal(t, []Field{
			{"X-B", "2"},
			{"content-TYPE", "text/plain"},
			{"X-A", "1"},
		}, h.Fields())
		assert.Equal(t, []string{"X-B", "content-TYPE", "X-A"}, h.Keys())
		assert.Equal(t, "text/plain", h.Get("Content-Type"))
		assert.True(t, h.Has("x-a"))
	})
	t.Run("Add keeps duplicates", func(t *testing.T) {
		var h Header
		h.Add("Accept", "text/html")
		h.Add("accept", "application/json")
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, "text/html", h.Get("ACCEPT"))
	})
	t.Run("Set replaces first and drops later", func(t *testing.T) {
		h := Of("A", "1", "B", "2", "a", "3", "C", "4")
		h.Set("a", "9")
		assert.Equal(t, []Field{{"A", "9"}, {"B", "2"}, {"C", "4"}}, h.Fields())
		h.Set("D", "5")
		assert.Equal(t, []Field{{"A", "9"}, {"B", "2"}, {"C", "4"}, {"D", "5"}}, h.Fields())
	})
	t.Run("Del removes all matches", func(t *testing.T) {
		h := Of("Content-Type", "a", "X", "1", "content-type", "b")
		h.Del("CONTENT-TYPE")
		assert.Equal(t, []Field{{"X", "1"}}, h.Fields())
	})
	t.Run("Clone is independent", func(t *testing.T) {
		h := Of("A", "1", "B", "2")
		c := h.Clone()
		c.Set("A", "x")
		c.Del("B")
		c.Add("C", "3")
		assert.Equal(t, []Field{{"A", "1"}, {"B", "2"}}, h.Fields())
		assert.Equal(t, []Field{{"A", "x"}, {"C", "3"}}, c.Fields())
	})
	t.Run("Fields is a copy", func(t *testing.T) {
		h := Of("A", "1")
		f := h.Fields()
		f[0].Value = "changed"
		assert.Equal(t, "1", h.Get("A"))
	})
	t.Run("Of odd arguments", func(t *testing.T) {
		assert.Panics(t, func() { Of("A") })
	})
}
