// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignals(t *testing.T) {
	assert.Len(t, signalNames, numSignals)
	assert.Len(t, Signals(), numSignals)
	signals := Signals()
	assert.Equal(t, ReadyStateChange, signals[ReadyStateChange])
	assert.Equal(t, Error, signals[Error])
	assert.Equal(t, Timeout, signals[Timeout])
}

func TestSignal_Name(t *testing.T) {
	assert.Equal(t, "ReadyStateChange", ReadyStateChange.Name())
	assert.Equal(t, "Error", Error.String())
	assert.Equal(t, "Timeout", Timeout.Name())
}

func TestReadyState_String(t *testing.T) {
	assert.Equal(t, "Unsent", Unsent.String())
	assert.Equal(t, "Opened", Opened.String())
	assert.Equal(t, "HeadersReceived", HeadersReceived.String())
	assert.Equal(t, "Loading", Loading.String())
	assert.Equal(t, "Done", Done.String())
	assert.Equal(t, "ReadyState(?)", ReadyState(99).String())
}

func TestListeners(t *testing.T) {
	var calls []string
	l := &Listeners{}
	t.Run("On", func(t *testing.T) {
		assert.Panics(t, func() { l.On(Error, nil) })
		assert.Panics(t, func() { l.On(Signal(123), func() {}) })
		assert.Panics(t, func() { l.On(Signal(-1), func() {}) })
		l.On(ReadyStateChange, func() { calls = append(calls, "1.ReadyStateChange") })
		l.On(ReadyStateChange, func() { calls = append(calls, "2.ReadyStateChange") })
		l.On(Timeout, func() { calls = append(calls, "1.Timeout") })
	})
	t.Run("Fire", func(t *testing.T) {
		l.Fire(Error)
		assert.Empty(t, calls)
		l.Fire(ReadyStateChange)
		assert.Equal(t, []string{"1.ReadyStateChange", "2.ReadyStateChange"}, calls)
		calls = calls[:0]
		l.Fire(Timeout)
		assert.Equal(t, []string{"1.Timeout"}, calls)
	})
	t.Run("zero value", func(t *testing.T) {
		var z Listeners
		assert.NotPanics(t, func() { z.Fire(Timeout) })
	})
}
