// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, BeforeExecutionStart, events[BeforeExecutionStart])
	assert.Equal(t, BeforeAttach, events[BeforeAttach])
	assert.Equal(t, BeforeSend, events[BeforeSend])
	assert.Equal(t, AfterStateChange, events[AfterStateChange])
	assert.Equal(t, AfterNetworkError, events[AfterNetworkError])
	assert.Equal(t, AfterTimeout, events[AfterTimeout])
	assert.Equal(t, AfterExecutionEnd, events[AfterExecutionEnd])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeExecutionStart", BeforeExecutionStart.Name())
	assert.Equal(t, "BeforeAttach", BeforeAttach.Name())
	assert.Equal(t, "BeforeSend", BeforeSend.Name())
	assert.Equal(t, "AfterStateChange", AfterStateChange.Name())
	assert.Equal(t, "AfterNetworkError", AfterNetworkError.Name())
	assert.Equal(t, "AfterTimeout", AfterTimeout.Name())
	assert.Equal(t, "AfterExecutionEnd", AfterExecutionEnd.String())
}
