// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, Not, Categorize(nil))
	assert.Equal(t, Network, Categorize(errors.New("foo")))
	assert.Equal(t, Network, Categorize(wrapper{}))
	assert.Equal(t, Network, Categorize(wrapper{errors.New("bar")}))
	assert.Equal(t, Network, Categorize(syscall.ECONNRESET))
	assert.Equal(t, Network, Categorize(&url.Error{Err: syscall.ECONNREFUSED}))
	assert.Equal(t, Timeout, Categorize(syscall.ETIMEDOUT))
	assert.Equal(t, Timeout, Categorize(context.DeadlineExceeded))
	assert.Equal(t, Timeout, Categorize(timeout{}))
	assert.Equal(t, Timeout, Categorize(&url.Error{Err: syscall.ETIMEDOUT}))
	assert.Equal(t, Timeout, Categorize(&url.Error{Err: context.DeadlineExceeded}))
	assert.Equal(t, Timeout, Categorize(wrapper{&url.Error{Err: timeout{}}}))
	assert.Equal(t, Timeout, Categorize(fmt.Errorf("reading body: %w", context.DeadlineExceeded)))
	assert.Equal(t, Timeout, Categorize(timeoutWrapper{true, context.Canceled}))
	assert.Equal(t, Canceled, Categorize(context.Canceled))
	assert.Equal(t, Canceled, Categorize(&url.Error{Err: context.Canceled}))
	assert.Equal(t, Canceled, Categorize(timeoutWrapper{false, context.Canceled}))
	assert.Equal(t, Network, Categorize(timeoutWrapper{false, syscall.ECONNRESET}))
}

func TestRefusedReset(t *testing.T) {
	assert.True(t, Refused(syscall.ECONNREFUSED))
	assert.True(t, Refused(&url.Error{Err: wrapper{syscall.ECONNREFUSED}}))
	assert.False(t, Refused(syscall.ECONNRESET))
	assert.False(t, Refused(nil))
	assert.True(t, Reset(wrapper{syscall.ECONNRESET}))
	assert.False(t, Reset(syscall.ECONNREFUSED))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Not", Not.String())
	assert.Equal(t, "Timeout", Timeout.String())
	assert.Equal(t, "Canceled", Canceled.String())
	assert.Equal(t, "Network", Network.String())
	assert.Equal(t, "Category(-1)", Category(-1).String())
	assert.Equal(t, "Category(4)", Category(4).String())
}

type timeout struct{}

func (err timeout) Error() string {
	return "timeout"
}

func (_ timeout) Timeout() bool {
	return true
}

type wrapper struct {
	wrappedError error
}

func (err wrapper) Error() string {
	return fmt.Sprintf("wrapper - wraps %v", err.wrappedError)
}

func (err wrapper) Unwrap() error {
	return err.wrappedError
}

type timeoutWrapper struct {
	timeout      bool
	wrappedError error
}

func (err timeoutWrapper) Error() string {
	return fmt.Sprintf("timeoutWrapper - timeout %t, wraps %v", err.timeout, err.wrappedError)
}

func (err timeoutWrapper) Timeout() bool {
	return err.timeout
}

func (err timeoutWrapper) Unwrap() error {
	return err.wrappedError
}
