// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"context"
	"sync"

	"github.com/gogama/xhr/request"
)

// A Call is the pending outcome of one execution started by
// Executor.Go. It settles exactly once, with either a response or an
// error, and never changes afterward.
type Call struct {
	done chan struct{}
	once sync.Once
	exec *request.Execution
	res  *request.Response
	err  error
}

func newCall() *Call {
	return &Call{done: make(chan struct{})}
}

// Done returns a channel that is closed when the call settles.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Result waits for the call to settle and returns its outcome. Exactly
// one of the return values is non-nil.
func (c *Call) Result() (*request.Response, error) {
	<-c.done
	return c.res, c.err
}

// Wait waits for the call to settle, or for ctx to be done, whichever
// happens first. If ctx is done first, Wait returns ctx.Err() and the
// execution carries on regardless, since there is no way to cancel an
// in-flight transport.
func (c *Call) Wait(ctx context.Context) (*request.Response, error) {
	select {
	case <-c.done:
		return c.res, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Execution returns the final state of the execution. It waits for the
// call to settle.
func (c *Call) Execution() *request.Execution {
	<-c.done
	return c.exec
}

func (c *Call) complete(res *request.Response, err error) {
	c.once.Do(func() {
		c.res = res
		c.err = err
		close(c.done)
	})
}
