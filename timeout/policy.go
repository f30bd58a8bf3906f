// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/xhr/request"
)

// A Policy defines a timeout policy which may be plugged into the
// request executor (xhr.Executor) to direct which timeout to set on
// the transport for a request.
//
// A return value of zero, or any negative value, means no timeout is
// set on the transport.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the transport for the
	// request described by cfg.
	Timeout(cfg *request.Config) time.Duration
}

// DefaultPolicy is the default timeout policy. It uses the timeout from
// the request configuration.
var DefaultPolicy Policy = FromConfig

// FromConfig is a built-in timeout policy which returns the Timeout
// field of the request configuration.
var FromConfig Policy = fromConfig{}

// Infinite is a built-in timeout policy which never times out,
// whatever the request configuration says.
var Infinite Policy = Fixed(0)

// Fixed constructs a timeout policy that ignores the request
// configuration and always returns the value d.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// Capped constructs a timeout policy that uses the timeout from the
// request configuration but never allows it to exceed max. A request
// configuration with no timeout gets max.
//
// Use Capped to protect a service from callers who forget to set a
// timeout, or set an unreasonably long one.
func Capped(max time.Duration) Policy {
	return capped(max)
}

type fromConfig struct{}

func (fromConfig) Timeout(cfg *request.Config) time.Duration {
	return cfg.Timeout
}

type fixed time.Duration

func (p fixed) Timeout(_ *request.Config) time.Duration {
	return time.Duration(p)
}

type capped time.Duration

func (p capped) Timeout(cfg *request.Config) time.Duration {
	max := time.Duration(p)
	if cfg.Timeout <= 0 || cfg.Timeout > max {
		return max
	}

	return cfg.Timeout
}
