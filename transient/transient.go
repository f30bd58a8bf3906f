// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"strconv"
	"syscall"
)

// A Category is the category of an error observed while exchanging an
// HTTP request, as reported by function Categorize().
type Category int

const (
	// Not indicates a nil error.
	Not Category = iota
	// Timeout indicates a client-side timeout.
	//
	// Function Categorize() will return Timeout if the error or any of
	// its wrapped causes has a Timeout() function that reports true.
	// This includes context.DeadlineExceeded and syscall.ETIMEDOUT.
	Timeout
	// Canceled indicates the exchange was abandoned because its context
	// was cancelled for a reason other than a deadline.
	//
	// Function Categorize() will return Canceled if the error is not a
	// Timeout and the error or any of its wrapped causes is
	// context.Canceled.
	Canceled
	// Network indicates any other failure to complete the exchange,
	// for example a refused or reset connection, a DNS failure, or a
	// malformed response.
	Network
)

var categoryNames = []string{
	"Not",
	"Timeout",
	"Canceled",
	"Network",
}

// String returns the name of the category.
func (cat Category) String() string {
	if cat < 0 || int(cat) >= len(categoryNames) {
		return "Category(" + strconv.Itoa(int(cat)) + ")"
	}
	return categoryNames[int(cat)]
}

// Categorize returns the category of the given error. A nil error
// produces Not. Every non-nil error produces exactly one of Timeout,
// Canceled or Network.
//
// In assessing the category, Categorize looks at wrapped cause errors
// contained within err, not just err itself.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	if errors.Is(err, context.Canceled) {
		return Canceled
	}

	return Network
}

// Refused reports whether err, or any of its wrapped causes, is
// syscall.ECONNREFUSED.
func Refused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}

// Reset reports whether err, or any of its wrapped causes, is
// syscall.ECONNRESET.
func Reset(err error) bool {
	return errors.Is(err, syscall.ECONNRESET)
}

type hasTimeout interface {
	Timeout() bool
}
