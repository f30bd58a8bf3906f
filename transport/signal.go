// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"sync"
)

// A Signal identifies a lifecycle notification raised by a Transport.
type Signal int

const (
	// ReadyStateChange is raised each time the ready state changes.
	ReadyStateChange Signal = iota
	// Error is raised after the exchange failed for a reason other
	// than a timeout. It is preceded by a ReadyStateChange to Done,
	// with status 0.
	Error
	// Timeout is raised after the exchange exceeded its time limit. It
	// is preceded by a ReadyStateChange to Done, with status 0.
	Timeout
	// signalSentinel provides the total number of signals typed as a
	// Signal.
	signalSentinel

	// numSignals provides the total number of signals as an int.
	numSignals = int(signalSentinel)
)

var signalNames = []string{
	"ReadyStateChange",
	"Error",
	"Timeout",
}

// Signals returns a slice containing every signal.
func Signals() []Signal {
	return []Signal{
		ReadyStateChange,
		Error,
		Timeout,
	}
}

// Name returns the name of the signal.
func (sig Signal) Name() string {
	return signalNames[int(sig)]
}

// String returns the name of the signal.
func (sig Signal) String() string {
	return sig.Name()
}

// Listeners holds the listener chains of a Transport, one chain per
// signal. Implementations of Transport may embed it to get the On
// method. The zero value is ready to use, and Listeners is safe for
// concurrent use.
type Listeners struct {
	lock   sync.Mutex
	chains [][]func()
}

// On adds fn to the back of the listener chain for sig.
func (l *Listeners) On(sig Signal, fn func()) {
	if fn == nil {
		panic("xhr/transport: nil listener")
	}
	if sig < 0 || int(sig) >= numSignals {
		panic("xhr/transport: unknown signal")
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	if l.chains == nil {
		l.chains = make([][]func(), numSignals)
	}
	l.chains[sig] = append(l.chains[sig], fn)
}

// Fire runs the listener chain for sig, in registration order, on the
// calling goroutine.
func (l *Listeners) Fire(sig Signal) {
	l.lock.Lock()
	var chain []func()
	if int(sig) < len(l.chains) {
		chain = l.chains[sig]
	}
	l.lock.Unlock()

	for _, fn := range chain {
		fn()
	}
}
