// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in an Executor to extend it with
// custom functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// execution starts.
	//
	// When Executor fires BeforeExecutionStart, the execution's
	// config, ID, start time and effective timeout are set. No
	// transport exists yet.
	BeforeExecutionStart Event = iota
	// BeforeAttach identifies the event that occurs once the transport
	// is open, before any request header is attached to it.
	//
	// When Executor fires BeforeAttach, the execution's transport and
	// header fields are set. BeforeAttach handlers may edit the header
	// field, which is the executor's working copy of the config
	// headers, to change which header fields are sent.
	BeforeAttach
	// BeforeSend identifies the event that occurs after every request
	// header has been attached to the transport and immediately before
	// the request is sent.
	//
	// When Executor fires BeforeSend, the execution's header field
	// holds exactly the fields that were attached.
	BeforeSend
	// AfterStateChange identifies the event that occurs each time the
	// transport signals a ready state change, up until the execution
	// settles.
	//
	// Handlers can inspect the ready state through the execution's
	// transport. Note that a status 0 observation in the Done ready
	// state does not settle the execution, and the execution's
	// StatusZero counter has not yet been incremented when
	// AfterStateChange fires for it.
	AfterStateChange
	// AfterNetworkError identifies the event that occurs when the
	// transport signals a network error before the execution settles.
	AfterNetworkError
	// AfterTimeout identifies the event that occurs when the transport
	// signals a timeout before the execution settles.
	AfterTimeout
	// AfterExecutionEnd identifies the event that occurs after the
	// execution settles.
	//
	// When Executor fires AfterExecutionEnd, the execution's end time
	// and error are set, and its response is set if one was received.
	// AfterExecutionEnd fires exactly once per execution, before the
	// Call's Done channel is closed.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttach",
	"BeforeSend",
	"AfterStateChange",
	"AfterNetworkError",
	"AfterTimeout",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in an
// execution by Executor, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttach,
		BeforeSend,
		AfterStateChange,
		AfterNetworkError,
		AfterTimeout,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
