// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transport defines the transport primitive the xhr executor
drives, and provides HTTP, an implementation on top of net/http.

A Transport represents exactly one HTTP exchange. It is opened,
configured, given request headers, and sent once. While the exchange
is in flight the transport raises signals: ReadyStateChange whenever
its ready state advances, and then, if the exchange failed, exactly one
of Error or Timeout. When the exchange fails, the transport moves to
the Done state with status 0 and raises ReadyStateChange before the
failure signal, so an observer looking only at ready state cannot tell
a failed exchange from a completed one.

	t := transport.NewHTTP(http.DefaultClient)
	t.SetTimeout(2 * time.Second)
	if err := t.Open("GET", "https://example.com", true); err != nil {
		...
	}
	t.On(transport.ReadyStateChange, func() {
		if t.ReadyState() == transport.Done && t.Status() != 0 {
			fmt.Println(t.Status(), t.ResponseText())
		}
	})
	t.On(transport.Error, func() { ... })
	t.On(transport.Timeout, func() { ... })
	err := t.Send(nil)

Any other implementation of Transport, for example one backed by a
browser's XMLHttpRequest under WebAssembly, or a test double, must
follow the same signal ordering.
*/
package transport
