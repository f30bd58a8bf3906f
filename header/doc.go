// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package header contains the two header shapes used by the xhr
adapter.

Header is the request side: an ordered list of name/value fields,
attached to the transport in insertion order and with names exactly as
the caller spelled them.

Response is the response side: the case-insensitive mapping produced
by Parse from the raw header blob a transport reports once response
headers have arrived.

	h := header.Parse("Content-Type: text/plain\r\nX-Id: 7\r\n")
	h.Get("content-type") // "text/plain"
*/
package header
