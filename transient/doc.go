// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transient sorts the errors produced while exchanging an HTTP
request into the signal a transport must raise for them.

A timeout, whether it came from a deadline on the request context or
from deep inside the network stack, is reported as the Timeout
category. Every other failure to speak HTTP is reported as Network.
Cancellation that is not a deadline is reported as Canceled.
*/
package transient
