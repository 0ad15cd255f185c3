// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

// Sender is the I/O-layer collaborator a Framer sends bytes through.
// Send/Writev block from the handler's point of view until the bytes
// are written, as spec.md §4.3 describes. An implementation may get
// there by yielding coro.MayResume on the Framer's coroutine while the
// connection would block; the reference ioloop.ConnSender instead lets
// the coroutine's goroutine park in Go's netpoller and never yields.
type Sender interface {
	Send(b []byte, moreComing bool) error
	Writev(iovecs [][]byte) error
}

// Templater renders the fixed error-page template used by
// DefaultErrorResponse. The template engine itself is an out-of-scope
// collaborator (spec.md §1); callers supply whatever renders
// {shortMessage, longMessage} into HTML.
type Templater interface {
	Render(shortMessage, longMessage string) []byte
}

// Dater supplies the two 29-byte RFC 1123 timestamps spec.md §6
// requires (Date and Expires), refreshed on whatever cadence the I/O
// layer chooses (the reference ioloop.Dater refreshes once per event
// loop tick rather than per response).
type Dater interface {
	Date() [29]byte
	Expires() [29]byte
}
