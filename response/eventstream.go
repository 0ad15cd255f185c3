// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import "github.com/lineCode/lwan/coro"

// SetEventStream marks ctx as a Server-Sent Events response (MIME
// text/event-stream, no Content-Length) and sends headers immediately.
// A no-op (returns false) if headers were already sent. Mirrors
// lwan_response_set_event_stream.
func (fr *Framer) SetEventStream(ctx *Context, status int) bool {
	if ctx.Flags&SentHeaders != 0 {
		return false
	}

	ctx.MIMEType = "text/event-stream"
	ctx.Flags |= NoContentLength
	headers, ok := fr.buildHeaders(ctx, status)
	if !ok {
		return false
	}

	ctx.Flags |= SentHeaders
	fr.logRequest(ctx, status)
	if err := fr.Send.Send(headers, true); err != nil {
		fr.Co.Yield(coro.Abort)
		return false
	}
	return true
}

var (
	eventPrefix = []byte("event: ")
	dataPrefix  = []byte("data: ")
	crlf        = []byte("\r\n")
	eventEnd    = []byte("\r\n\r\n")
)

// SendEvent emits one SSE frame: an optional `event: NAME\r\n` line
// (when event != ""), an optional `data: BYTES` (when ctx.Body is
// non-empty), and a closing "\r\n\r\n", which ends the data line and
// the frame. A frame with an event name and no data therefore ends in
// two blank lines. If headers haven't been
// sent yet, SetEventStream is invoked first with HTTP 200. Clears the
// body buffer and yields coro.MayResume afterwards. Mirrors
// lwan_response_send_event.
func (fr *Framer) SendEvent(ctx *Context, event string) {
	if ctx.Flags&SentHeaders == 0 {
		if !fr.SetEventStream(ctx, 200) {
			return
		}
	}

	var iovecs [][]byte
	if event != "" {
		iovecs = append(iovecs, eventPrefix, []byte(event), crlf)
	}
	if len(ctx.Body) > 0 {
		iovecs = append(iovecs, dataPrefix, ctx.Body)
	}
	iovecs = append(iovecs, eventEnd)

	err := fr.Send.Writev(iovecs)

	ctx.Body = ctx.Body[:0]

	if err != nil {
		fr.Co.Yield(coro.Abort)
		return
	}
	fr.Co.Yield(coro.MayResume)
}
