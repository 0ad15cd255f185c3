// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import (
	"strconv"

	"github.com/lineCode/lwan/coro"
)

var lastChunk = []byte("0\r\n\r\n")

// SetChunked marks ctx for chunked transfer encoding and sends headers
// immediately, with more data hinted to follow. A no-op (returns false)
// if headers were already sent. Mirrors lwan_response_set_chunked.
func (fr *Framer) SetChunked(ctx *Context, status int) bool {
	if ctx.Flags&SentHeaders != 0 {
		return false
	}

	ctx.Flags |= Chunked
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

// SendChunk sends ctx.Body as one chunk (`hex(len)\r\nbytes\r\n`),
// clears the body buffer, and yields coro.MayResume so the I/O thread
// can wait for writability before the next chunk. An empty body sends
// the terminating "0\r\n\r\n" chunk instead. If headers haven't been
// sent yet, SetChunked is invoked first with HTTP 200 — matching the
// original's lazy-chunked-mode convenience path.
func (fr *Framer) SendChunk(ctx *Context) {
	if ctx.Flags&SentHeaders == 0 {
		if !fr.SetChunked(ctx, 200) {
			return
		}
	}

	if len(ctx.Body) == 0 {
		if err := fr.Send.Send(lastChunk, false); err != nil {
			fr.Co.Yield(coro.Abort)
		}
		return
	}

	sizeLine := strconv.AppendUint(nil, uint64(len(ctx.Body)), 16)
	sizeLine = append(sizeLine, '\r', '\n')

	err := fr.Send.Writev([][]byte{sizeLine, ctx.Body, {'\r', '\n'}})

	ctx.Body = ctx.Body[:0]

	if err != nil {
		fr.Co.Yield(coro.Abort)
		return
	}
	fr.Co.Yield(coro.MayResume)
}
