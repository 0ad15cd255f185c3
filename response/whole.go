// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import (
	"net/http"

	"github.com/lineCode/lwan/coro"
)

// Respond is the whole-response emission mode: lwan_response ported
// 1:1. If ctx has no MIME type set, it delegates to
// DefaultErrorResponse (handlers that never set one are treated as
// erroring out). A registered Stream callback is cleared and then
// invoked exactly once, breaking recursion on error; if it reports
// >= 400 a default error response replaces its output.
func (fr *Framer) Respond(ctx *Context, status int) {
	if ctx.Flags&Chunked != 0 {
		// A final Respond after chunked mode just sends the terminator.
		ctx.Body = ctx.Body[:0]
		fr.SendChunk(ctx)
		fr.logRequest(ctx, status)
		return
	}

	if ctx.Flags&SentHeaders != 0 {
		fr.log.Debugln("response: headers already sent, ignoring call")
		return
	}

	if ctx.MIMEType == "" {
		fr.DefaultErrorResponse(ctx, status)
		return
	}

	fr.logRequest(ctx, status)

	if ctx.Stream != nil {
		cb := ctx.Stream
		ctx.Stream = nil // avoid eternal recursion on errors
		callbackStatus := cb(ctx)
		if callbackStatus >= http.StatusBadRequest {
			fr.DefaultErrorResponse(ctx, callbackStatus)
		}
		return
	}

	headers, ok := fr.buildHeaders(ctx, status)
	if !ok {
		fr.DefaultErrorResponse(ctx, http.StatusInternalServerError)
		return
	}

	ctx.Flags |= SentHeaders

	var err error
	if methodHasBody(ctx.Method) {
		err = fr.Send.Writev([][]byte{headers, ctx.Body})
	} else {
		err = fr.Send.Send(headers, false)
	}
	if err != nil {
		fr.Co.Yield(coro.Abort)
	}
}
