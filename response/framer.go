// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import (
	"github.com/lineCode/lwan/coro"
	"github.com/lineCode/lwan/logx"
)

// Framer drives a Context's header assembly and body emission from
// inside a coroutine, calling out to the three collaborators spec.md
// §4.3 names. One Framer exists per in-flight request; it is always
// constructed with the coroutine handling that request, so SendChunk
// and SendEvent can yield coro.MayResume on its behalf.
type Framer struct {
	Co   *coro.Coroutine
	Send Sender
	Tpl  Templater
	Date Dater

	log logx.Logger
}

// NewFramer builds a Framer bound to co. log may be nil, in which case
// a noop logger is used (matching lwan's compile-time-disabled
// log_request() when built without LWAN_DEBUG_REQUEST).
func NewFramer(co *coro.Coroutine, send Sender, tpl Templater, date Dater, log logx.Logger) *Framer {
	if log == nil {
		log = logx.New("noop")
	}
	return &Framer{Co: co, Send: send, Tpl: tpl, Date: date, log: log}
}

func (fr *Framer) logRequest(ctx *Context, status int) {
	fr.log.Debugln("request:", ctx.Method, "status:", status, "mime:", ctx.MIMEType)
}

func (fr *Framer) buildHeaders(ctx *Context, status int) ([]byte, bool) {
	buf := fr.Co.Scratch(DefaultHeaderBufferSize)
	n, ok := BuildHeaders(buf, ctx, status, fr.Date)
	if !ok {
		return nil, false
	}
	return buf[:n], true
}
