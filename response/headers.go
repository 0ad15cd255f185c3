// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import (
	"net/http"
	"strconv"

	"golang.org/x/net/http/httpguts"
)

// DefaultHeaderBufferSize is the scratch-arena slice BuildHeaders is
// given when a caller doesn't size its own, matching the original's
// DEFAULT_HEADERS_SIZE stack buffer.
const DefaultHeaderBufferSize = 1024

// Product is the value of the trailing "Server:" header line. A
// user-supplied Server header is always dropped, per spec.md §6.
const Product = "lwan-go"

// BuildHeaders assembles the response's HTTP/1.x header block into buf
// in the fixed field order spec.md §4.2 specifies, and returns the
// number of bytes written. It returns ok=false on overflow without
// having written past len(buf) — mirroring RETURN_0_ON_OVERFLOW in
// lwan_prepare_response_header_full exactly: every append checks room
// first, so a too-small buf never gets a partial, truncated header
// block, only a clean "try something smaller" (the default error
// response) signal.
func BuildHeaders(buf []byte, ctx *Context, status int, date Dater) (int, bool) {
	n := 0
	fits := func(extra int) bool { return n+extra <= len(buf) }
	appendString := func(s string) bool {
		if !fits(len(s)) {
			return false
		}
		n += copy(buf[n:], s)
		return true
	}

	if ctx.Flags&HTTP10 != 0 {
		if !appendString("HTTP/1.0 ") {
			return 0, false
		}
	} else {
		if !appendString("HTTP/1.1 ") {
			return 0, false
		}
	}
	if !appendString(strconv.Itoa(status)) || !appendString(" ") || !appendString(http.StatusText(status)) {
		return 0, false
	}

	switch {
	case ctx.Flags&Chunked != 0:
		if !appendString("\r\nTransfer-Encoding: chunked") {
			return 0, false
		}
	case ctx.Flags&NoContentLength != 0:
		// omit entirely
	default:
		length := len(ctx.Body)
		if ctx.HasContentLengthHint {
			length = ctx.ContentLengthHint
		}
		if !appendString("\r\nContent-Length: ") || !appendString(strconv.Itoa(length)) {
			return 0, false
		}
	}

	if !appendString("\r\nContent-Type: ") || !appendString(ctx.MIMEType) {
		return 0, false
	}

	if ctx.Flags&KeepAlive != 0 {
		if !appendString("\r\nConnection: keep-alive") {
			return 0, false
		}
	} else {
		if !appendString("\r\nConnection: close") {
			return 0, false
		}
	}

	dateOverridden, expiresOverridden := false, false
	if status < http.StatusBadRequest && len(ctx.AdditionalHeaders) > 0 {
		for _, h := range ctx.AdditionalHeaders {
			if h.Key == "Server" {
				continue
			}
			if !httpguts.ValidHeaderFieldName(h.Key) || !httpguts.ValidHeaderFieldValue(h.Value) {
				// A header that could smuggle a CRLF into the stream is
				// dropped rather than risk corrupting the head; this can't
				// be an overflow since it consumes no buffer space.
				continue
			}
			if h.Key == "Date" {
				dateOverridden = true
			}
			if h.Key == "Expires" {
				expiresOverridden = true
			}
			if !fits(2) {
				return 0, false
			}
			n += copy(buf[n:], "\r\n")
			if !appendString(h.Key) || !appendString(": ") || !appendString(h.Value) {
				return 0, false
			}
		}
	} else if status == http.StatusUnauthorized {
		for _, h := range ctx.AdditionalHeaders {
			if h.Key == "WWW-Authenticate" {
				if !appendString("\r\nWWW-Authenticate: ") || !appendString(h.Value) {
					return 0, false
				}
				break
			}
		}
	}

	if !dateOverridden {
		d := date.Date()
		if !appendString("\r\nDate: ") || !appendString(string(d[:])) {
			return 0, false
		}
	}
	if !expiresOverridden {
		e := date.Expires()
		if !appendString("\r\nExpires: ") || !appendString(string(e[:])) {
			return 0, false
		}
	}

	if ctx.Flags&AllowCORS != 0 {
		if !appendString("\r\nAccess-Control-Allow-Origin: *" +
			"\r\nAccess-Control-Allow-Methods: GET, POST, OPTIONS" +
			"\r\nAccess-Control-Allow-Credentials: true" +
			"\r\nAccess-Control-Allow-Headers: Origin, Accept, Content-Type") {
			return 0, false
		}
	}

	if !appendString("\r\nServer: " + Product + "\r\n\r\n") {
		return 0, false
	}

	return n, true
}
