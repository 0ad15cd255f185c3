// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

// Flags is the bitset spec.md §6 calls "Flag semantics (bitset on
// Response Context)".
type Flags uint8

const (
	HTTP10           Flags = 1 << iota // emit "HTTP/1.0" instead of "HTTP/1.1"
	KeepAlive                          // emit "Connection: keep-alive" instead of "close"
	Chunked                            // use chunked transfer encoding
	NoContentLength                    // omit Content-Length (and don't use chunked)
	SentHeaders                       // headers already on the wire; further header calls no-op
	AllowCORS                          // emit the four permissive CORS headers
)

// KeyValue is one user-supplied additional header.
type KeyValue struct {
	Key   string
	Value string
}

// StreamCallback is the one-shot hook Respond invokes in place of the
// body buffer. Respond clears it before making its single call, so it
// is gone whether or not the call succeeds, breaking recursion on
// error: spec.md's "stream callback returning >= 400" error kind.
type StreamCallback func(ctx *Context) int

// Context is the per-request response state a Framer operates on: the
// Go analogue of struct lwan_request's response half. It carries no
// I/O of its own — Framer supplies the coroutine and collaborators
// that turn a Context into bytes on the wire.
type Context struct {
	Method string // "GET", "POST", ... consulted by methodHasBody

	Flags Flags

	MIMEType string
	Body     []byte // the response body buffer; Framer resets it after each frame

	// ContentLengthHint overrides len(Body) as the Content-Length value
	// when HasContentLengthHint is set, matching the original's
	// request->response.content_length.
	ContentLengthHint int
	HasContentLengthHint bool

	AdditionalHeaders []KeyValue
	Stream            StreamCallback
}

// methodHasBody mirrors has_response_body: only GET and POST carry a
// response body on the whole-response path; every other method gets
// headers only.
func methodHasBody(method string) bool {
	return method == "GET" || method == "POST"
}
