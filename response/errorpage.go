// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import "net/http"

// statusDescriptions fills in the long-form descriptive text
// net/http.StatusText doesn't carry. Only the codes this server
// realistically emits by itself are listed; anything else falls back
// to the short message. No library in reach of this module provides
// these descriptions (net/http only has the short reason phrases), so
// this table is the one place the response package leans on the
// standard library's status-code constants plus a small hand-carried
// table rather than a third-party dependency.
var statusDescriptions = map[int]string{
	http.StatusOK:                  "Success",
	http.StatusNotFound:            "The requested resource could not be found but may be available in the future",
	http.StatusForbidden:           "The request was valid, but the server is refusing action",
	http.StatusBadRequest:          "The server could not understand the request due to malformed syntax",
	http.StatusUnauthorized:        "Authentication is required and has failed or has not yet been provided",
	http.StatusInternalServerError: "An internal server error occurred",
	http.StatusNotImplemented:      "The server either does not recognize the request method, or lacks the ability to fulfill it",
}

func statusDescription(status int) string {
	if d, ok := statusDescriptions[status]; ok {
		return d
	}
	return http.StatusText(status)
}

// DefaultErrorResponse sets ctx's MIME type to text/html, renders the
// fixed error template with {shortMessage, longMessage} =
// (status name, status description), and dispatches through Respond.
// Mirrors lwan_default_response.
func (fr *Framer) DefaultErrorResponse(ctx *Context, status int) {
	ctx.MIMEType = "text/html"
	ctx.Body = fr.Tpl.Render(http.StatusText(status), statusDescription(status))
	fr.Respond(ctx, status)
}
