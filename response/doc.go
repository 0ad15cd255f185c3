// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package response assembles and streams HTTP/1.x responses from
// inside a coro.Coroutine. It is a direct port of lwan-response.c:
// header assembly happens into a fixed buffer carved from the
// coroutine's own scratch arena (never the heap), and the chunked and
// event-stream emission modes yield coro.MayResume back to the owning
// I/O thread after every frame so a slow client never blocks the
// thread.
package response
