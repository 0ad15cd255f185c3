// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package coro

import "fmt"

// Malloc returns a freshly, independently allocated n-byte slice: the
// Go analogue of coro_malloc, which calls real malloc on every call.
// This is deliberately not carved from Scratch's arena (reserved for
// the response framer's single bounded header-buffer carve) — every
// Malloc call gets its own backing array, so two calls within the same
// coroutine invocation never alias one another's memory the way two
// slices of the same Scratch carve would.
func (co *Coroutine) Malloc(n int) []byte {
	return make([]byte, n)
}

// MallocWith allocates like Malloc and registers destroy to run via
// Defer — the Go analogue of malloc_with(coro, size, destructor) from
// spec.md §4.1. destroy is an arbitrary cleanup action (releasing a
// pooled buffer, decrementing a refcount), not memory reclamation:
// Go's GC already reclaims the returned slice on its own, but it can't
// run a caller's destructor, so that part of the original contract
// still needs registering.
func (co *Coroutine) MallocWith(n int, destroy func(buf []byte)) []byte {
	buf := co.Malloc(n)
	if destroy != nil {
		co.Defer(func(any) { destroy(buf) }, nil)
	}
	return buf
}

// CopyBytes copies src into a freshly allocated slice. Go analogue of
// coro_strndup, minus the NUL terminator C callers need and Go ones
// don't.
func (co *Coroutine) CopyBytes(src []byte) []byte {
	dst := co.Malloc(len(src))
	copy(dst, src)
	return dst
}

// CopyString is CopyBytes for a string source. Go analogue of
// coro_strdup.
func (co *Coroutine) CopyString(s string) string {
	return string(co.CopyBytes([]byte(s)))
}

// Sprintf is a thin fmt.Sprintf wrapper, kept as a named entry point so
// call sites read like the original's coro_printf. It has no buffer
// pool of its own to register a release against.
func (co *Coroutine) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
