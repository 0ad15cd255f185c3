// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package coro implements stackful, cooperatively-scheduled coroutines.
//
// A Coroutine runs a Handler on a goroutine of its own, parked on a pair
// of unbuffered channels whenever it isn't actually executing. That park
// point is this package's equivalent of the register-level context
// switch the original C implementation (lwan-coro.c) performs with
// hand-written assembly: the goroutine's entire call stack — locals,
// return addresses, everything — stays alive and resumes exactly where
// it left off, the same guarantee swapcontext() gives a stackful C
// coroutine.
//
// Every Coroutine additionally owns a fixed scratch arena (its "stack",
// in spec terms) which is retained across Reset and handed out via
// Scratch; the response framer carves its bounded header buffer out of
// this arena so the header buffer itself is never a per-response heap
// allocation.
//
// One Switcher exists per I/O thread (per goroutine that calls Resume).
// It holds no register state — Go doesn't need it to — but it is the
// single-owner guard that makes the "no locks, one thread per
// coroutine" invariant a checked assertion instead of just a comment.
package coro
