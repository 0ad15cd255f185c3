// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package coro

import "github.com/lineCode/lwan/logx"

// Defer appends a unary cleanup action. Mirrors coro_defer.
func (co *Coroutine) Defer(fn func(data1 any), data1 any) {
	co.Defer2(func(a, _ any) { fn(a) }, data1, nil)
}

// Defer2 appends a binary cleanup action. Actions run LIFO when the
// coroutine is reset or freed, or when a DeferredRun rolls back past
// this action's generation; the handler returning does not run them by
// itself. Mirrors coro_defer2 / coro_defer_any.
//
// A failed append (out-of-memory, for all practical purposes
// unreachable in Go short of a real OOM) is logged and silently
// dropped rather than propagated, exactly matching lwan-coro.c's
// documented tradeoff: callers with strict cleanup requirements must
// register eagerly, not under memory pressure.
func (co *Coroutine) Defer2(fn func(data1, data2 any), data1, data2 any) {
	defer func() {
		if r := recover(); r != nil {
			logx.New("").Logln("coro: could not add deferred action:", r)
		}
	}()
	co.defers = append(co.defers, deferred{fn: fn, data1: data1, data2: data2})
}

// DeferredGeneration snapshots the current number of deferred actions.
// Mirrors coro_deferred_get_generation.
func (co *Coroutine) DeferredGeneration() int {
	return len(co.defers)
}

// DeferredRun executes and pops deferred actions down to generation, in
// LIFO order. Mirrors coro_deferred_run.
func (co *Coroutine) DeferredRun(generation int) {
	for len(co.defers) > generation {
		i := len(co.defers) - 1
		d := co.defers[i]
		co.defers = co.defers[:i]
		d.fn(d.data1, d.data2)
	}
}
