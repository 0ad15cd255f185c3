// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package coro

import (
	"fmt"

	"github.com/lineCode/lwan/logx"
)

// MinStackSize is the smallest scratch arena a Coroutine may be given.
// The original carries this as CORO_STACK_MIN, derived from
// PTHREAD_STACK_MIN; we keep the same floor so that callers who size a
// header buffer against it behave identically.
const MinStackSize = 16 * 1024

// Sentinel yield values a response.Framer uses to talk to its I/O
// thread. Ordinary Handler return values (HTTP status-like ints) are
// expected to be non-negative; these sentinels are negative so they can
// never collide with one.
const (
	MayResume int32 = -1 // re-arm for writability, then resume
	Abort     int32 = -2 // unrecoverable; destroy the coroutine
)

// cancelSentinel is a reserved resume value Free uses to unwind a
// suspended coroutine's goroutine instead of leaking it. Handlers must
// not pass this value to ResumeValue themselves.
const cancelSentinel int32 = -1 << 31

// cancelPanic is the private panic value Yield raises when it observes
// cancelSentinel, so the handler's own `defer` statements run during
// the unwind exactly as they would for any other panic.
type cancelPanic struct{}

// Handler is the function a Coroutine runs. Its return value becomes
// the Coroutine's final yield value after ended flips true.
type Handler func(co *Coroutine, data any) int32

// Switcher is per-I/O-thread state: it does not hold register contexts
// (goroutines keep their own), but it is the single-thread-ownership
// guard every Resume/Yield on coroutines belonging to this thread must
// go through. One Switcher per I/O thread; never share one across
// goroutines.
type Switcher struct {
	running *Coroutine // the coroutine currently resumed on this thread, if any
}

// NewSwitcher creates a Switcher for one I/O thread.
func NewSwitcher() *Switcher { return &Switcher{} }

type deferred struct {
	fn   func(a, b any)
	data1 any
	data2 any
}

// Coroutine is one in-progress (or recyclable) cooperative task.
type Coroutine struct {
	switcher *Switcher
	scratch  []byte // the coroutine's owned "stack" arena, retained across Reset
	defers   []deferred

	resumeCh chan int32   // caller -> coroutine
	yieldCh  chan int32   // coroutine -> caller
	doneCh   chan struct{} // closed by trampoline when its goroutine is about to exit

	handler Handler
	data    any

	yieldValue int32
	ended      bool
	started    bool // true once the first Resume has been issued since New/Reset
}

// New allocates a Coroutine with a scratch arena of at least
// MinStackSize bytes and primes it to run handler(data) on first
// Resume. Mirrors coro_new: allocates header+stack in one logical unit
// (here, one struct plus one backing slice) and never partially
// constructs — if allocation fails (an actual out-of-memory panic from
// make), New recovers and returns ok=false instead of a half-built
// Coroutine.
func New(switcher *Switcher, stackSize int, handler Handler, data any) (co *Coroutine, ok bool) {
	if stackSize < MinStackSize {
		panic(fmt.Sprintf("coro: stack size %d below MinStackSize %d", stackSize, MinStackSize))
	}
	defer func() {
		if r := recover(); r != nil {
			logx.New("").Logln("coro: allocation failed:", r)
			co, ok = nil, false
		}
	}()
	co = &Coroutine{switcher: switcher}
	co.scratch = make([]byte, stackSize)
	co.defers = make([]deferred, 0, 8)
	co.Reset(handler, data)
	return co, true
}

// Reset runs all pending deferred actions in LIFO order, discards them,
// clears ended, and re-primes the Coroutine to run handler(data) from
// the top on the next Resume — without reallocating the scratch arena
// or the defer slice's backing array. Used to recycle a Coroutine
// across connections.
//
// The only legal transitions are the initial call made by New (no
// trampoline goroutine yet exists) and ended -> fresh (the previous
// trampoline goroutine has already returned and closed doneCh). A
// second Reset on a coroutine that was never resumed since the prior
// Reset/New is rejected rather than silently honored: that prior call
// already spawned a trampoline goroutine parked on <-resumeCh, and
// respawning here would orphan it permanently, since nothing retains
// its old resumeCh/yieldCh to ever unpark it.
func (co *Coroutine) Reset(handler Handler, data any) {
	if co.resumeCh != nil && !co.ended {
		logx.BugExitln("coro: Reset called on a coroutine that is neither fresh nor ended")
	}
	co.DeferredRun(0)
	co.defers = co.defers[:0]

	co.handler = handler
	co.data = data
	co.ended = false
	co.started = false
	co.yieldValue = 0
	co.resumeCh = make(chan int32)
	co.yieldCh = make(chan int32)
	co.doneCh = make(chan struct{})

	go co.trampoline(handler, data, co.resumeCh, co.yieldCh, co.doneCh)
}

// Scratch returns a slice of length n into the coroutine's owned
// arena, starting at offset 0 every time. It panics if n exceeds the
// arena size: the spec's "scratch + headers always fits" is a hard
// precondition the caller is responsible for sizing against, not
// something Scratch can recover from silently, since handing back a
// truncated buffer would let a caller silently corrupt unrelated
// memory.
//
// Scratch is reserved for a single caller that carves one bounded
// buffer per coroutine invocation and is done with it before carving
// again — the response framer's header buffer is the only intended
// user. It is not a general-purpose allocator: two unrelated Scratch
// calls alias the same bytes, so arbitrary allocations (copying a
// query parameter, say) must go through Malloc/CopyBytes instead,
// which never alias each other.
func (co *Coroutine) Scratch(n int) []byte {
	if n > len(co.scratch) {
		panic(fmt.Sprintf("coro: scratch request %d exceeds arena size %d", n, len(co.scratch)))
	}
	return co.scratch[:n:n]
}

// Ended reports whether the handler has returned.
func (co *Coroutine) Ended() bool { return co.ended }

// trampoline is the goroutine body: waits for the first Resume, calls
// the handler, stores its return into yieldValue, flips ended, then
// hands control back to whoever is waiting. Mirrors coro_entry_point.
//
// If the first (or any later) resume delivers cancelSentinel, the
// handler is unwound via a private panic instead of being run (or
// resumed), so Free never leaves this goroutine permanently parked.
func (co *Coroutine) trampoline(handler Handler, data any, resumeCh chan int32, yieldCh chan int32, doneCh chan struct{}) {
	defer close(doneCh)

	first := <-resumeCh
	if first == cancelSentinel {
		return // freed before ever starting; nothing ran, nothing to unwind
	}

	var result int32
	canceled := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(cancelPanic); !ok {
					panic(r) // a real handler panic; let it crash, same as an unrecovered Go panic anywhere else
				}
				canceled = true
			}
		}()
		result = handler(co, data)
	}()

	co.ended = true
	if canceled {
		// Free triggered this unwind and is only waiting on doneCh, not
		// yieldCh, so there is nobody left to hand a yielded value to.
		co.yieldValue = Abort
		return
	}
	co.yieldValue = result
	yieldCh <- result
}
