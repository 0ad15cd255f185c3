// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package coro

import "github.com/lineCode/lwan/logx"

// Resume runs co until it yields or ends. Precondition: !co.Ended();
// violating it is a programming error, so — matching spec.md §4.1's
// "assertion/abort in debug builds" — it is reported via BugExitln
// rather than returned as an error. Mirrors coro_resume.
func (co *Coroutine) Resume() int32 {
	return co.doResume(0)
}

// ResumeValue stores v as the value the coroutine's in-flight Yield
// observes, then resumes. Mirrors coro_resume_value.
func (co *Coroutine) ResumeValue(v int32) int32 {
	return co.doResume(v)
}

func (co *Coroutine) doResume(v int32) int32 {
	if co.ended {
		logx.BugExitln("coro: Resume called on an ended coroutine")
	}
	sw := co.switcher
	if sw != nil {
		if sw.running != nil {
			logx.BugExitln("coro: Switcher already has a coroutine running on this thread")
		}
		sw.running = co
	}

	co.started = true
	co.resumeCh <- v
	yielded := <-co.yieldCh
	co.yieldValue = yielded

	if sw != nil {
		sw.running = nil
	}
	return yielded
}

// Yield may only be called from within the coroutine's own handler (the
// Switcher must currently show co as running). It suspends the
// coroutine, handing v back to whoever called Resume/ResumeValue, and
// returns once resumed again with the value passed to the next
// ResumeValue (or 0, for a plain Resume). Mirrors coro_yield.
func (co *Coroutine) Yield(v int32) int32 {
	if sw := co.switcher; sw != nil && sw.running != co {
		logx.BugExitln("coro: Yield called outside the coroutine that is supposed to be running")
	}
	co.yieldValue = v
	co.yieldCh <- v
	resumed := <-co.resumeCh
	if resumed == cancelSentinel {
		panic(cancelPanic{})
	}
	co.yieldValue = resumed
	return resumed
}

// Free cancels co if it hasn't ended yet — unwinding its goroutine via
// Yield's cancelPanic path so nothing is left permanently parked — then
// runs any remaining deferred actions (LIFO) and releases its
// resources. After Free, co must not be used again, not even via Reset.
// Mirrors coro_free, generalized to also cover the "cancel a still-live
// coroutine" case spec.md §5 describes ("freed without resumption").
func (co *Coroutine) Free() {
	if !co.ended {
		co.resumeCh <- cancelSentinel
		<-co.doneCh
	}
	co.DeferredRun(0)
	co.defers = nil
	co.scratch = nil
}
