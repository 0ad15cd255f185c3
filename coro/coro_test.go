// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package coro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResumeYieldDuality(t *testing.T) {
	sw := NewSwitcher()
	var seen []int32
	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		v := co.Yield(1)
		seen = append(seen, v)
		v = co.Yield(2)
		seen = append(seen, v)
		return 99
	}, nil)
	assert.True(t, ok)

	assert.Equal(t, int32(1), co.Resume())
	assert.Equal(t, int32(2), co.ResumeValue(10))
	assert.Equal(t, int32(99), co.ResumeValue(20))
	assert.True(t, co.Ended())
	assert.Equal(t, []int32{10, 20}, seen)

	co.Free()
}

func TestTerminalOnce(t *testing.T) {
	sw := NewSwitcher()
	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		return 7
	}, nil)
	assert.True(t, ok)

	assert.Equal(t, int32(7), co.Resume())
	assert.True(t, co.Ended())
	co.Free()
}

func TestDeferredLIFO(t *testing.T) {
	sw := NewSwitcher()
	var order []int

	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		co.Defer(func(d any) { order = append(order, d.(int)) }, 1)
		co.Defer(func(d any) { order = append(order, d.(int)) }, 2)
		co.Defer(func(d any) { order = append(order, d.(int)) }, 3)
		return 0
	}, nil)
	assert.True(t, ok)

	co.Resume()
	assert.True(t, co.Ended())
	co.Free()
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestDeferredGenerationRollback(t *testing.T) {
	sw := NewSwitcher()
	var order []int

	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		co.Defer(func(d any) { order = append(order, d.(int)) }, 1) // p1
		gen := co.DeferredGeneration()
		co.Defer(func(d any) { order = append(order, d.(int)) }, 2) // p2
		co.Defer(func(d any) { order = append(order, d.(int)) }, 3) // p3

		co.DeferredRun(gen) // rolls back p3, p2 only
		co.Yield(0)
		return 0
	}, nil)
	assert.True(t, ok)

	co.Resume()
	assert.Equal(t, []int{3, 2}, order)

	co.ResumeValue(0)
	assert.True(t, co.Ended())
	co.Free()
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestFreeCancelsSuspendedCoroutine(t *testing.T) {
	sw := NewSwitcher()
	ranCleanup := false

	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		co.Defer(func(any) { ranCleanup = true }, nil)
		co.Yield(0) // parks forever unless cancelled
		return 0
	}, nil)
	assert.True(t, ok)

	co.Resume()
	assert.False(t, co.Ended())

	co.Free()
	assert.True(t, ranCleanup)
}

func TestResetRecyclesArena(t *testing.T) {
	sw := NewSwitcher()
	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		return 1
	}, nil)
	assert.True(t, ok)
	co.Resume()
	assert.True(t, co.Ended())

	arena := co.scratch
	co.Reset(func(co *Coroutine, data any) int32 {
		return 2
	}, nil)
	assert.Same(t, &arena[0], &co.scratch[0])

	assert.Equal(t, int32(2), co.Resume())
	co.Free()
}

func TestScratchRejectsOversizeRequest(t *testing.T) {
	sw := NewSwitcher()
	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		return 0
	}, nil)
	assert.True(t, ok)
	defer co.Free()

	assert.Panics(t, func() {
		co.Scratch(MinStackSize + 1)
	})
}

func TestNewRejectsUndersizeStack(t *testing.T) {
	sw := NewSwitcher()
	assert.Panics(t, func() {
		New(sw, MinStackSize-1, func(co *Coroutine, data any) int32 { return 0 }, nil)
	})
}
