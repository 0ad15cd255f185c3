// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package coro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyStringAndSprintf(t *testing.T) {
	sw := NewSwitcher()
	var copied, formatted string

	co, ok := New(sw, MinStackSize, func(co *Coroutine, data any) int32 {
		copied = co.CopyString("hello")
		formatted = co.Sprintf("%s-%d", "x", 7)
		return 0
	}, nil)
	assert.True(t, ok)

	co.Resume()
	assert.Equal(t, "hello", copied)
	assert.Equal(t, "x-7", formatted)
	co.Free()
}
