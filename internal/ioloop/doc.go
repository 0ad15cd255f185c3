// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package ioloop is the reference I/O thread: one Loop per OS thread,
// each owning a coro.Switcher and a gaio.Watcher, the way spec.md §5
// describes ("each I/O thread owns one Switcher and an event loop").
// It is not part of the coroutine runtime or response framer's public
// contract — those packages only depend on the collaborator interfaces
// in response/collaborators.go — but it is the concrete wiring a real
// binary (cmd/lwand) uses to drive them.
package ioloop
