// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ioloop

import (
	"net"
	"runtime"

	"github.com/xtaci/gaio"

	"github.com/lineCode/lwan/coro"
	"github.com/lineCode/lwan/logx"
)

// connJob is the per-coroutine bookkeeping the Loop tracks while its
// handler runs. A slot is live between Spawn and either the coroutine
// ending or its connection being closed.
type connJob struct {
	conn net.Conn
	co   *coro.Coroutine
	buf  []byte
}

const readChunk = 4096

// Loop is one I/O thread: it owns exactly one coro.Switcher and one
// gaio.Watcher, and coroutines spawned on it never migrate to another
// Loop. Run must be called from the goroutine that is to become this
// thread (it locks the calling goroutine to its OS thread, matching
// the one-thread-per-loop invariant spec.md §5 requires).
//
// Writes are plain blocking net.Conn calls: a Coroutine is already a
// goroutine, so Go's runtime netpoller parks it for free on a slow
// socket without any explicit yield protocol. gaio.Watcher is used on
// the read side only, where it plays the role of the original's
// epoll-driven accept/read loop: Run resumes a connection's coroutine
// each time the Watcher reports new bytes available.
type Loop struct {
	Switcher *coro.Switcher
	watcher  *gaio.Watcher
	dater    *Dater
	log      logx.Logger

	jobs map[net.Conn]*connJob
}

// NewLoop creates an unstarted Loop.
func NewLoop(log logx.Logger) (*Loop, error) {
	w, err := gaio.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logx.New("noop")
	}
	return &Loop{
		Switcher: coro.NewSwitcher(),
		watcher:  w,
		dater:    NewDater(),
		log:      log,
		jobs:     make(map[net.Conn]*connJob),
	}, nil
}

// Spawn starts handler on a fresh Coroutine bound to conn, resuming it
// immediately. If the coroutine yields coro.MayResume, the Watcher is
// armed to notify Run when conn has more bytes for the handler to read
// on its next resume; if it ends or yields coro.Abort, the connection
// is finished at once.
func (l *Loop) Spawn(conn net.Conn, stackSize int, handler coro.Handler) {
	co, ok := coro.New(l.Switcher, stackSize, handler, conn)
	if !ok {
		l.log.Logln("ioloop: coroutine allocation failed, closing connection")
		conn.Close()
		return
	}
	job := &connJob{conn: conn, co: co, buf: make([]byte, readChunk)}
	l.jobs[conn] = job
	l.resume(job, 0)
}

func (l *Loop) resume(job *connJob, v int32) {
	yielded := job.co.ResumeValue(v)
	switch {
	case job.co.Ended(), yielded == coro.Abort:
		l.finish(job)
	case yielded == coro.MayResume:
		if err := l.watcher.Read(job, job.conn, job.buf); err != nil {
			l.finish(job)
		}
	}
}

func (l *Loop) finish(job *connJob) {
	delete(l.jobs, job.conn)
	job.co.Free()
	job.conn.Close()
}

// Run pins the calling goroutine to its OS thread and services gaio
// completion events until WaitIO returns an error, which Run then
// returns. It is the event-loop
// half of "each I/O thread owns one Switcher and an event loop".
func (l *Loop) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		l.dater.Tick()

		results, err := l.watcher.WaitIO()
		if err != nil {
			return err
		}
		for _, res := range results {
			job, ok := res.Context.(*connJob)
			if !ok {
				continue
			}
			if res.Error != nil {
				l.finish(job)
				continue
			}
			l.resume(job, int32(res.Size))
		}
	}
}

// Dater returns the Loop's cached date collaborator, refreshed once
// per Run iteration rather than once per response.
func (l *Loop) Dater() *Dater { return l.dater }
