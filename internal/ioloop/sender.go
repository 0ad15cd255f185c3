// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ioloop

import "net"

// ConnSender is the reference response.Sender: a thin wrapper over a
// net.Conn. Writev is ported directly from gorox's
// http1Conn_.writev (net.Buffers.WriteTo performs a real writev(2)
// under the hood on platforms that support it). Because the calling
// Coroutine is itself a goroutine, a slow socket parks it in Go's
// runtime netpoller for free; no explicit backpressure-yield protocol
// is needed on the send path, only the per-frame yields response
// already issues between chunks/events.
type ConnSender struct {
	Conn net.Conn
}

// NewConnSender wraps conn as a response.Sender.
func NewConnSender(conn net.Conn) *ConnSender {
	return &ConnSender{Conn: conn}
}

// Send writes b in full. moreComing is accepted for interface parity
// with the original's MSG_MORE hint but has no portable equivalent
// over net.Conn, so it is a documented no-op here.
func (s *ConnSender) Send(b []byte, moreComing bool) error {
	_, err := s.Conn.Write(b)
	return err
}

// Writev writes iovecs as one logical message via net.Buffers.WriteTo.
func (s *ConnSender) Writev(iovecs [][]byte) error {
	bufs := net.Buffers(iovecs)
	_, err := bufs.WriteTo(s.Conn)
	return err
}
