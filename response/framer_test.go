// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/lineCode/lwan/coro"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingSender concatenates everything written to it, in order, so
// tests can assert on the exact wire sequence.
type recordingSender struct {
	out bytes.Buffer
}

func (s *recordingSender) Send(b []byte, moreComing bool) error {
	s.out.Write(b)
	return nil
}

func (s *recordingSender) Writev(iovecs [][]byte) error {
	for _, v := range iovecs {
		s.out.Write(v)
	}
	return nil
}

type fixedTemplater struct{}

func (fixedTemplater) Render(short, long string) []byte {
	return []byte("<html>" + short + ":" + long + "</html>")
}

// runInCoroutine runs fn to completion on its own coroutine, pumping
// resumes from the caller until the handler ends, and frees it
// afterwards.
func runInCoroutine(t *testing.T, fn func(fr *Framer)) *recordingSender {
	t.Helper()
	sw := coro.NewSwitcher()
	sender := &recordingSender{}

	var fr *Framer
	co, ok := coro.New(sw, coro.MinStackSize, func(co *coro.Coroutine, data any) int32 {
		fr = NewFramer(co, sender, fixedTemplater{}, newFixedDater(), nil)
		fn(fr)
		return 0
	}, nil)
	assert.True(t, ok)

	yielded := co.Resume()
	for !co.Ended() {
		yielded = co.ResumeValue(0)
		_ = yielded
	}
	co.Free()
	return sender
}

func TestRespondSimple200(t *testing.T) {
	sender := runInCoroutine(t, func(fr *Framer) {
		ctx := &Context{Method: "GET", Flags: KeepAlive, MIMEType: "text/plain", Body: []byte("hi")}
		fr.Respond(ctx, 200)
	})

	out := sender.out.String()
	assert.True(t, strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n"))
	assert.Contains(t, out, "Content-Length: 2")
	assert.True(t, strings.HasSuffix(out, "hi"))
}

func TestRespondNonBodyMethodSendsHeadersOnly(t *testing.T) {
	sender := runInCoroutine(t, func(fr *Framer) {
		ctx := &Context{Method: "HEAD", Flags: KeepAlive, MIMEType: "text/plain", Body: []byte("hi")}
		fr.Respond(ctx, 200)
	})
	out := sender.out.String()
	assert.NotContains(t, out, "hi")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\n"))
}

func TestRespondDefaultErrorResponseOn404(t *testing.T) {
	sender := runInCoroutine(t, func(fr *Framer) {
		ctx := &Context{Method: "GET", Flags: KeepAlive}
		fr.Respond(ctx, 404)
	})
	out := sender.out.String()
	assert.Contains(t, out, "Content-Type: text/html")
	assert.Contains(t, out, "Not Found")
}

func TestRespondStreamCallbackRecursionGuard(t *testing.T) {
	calls := 0
	sender := runInCoroutine(t, func(fr *Framer) {
		ctx := &Context{
			Method:   "GET",
			Flags:    KeepAlive,
			MIMEType: "text/plain",
			Stream: func(ctx *Context) int {
				calls++
				return 500
			},
		}
		fr.Respond(ctx, 200)
		assert.Nil(t, ctx.Stream)
	})
	assert.Equal(t, 1, calls)
	assert.Contains(t, sender.out.String(), "Content-Type: text/html")
}

func TestChunkedThreeFramesPlusTerminator(t *testing.T) {
	sender := runInCoroutine(t, func(fr *Framer) {
		ctx := &Context{Method: "GET", Flags: KeepAlive, MIMEType: "text/plain"}
		fr.SetChunked(ctx, 200)

		for _, frame := range []string{"A", "BB", "CCC"} {
			ctx.Body = []byte(frame)
			fr.SendChunk(ctx)
		}
		ctx.Body = ctx.Body[:0]
		fr.SendChunk(ctx)
	})

	out := sender.out.String()
	assert.Contains(t, out, "Transfer-Encoding: chunked")
	idxA := strings.Index(out, "1\r\nA\r\n")
	idxB := strings.Index(out, "2\r\nBB\r\n")
	idxC := strings.Index(out, "3\r\nCCC\r\n")
	idxTerm := strings.Index(out, "0\r\n\r\n")
	assert.True(t, idxA >= 0 && idxB > idxA && idxC > idxB && idxTerm > idxC)
}

func TestSendEventFrame(t *testing.T) {
	sender := runInCoroutine(t, func(fr *Framer) {
		ctx := &Context{Method: "GET", Flags: KeepAlive}
		ctx.Body = []byte("t=1")
		fr.SendEvent(ctx, "ping")
	})

	out := sender.out.String()
	assert.Contains(t, out, "Content-Type: text/event-stream")
	assert.NotContains(t, out, "Content-Length")
	assert.Contains(t, out, "event: ping\r\ndata: t=1\r\n\r\n")
}

func TestDoubleSendIsIgnored(t *testing.T) {
	sender := runInCoroutine(t, func(fr *Framer) {
		ctx := &Context{Method: "GET", Flags: KeepAlive, MIMEType: "text/plain", Body: []byte("hi")}
		fr.Respond(ctx, 200)
		s := fr.Send.(*recordingSender)
		before := s.out.Len()
		fr.Respond(ctx, 200)
		assert.Equal(t, before, s.out.Len())
	})
	_ = sender
}
