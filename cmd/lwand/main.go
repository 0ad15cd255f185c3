// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Command lwand is a minimal demonstration server wiring coro.Switcher,
// response.Framer, and internal/ioloop.Loop together the way spec.md §5
// describes: one Loop (OS thread + Switcher + event loop) per worker,
// connections round-robined across workers, each handled entirely on
// its own coroutine. It does not parse HTTP requests — that sits
// outside this core's scope (spec.md's Non-goals) — it only proves out
// the accept -> coroutine -> framer -> wire pipeline end to end.
package main

import (
	"flag"
	"net"
	"os"

	"github.com/lineCode/lwan/config"
	"github.com/lineCode/lwan/coro"
	"github.com/lineCode/lwan/internal/ioloop"
	"github.com/lineCode/lwan/logx"
	"github.com/lineCode/lwan/response"
)

func main() {
	configPath := flag.String("config", "", "path to lwand.yaml")
	flag.Parse()

	sc := config.NewServerConfig(loadOrDefault(*configPath))
	logx.SetDebugLevel(int32(sc.DebugLevel))
	log := logx.New("stderr")

	loops := make([]*ioloop.Loop, sc.Threads)
	for i := range loops {
		loop, err := ioloop.NewLoop(log)
		if err != nil {
			log.Logln("lwand: could not create loop:", err)
			os.Exit(1)
		}
		loops[i] = loop
		go loop.Run()
	}

	ln, err := net.Listen("tcp", sc.Listen)
	if err != nil {
		log.Logln("lwand: listen failed:", err)
		os.Exit(1)
	}
	log.Logln("lwand: listening on", sc.Listen)

	tpl := ioloop.NewTemplater()
	next := 0
	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Logln("lwand: accept failed:", err)
			continue
		}
		loop := loops[next%len(loops)]
		next++
		loop.Spawn(conn, sc.StackSize, helloHandler(loop, tpl, sc))
	}
}

func loadOrDefault(path string) *config.Config {
	if path == "" {
		c, _ := config.Load(os.DevNull)
		return c
	}
	c, err := config.Load(path)
	if err != nil {
		logx.New("stderr").Logln("lwand: could not load config, using defaults:", err)
		c, _ = config.Load(os.DevNull)
	}
	return c
}

// helloHandler builds a coro.Handler that, without reading from the
// connection, replies with a fixed 200 response over a response.Framer,
// demonstrating the Respond path end to end.
func helloHandler(loop *ioloop.Loop, tpl *ioloop.Templater, sc *config.ServerConfig) coro.Handler {
	return func(co *coro.Coroutine, data any) int32 {
		conn := data.(net.Conn)
		sender := ioloop.NewConnSender(conn)
		fr := response.NewFramer(co, sender, tpl, loop.Dater(), nil)

		flags := response.Flags(0)
		if sc.KeepAlive {
			flags |= response.KeepAlive
		}

		ctx := &response.Context{
			Method:   "GET",
			Flags:    flags,
			MIMEType: "text/plain",
			Body:     []byte("hello from lwan-go\n"),
		}
		fr.Respond(ctx, 200)
		return 0
	}
}
