// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ioloop

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Dater caches the two 29-byte RFC 1123 timestamps response.Dater
// needs, refreshed once per Loop.Run iteration instead of once per
// response — matching the original's per-thread struct timeout date
// cache (thread->date.date / thread->date.expires) rather than calling
// time.Now on every header assembly.
type Dater struct {
	date    atomic.Pointer[[29]byte]
	expires atomic.Pointer[[29]byte]
}

// NewDater creates a Dater already primed with the current time.
func NewDater() *Dater {
	d := &Dater{}
	d.Tick()
	return d
}

// Tick recomputes both cached timestamps. Expires is one year ahead of
// Date, matching lwan's default static-file expiry window.
func (d *Dater) Tick() {
	now := time.Now().UTC()
	date := formatHTTPDate(now)
	expires := formatHTTPDate(now.AddDate(1, 0, 0))
	d.date.Store(&date)
	d.expires.Store(&expires)
}

func (d *Dater) Date() [29]byte    { return *d.date.Load() }
func (d *Dater) Expires() [29]byte { return *d.expires.Load() }

// formatHTTPDate renders t in the fixed 29-byte RFC 1123 form
// http.TimeFormat produces (e.g. "Mon, 02 Jan 2006 15:04:05 GMT").
func formatHTTPDate(t time.Time) [29]byte {
	var out [29]byte
	s := t.Format(http.TimeFormat)
	copy(out[:], s)
	return out
}
