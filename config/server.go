// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package config

import "time"

// ServerConfig is lwand's top-level configuration, populated from a
// Config loaded via Load.
type ServerConfig struct {
	Listen     string
	Threads    int
	StackSize  int
	KeepAlive  bool
	DebugLevel int

	ReadTimeout time.Duration
}

// NewServerConfig applies lwand's defaults on top of c.
func NewServerConfig(c *Config) *ServerConfig {
	sc := &ServerConfig{}
	c.ConfigureString("listen", &sc.Listen, ":8080")
	c.ConfigureInt("threads", &sc.Threads, 4)
	c.ConfigureInt("stackSize", &sc.StackSize, 16*1024)
	c.ConfigureBool("keepAlive", &sc.KeepAlive, true)
	c.ConfigureInt("debugLevel", &sc.DebugLevel, 0)
	c.ConfigureDuration("readTimeout", &sc.ReadTimeout, 30*time.Second)
	return sc
}
