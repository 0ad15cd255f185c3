// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package config loads lwand's YAML configuration and exposes it
// through typed accessors, adapted from gorox's Component_ property
// system (hemi/component.go): a flat name->value map plus one
// ConfigureXxx method per Go type, each falling back to a caller
// supplied default when the key is absent and calling logx.BugExitln
// when present-but-malformed.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lineCode/lwan/logx"
)

// Config is a flat, loaded property set. Unlike gorox's nested
// Component tree (one Config per sub-component with parent lookup),
// lwand has a single flat config root — there is no sub-component
// hierarchy in this core's scope — so Find degenerates to a direct map
// lookup.
type Config struct {
	props map[string]any
}

// Load reads and parses a YAML file into a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	props := make(map[string]any)
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, err
	}
	return &Config{props: props}, nil
}

func (c *Config) find(name string) (any, bool) {
	v, ok := c.props[name]
	return v, ok
}

// ConfigureString mirrors Component_.ConfigureString.
func (c *Config) ConfigureString(name string, prop *string, defaultValue string) {
	v, ok := c.find(name)
	if !ok {
		*prop = defaultValue
		return
	}
	s, ok := v.(string)
	if !ok {
		logx.BugExitln("config: invalid string for", name)
	}
	*prop = s
}

// ConfigureInt mirrors Component_.ConfigureInt.
func (c *Config) ConfigureInt(name string, prop *int, defaultValue int) {
	v, ok := c.find(name)
	if !ok {
		*prop = defaultValue
		return
	}
	n, ok := v.(int)
	if !ok {
		logx.BugExitln("config: invalid int for", name)
	}
	*prop = n
}

// ConfigureBool mirrors Component_.ConfigureBool.
func (c *Config) ConfigureBool(name string, prop *bool, defaultValue bool) {
	v, ok := c.find(name)
	if !ok {
		*prop = defaultValue
		return
	}
	b, ok := v.(bool)
	if !ok {
		logx.BugExitln("config: invalid bool for", name)
	}
	*prop = b
}

// ConfigureDuration mirrors Component_.ConfigureDuration: the YAML
// value is a Go duration string ("5s", "200ms"), parsed with
// time.ParseDuration.
func (c *Config) ConfigureDuration(name string, prop *time.Duration, defaultValue time.Duration) {
	v, ok := c.find(name)
	if !ok {
		*prop = defaultValue
		return
	}
	s, ok := v.(string)
	if !ok {
		logx.BugExitln("config: invalid duration for", name)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logx.BugExitln("config: invalid duration for", name, ":", err)
	}
	*prop = d
}

// ConfigureStringList mirrors Component_.ConfigureStringList.
func (c *Config) ConfigureStringList(name string, prop *[]string, defaultValue []string) {
	v, ok := c.find(name)
	if !ok {
		*prop = defaultValue
		return
	}
	raw, ok := v.([]any)
	if !ok {
		logx.BugExitln("config: invalid list for", name)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			logx.BugExitln("config: invalid list item for", name)
		}
		out = append(out, s)
	}
	*prop = out
}
