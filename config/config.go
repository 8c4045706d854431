/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

// Package config loads the ofdump TOML configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/k-vswitch/ofcodec/openflow"
)

// Output formats for decoded messages.
const (
	FormatSummary = "summary"
	FormatSpew    = "spew"
	FormatFlows   = "flows"
)

type Config struct {
	ListenAddr     string
	MetricsAddr    string
	ReadBufferSize int
	Format         string
	HelloVersion   openflow.Version
	ReplyEcho      bool
}

func Default() Config {
	return Config{
		ListenAddr:     ":6653",
		ReadBufferSize: 4096,
		Format:         FormatSummary,
		HelloVersion:   openflow.Version13,
		ReplyEcho:      true,
	}
}

// ofdump.toml key mapping.
type fileConfig struct {
	ListenAddr     string `toml:"listen_addr"`
	MetricsAddr    string `toml:"metrics_addr"`
	ReadBufferSize int    `toml:"read_buffer_size"`
	Format         string `toml:"format"`
	HelloVersion   string `toml:"hello_version"`
	ReplyEcho      bool   `toml:"reply_echo"`
}

// Load overlays the keys defined in path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config %q: %v", path, err)
	}

	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("read_buffer_size") {
		cfg.ReadBufferSize = raw.ReadBufferSize
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("hello_version") {
		v, err := ParseVersion(raw.HelloVersion)
		if err != nil {
			return Config{}, err
		}
		cfg.HelloVersion = v
	}
	if meta.IsDefined("reply_echo") {
		cfg.ReplyEcho = raw.ReplyEcho
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q in %q", undecoded[0].String(), path)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatSummary, FormatSpew, FormatFlows:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.ReadBufferSize <= 0 {
		return fmt.Errorf("read buffer size must be positive, got %d", c.ReadBufferSize)
	}
	return nil
}

// ParseVersion accepts "1.0" and "1.3".
func ParseVersion(s string) (openflow.Version, error) {
	switch strings.TrimSpace(s) {
	case "1.0":
		return openflow.Version10, nil
	case "1.3":
		return openflow.Version13, nil
	}
	return 0, fmt.Errorf("unsupported OpenFlow version %q", s)
}
