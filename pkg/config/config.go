// Doorways Core
// Copyright (c) 2026 The Doorways Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Doorways Core.
//
// Doorways Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Doorways Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Doorways Core.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads and persists the TOML config file and exposes a
// lock-guarded instance shared across the app.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DoorwaysProject/doorways-core/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgFile       = "config.toml"
	CfgEnv        = "DOORWAYS_CFG"
)

// AppVersion is set at build time.
var AppVersion = "dev"

// Values is the on-disk config document.
type Values struct {
	Sources      Sources `toml:"sources,omitempty"`
	Monitor      Monitor `toml:"monitor,omitempty"`
	Images       Images  `toml:"images,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

// Sources holds per-provider overrides for where each client keeps its
// installed-game registry.
type Sources struct {
	Steam  SteamSource  `toml:"steam,omitempty"`
	Twitch TwitchSource `toml:"twitch,omitempty"`
	Epic   EpicSource   `toml:"epic,omitempty"`
}

type SteamSource struct {
	// InstallDir overrides Steam root detection.
	InstallDir string `toml:"install_dir,omitempty"`
}

type TwitchSource struct {
	// DataDir overrides the Amazon Games client data directory.
	DataDir string `toml:"data_dir,omitempty"`
}

type EpicSource struct {
	// ManifestDir overrides the Epic launcher manifest directory.
	ManifestDir string `toml:"manifest_dir,omitempty"`
}

// Monitor configures the launch monitor.
type Monitor struct {
	// PollIntervalMS is the idle sleep between poll passes, in
	// milliseconds. Zero means the built-in default.
	PollIntervalMS int `toml:"poll_interval_ms,omitempty"`
}

// Images configures the tile-image cache.
type Images struct {
	// DisableDownloads skips fetching remote tile images.
	DisableDownloads bool `toml:"disable_downloads,omitempty"`
}

// BaseDefaults is the config written on first run.
var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
}

// Instance is a live config guarded by a lock. Values are copied out, never
// referenced.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config from configDir, creating it with defaults on
// first run. The DOORWAYS_CFG env var overrides the file path.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")
		if err := os.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load re-reads the config file from disk.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top, so fields
	// missing from the file keep their default values.
	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema, SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals
	return nil
}

// Save writes the current config to disk.
func (c *Instance) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the config file path.
func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

// DebugLogging reports whether debug-level logging is enabled.
func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

// SetDebugLogging toggles debug-level logging.
func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// Sources returns a copy of the per-source overrides.
func (c *Instance) Sources() Sources {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sources
}

// PollInterval returns the monitor poll interval, or fallback if unset.
func (c *Instance) PollInterval(fallback time.Duration) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Monitor.PollIntervalMS <= 0 {
		return fallback
	}
	return time.Duration(c.vals.Monitor.PollIntervalMS) * time.Millisecond
}

// DownloadImages reports whether remote tile images should be fetched.
func (c *Instance) DownloadImages() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.vals.Images.DisableDownloads
}
