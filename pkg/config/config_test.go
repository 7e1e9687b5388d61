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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_CreatesDefaultOnFirstRun(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, CfgFile))
	assert.False(t, cfg.DebugLogging())
	assert.True(t, cfg.DownloadImages())
	assert.Equal(t, time.Second, cfg.PollInterval(time.Second))
}

func TestNewConfig_LoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	doc := `
config_schema = 1
debug_logging = true

[monitor]
poll_interval_ms = 250

[sources.steam]
install_dir = "/opt/steam"

[images]
disable_downloads = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(doc), 0o600))

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval(time.Second))
	assert.Equal(t, "/opt/steam", cfg.Sources().Steam.InstallDir)
	assert.False(t, cfg.DownloadImages())
}

func TestNewConfig_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, CfgFile),
		[]byte("config_schema = 99\n"),
		0o600,
	))

	_, err := NewConfig(dir, BaseDefaults)
	assert.Error(t, err)
}

func TestInstance_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.True(t, reloaded.DebugLogging())
}

func TestNewConfig_EnvOverridesPath(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "custom.toml")
	t.Setenv(CfgEnv, override)

	cfg, err := NewConfig(filepath.Join(dir, "unused"), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, override, cfg.Path())
	assert.FileExists(t, override)
}
