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

// Package steam lists installed Steam titles by reading the appmanifest
// files in the steamapps directory.
package steam

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/config"
	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Provider scans a Steam installation for installed apps.
type Provider struct {
	fs  afero.Fs
	cfg *config.Instance
}

// NewProvider creates a Steam provider reading from fs.
func NewProvider(fs afero.Fs, cfg *config.Instance) *Provider {
	return &Provider{fs: fs, cfg: cfg}
}

func (*Provider) Source() catalog.Source {
	return catalog.SourceSteam
}

// ListTitles reads every appmanifest in the steamapps directory and emits
// an installed entry per app. Launching goes through the steam:// URL
// hand-off, so entries carry a launch URL rather than a command.
func (p *Provider) ListTitles(_ context.Context) ([]catalog.Entry, error) {
	steamDir := p.findSteamDir()
	if steamDir == "" {
		return nil, nil
	}
	steamAppsDir := filepath.Join(steamDir, "steamapps")

	files, err := afero.ReadDir(p.fs, steamAppsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list steamapps directory: %w", err)
	}

	var entries []catalog.Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasPrefix(f.Name(), "appmanifest_") {
			continue
		}
		entry, ok := p.readManifest(filepath.Join(steamAppsDir, f.Name()), steamDir)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// readManifest parses one appmanifest_<appid>.acf into a catalog entry.
func (p *Provider) readManifest(path, steamDir string) (catalog.Entry, bool) {
	f, err := p.fs.Open(path)
	if err != nil {
		log.Warn().Err(err).Msgf("failed to open manifest: %s", path)
		return catalog.Entry{}, false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing manifest file")
		}
	}()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		log.Warn().Err(err).Msgf("failed to parse manifest: %s", path)
		return catalog.Entry{}, false
	}

	appState, ok := m["AppState"].(map[string]any)
	if !ok {
		log.Warn().Msgf("AppState missing in manifest: %s", path)
		return catalog.Entry{}, false
	}
	appID, ok := appState["appid"].(string)
	if !ok {
		log.Warn().Msgf("appid missing in manifest: %s", path)
		return catalog.Entry{}, false
	}
	name, ok := appState["name"].(string)
	if !ok {
		log.Warn().Msgf("name missing in manifest: %s", path)
		return catalog.Entry{}, false
	}

	return catalog.Entry{
		ID:        appID,
		Title:     name,
		Image:     p.libraryImage(steamDir, appID),
		Installed: true,
		LaunchURL: "steam://rungameid/" + appID,
		Source:    catalog.SourceSteam,
	}, true
}

// libraryImage points at Steam's locally cached portrait art for an app,
// when the cache has one.
func (p *Provider) libraryImage(steamDir, appID string) catalog.ImageRef {
	path := filepath.Join(
		steamDir, "appcache", "librarycache",
		appID+"_library_600x900.jpg",
	)
	if _, err := p.fs.Stat(path); err != nil {
		return catalog.ImageRef{}
	}
	return catalog.ImageRef{Path: path}
}

// findSteamDir resolves the Steam root: the user-configured directory
// first, then the usual install locations for the OS.
func (p *Provider) findSteamDir() string {
	if dir := p.cfg.Sources().Steam.InstallDir; dir != "" {
		if _, err := p.fs.Stat(dir); err == nil {
			return dir
		}
		log.Warn().Msgf("configured Steam directory not found: %s", dir)
	}

	for _, path := range defaultSteamDirs() {
		if _, err := p.fs.Stat(path); err == nil {
			log.Debug().Msgf("found Steam installation: %s", path)
			return path
		}
	}

	log.Debug().Msg("no Steam installation found")
	return ""
}

func defaultSteamDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Application Support", "Steam"),
		}
	default:
		return []string{
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, "snap", "steam", "common", ".steam", "steam"),
		}
	}
}
