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

// Package epic lists titles installed through the Epic Games launcher by
// reading the .item manifests it keeps per install.
package epic

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// itemManifest is the part of an Epic .item manifest the catalog needs.
type itemManifest struct {
	DisplayName         string `json:"DisplayName"`
	InstallLocation     string `json:"InstallLocation"`
	LaunchExecutable    string `json:"LaunchExecutable"`
	IsIncompleteInstall bool   `json:"bIsIncompleteInstall"` //nolint:tagliatelle // Epic manifest format
}

// Provider scans the Epic launcher's manifest directory.
type Provider struct {
	fs  afero.Fs
	cfg *config.Instance
}

// NewProvider creates an Epic provider reading from fs.
func NewProvider(fs afero.Fs, cfg *config.Instance) *Provider {
	return &Provider{fs: fs, cfg: cfg}
}

func (*Provider) Source() catalog.Source {
	return catalog.SourceEpic
}

// ListTitles parses every .item manifest into an installed entry. A
// missing manifest directory means the launcher isn't installed and is
// not an error.
func (p *Provider) ListTitles(_ context.Context) ([]catalog.Entry, error) {
	manifestDir := p.findManifestDir()
	if manifestDir == "" {
		return nil, nil
	}

	files, err := afero.ReadDir(p.fs, manifestDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifest directory: %w", err)
	}

	var entries []catalog.Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".item") {
			continue
		}

		data, err := afero.ReadFile(p.fs, filepath.Join(manifestDir, f.Name()))
		if err != nil {
			log.Warn().Err(err).Msgf("failed to read manifest: %s", f.Name())
			continue
		}

		var item itemManifest
		if err := json.Unmarshal(data, &item); err != nil {
			log.Warn().Err(err).Msgf("failed to parse manifest: %s", f.Name())
			continue
		}
		if item.DisplayName == "" || item.IsIncompleteInstall {
			continue
		}

		entries = append(entries, catalog.Entry{
			ID:         item.DisplayName,
			Title:      item.DisplayName,
			Installed:  true,
			InstallDir: item.InstallLocation,
			Command:    item.LaunchExecutable,
			Source:     catalog.SourceEpic,
		})
	}
	return entries, nil
}

// findManifestDir resolves the launcher's manifest directory: the
// configured override first, then the default location for the OS.
func (p *Provider) findManifestDir() string {
	if dir := p.cfg.Sources().Epic.ManifestDir; dir != "" {
		if _, err := p.fs.Stat(dir); err == nil {
			return dir
		}
		log.Warn().Msgf("configured Epic manifest directory not found: %s", dir)
		return ""
	}

	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = filepath.Join(os.Getenv("PROGRAMDATA"),
			"Epic", "EpicGamesLauncher", "Data", "Manifests")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".epic")
	}

	if _, err := p.fs.Stat(dir); err != nil {
		return ""
	}
	return dir
}
