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

// Package twitch lists titles installed through the Twitch/Amazon Games
// client by reading its GameInstallInfo.sqlite registry. The executable
// and arguments for each install live in a fuel.json file inside the
// install directory.
package twitch

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/config"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// InstallDBFile is the client's install registry filename.
const InstallDBFile = "GameInstallInfo.sqlite"

// fuelConfig is the launch stanza the client drops into each install
// directory.
type fuelConfig struct {
	Main struct {
		Command string   `json:"Command"`
		Args    []string `json:"Args"`
	} `json:"Main"`
}

// Provider reads the Amazon Games install registry.
type Provider struct {
	fs  afero.Fs
	cfg *config.Instance
}

// NewProvider creates a Twitch provider. fs is used for fuel.json reads;
// the sqlite registry is opened through the driver directly.
func NewProvider(fs afero.Fs, cfg *config.Instance) *Provider {
	return &Provider{fs: fs, cfg: cfg}
}

func (*Provider) Source() catalog.Source {
	return catalog.SourceTwitch
}

// ListTitles queries the install registry for every known product. A
// missing registry means the client isn't installed and is not an error.
func (p *Provider) ListTitles(ctx context.Context) ([]catalog.Entry, error) {
	dbPath := p.findInstallDB()
	if dbPath == "" {
		return nil, nil
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open install registry: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing install registry")
		}
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT Id, ProductTitle, ProductIconUrl, InstallDirectory, Installed
		FROM DbSet ORDER BY ProductTitle`)
	if err != nil {
		return nil, fmt.Errorf("failed to query install registry: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry rows")
		}
	}()

	var entries []catalog.Entry
	for rows.Next() {
		var (
			id, title          string
			iconURL, installDir sql.NullString
			installed          bool
		)
		if err := rows.Scan(&id, &title, &iconURL, &installDir, &installed); err != nil {
			return nil, fmt.Errorf("failed to scan registry row: %w", err)
		}

		entry := catalog.Entry{
			ID:         id,
			Title:      title,
			Image:      catalog.ImageRef{URL: iconURL.String},
			Installed:  installed,
			InstallDir: installDir.String,
			Source:     catalog.SourceTwitch,
		}
		if installed && installDir.String != "" {
			p.applyFuelConfig(&entry)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate install registry: %w", err)
	}
	return entries, nil
}

// applyFuelConfig fills in the entry's command and args from the install
// directory's fuel.json. Installs without one stay launchable only once
// the user edits in a command.
func (p *Provider) applyFuelConfig(entry *catalog.Entry) {
	data, err := afero.ReadFile(p.fs, filepath.Join(entry.InstallDir, "fuel.json"))
	if err != nil {
		log.Debug().Str("id", entry.ID).Msg("no fuel.json in install directory")
		return
	}

	var fuel fuelConfig
	if err := json.Unmarshal(data, &fuel); err != nil {
		log.Warn().Err(err).Str("id", entry.ID).Msg("failed to parse fuel.json")
		return
	}
	entry.Command = fuel.Main.Command
	entry.Args = fuel.Main.Args
}

// findInstallDB resolves the client's data directory: the configured
// override first, then the default location for the OS.
func (p *Provider) findInstallDB() string {
	if dir := p.cfg.Sources().Twitch.DataDir; dir != "" {
		path := filepath.Join(dir, InstallDBFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		log.Warn().Msgf("configured Twitch data directory has no registry: %s", dir)
		return ""
	}

	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = filepath.Join(os.Getenv("PROGRAMDATA"), "Amazon Games", "Data", "Games", "Sql")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".twitch")
	}

	path := filepath.Join(dir, InstallDBFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
