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

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/config"
	"github.com/DoorwaysProject/doorways-core/pkg/images"
	"github.com/DoorwaysProject/doorways-core/pkg/launch"
	"github.com/DoorwaysProject/doorways-core/pkg/shared/httpclient"
	"github.com/DoorwaysProject/doorways-core/pkg/sources"
	"github.com/DoorwaysProject/doorways-core/pkg/sources/epic"
	"github.com/DoorwaysProject/doorways-core/pkg/sources/steam"
	"github.com/DoorwaysProject/doorways-core/pkg/sources/twitch"
	"github.com/DoorwaysProject/doorways-core/pkg/ui/grid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Run actions the parsed flags. Called after Pre and Setup.
func Run(f *Flags, cfg *config.Instance) error {
	ctx := context.Background()
	fs := afero.NewOsFs()
	store := catalog.NewStore(fs, filepath.Join(DataDir(), catalog.GamesFile))

	entries, err := store.Load()
	if err != nil {
		return err
	}

	// Scan sources on request, and on first run so the grid isn't empty.
	if *f.Refresh || !store.Exists() {
		entries = refresh(ctx, fs, cfg, entries)
		if err := store.Save(entries); err != nil {
			return err
		}
	}

	switch {
	case *f.Launch != "":
		launchTitle(os.Stderr, entries, *f.Launch, launch.Spawn)
		return nil
	case *f.List:
		listEntries(os.Stdout, entries, *f.Installed)
		return nil
	case *f.Refresh && !*f.Launcher:
		return nil
	default:
		// The grid is the default mode; --launcher asks for it explicitly.
		if err := runGrid(cfg, entries); err != nil {
			return err
		}
		// Persist kids/hidden edits made in the grid.
		return store.Save(entries)
	}
}

func refresh(
	ctx context.Context,
	fs afero.Fs,
	cfg *config.Instance,
	entries []catalog.Entry,
) []catalog.Entry {
	providers := []sources.Provider{
		steam.NewProvider(fs, cfg),
		twitch.NewProvider(fs, cfg),
		epic.NewProvider(fs, cfg),
	}
	entries = sources.RefreshAll(ctx, entries, providers)
	catalog.SortByTitle(entries)

	if cfg.DownloadImages() {
		cacheImages(ctx, fs, entries)
	}
	return entries
}

// cacheImages pulls remote tile art down once per refresh so the catalog
// references local files afterwards. Failures only cost the tile image.
func cacheImages(ctx context.Context, fs afero.Fs, entries []catalog.Entry) {
	cache := images.NewCache(fs, httpclient.NewClient(), CacheDir())
	for i := range entries {
		if !entries[i].Image.IsRemote() {
			continue
		}
		path, err := cache.Resolve(ctx, entries[i].Image)
		if err != nil {
			log.Warn().Err(err).
				Str("title", entries[i].Title).
				Msg("failed to cache tile image")
			continue
		}
		entries[i].Image.Path = path
	}
}

// launchTitle starts the game with an exactly matching title and returns
// without waiting on it. An unknown title is reported but not an error.
func launchTitle(
	w io.Writer,
	entries []catalog.Entry,
	title string,
	spawn launch.SpawnFunc,
) {
	for i := range entries {
		if entries[i].Title != title {
			continue
		}
		if _, err := spawn(&entries[i]); err != nil {
			log.Error().Err(err).Str("title", title).Msg("error launching game")
			_, _ = fmt.Fprintf(w, "Error launching %q: %v\n", title, err)
		}
		return
	}
	_, _ = fmt.Fprintf(w, "No game titled %q in the catalog\n", title)
}

func listEntries(w io.Writer, entries []catalog.Entry, installedOnly bool) {
	for i := range entries {
		e := &entries[i]
		if installedOnly && !e.Installed {
			continue
		}
		marker := " "
		if e.Installed {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s %s (%s)\n", marker, e.Title, e.Source)
	}
}

func runGrid(cfg *config.Instance, entries []catalog.Entry) error {
	statuses := launch.NewStatusStore()
	monitor := launch.NewMonitor(
		statuses,
		launch.DefaultProbe,
		launch.WithPollInterval(cfg.PollInterval(launch.DefaultPollInterval)),
	)
	coordinator := launch.NewCoordinator(entries, statuses, monitor)
	return grid.New(entries, coordinator, statuses).Run()
}
