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

// Package sources defines the provider interface each game-distribution
// client implements and the refresh pass that merges every provider's
// titles into the catalog.
package sources

import (
	"context"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/rs/zerolog/log"
)

// Provider lists the installed and known titles of one distribution
// client, already normalized to catalog entries.
type Provider interface {
	Source() catalog.Source
	ListTitles(ctx context.Context) ([]catalog.Entry, error)
}

// RefreshAll merges each provider's titles into the catalog in turn. A
// single provider failing is logged and skipped; it never aborts the
// refresh of the others. Hidden flags are cleared first so titles hidden
// because of stale data get another chance to show up.
//
// The returned catalog is unsorted; callers re-sort by title before
// display and must treat any cached tile indices as invalid.
func RefreshAll(ctx context.Context, entries []catalog.Entry, providers []Provider) []catalog.Entry {
	for i := range entries {
		entries[i].Hidden = false
	}

	for _, p := range providers {
		titles, err := p.ListTitles(ctx)
		if err != nil {
			log.Error().Err(err).
				Str("source", string(p.Source())).
				Msg("provider refresh failed, skipping")
			continue
		}

		var added []catalog.Entry
		entries, added = catalog.Merge(entries, titles)
		log.Info().
			Str("source", string(p.Source())).
			Int("titles", len(titles)).
			Int("added", len(added)).
			Msg("merged provider titles")
	}
	return entries
}
