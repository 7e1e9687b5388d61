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

// Package catalog holds the merged game catalog: the entry model, the merge
// engine that reconciles freshly scanned titles against persisted entries,
// display filtering and the on-disk JSON store.
package catalog

import "sort"

// Source identifies which distribution platform produced an entry.
type Source string

const (
	SourceSteam   Source = "steam"
	SourceTwitch  Source = "twitch"
	SourceEpic    Source = "epic"
	SourceUnknown Source = "unknown"
)

// NeedsProbe reports whether launches from this source hand off to a
// companion client, so process exit alone doesn't mean the game stopped.
func (s Source) NeedsProbe() bool {
	return s == SourceSteam
}

// ImageRef points at an entry's tile image, either a remote URL to be
// downloaded into the image cache or a path already on disk.
type ImageRef struct {
	URL  string `json:"url,omitempty"`
	Path string `json:"path,omitempty"`
}

// IsRemote reports whether the image still needs to be downloaded.
func (r ImageRef) IsRemote() bool {
	return r.URL != "" && r.Path == ""
}

// Entry is one game record in the catalog.
//
// Kids, Hidden and Players are user-owned: they are set through the edit UI,
// survive refreshes and are never overwritten by source data. Everything
// else belongs to the source that produced the entry and is replaced
// wholesale on merge.
type Entry struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Image         ImageRef `json:"image"`
	Installed     bool     `json:"installed"`
	LaunchURL     string   `json:"launch_url,omitempty"`
	InstallDir    string   `json:"install_directory,omitempty"`
	WorkingSubdir string   `json:"working_subdir_override,omitempty"`
	Command       string   `json:"command,omitempty"`
	Args          []string `json:"args,omitempty"`
	Source        Source   `json:"source"`
	Kids          *bool    `json:"kids,omitempty"`
	Players       *int     `json:"players,omitempty"`
	Hidden        bool     `json:"hidden,omitempty"`
}

// HasLaunchTarget reports whether the entry carries enough information to be
// launched at all, by command or by URL hand-off.
func (e *Entry) HasLaunchTarget() bool {
	return (e.InstallDir != "" && e.Command != "") || e.LaunchURL != ""
}

// SortByTitle re-sorts the catalog in place for display. Any cached tile
// rendering keyed by catalog index is invalid after calling this.
func SortByTitle(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Title < entries[j].Title
	})
}
