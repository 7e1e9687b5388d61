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

package catalog

import "github.com/rs/zerolog/log"

// Merge reconciles the persisted catalog against freshly scanned entries
// from one source. Matching is by ID only; title collisions across sources
// with unrelated ID schemes are never merged. For a matched ID all
// source-owned fields are replaced in place and the user-owned fields are
// left untouched. Unmatched incoming entries are appended, in incoming
// order, after all matches have been applied.
//
// Returns the merged catalog and the newly discovered entries.
func Merge(existing, incoming []Entry) (merged, added []Entry) {
	for _, in := range incoming {
		found := false
		for i := range existing {
			if existing[i].ID != in.ID {
				continue
			}
			found = true
			applySourceFields(&existing[i], &in)
		}
		if !found {
			log.Info().
				Str("id", in.ID).
				Str("source", string(in.Source)).
				Msgf("discovered new title: %s", in.Title)
			added = append(added, in)
		}
	}
	return append(existing, added...), added
}

// applySourceFields overwrites every source-owned field of dst with src's.
// Kids, Hidden and Players are user-owned and must not be touched here.
func applySourceFields(dst, src *Entry) {
	dst.Title = src.Title
	dst.Image = src.Image
	dst.Installed = src.Installed
	dst.LaunchURL = src.LaunchURL
	dst.InstallDir = src.InstallDir
	dst.WorkingSubdir = src.WorkingSubdir
	dst.Command = src.Command
	dst.Args = src.Args
	dst.Source = src.Source
}
