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

// KidsFilter selects entries by their tri-state kids flag.
type KidsFilter int

const (
	// KidsAny matches every entry regardless of the kids flag.
	KidsAny KidsFilter = iota
	// KidsOnly matches entries explicitly marked kid-friendly.
	KidsOnly
	// KidsNot matches entries explicitly marked not kid-friendly.
	KidsNot
	// KidsUnset matches entries that haven't been classified yet.
	KidsUnset
)

// Filter selects which catalog entries are displayed in the grid.
type Filter struct {
	// Installed limits to installed (true) or not installed (false)
	// entries; nil shows both.
	Installed *bool
	Kids      KidsFilter
	// ShowHidden includes entries the user has hidden.
	ShowHidden bool
}

// Apply returns the catalog indices of entries passing the filter, in
// catalog order.
func (f Filter) Apply(entries []Entry) []int {
	indices := make([]int, 0, len(entries))
	for i := range entries {
		if f.matches(&entries[i]) {
			indices = append(indices, i)
		}
	}
	return indices
}

func (f Filter) matches(e *Entry) bool {
	if e.Hidden && !f.ShowHidden {
		return false
	}
	if f.Installed != nil && e.Installed != *f.Installed {
		return false
	}
	switch f.Kids {
	case KidsAny:
		return true
	case KidsOnly:
		return e.Kids != nil && *e.Kids
	case KidsNot:
		return e.Kids != nil && !*e.Kids
	case KidsUnset:
		return e.Kids == nil
	default:
		return true
	}
}
