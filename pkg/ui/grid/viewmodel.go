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

package grid

import (
	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/launch"
	"github.com/gdamore/tcell/v2"
)

// tileColor picks the text color for a tile. A launch in flight wins over
// the kids marking so players can see something is happening.
func tileColor(entry catalog.Entry, status launch.Status, launched bool) tcell.Color {
	if launched {
		switch status.State {
		case launch.StateStarting:
			return tcell.ColorYellow
		case launch.StateRunning:
			return tcell.ColorGreen
		case launch.StateFailedToLaunch, launch.StateError:
			return tcell.ColorRed
		case launch.StateSuccess:
			// done, fall through to the resting color
		}
	}
	if entry.Hidden {
		return tcell.ColorGray
	}
	if entry.Kids != nil && *entry.Kids {
		return tcell.ColorAqua
	}
	return tcell.ColorWhite
}

// tileLabel renders the tile text, marking non-installed entries.
func tileLabel(entry catalog.Entry) string {
	if !entry.Installed {
		return entry.Title + " *"
	}
	return entry.Title
}
