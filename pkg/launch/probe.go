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

package launch

import (
	"fmt"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
)

// ProbeFunc checks whether a title launched by companion-client hand-off
// is still running, through the client's own state exposure. It is only
// consulted for sources whose launch process is a trampoline.
type ProbeFunc func(source catalog.Source, id string) (alive bool, err error)

// DefaultProbe dispatches on the source tag to the platform liveness
// check for that source's companion client.
func DefaultProbe(source catalog.Source, id string) (bool, error) {
	switch source {
	case catalog.SourceSteam:
		return steamTitleRunning(id)
	case catalog.SourceTwitch, catalog.SourceEpic, catalog.SourceUnknown:
		return false, fmt.Errorf("no liveness probe for source %s", source)
	default:
		return false, fmt.Errorf("no liveness probe for source %s", source)
	}
}
