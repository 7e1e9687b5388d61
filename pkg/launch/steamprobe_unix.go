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

//go:build !windows

package launch

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// steamTitleRunning scans the process table for the Steam reaper that
// supervises a running title. Steam wraps every launched game in a reaper
// process whose command line carries "SteamLaunch AppId=<id>", which
// outlives the trampoline that requested the launch.
func steamTitleRunning(id string) (bool, error) {
	procs, err := process.Processes()
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}

	appIDArg := "AppId=" + id
	for _, p := range procs {
		cmdline, err := p.Cmdline()
		if err != nil {
			// Processes can vanish mid-scan or be unreadable; skip them.
			continue
		}
		if strings.Contains(cmdline, "SteamLaunch") && strings.Contains(cmdline, appIDArg) {
			return true, nil
		}
	}
	return false, nil
}
