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

//go:build windows

package launch

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// steamTitleRunning reads Steam's per-app Running flag from the registry.
// Steam keeps the value set for the whole time the title is up, long after
// the trampoline process that launched it has exited.
func steamTitleRunning(id string) (bool, error) {
	keyPath := fmt.Sprintf(`Software\Valve\Steam\Apps\%s`, id)
	key, err := registry.OpenKey(registry.CURRENT_USER, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("failed to open Steam app key for %s: %w", id, err)
	}
	defer func() { _ = key.Close() }()

	running, _, err := key.GetIntegerValue("Running")
	if err != nil {
		return false, fmt.Errorf("failed to read Running value for %s: %w", id, err)
	}
	return running == 1, nil
}
