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
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// ErrMissingLaunchTarget is returned when an entry has neither an install
// directory plus command nor a launch URL.
var ErrMissingLaunchTarget = errors.New("entry has no launch url or command")

// Spawn starts the entry's launch procedure and returns a pollable handle.
// It never waits on the process.
//
// Entries with an install directory and command are executed directly, from
// a working directory of the install directory joined with the override
// subdirectory if one is set. Entries with only a launch URL are handed to
// the platform URL opener; that process is usually a short-lived trampoline
// into a companion client.
func Spawn(entry *catalog.Entry) (Handle, error) {
	log.Debug().
		Str("id", entry.ID).
		Str("installDir", entry.InstallDir).
		Str("command", entry.Command).
		Str("launchURL", entry.LaunchURL).
		Msgf("launching %s", entry.Title)

	var cmd *exec.Cmd
	switch {
	case entry.InstallDir != "" && entry.Command != "":
		workDir := entry.InstallDir
		if entry.WorkingSubdir != "" {
			workDir = filepath.Join(entry.InstallDir, entry.WorkingSubdir)
		}
		//nolint:gosec // command comes from the user's own catalog
		cmd = exec.CommandContext(
			context.Background(),
			filepath.Join(entry.InstallDir, entry.Command),
			entry.Args...,
		)
		cmd.Dir = workDir
	case entry.LaunchURL != "":
		cmd = helpers.OpenURLCommand(entry.LaunchURL)
	default:
		return nil, ErrMissingLaunchTarget
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to spawn %s: %w", entry.Title, err)
	}
	return newCmdHandle(cmd), nil
}
