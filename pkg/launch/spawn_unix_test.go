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
	"errors"
	"testing"
	"time"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pollUntilExit(t *testing.T, handle Handle) ExitState {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		exit, err := handle.Poll()
		require.NoError(t, err)
		if exit.Exited {
			return exit
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("process did not exit in time")
	return ExitState{}
}

func TestSpawn_CommandExitsCleanly(t *testing.T) {
	t.Parallel()

	entry := &catalog.Entry{
		ID:         "clean",
		Title:      "Clean Exit",
		InstallDir: "/bin",
		Command:    "sh",
		Args:       []string{"-c", "exit 0"},
	}

	handle, err := Spawn(entry)
	require.NoError(t, err)

	exit := pollUntilExit(t, handle)
	assert.Equal(t, 0, exit.Code)

	// exited handles can be polled again
	exit, err = handle.Poll()
	require.NoError(t, err)
	assert.True(t, exit.Exited)
}

func TestSpawn_CommandExitCodePropagates(t *testing.T) {
	t.Parallel()

	entry := &catalog.Entry{
		ID:         "fails",
		Title:      "Fails",
		InstallDir: "/bin",
		Command:    "sh",
		Args:       []string{"-c", "exit 7"},
	}

	handle, err := Spawn(entry)
	require.NoError(t, err)

	exit := pollUntilExit(t, handle)
	assert.Equal(t, 7, exit.Code)
}

func TestSpawn_WorkingDirectoryOverride(t *testing.T) {
	t.Parallel()

	entry := &catalog.Entry{
		ID:         "pwd",
		Title:      "Prints Dir",
		InstallDir: "/bin",
		// a bogus subdirectory makes the spawn fail, proving the
		// override is what ends up as the working directory
		WorkingSubdir: "does-not-exist",
		Command:       "sh",
		Args:          []string{"-c", "exit 0"},
	}
	_, err := Spawn(entry)
	assert.Error(t, err)

	entry.InstallDir = "/bin"
	entry.WorkingSubdir = ""
	entry.Args = []string{"-c", "test \"$(pwd)\" = \"/bin\""}
	handle, err := Spawn(entry)
	require.NoError(t, err)
	exit := pollUntilExit(t, handle)
	assert.Equal(t, 0, exit.Code)
}

func TestSpawn_MissingLaunchTarget(t *testing.T) {
	t.Parallel()

	entry := &catalog.Entry{ID: "none", Title: "Nothing"}

	handle, err := Spawn(entry)
	assert.Nil(t, handle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingLaunchTarget))
}

func TestSpawn_MissingExecutable(t *testing.T) {
	t.Parallel()

	entry := &catalog.Entry{
		ID:         "gone",
		Title:      "Gone",
		InstallDir: t.TempDir(),
		Command:    "no-such-binary",
	}

	handle, err := Spawn(entry)
	assert.Nil(t, handle)
	assert.Error(t, err)
}
