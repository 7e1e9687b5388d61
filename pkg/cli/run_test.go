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

package cli

import (
	"bytes"
	"flag"
	"testing"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/launch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []catalog.Entry {
	return []catalog.Entry{
		{ID: "440", Title: "Half-Life 2", Installed: true, Source: catalog.SourceSteam},
		{ID: "620", Title: "Portal 2", Source: catalog.SourceSteam},
		{ID: "Rocket League", Title: "Rocket League", Installed: true, Source: catalog.SourceEpic},
	}
}

func TestLaunchTitle(t *testing.T) {
	t.Parallel()

	var launched []string
	spawn := func(e *catalog.Entry) (launch.Handle, error) {
		launched = append(launched, e.Title)
		return nil, nil
	}

	var out bytes.Buffer
	launchTitle(&out, testCatalog(), "Portal 2", spawn)

	assert.Equal(t, []string{"Portal 2"}, launched)
	assert.Empty(t, out.String())
}

func TestLaunchTitle_NotFound(t *testing.T) {
	t.Parallel()

	spawn := func(*catalog.Entry) (launch.Handle, error) {
		t.Error("spawn called for unknown title")
		return nil, nil
	}

	var out bytes.Buffer
	launchTitle(&out, testCatalog(), "Portal 3", spawn)
	assert.Contains(t, out.String(), `No game titled "Portal 3"`)
}

func TestLaunchTitle_SpawnError(t *testing.T) {
	t.Parallel()

	spawn := func(*catalog.Entry) (launch.Handle, error) {
		return nil, assert.AnError
	}

	var out bytes.Buffer
	launchTitle(&out, testCatalog(), "Portal 2", spawn)
	assert.Contains(t, out.String(), `Error launching "Portal 2"`)
}

// Flags register on the global flag set, so this is the one test allowed
// to call SetupFlags.
func TestSetupFlags_ListDefaultsToInstalledOnly(t *testing.T) {
	f := SetupFlags()

	require.NoError(t, flag.CommandLine.Parse([]string{"--list"}))
	assert.True(t, *f.List)
	assert.True(t, *f.Installed, "a bare --list must show installed games only")

	require.NoError(t, flag.CommandLine.Parse([]string{"--list", "--installed=false"}))
	assert.False(t, *f.Installed)
}

func TestListEntries(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	listEntries(&out, testCatalog(), false)
	assert.Equal(t,
		"* Half-Life 2 (steam)\n  Portal 2 (steam)\n* Rocket League (epic)\n",
		out.String())
}

func TestListEntries_InstalledOnly(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	listEntries(&out, testCatalog(), true)
	assert.Equal(t,
		"* Half-Life 2 (steam)\n* Rocket League (epic)\n",
		out.String())
}
