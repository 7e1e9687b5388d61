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

package epic

import (
	"path/filepath"
	"testing"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, manifestDir string) *config.Instance {
	t.Helper()
	defaults := config.BaseDefaults
	defaults.Sources.Epic.ManifestDir = manifestDir
	cfg, err := config.NewConfig(t.TempDir(), defaults)
	require.NoError(t, err)
	return cfg
}

func TestProvider_ListTitles(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/epic/Manifests"
	require.NoError(t, fs.MkdirAll(dir, 0o750))

	manifests := map[string]string{
		"A1B2.item": `{
			"DisplayName": "Rocket Quest",
			"InstallLocation": "C:\\Games\\RocketQuest",
			"LaunchExecutable": "RocketQuest.exe",
			"bIsIncompleteInstall": false
		}`,
		"C3D4.item": `{
			"DisplayName": "Half Done",
			"InstallLocation": "C:\\Games\\HalfDone",
			"LaunchExecutable": "HalfDone.exe",
			"bIsIncompleteInstall": true
		}`,
		"junk.txt": `not a manifest`,
	}
	for name, doc := range manifests {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(doc), 0o600))
	}

	p := NewProvider(fs, testConfig(t, dir))
	entries, err := p.ListTitles(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, "Rocket Quest", got.ID)
	assert.Equal(t, "Rocket Quest", got.Title)
	assert.True(t, got.Installed)
	assert.Equal(t, `C:\Games\RocketQuest`, got.InstallDir)
	assert.Equal(t, "RocketQuest.exe", got.Command)
	assert.Equal(t, catalog.SourceEpic, got.Source)
}

func TestProvider_MalformedManifestSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/epic/Manifests"
	require.NoError(t, fs.MkdirAll(dir, 0o750))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "bad.item"), []byte("{"), 0o600))

	p := NewProvider(fs, testConfig(t, dir))
	entries, err := p.ListTitles(t.Context())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProvider_MissingLauncherIsNotAnError(t *testing.T) {
	p := NewProvider(afero.NewMemMapFs(), testConfig(t, "/nowhere"))

	entries, err := p.ListTitles(t.Context())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
