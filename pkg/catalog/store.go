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

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// GamesFile is the catalog filename inside the app data directory.
const GamesFile = "games.json"

// Store persists the ordered catalog as a JSON document.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store writing to path on fs.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Exists reports whether a catalog has been persisted before.
func (s *Store) Exists() bool {
	_, err := s.fs.Stat(s.path)
	return err == nil
}

// Load reads the persisted catalog. A missing file is not an error and
// returns an empty catalog.
func (s *Store) Load() ([]Entry, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return entries, nil
}

// Save writes the catalog atomically: the document is written to a temp
// file next to the target and renamed over it, so a crash mid-write never
// truncates the previous catalog.
func (s *Store) Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tempPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write catalog temp file: %w", err)
	}
	if err := s.fs.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}
	return nil
}
