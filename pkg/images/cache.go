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

// Package images resolves catalog image references to local files,
// downloading remote tile art into a cache directory once. Decoding and
// scaling are the front end's concern.
package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Cache downloads remote tile images into a directory keyed by the URL's
// filename. Path references pass through untouched.
type Cache struct {
	fs     afero.Fs
	client *http.Client
	dir    string
}

// NewCache creates a cache storing downloads under dir.
func NewCache(fs afero.Fs, client *http.Client, dir string) *Cache {
	return &Cache{fs: fs, client: client, dir: dir}
}

// Resolve returns a local path for the image reference, downloading it on
// first use. An empty reference resolves to an empty path.
func (c *Cache) Resolve(ctx context.Context, ref catalog.ImageRef) (string, error) {
	if ref.Path != "" {
		return ref.Path, nil
	}
	if ref.URL == "" {
		return "", nil
	}

	parsed, err := url.Parse(ref.URL)
	if err != nil {
		return "", fmt.Errorf("failed to parse image url: %w", err)
	}
	filename := path.Base(parsed.Path)
	if filename == "." || filename == "/" {
		return "", fmt.Errorf("image url has no filename: %s", ref.URL)
	}

	target := filepath.Join(c.dir, filename)
	if _, err := c.fs.Stat(target); err == nil {
		return target, nil
	}

	if err := c.download(ctx, ref.URL, target); err != nil {
		return "", err
	}
	log.Debug().Str("url", ref.URL).Msgf("cached image: %s", target)
	return target, nil
}

func (c *Cache) download(ctx context.Context, rawURL, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch image: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing image response")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	if err := c.fs.MkdirAll(c.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create image cache directory: %w", err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read image body: %w", err)
	}
	if err := afero.WriteFile(c.fs, target, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cached image: %w", err)
	}
	return nil
}
