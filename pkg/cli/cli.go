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

// Package cli defines the command line flags and the top level run logic
// shared by the doorways binary.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DoorwaysProject/doorways-core/pkg/config"
	"github.com/DoorwaysProject/doorways-core/pkg/helpers"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "doorways"

type Flags struct {
	Launch    *string
	Launcher  *bool
	Refresh   *bool
	List      *bool
	Installed *bool
	Version   *bool
	Debug     *bool
}

// SetupFlags defines all CLI flags. Add any custom flags before calling
// Pre.
func SetupFlags() *Flags {
	installed := flag.Bool(
		"installed",
		true,
		"limit listing to installed games",
	)
	flag.BoolVar(
		installed,
		"i",
		true,
		"limit listing to installed games (shorthand)",
	)
	return &Flags{
		Launcher: flag.Bool(
			"launcher",
			false,
			"open the interactive game grid",
		),
		Refresh: flag.Bool(
			"refresh",
			false,
			"rescan the installed game sources and update the catalog",
		),
		List: flag.Bool(
			"list",
			false,
			"print the game catalog and exit",
		),
		Installed: installed,
		Launch: flag.String(
			"launch",
			"",
			"launch the game with this exact title and exit",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"enable debug logging",
		),
	}
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("doorways v%s\n", config.AppVersion)
		os.Exit(0)
	}
}

// ConfigDir returns the XDG config directory for the app.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir returns the XDG data directory for the app. The catalog and
// logs live here.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// CacheDir returns the XDG cache directory for downloaded tile images.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName, "images")
}

// Setup initializes logging and the user config. Exits on failure since
// nothing can run without either.
func (f *Flags) Setup() *config.Instance {
	if err := helpers.InitLogging(DataDir()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(ConfigDir(), config.BaseDefaults)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *f.Debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg
}
