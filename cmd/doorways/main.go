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

package main

import (
	"fmt"
	"os"

	"github.com/DoorwaysProject/doorways-core/pkg/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	flags := cli.SetupFlags()
	flags.Pre()

	cfg := flags.Setup()

	if err := cli.Run(flags, cfg); err != nil {
		log.Error().Err(err).Msg("doorways exited with error")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
