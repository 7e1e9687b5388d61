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
	"sync"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/rs/zerolog/log"
)

// SpawnFunc starts an entry's process. The default is Spawn; tests
// substitute it.
type SpawnFunc func(*catalog.Entry) (Handle, error)

// Coordinator is the foreground entry point for launching a catalog entry.
// It enforces at most one in-flight launch per entry, spawns the process
// synchronously, and hands the resulting handle to the monitor. The
// monitor goroutine is started lazily on the first launch.
type Coordinator struct {
	statuses  *StatusStore
	monitor   *Monitor
	spawn     SpawnFunc
	entries   []catalog.Entry
	startOnce sync.Once
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithSpawnFunc substitutes the process spawner.
func WithSpawnFunc(spawn SpawnFunc) CoordinatorOption {
	return func(c *Coordinator) { c.spawn = spawn }
}

// NewCoordinator creates a coordinator over the displayed catalog. The
// entries slice is shared with the caller; indices passed to Activate are
// indices into it.
func NewCoordinator(
	entries []catalog.Entry,
	statuses *StatusStore,
	monitor *Monitor,
	opts ...CoordinatorOption,
) *Coordinator {
	c := &Coordinator{
		entries:  entries,
		statuses: statuses,
		monitor:  monitor,
		spawn:    Spawn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate launches the catalog entry at index unless a launch for it is
// already in flight. It never blocks on the spawned process.
func (c *Coordinator) Activate(index int) {
	if index < 0 || index >= len(c.entries) {
		log.Error().Int("index", index).Msg("activate called with out-of-range index")
		return
	}

	if status, ok := c.statuses.Get(index); ok {
		if status.State == StateStarting || status.State == StateRunning {
			return
		}
	}
	c.statuses.Set(index, Starting)

	c.startOnce.Do(func() {
		go func() {
			// The monitor outlives every launch this session; a failed
			// exit query means the process table is no longer trustworthy
			// and nothing the monitor tracks can be believed.
			if err := c.monitor.Run(context.Background()); err != nil {
				log.Fatal().Err(err).Msg("launch monitor failed")
			}
		}()
	})

	entry := &c.entries[index]
	handle, err := c.spawn(entry)
	if err != nil {
		log.Error().Err(err).Str("id", entry.ID).Msgf("failed to launch %s", entry.Title)
		c.statuses.Set(index, FailedToLaunch(err))
		return
	}

	c.monitor.Submit(Launched{
		Handle: handle,
		ID:     entry.ID,
		Source: entry.Source,
		Index:  index,
	})
}
