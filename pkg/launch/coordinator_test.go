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
	"errors"
	"sync/atomic"
	"testing"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{ID: "10", Title: "Alpha", LaunchURL: "steam://rungameid/10", Source: catalog.SourceSteam},
		{ID: "asin-1", Title: "Beta", InstallDir: "/games/beta", Command: "beta", Source: catalog.SourceTwitch},
		{ID: "broken", Title: "Gamma", Source: catalog.SourceUnknown},
	}
}

// parkMonitor burns the coordinator's lazy-start so the monitor loop never
// runs and its queue can be inspected deterministically.
func parkMonitor(c *Coordinator) {
	c.startOnce.Do(func() {})
}

// countingSpawn returns a SpawnFunc that counts invocations and hands out
// fake handles that never exit.
func countingSpawn(calls *atomic.Int32) SpawnFunc {
	return func(_ *catalog.Entry) (Handle, error) {
		calls.Add(1)
		return &fakeHandle{}, nil
	}
}

func TestCoordinator_ActivateSpawnsAndHandsOff(t *testing.T) {
	t.Parallel()

	statuses := NewStatusStore()
	monitor := NewMonitor(statuses, DefaultProbe)
	var calls atomic.Int32
	c := NewCoordinator(testEntries(), statuses, monitor, WithSpawnFunc(countingSpawn(&calls)))
	parkMonitor(c)

	c.Activate(1)

	assert.Equal(t, int32(1), calls.Load())
	status, ok := statuses.Get(1)
	require.True(t, ok)
	assert.Equal(t, StateStarting, status.State)

	pending := monitor.queue.drain()
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].Index)
	assert.Equal(t, "asin-1", pending[0].ID)
	assert.Equal(t, catalog.SourceTwitch, pending[0].Source)
}

func TestCoordinator_ActivateIdempotentWhileInFlight(t *testing.T) {
	t.Parallel()

	statuses := NewStatusStore()
	monitor := NewMonitor(statuses, DefaultProbe)
	var calls atomic.Int32
	c := NewCoordinator(testEntries(), statuses, monitor, WithSpawnFunc(countingSpawn(&calls)))
	parkMonitor(c)

	c.Activate(0)
	c.Activate(0) // status is Starting, must be a no-op
	assert.Equal(t, int32(1), calls.Load())

	statuses.Set(0, Running)
	c.Activate(0) // still in flight
	assert.Equal(t, int32(1), calls.Load())

	statuses.Set(0, Success)
	c.Activate(0) // terminal state, relaunch allowed
	assert.Equal(t, int32(2), calls.Load())
}

func TestCoordinator_MissingLaunchTarget(t *testing.T) {
	t.Parallel()

	statuses := NewStatusStore()
	monitor := NewMonitor(statuses, DefaultProbe)
	entries := testEntries()
	c := NewCoordinator(entries, statuses, monitor, WithSpawnFunc(Spawn))
	parkMonitor(c)

	c.Activate(2)

	status, ok := statuses.Get(2)
	require.True(t, ok)
	assert.Equal(t, StateFailedToLaunch, status.State)
	assert.True(t, errors.Is(status.Reason, ErrMissingLaunchTarget))

	// nothing was handed off and the active set is untouched
	assert.Empty(t, monitor.queue.drain())
	assert.Equal(t, 0, monitor.ActiveCount())
}

func TestCoordinator_SpawnFailureIsLocal(t *testing.T) {
	t.Parallel()

	statuses := NewStatusStore()
	monitor := NewMonitor(statuses, DefaultProbe)
	spawnErr := errors.New("permission denied")
	c := NewCoordinator(testEntries(), statuses, monitor, WithSpawnFunc(
		func(_ *catalog.Entry) (Handle, error) { return nil, spawnErr },
	))
	parkMonitor(c)

	c.Activate(0)

	status, ok := statuses.Get(0)
	require.True(t, ok)
	assert.Equal(t, StateFailedToLaunch, status.State)
	assert.True(t, errors.Is(status.Reason, spawnErr))
	assert.Empty(t, monitor.queue.drain())

	// other entries are unaffected
	_, ok = statuses.Get(1)
	assert.False(t, ok)
}

func TestCoordinator_OutOfRangeIndexIsIgnored(t *testing.T) {
	t.Parallel()

	statuses := NewStatusStore()
	monitor := NewMonitor(statuses, DefaultProbe)
	var calls atomic.Int32
	c := NewCoordinator(testEntries(), statuses, monitor, WithSpawnFunc(countingSpawn(&calls)))

	c.Activate(-1)
	c.Activate(3)

	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 0, statuses.Len())
}
