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
	"fmt"
	"time"

	"github.com/DoorwaysProject/doorways-core/pkg/helpers/syncutil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultPollInterval is the monitor's idle sleep between poll passes. It
// bounds busy-polling while keeping status latency in the UI low.
const DefaultPollInterval = time.Second

// probeFailureExitCode is the sentinel exit code recorded when a liveness
// probe cannot be evaluated.
const probeFailureExitCode = 1

// handoffQueue is the ordered handoff path from the coordinator to the
// monitor. Pushes never block and are never dropped; the wake channel cuts
// the monitor's idle sleep short when a launch arrives.
type handoffQueue struct {
	wake  chan struct{}
	items []Launched
	mu    syncutil.Mutex
}

func newHandoffQueue() *handoffQueue {
	return &handoffQueue{wake: make(chan struct{}, 1)}
}

func (q *handoffQueue) push(l Launched) {
	q.mu.Lock()
	q.items = append(q.items, l)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *handoffQueue) drain() []Launched {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Monitor owns every in-flight process handle. A single background
// goroutine drains handed-off launches and polls them to completion,
// writing each transition to the status store. The active set is touched
// by no other goroutine.
type Monitor struct {
	statuses     *StatusStore
	probe        ProbeFunc
	clock        clockwork.Clock
	queue        *handoffQueue
	active       map[int]Launched
	pollInterval time.Duration
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithPollInterval overrides the idle sleep between poll passes.
func WithPollInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.pollInterval = d }
}

// WithClock substitutes the clock used for the idle sleep.
func WithClock(clock clockwork.Clock) MonitorOption {
	return func(m *Monitor) { m.clock = clock }
}

// NewMonitor creates a monitor writing to statuses and consulting probe
// for companion-client sources. Run must be started exactly once.
func NewMonitor(statuses *StatusStore, probe ProbeFunc, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		statuses:     statuses,
		probe:        probe,
		clock:        clockwork.NewRealClock(),
		queue:        newHandoffQueue(),
		active:       make(map[int]Launched),
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Submit transfers ownership of a launched handle to the monitor. It never
// blocks and preserves submission order.
func (m *Monitor) Submit(l Launched) {
	m.queue.push(l)
}

// ActiveCount returns the size of the active set. Only meaningful from the
// monitor goroutine or while the monitor isn't running; tests use it.
func (m *Monitor) ActiveCount() int {
	return len(m.active)
}

// Run is the monitor loop. It normally runs for the life of the process;
// cancelling ctx stops the loop without touching the launched processes.
// A non-nil error means a handle's exit status could not be queried, so
// the OS process table can no longer be trusted; the caller must treat
// that as fatal.
func (m *Monitor) Run(ctx context.Context) error {
	log.Info().Msg("launch monitor started")
	for {
		pending, err := m.step()
		if err != nil {
			return err
		}
		if pending == 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-m.queue.wake:
			case <-m.clock.After(m.pollInterval):
			}
		}
	}
}

// step runs one pass: drain pending handoffs into the active set, then
// poll every active handle. Returns how many handoffs were pending.
func (m *Monitor) step() (int, error) {
	pending := m.queue.drain()
	for _, l := range pending {
		m.active[l.Index] = l
		m.statuses.Set(l.Index, Starting)
	}
	if err := m.pollActive(); err != nil {
		return 0, err
	}
	return len(pending), nil
}

// pollActive performs one non-blocking exit check over the active set and
// applies the status transitions.
func (m *Monitor) pollActive() error {
	for index, l := range m.active {
		exit, err := l.Handle.Poll()
		if err != nil {
			return fmt.Errorf("failed to query exit status for %s: %w", l.ID, err)
		}

		if !exit.Exited {
			m.statuses.Set(index, Running)
			continue
		}

		if exit.Code != 0 {
			log.Warn().
				Str("id", l.ID).
				Int("code", exit.Code).
				Msg("launched process exited with failure")
			m.statuses.Set(index, ExitError(exit.Code))
			delete(m.active, index)
			continue
		}

		if !l.Source.NeedsProbe() {
			m.statuses.Set(index, Success)
			delete(m.active, index)
			continue
		}

		// The spawned process was only a trampoline into a companion
		// client. Consult the probe before writing anything so the UI
		// never sees a transient Success while the title is still up.
		alive, err := m.probe(l.Source, l.ID)
		switch {
		case err != nil:
			log.Error().Err(err).Str("id", l.ID).Msg("liveness probe failed")
			m.statuses.Set(index, ExitError(probeFailureExitCode))
			delete(m.active, index)
		case alive:
			m.statuses.Set(index, Running)
		default:
			m.statuses.Set(index, Success)
			delete(m.active, index)
		}
	}
	return nil
}
