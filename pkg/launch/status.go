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

// Package launch spawns game processes and tracks their lifecycle off the
// UI thread: a coordinator validates and spawns on activation, hands the
// process to a single background monitor over an ordered non-blocking
// queue, and the monitor polls handles to completion, consulting a
// per-source liveness probe for launchers that hand off to a companion
// client. Statuses are session-scoped and keyed by catalog index.
package launch

import (
	"fmt"

	"github.com/DoorwaysProject/doorways-core/pkg/helpers/syncutil"
)

// State is the lifecycle state of one launch attempt.
type State int

const (
	// StateStarting is set synchronously when a tile is activated, before
	// the process has been handed to the monitor.
	StateStarting State = iota
	// StateRunning means the process (or its companion-client title) is
	// still alive.
	StateRunning
	// StateSuccess means the title ran and exited cleanly.
	StateSuccess
	// StateFailedToLaunch means the process could not be created at all.
	StateFailedToLaunch
	// StateError means the process exited with a failure code, or a
	// liveness probe could not be evaluated.
	StateError
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateSuccess:
		return "success"
	case StateFailedToLaunch:
		return "failed to launch"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Status is the launch status of one catalog entry.
type Status struct {
	// Reason is set for StateFailedToLaunch.
	Reason error
	State  State
	// ExitCode is set for StateError.
	ExitCode int
}

// Starting, Running and Success statuses carry no extra fields.
var (
	Starting = Status{State: StateStarting}
	Running  = Status{State: StateRunning}
	Success  = Status{State: StateSuccess}
)

// FailedToLaunch builds the terminal status for a spawn that never produced
// a process.
func FailedToLaunch(reason error) Status {
	return Status{State: StateFailedToLaunch, Reason: reason}
}

// ExitError builds the terminal status for a process that exited with a
// failure code.
func ExitError(code int) Status {
	return Status{State: StateError, ExitCode: code}
}

// StatusStore is the shared map from catalog index to launch status. It is
// the only structure touched by both the UI thread and the monitor; all
// access goes through its lock and only copies cross the boundary. An
// absent index means the entry was never launched this session.
type StatusStore struct {
	statuses map[int]Status
	mu       syncutil.Mutex
}

// NewStatusStore creates an empty status store.
func NewStatusStore() *StatusStore {
	return &StatusStore{statuses: make(map[int]Status)}
}

// Get returns a copy of the status for a catalog index.
func (s *StatusStore) Get(index int) (Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[index]
	return status, ok
}

// Set records the status for a catalog index.
func (s *StatusStore) Set(index int, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[index] = status
}

// Len returns the number of entries that have been launched this session.
func (s *StatusStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.statuses)
}
