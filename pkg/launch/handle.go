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
	"os/exec"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
)

// ExitState is the result of a non-blocking exit query on a handle.
type ExitState struct {
	// Exited is true once the process has terminated.
	Exited bool
	// Code is the exit code, valid only when Exited is true.
	Code int
}

// Handle is an opaque handle to a spawned process supporting repeatable
// non-blocking exit queries. An error from Poll means the OS view of the
// process is no longer trustworthy and is treated as unrecoverable by the
// monitor.
type Handle interface {
	Poll() (ExitState, error)
}

// Launched pairs a process handle with the context the monitor needs to
// run a post-exit probe. Ownership transfers to the monitor at handoff;
// the coordinator must not touch the handle afterward.
type Launched struct {
	Handle Handle
	ID     string
	Source catalog.Source
	Index  int
}

type waitResult struct {
	err  error
	code int
}

// cmdHandle adapts an exec.Cmd to Handle. A single goroutine owns the
// blocking Wait call and publishes its result once; Poll reads it without
// blocking and caches it so exited handles can be queried again.
type cmdHandle struct {
	done   chan waitResult
	result *waitResult
}

func newCmdHandle(cmd *exec.Cmd) *cmdHandle {
	h := &cmdHandle{done: make(chan waitResult, 1)}
	go func() {
		err := cmd.Wait()
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			h.done <- waitResult{err: err}
			return
		}
		h.done <- waitResult{code: cmd.ProcessState.ExitCode()}
	}()
	return h
}

func (h *cmdHandle) Poll() (ExitState, error) {
	if h.result == nil {
		select {
		case res := <-h.done:
			h.result = &res
		default:
			return ExitState{}, nil
		}
	}
	if h.result.err != nil {
		return ExitState{}, h.result.err
	}
	return ExitState{Exited: true, Code: h.result.code}, nil
}
