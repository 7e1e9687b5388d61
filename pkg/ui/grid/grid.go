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

// Package grid draws the game library as a terminal tile grid: select a
// tile, press enter, play. Launch progress shows up as tile colors fed by
// the status store.
package grid

import (
	"fmt"
	"sync"
	"time"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/launch"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	tileColumns     = 4
	refreshInterval = 500 * time.Millisecond
)

// Grid is the interactive library view. Entries are mutated in place by
// edit mode, so the caller's slice reflects changes after Run returns.
type Grid struct {
	coordinator *launch.Coordinator
	statuses    *launch.StatusStore
	app         *tview.Application
	table       *tview.Table
	footer      *tview.TextView
	entries     []catalog.Entry
	visible     []int
	filter      catalog.Filter
	stop        chan struct{}
	stopOnce    sync.Once
	editMode    bool
	filterLock  bool
}

// New builds a grid over entries. Launches go through the coordinator and
// tile colors come from statuses.
func New(
	entries []catalog.Entry,
	coordinator *launch.Coordinator,
	statuses *launch.StatusStore,
) *Grid {
	installed := true
	return &Grid{
		entries:     entries,
		coordinator: coordinator,
		statuses:    statuses,
		filter:      catalog.Filter{Installed: &installed},
		stop:        make(chan struct{}),
	}
}

// quit signals the refresh goroutine before stopping the application, so
// it never queues a draw against an event loop that is going away.
func (g *Grid) quit() {
	g.stopOnce.Do(func() { close(g.stop) })
	g.app.Stop()
}

// Run blocks until the user quits the grid.
func (g *Grid) Run() error {
	g.app = tview.NewApplication()

	g.table = tview.NewTable().SetSelectable(true, true)
	g.table.SetBorder(true).SetTitle(" doorways ")
	g.table.SetInputCapture(g.handleKey)

	g.footer = tview.NewTextView().SetDynamicColors(true)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(g.table, 0, 1, true).
		AddItem(g.footer, 1, 0, false)

	g.redraw()

	defer g.stopOnce.Do(func() { close(g.stop) })
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-g.stop:
				return
			case <-ticker.C:
				g.app.QueueUpdateDraw(g.redraw)
			}
		}
	}()

	if err := g.app.SetRoot(layout, true).Run(); err != nil {
		return fmt.Errorf("failed to run grid: %w", err)
	}
	return nil
}

func (g *Grid) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() { //nolint:exhaustive
	case tcell.KeyEnter:
		if idx, ok := g.selectedEntry(); ok {
			g.coordinator.Activate(idx)
			g.redraw()
		}
		return nil
	case tcell.KeyCtrlE:
		g.editMode = !g.editMode
		g.redraw()
		return nil
	case tcell.KeyCtrlF:
		g.filterLock = !g.filterLock
		g.redraw()
		return nil
	case tcell.KeyEscape:
		g.quit()
		return nil
	}

	if event.Key() != tcell.KeyRune {
		return event
	}
	if g.editMode {
		g.handleEditRune(event.Rune())
	} else {
		g.handleFilterRune(event.Rune())
	}
	g.redraw()
	return nil
}

func (g *Grid) handleEditRune(r rune) {
	idx, ok := g.selectedEntry()
	if !ok {
		return
	}
	entry := &g.entries[idx]
	switch r {
	case 'k':
		yes := true
		entry.Kids = &yes
	case 'd':
		no := false
		entry.Kids = &no
	case 'u':
		entry.Kids = nil
	case 'h':
		entry.Hidden = !entry.Hidden
	case 'q':
		g.quit()
	}
}

func (g *Grid) handleFilterRune(r rune) {
	if g.filterLock && r != 'q' {
		return
	}
	switch r {
	case 'k':
		g.filter.Kids = catalog.KidsOnly
	case 'd':
		g.filter.Kids = catalog.KidsNot
	case 'u':
		g.filter.Kids = catalog.KidsUnset
	case 'a':
		g.filter.Kids = catalog.KidsAny
	case 'i':
		if g.filter.Installed == nil {
			installed := true
			g.filter.Installed = &installed
		} else {
			g.filter.Installed = nil
		}
	case 's':
		g.filter.ShowHidden = !g.filter.ShowHidden
	case 'q':
		g.quit()
	}
}

// selectedEntry maps the table selection back to a catalog index.
func (g *Grid) selectedEntry() (int, bool) {
	row, col := g.table.GetSelection()
	pos := row*tileColumns + col
	if pos < 0 || pos >= len(g.visible) {
		return 0, false
	}
	return g.visible[pos], true
}

func (g *Grid) redraw() {
	g.visible = g.filter.Apply(g.entries)

	g.table.Clear()
	for pos, idx := range g.visible {
		entry := g.entries[idx]
		status, launched := g.statuses.Get(idx)
		cell := tview.NewTableCell(tileLabel(entry)).
			SetTextColor(tileColor(entry, status, launched)).
			SetExpansion(1)
		g.table.SetCell(pos/tileColumns, pos%tileColumns, cell)
	}

	g.footer.SetText(g.footerText())
}

func (g *Grid) footerText() string {
	if g.editMode {
		return "[::b]EDIT[::-] k kids / d not kids / u unset / h hide / Ctrl-E back / q quit"
	}
	mode := "filter"
	if g.filterLock {
		mode = "filter locked"
	}
	return fmt.Sprintf(
		"[::b]%s[::-] k/d/u/a kids / i installed / s hidden / Ctrl-E edit / Ctrl-F lock / q quit",
		mode,
	)
}
