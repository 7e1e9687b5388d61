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

package grid

import (
	"testing"

	"github.com/DoorwaysProject/doorways-core/pkg/catalog"
	"github.com/DoorwaysProject/doorways-core/pkg/launch"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTileColor(t *testing.T) {
	t.Parallel()

	yes := true
	tests := []struct {
		name     string
		status   launch.Status
		entry    catalog.Entry
		launched bool
		want     tcell.Color
	}{
		{
			name: "plain entry",
			want: tcell.ColorWhite,
		},
		{
			name:  "kids entry",
			entry: catalog.Entry{Kids: &yes},
			want:  tcell.ColorAqua,
		},
		{
			name:  "hidden entry",
			entry: catalog.Entry{Hidden: true},
			want:  tcell.ColorGray,
		},
		{
			name:     "starting",
			launched: true,
			status:   launch.Starting,
			want:     tcell.ColorYellow,
		},
		{
			name:     "running beats kids marking",
			entry:    catalog.Entry{Kids: &yes},
			launched: true,
			status:   launch.Running,
			want:     tcell.ColorGreen,
		},
		{
			name:     "failed",
			launched: true,
			status:   launch.FailedToLaunch(assert.AnError),
			want:     tcell.ColorRed,
		},
		{
			name:     "exit error",
			launched: true,
			status:   launch.ExitError(3),
			want:     tcell.ColorRed,
		},
		{
			name:     "finished returns to resting color",
			entry:    catalog.Entry{Kids: &yes},
			launched: true,
			status:   launch.Success,
			want:     tcell.ColorAqua,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tileColor(tt.entry, tt.status, tt.launched))
		})
	}
}

func TestTileLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Portal 2",
		tileLabel(catalog.Entry{Title: "Portal 2", Installed: true}))
	assert.Equal(t, "Portal 2 *",
		tileLabel(catalog.Entry{Title: "Portal 2"}))
}
