// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.


package main

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = struct {
	prompt lipgloss.Style
	info   lipgloss.Style
	err    lipgloss.Style
	watch  lipgloss.Style
	guest  lipgloss.Style
}{
	prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(8)),
	info:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
	err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	watch:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
	guest:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
}
