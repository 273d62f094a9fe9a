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


package debugger

import (
	"github.com/charmbracelet/lipgloss"
)

type WatchpointType uint

const (
	ReadWatch WatchpointType = iota
	WriteWatch
	ReadWriteWatch
)

type Watchpoint struct {
	Addr uint16
	Type WatchpointType
}

// Memory is the read side of the memory facade.
type Memory interface {
	ReadByte(addr uint16) byte
}

type Styles struct {
	Addr lipgloss.Style
	Zero lipgloss.Style
	Data lipgloss.Style
}

type Debugger struct {
	Watchpoints []Watchpoint
	Styles      Styles

	HandleRead  func(addr uint16, value byte, dbg *Debugger)
	HandleWrite func(addr uint16, value byte, dbg *Debugger)
}
