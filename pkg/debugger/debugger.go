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
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bytes per line of PrintMem
const memColumns = 8

func DefaultStyles() Styles {
	return Styles{
		Addr: lipgloss.NewStyle().Bold(true),
		Zero: lipgloss.NewStyle().Faint(true),
		Data: lipgloss.NewStyle(),
	}
}

func (t WatchpointType) String() string {
	switch t {
	case ReadWatch:
		return "R"
	case WriteWatch:
		return "W"
	case ReadWriteWatch:
		return "RW"
	}

	return "?"
}

func (dbg *Debugger) Read(addr uint16, value byte) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if addr == watchpoint.Addr {
			if dbg.HandleRead != nil {
				dbg.HandleRead(addr, value, dbg)
			}
			break
		}
	}
}

func (dbg *Debugger) Write(addr uint16, value byte) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if addr == watchpoint.Addr {
			if dbg.HandleWrite != nil {
				dbg.HandleWrite(addr, value, dbg)
			}
			break
		}
	}
}

// AddWatch adds a watchpoint unless an identical one exists. It reports
// whether one was added.
func (dbg *Debugger) AddWatch(addr uint16, wtype WatchpointType) bool {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Addr == addr && watchpoint.Type == wtype {
			return false
		}
	}

	dbg.Watchpoints = append(dbg.Watchpoints, Watchpoint{addr, wtype})

	return true
}

func (dbg *Debugger) RemoveWatch(i int) bool {
	if i < 0 || i >= len(dbg.Watchpoints) {
		return false
	}

	dbg.Watchpoints = append(dbg.Watchpoints[:i], dbg.Watchpoints[i+1:]...)

	return true
}

// PrintMem dumps count bytes from addr. Reads go over the bus, so they are
// seen by any watchpoints.
func (dbg *Debugger) PrintMem(w io.Writer, mem Memory, addr uint16, count int) {
	var sb strings.Builder

	for i := 0; i < count; i++ {
		at := addr + uint16(i)

		if i%memColumns == 0 {
			if i > 0 {
				sb.WriteString("\n")
			}

			sb.WriteString(dbg.Styles.Addr.Render(fmt.Sprintf("[%#04x]", at)))
		}

		value := mem.ReadByte(at)
		cell := fmt.Sprintf("%02x", value)

		if value == 0 {
			cell = dbg.Styles.Zero.Render(cell)
		} else {
			cell = dbg.Styles.Data.Render(cell)
		}

		sb.WriteString(" ")
		sb.WriteString(cell)
	}

	fmt.Fprintln(w, sb.String())
}
