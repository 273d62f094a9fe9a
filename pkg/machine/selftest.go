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


package machine

import (
	"github.com/lassandro/gocat/pkg/memory"
)

// TestMemory walks a pattern through low memory, high memory and video
// memory so the result can be inspected on screen. Nothing is verified.
func (mc *Machine) TestMemory() {
	mem := mc.Memory

	for x := uint16(0); x < TestSpan; x++ {
		mem.WriteByte(x, byte(x))
		mem.WriteByte(HighMemory+x, mem.ReadByte(x))
		mem.WriteByte(
			memory.VideoTranslate(memory.VideoBase+x),
			mem.ReadByte(HighMemory+x),
		)
	}
}
