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


package memory

// All address arithmetic is 16 bit and wraps at 0xFFFF.

func (mem *Memory) WriteByte(addr uint16, value byte) {
	mem.Bus.WriteCycle(addr, value)

	if mem.Debugger != nil {
		mem.Debugger.Write(addr, value)
	}
}

func (mem *Memory) ReadByte(addr uint16) byte {
	value := mem.Bus.ReadCycle(addr)

	if mem.Debugger != nil {
		mem.Debugger.Read(addr, value)
	}

	return value
}

// WriteWord stores value little endian at addr and addr+1.
func (mem *Memory) WriteWord(addr uint16, value uint16) {
	mem.WriteByte(addr, byte(value&0xFF))
	mem.WriteByte(addr+1, byte((value>>8)&0xFF))
}

// WriteLong stores value little endian at addr through addr+3.
func (mem *Memory) WriteLong(addr uint16, value uint32) {
	for i := uint16(0); i < 4; i++ {
		mem.WriteByte(addr+i, byte((value>>(8*i))&0xFF))
	}
}

// WriteText stores the bytes of text followed by a zero terminator. It
// always succeeds.
func (mem *Memory) WriteText(addr uint16, text string) bool {
	var i int

	for i = 0; i < len(text); i++ {
		mem.WriteByte(addr+uint16(i), text[i])
	}

	mem.WriteByte(addr+uint16(i), 0x00)

	return true
}

func (mem *Memory) ReadWord(addr uint16) uint16 {
	return uint16(mem.ReadByte(addr)) + 256*uint16(mem.ReadByte(addr+1))
}

// ReadString reads at most max bytes starting at addr. The result includes
// the zero terminator when one was found; terminated is false when max bytes
// were read without one, in which case the string is truncated. A max of zero
// or less reads nothing.
func (mem *Memory) ReadString(addr uint16, max int) (buf []byte, terminated bool) {
	if max <= 0 {
		return nil, false
	}

	buf = make([]byte, 0, max)

	for i := 0; i < max; i++ {
		c := mem.ReadByte(addr + uint16(i))
		buf = append(buf, c)

		if c == 0 {
			return buf, true
		}
	}

	return buf, false
}
