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

// Mailbox shared between the CAT and the running guest
const (
	SysVars uint16 = 0xEFF0

	OutboxFlag uint16 = SysVars + 0x0
	OutboxData uint16 = SysVars + 0x1
	InboxFlag  uint16 = SysVars + 0x2
	InboxData  uint16 = SysVars + 0x3 // word
	XBusData   uint16 = SysVars + 0xE
	XBusFlag   uint16 = SysVars + 0xF
)

const (
	CodeStart uint16 = 0x0200
)

// 6502 boot glue
const (
	VEC6502_NMI   uint16 = 0xFFFA
	VEC6502_RESET uint16 = 0xFFFC
	ISR6502       uint16 = 0xFCB0

	OP6502_RTI byte = 0x40
)

// Z80 boot glue
const (
	VECZ80_RESET uint16 = 0x0000
	VECZ80_NMI   uint16 = 0x0066

	OPZ80_JP   byte = 0xC3
	OPZ80_ED   byte = 0xED
	OPZ80_RETN byte = 0x45
)

const (
	// Locations swept by TestMemory in each tier
	TestSpan uint16 = 874

	// Upper memory tier used by TestMemory
	HighMemory uint16 = 0x8000
)
