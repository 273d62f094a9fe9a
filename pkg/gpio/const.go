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


package gpio

// Logical pins of the CAT. Physical numbering belongs to the Pins
// implementation.
const (
	SI Pin = iota // serial input from the data shift register
	SO            // serial output to the address/data shift registers
	SC            // shift clock
	AOE           // address output enable
	RW            // memory read/!write
	LD            // latch data bus into the input shift register
	CPUSLC        // CPU select, low = 6502, high = Z80
	CPUIRQ        // guest interrupt request
	CPUGO         // guest go/!halt, low tristates the guest buses
	CPURST        // guest reset
	CPUSPD        // guest clock speed
	KCLK
	KDAT
	SOUND

	// Expansion port, only present with CapExpansion. All active low.
	XBUSACK
	XBUSREQ
	XIRQ

	NumPins
)

const (
	Low  Level = false
	High Level = true
)

const (
	Input Mode = iota
	InputPullup
	Output
)

const (
	EdgeFalling Edge = iota
	EdgeRising
	EdgeBoth
)

const (
	// Expansion bus arbitration lines XBUSACK, XBUSREQ and XIRQ are wired.
	CapExpansion Capability = 1 << iota
)

var pinNames = [NumPins]string{
	"SI", "SO", "SC", "AOE", "RW", "LD",
	"CPUSLC", "CPUIRQ", "CPUGO", "CPURST", "CPUSPD",
	"KCLK", "KDAT", "SOUND",
	"XBUSACK", "XBUSREQ", "XIRQ",
}
