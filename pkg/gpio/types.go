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

type Pin uint8

type Level bool

type Mode uint8

type Edge uint8

type Capability uint

// Pins is the peripheral surface of the CAT. Implementations must accept
// Write calls from concurrent goroutines, since the tick interrupt pulses
// CPUIRQ while the main path drives the bus. Callers sharing a pin between
// goroutines serialise their own writes to it.
type Pins interface {
	// Has reports whether the optional hardware named by cap is wired.
	Has(cap Capability) bool

	SetMode(pin Pin, mode Mode)
	Write(pin Pin, level Level)
	Read(pin Pin) Level

	// Watch attaches handler as the pin-change interrupt for pin. The
	// handler runs in interrupt context and must not touch the bus.
	Watch(pin Pin, edge Edge, handler func())

	// Interrupts masks (false) or unmasks (true) pin-change interrupts.
	Interrupts(enabled bool)
}

func (p Pin) String() string {
	if p < NumPins {
		return pinNames[p]
	}

	return "PIN?"
}

func (l Level) String() string {
	if l {
		return "HIGH"
	}

	return "LOW"
}

// Pulse drives pin high then low.
func Pulse(pins Pins, pin Pin) {
	pins.Write(pin, High)
	pins.Write(pin, Low)
}
