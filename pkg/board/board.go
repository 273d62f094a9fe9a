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


// Package board is a software model of the Cerberus motherboard as seen from
// the CAT's pins: the address/data shift registers, 64K of guest memory, the
// guest control lines and an expansion card. It is the loopback harness used
// by the tests and by the gocat monitor.
package board

import (
	"sync"

	"github.com/lassandro/gocat/pkg/gpio"
)

type Event struct {
	Pin   gpio.Pin
	Level gpio.Level

	// Read events record the level sampled by the CAT
	Read bool
}

type watcher struct {
	edge    gpio.Edge
	handler func()
}

type Board struct {
	mu sync.Mutex

	caps   gpio.Capability
	modes  [gpio.NumPins]gpio.Mode
	levels [gpio.NumPins]gpio.Level
	pulses [gpio.NumPins]int

	// 24 bit output chain: address low, address high, data
	out uint32
	in  byte

	Memory [1 << 16]byte

	watchers   [gpio.NumPins]*watcher
	interrupts bool
	pending    []func()

	// Number of XBUSREQ samples taken under XBUSACK before the card lets go
	hold int

	tracing bool
	trace   []Event
}

func New(caps gpio.Capability) *Board {
	b := &Board{caps: caps, interrupts: true}

	// RW idles high, expansion lines are pulled up on the card side and
	// XBUSACK is active low, so it starts released
	b.levels[gpio.RW] = gpio.High
	b.levels[gpio.XBUSACK] = gpio.High
	b.levels[gpio.XBUSREQ] = gpio.High
	b.levels[gpio.XIRQ] = gpio.High

	return b
}

func (b *Board) Has(cap gpio.Capability) bool {
	return b.caps&cap == cap
}

func (b *Board) SetMode(pin gpio.Pin, mode gpio.Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkPin(pin)
	b.modes[pin] = mode

	if mode == gpio.InputPullup {
		b.levels[pin] = gpio.High
	}
}

func (b *Board) Mode(pin gpio.Pin) gpio.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.modes[pin]
}

func (b *Board) Write(pin gpio.Pin, level gpio.Level) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkPin(pin)

	prev := b.levels[pin]
	b.levels[pin] = level

	if b.tracing {
		b.trace = append(b.trace, Event{Pin: pin, Level: level})
	}

	if prev == level {
		return
	}

	if level == gpio.High {
		b.pulses[pin]++
	}

	switch pin {
	case gpio.SC:
		if level == gpio.High {
			b.clockRise()
		} else {
			b.in <<= 1
		}

	case gpio.RW:
		if level == gpio.Low && b.levels[gpio.AOE] == gpio.High {
			b.Memory[uint16(b.out&0xFFFF)] = byte(b.out >> 16)
		}
	}
}

func (b *Board) clockRise() {
	if b.levels[gpio.LD] == gpio.High {
		if b.levels[gpio.AOE] == gpio.High {
			b.in = b.Memory[uint16(b.out&0xFFFF)]
		}
		return
	}

	b.out >>= 1
	if b.levels[gpio.SO] == gpio.High {
		b.out |= 1 << 23
	}
}

func (b *Board) Read(pin gpio.Pin) gpio.Level {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkPin(pin)

	var level gpio.Level

	switch pin {
	case gpio.SI:
		level = gpio.Level(b.in&0x80 != 0)

	case gpio.XBUSREQ:
		level = b.levels[pin]

		if level == gpio.Low && b.levels[gpio.XBUSACK] == gpio.Low {
			if b.tracing {
				b.trace = append(b.trace, Event{
					Pin: gpio.CPUGO, Level: b.levels[gpio.CPUGO], Read: true,
				})
			}

			if b.hold--; b.hold <= 0 {
				b.levels[pin] = gpio.High
			}
		}

	default:
		level = b.levels[pin]
	}

	return level
}

func (b *Board) Watch(pin gpio.Pin, edge gpio.Edge, handler func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkPin(pin)
	b.watchers[pin] = &watcher{edge, handler}
}

func (b *Board) Interrupts(enabled bool) {
	b.mu.Lock()
	b.interrupts = enabled
	pending := b.pending
	if enabled {
		b.pending = nil
	}
	b.mu.Unlock()

	if enabled {
		for _, handler := range pending {
			handler()
		}
	}
}

func (b *Board) checkPin(pin gpio.Pin) {
	if pin >= gpio.NumPins {
		panic("board: invalid pin")
	}

	if pin >= gpio.XBUSACK && !b.Has(gpio.CapExpansion) {
		panic("board: expansion port not fitted")
	}
}

// RequestBus asserts XBUSREQ on behalf of the expansion card. The card lets
// go of the bus after the CAT has sampled the request hold times while
// acknowledging it.
func (b *Board) RequestBus(hold int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkPin(gpio.XBUSREQ)
	b.hold = hold
	b.levels[gpio.XBUSREQ] = gpio.Low
}

// Ring strobes XIRQ low and back, firing the pin-change handler. A masked
// interrupt is delivered when interrupts are unmasked again.
func (b *Board) Ring() {
	b.mu.Lock()

	b.checkPin(gpio.XIRQ)
	w := b.watchers[gpio.XIRQ]

	if w == nil || w.edge == gpio.EdgeRising {
		b.mu.Unlock()
		return
	}

	if !b.interrupts {
		b.pending = append(b.pending, w.handler)
		b.mu.Unlock()
		return
	}

	b.mu.Unlock()
	w.handler()
}

// Level returns the current level of pin without side effects.
func (b *Board) Level(pin gpio.Pin) gpio.Level {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.levels[pin]
}

// Pulses counts the rising edges seen on pin.
func (b *Board) Pulses(pin gpio.Pin) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.pulses[pin]
}

func (b *Board) Peek(addr uint16) byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.Memory[addr]
}

func (b *Board) Poke(addr uint16, value byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Memory[addr] = value
}

func (b *Board) StartTrace() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tracing = true
	b.trace = nil
}

func (b *Board) StopTrace() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tracing = false
	trace := b.trace
	b.trace = nil

	return trace
}
