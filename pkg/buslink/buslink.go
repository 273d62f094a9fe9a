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


package buslink

import (
	"errors"
	"sync/atomic"

	"github.com/lassandro/gocat/pkg/gpio"
)

var ErrReentrant = errors.New("buslink: overlapping bus cycle")

// Link drives the three-wire shift register link between the CAT and the
// guest bus. One cycle moves a 16-bit address and one byte of data.
//
// A Link is not reentrant. Calls must come from a single goroutine and
// nothing else may touch SO, SC, AOE, RW or LD while a cycle is in progress.
type Link struct {
	pins     gpio.Pins
	inflight atomic.Bool
}

func New(pins gpio.Pins) *Link {
	return &Link{pins: pins}
}

func (ln *Link) enter() {
	if !ln.inflight.CompareAndSwap(false, true) {
		panic(ErrReentrant)
	}
}

func (ln *Link) leave() {
	ln.inflight.Store(false)
}

// WriteCycle puts addr and data on the guest bus and strobes RW.
func (ln *Link) WriteCycle(addr uint16, data byte) {
	ln.enter()
	defer ln.leave()

	ln.setShiftRegister(addr, data)
	ln.pins.Write(gpio.AOE, gpio.High)
	ln.pins.Write(gpio.RW, gpio.Low)
	ln.pins.Write(gpio.RW, gpio.High)
	ln.pins.Write(gpio.AOE, gpio.Low)
}

// ReadCycle puts addr on the guest bus and latches the data bus back into
// the input shift register.
func (ln *Link) ReadCycle(addr uint16) byte {
	ln.enter()
	defer ln.leave()

	ln.setShiftRegister(addr, 0x00)
	ln.pins.Write(gpio.AOE, gpio.High)

	// Data outputs of the shift register stay disabled, we are reading
	ln.pins.Write(gpio.LD, gpio.High)
	ln.pins.Write(gpio.SC, gpio.High)
	ln.pins.Write(gpio.LD, gpio.Low)
	ln.pins.Write(gpio.AOE, gpio.Low)

	return ln.shiftIn()
}

func (ln *Link) setShiftRegister(addr uint16, data byte) {
	ln.shiftOut(byte(addr & 0xFF))
	ln.shiftOut(byte(addr >> 8))
	ln.shiftOut(data)
}

// LSB first
func (ln *Link) shiftOut(value byte) {
	for i := 0; i < 8; i++ {
		ln.pins.Write(gpio.SO, gpio.Level((value>>i)&0x1 == 1))
		ln.pins.Write(gpio.SC, gpio.High)
		ln.pins.Write(gpio.SC, gpio.Low)
	}
}

// MSB first, sampled while SC is high
func (ln *Link) shiftIn() byte {
	var value byte

	for i := 7; i >= 0; i-- {
		ln.pins.Write(gpio.SC, gpio.High)

		if ln.pins.Read(gpio.SI) {
			value |= 1 << i
		}

		ln.pins.Write(gpio.SC, gpio.Low)
	}

	return value
}
