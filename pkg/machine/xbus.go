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
	"github.com/lassandro/gocat/pkg/gpio"
)

// Doorbell is the XIRQ pin-change handler. It only latches the flag; the
// mailbox write happens in Poll.
func (mc *Machine) Doorbell() {
	mc.State.expFlag.Store(true)
}

// PostInbox latches a value for the guest's inbox. It is delivered by the
// next Poll, or dropped if no guest is running then. A later post replaces
// an undelivered one.
func (mc *Machine) PostInbox(value uint16) {
	mc.State.inboxData.Store(uint32(value))
	mc.State.inboxFlag.Store(true)
}

// Poll services the expansion port and the mailbox. It must be called from
// the main loop only, between other bus activity, never from a handler.
//
// A card that never releases XBUSREQ blocks Poll forever.
func (mc *Machine) Poll() {
	if mc.pins.Has(gpio.CapExpansion) {
		mc.xbusHandler()
	}

	if mc.State.inboxFlag.Swap(false) {
		value := uint16(mc.State.inboxData.Load())

		if mc.Running() {
			mc.Memory.WriteWord(InboxData, value)
			mc.Memory.WriteByte(InboxFlag, 0x01)
			mc.interrupt()
		}
	}
}

func (mc *Machine) xbusHandler() {
	// Bus requests from the expansion card come first
	if mc.pins.Read(gpio.XBUSREQ) == gpio.Low {
		running := mc.Running()

		// The guest must be off the bus before the card gets it
		if running {
			mc.pins.Write(gpio.CPUGO, gpio.Low)
		}

		mc.pins.Write(gpio.XBUSACK, gpio.Low)

		for mc.pins.Read(gpio.XBUSREQ) == gpio.Low {
		}

		mc.pins.Write(gpio.XBUSACK, gpio.High)

		if running {
			mc.pins.Write(gpio.CPUGO, gpio.High)
		}
	}

	// Then an XIRQ strobe, meaning the card has left data for the guest
	if mc.State.expFlag.Load() {
		if mc.Running() {
			mc.pins.Write(gpio.CPUGO, gpio.Low)
			mc.Memory.WriteByte(XBusFlag, 0x01)
			mc.pins.Write(gpio.CPUGO, gpio.High)
			mc.interrupt()
		}

		mc.State.expFlag.Store(false)
	}
}

// ReadOutbox collects a byte the guest has posted and clears the outbox
// flag.
func (mc *Machine) ReadOutbox() (byte, bool) {
	if mc.Memory.ReadByte(OutboxFlag) == 0 {
		return 0, false
	}

	value := mc.Memory.ReadByte(OutboxData)
	mc.Memory.WriteByte(OutboxFlag, 0x00)

	return value, true
}
