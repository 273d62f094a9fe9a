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
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lassandro/gocat/pkg/gpio"
	"github.com/lassandro/gocat/pkg/memory"
	"github.com/lassandro/gocat/pkg/settings"
)

type Arch uint8

const (
	Arch6502 Arch = 0
	ArchZ80  Arch = 1
)

type Speed uint8

const (
	SpeedNormal Speed = 0
	SpeedFast   Speed = 1
)

type Config struct {
	DefaultMode Arch
	DefaultFast Speed

	// Pulse CPUIRQ every TickPeriod while a guest runs
	EnableNMI  bool
	TickPeriod time.Duration

	CodeStart uint16

	// Sleep implements the settle delays. Defaults to time.Sleep.
	Sleep func(time.Duration)

	Logger *log.Logger
}

// State is shared with the tick goroutine and the pin-change handler,
// which only use the atomic fields.
type State struct {
	Mode Arch
	Fast Speed

	running atomic.Bool
	expFlag atomic.Bool

	inboxFlag atomic.Bool
	inboxData atomic.Uint32
}

type Machine struct {
	Memory *memory.Memory
	State  State

	pins   gpio.Pins
	eeprom settings.EEPROM
	config Config
	tick   *ticker

	// Serialises CPUIRQ pulses from the tick and from Poll
	irq sync.Mutex
}

func (a Arch) String() string {
	if a == ArchZ80 {
		return "Z80"
	}

	return "6502"
}

func (s Speed) String() string {
	if s == SpeedFast {
		return "fast"
	}

	return "normal"
}
