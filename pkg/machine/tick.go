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
	"time"

	"github.com/lassandro/gocat/pkg/gpio"
)

// ticker is the periodic guest interrupt. Its handler only pulses CPUIRQ.
type ticker struct {
	stop chan struct{}
	done chan struct{}
}

func (mc *Machine) armTick() {
	if mc.tick != nil {
		return
	}

	t := &ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go t.run(mc.config.TickPeriod, mc.interrupt)

	mc.tick = t
}

// interrupt pulses CPUIRQ. Every guest interrupt goes through here so a tick
// and a mailbox notification never overlap into a single pulse.
func (mc *Machine) interrupt() {
	mc.irq.Lock()
	defer mc.irq.Unlock()

	gpio.Pulse(mc.pins, gpio.CPUIRQ)
}

// disarmTick returns once the tick goroutine has exited, so no pulse can
// follow it.
func (mc *Machine) disarmTick() {
	if mc.tick == nil {
		return
	}

	close(mc.tick.stop)
	<-mc.tick.done
	mc.tick = nil
}

func (t *ticker) run(period time.Duration, handler func()) {
	defer close(t.done)

	tk := time.NewTicker(period)
	defer tk.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
			// A stop racing with a tick wins
			select {
			case <-t.stop:
				return
			default:
			}

			handler()
		}
	}
}
