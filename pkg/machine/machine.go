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
	"fmt"
	"time"

	"github.com/lassandro/gocat/pkg/buslink"
	"github.com/lassandro/gocat/pkg/gpio"
	"github.com/lassandro/gocat/pkg/memory"
	"github.com/lassandro/gocat/pkg/settings"
)

// Time the guest is held in each phase of a reset
const resetDelay = 50 * time.Millisecond

func DefaultConfig() Config {
	return Config{
		DefaultMode: ArchZ80,
		DefaultFast: SpeedFast,
		EnableNMI:   true,
		TickPeriod:  20 * time.Millisecond,
		CodeStart:   CodeStart,
	}
}

func New(pins gpio.Pins, eeprom settings.EEPROM, config Config) *Machine {
	if config.Sleep == nil {
		config.Sleep = time.Sleep
	}

	if config.TickPeriod <= 0 {
		config.TickPeriod = 20 * time.Millisecond
	}

	return &Machine{
		Memory: &memory.Memory{Bus: buslink.New(pins)},
		pins:   pins,
		eeprom: eeprom,
		config: config,
	}
}

func (mc *Machine) logf(format string, v ...interface{}) {
	if mc.config.Logger != nil {
		mc.config.Logger.Printf(format, v...)
	}
}

// Running reports whether a guest CPU has been released from reset.
func (mc *Machine) Running() bool {
	return mc.State.running.Load()
}

// Initialise loads the preferences and brings every pin to its idle level.
func (mc *Machine) Initialise() error {
	mode, err := settings.ReadSetting(
		mc.eeprom, settings.AddrMode, 0, 1, byte(mc.config.DefaultMode),
	)

	if err != nil {
		return err
	}

	fast, err := settings.ReadSetting(
		mc.eeprom, settings.AddrFast, 0, 1, byte(mc.config.DefaultFast),
	)

	if err != nil {
		return err
	}

	mc.State.Mode = Arch(mode)
	mc.State.Fast = Speed(fast)

	for _, pin := range []gpio.Pin{
		gpio.SO, gpio.SC, gpio.AOE, gpio.LD, gpio.RW, gpio.CPUSPD,
		gpio.CPUSLC, gpio.CPUIRQ, gpio.CPUGO, gpio.CPURST, gpio.SOUND,
	} {
		mc.pins.SetMode(pin, gpio.Output)
	}

	// SI has pull resistors on the board, the keyboard lines do not
	mc.pins.SetMode(gpio.SI, gpio.Input)
	mc.pins.SetMode(gpio.KCLK, gpio.InputPullup)
	mc.pins.SetMode(gpio.KDAT, gpio.InputPullup)

	mc.pins.Write(gpio.RW, gpio.High)
	mc.pins.Write(gpio.SO, gpio.Low)
	mc.pins.Write(gpio.AOE, gpio.Low)
	mc.pins.Write(gpio.LD, gpio.Low)
	mc.pins.Write(gpio.SC, gpio.Low)
	mc.pins.Write(gpio.CPUSPD, mc.State.Fast == SpeedFast)
	mc.pins.Write(gpio.CPUSLC, mc.State.Mode == ArchZ80)
	mc.pins.Write(gpio.CPUIRQ, gpio.Low)
	mc.pins.Write(gpio.CPUGO, gpio.Low)
	mc.pins.Write(gpio.CPURST, gpio.Low)

	if mc.pins.Has(gpio.CapExpansion) {
		mc.pins.SetMode(gpio.XBUSACK, gpio.Output)
		mc.pins.Write(gpio.XBUSACK, gpio.High)
		mc.pins.SetMode(gpio.XBUSREQ, gpio.Input)
		mc.pins.SetMode(gpio.XIRQ, gpio.Input)

		mc.pins.Interrupts(false)
		mc.pins.Watch(gpio.XIRQ, gpio.EdgeFalling, mc.Doorbell)
		mc.pins.Interrupts(true)
	}

	mc.logf("initialised: %s, %s clock", mc.State.Mode, mc.State.Fast)

	return nil
}

// HardReset cycles both guest CPUs through reset, leaving the select line
// on the current mode and the machine halted.
func (mc *Machine) HardReset() {
	mc.disarmTick()
	mc.State.running.Store(false)

	mc.pins.Write(gpio.CPURST, gpio.Low)
	mc.resetCPU(gpio.Low)
	mc.resetCPU(gpio.High)

	if mc.State.Mode == Arch6502 {
		mc.pins.Write(gpio.CPUSLC, gpio.Low)
	}

	mc.logf("hard reset")
}

func (mc *Machine) resetCPU(slc gpio.Level) {
	mc.pins.Write(gpio.CPUSLC, slc)
	mc.pins.Write(gpio.CPUGO, gpio.High)
	mc.config.Sleep(resetDelay)
	mc.pins.Write(gpio.CPURST, gpio.High)
	mc.pins.Write(gpio.CPUGO, gpio.Low)
	mc.config.Sleep(resetDelay)
	mc.pins.Write(gpio.CPURST, gpio.Low)
}

// Run writes the boot glue for the selected CPU and releases it from reset
// to start at the code start address.
func (mc *Machine) Run() {
	start := mc.config.CodeStart
	mem := mc.Memory

	mem.WriteByte(OutboxFlag, 0x00)
	mem.WriteByte(OutboxData, 0x00)
	mem.WriteByte(InboxFlag, 0x00)

	if mc.State.Mode == Arch6502 {
		// The NMI handler at FCB0 is a lone RTI
		mem.WriteWord(VEC6502_NMI, ISR6502)
		mem.WriteByte(ISR6502, OP6502_RTI)
		mem.WriteWord(VEC6502_RESET, start)
	} else {
		// The NMI handler at 0066 is a lone RETN
		mem.WriteByte(VECZ80_NMI, OPZ80_ED)
		mem.WriteByte(VECZ80_NMI+1, OPZ80_RETN)

		// The Z80 fetches from 0000, jump from there to the code
		if start != VECZ80_RESET {
			mem.WriteByte(VECZ80_RESET, OPZ80_JP)
			mem.WriteWord(VECZ80_RESET+1, start)
		}
	}

	mc.State.running.Store(true)
	mc.pins.Write(gpio.CPURST, gpio.High)
	mc.pins.Write(gpio.CPUGO, gpio.High)
	mc.config.Sleep(resetDelay)
	mc.pins.Write(gpio.CPURST, gpio.Low)

	if mc.config.EnableNMI {
		mc.armTick()
	}

	mc.logf("running %s code at %#04x", mc.State.Mode, start)
}

// Stop halts the guest and tristates its buses.
func (mc *Machine) Stop() {
	mc.disarmTick()
	mc.State.running.Store(false)

	mc.pins.Write(gpio.CPURST, gpio.High)
	mc.pins.Write(gpio.CPUGO, gpio.Low)
	mc.config.Sleep(resetDelay)
	mc.pins.Write(gpio.CPURST, gpio.Low)

	mc.logf("stopped")
}

// SetMode selects and persists the guest architecture. A running guest only
// sees the change after HardReset.
func (mc *Machine) SetMode(mode Arch) error {
	mc.State.Mode = mode

	mc.pins.Write(gpio.CPUSLC, mode == ArchZ80)

	if err := mc.eeprom.Write(settings.AddrMode, byte(mode)); err != nil {
		return fmt.Errorf("saving mode: %w", err)
	}

	return nil
}

// SetFast selects and persists the guest clock speed.
func (mc *Machine) SetFast(speed Speed) error {
	mc.State.Fast = speed

	mc.pins.Write(gpio.CPUSPD, speed == SpeedFast)

	if err := mc.eeprom.Write(settings.AddrFast, byte(speed)); err != nil {
		return fmt.Errorf("saving speed: %w", err)
	}

	return nil
}
