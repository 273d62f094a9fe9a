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


package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/lassandro/gocat/pkg/debugger"
	"github.com/lassandro/gocat/pkg/encoding"
	"github.com/lassandro/gocat/pkg/gpio"
	"github.com/lassandro/gocat/pkg/machine"
)

func (mon *monitor) cmdPeek(args []string) {
	const usage = "peek 0x#### [count]"

	if len(args) < 1 || len(args) > 2 {
		mon.errorf(usage)
		return
	}

	addr, err := encoding.DecodeHex(args[0])

	if err != nil {
		mon.errorf("%v", err)
		return
	}

	count := int16(16)

	if len(args) == 2 {
		if count, err = encoding.DecodeInt(args[1]); err != nil || count <= 0 {
			mon.errorf(usage)
			return
		}
	}

	mon.dbg.PrintMem(os.Stdout, mon.mc.Memory, addr, int(count))
}

func (mon *monitor) cmdPoke(args []string) {
	const usage = "poke 0x#### ## [## ...]"

	if len(args) < 2 {
		mon.errorf(usage)
		return
	}

	addr, data, err := encoding.ParseDataLine(strings.Join(args, " "))

	if err != nil {
		mon.errorf("%v", err)
		return
	}

	for i, value := range data {
		mon.mc.Memory.WriteByte(addr+uint16(i), value)
	}
}

// cmdDataLine receives one line from gocat-send and answers with the
// address and checksum so the sender can verify it.
func (mon *monitor) cmdDataLine(args []string) {
	addr, data, err := encoding.ParseDataLine(strings.Join(args, " "))

	if err != nil {
		mon.errorf("%v", err)
		return
	}

	for i, value := range data {
		mon.mc.Memory.WriteByte(addr+uint16(i), value)
	}

	fmt.Printf("0x%04X %X\n", addr, encoding.Checksum(data))
}

func (mon *monitor) cmdMode(args []string) {
	if len(args) == 0 {
		mon.infof("%s", mon.mc.State.Mode)
		return
	}

	var mode machine.Arch

	switch args[0] {
	case "6502":
		mode = machine.Arch6502
	case "z80", "Z80":
		mode = machine.ArchZ80
	default:
		mon.errorf("mode [6502|z80]")
		return
	}

	if err := mon.mc.SetMode(mode); err != nil {
		mon.errorf("%v", err)
		return
	}

	// The new CPU only takes the bus after a reset
	mon.mc.HardReset()
	mon.infof("%s", mode)
}

func (mon *monitor) cmdFast(args []string) {
	if len(args) == 0 {
		mon.infof("%s", mon.mc.State.Fast)
		return
	}

	var speed machine.Speed

	switch args[0] {
	case "on", "1":
		speed = machine.SpeedFast
	case "off", "0":
		speed = machine.SpeedNormal
	default:
		mon.errorf("fast [on|off]")
		return
	}

	if err := mon.mc.SetFast(speed); err != nil {
		mon.errorf("%v", err)
		return
	}

	mon.infof("%s", speed)
}

func (mon *monitor) cmdLoad(args []string) {
	if len(args) < 1 || len(args) > 2 {
		mon.errorf("load name [0x####]")
		return
	}

	addr := machine.CodeStart

	if len(args) == 2 {
		var err error

		if addr, err = encoding.DecodeHex(args[1]); err != nil {
			mon.errorf("%v", err)
			return
		}
	}

	mon.status(mon.storage.Load(args[0], addr))
}

func (mon *monitor) cmdSave(args []string) {
	if len(args) != 3 {
		mon.errorf("save name 0x#### 0x####")
		return
	}

	start, err := encoding.DecodeHex(args[1])

	if err != nil {
		mon.errorf("%v", err)
		return
	}

	end, err := encoding.DecodeHex(args[2])

	if err != nil {
		mon.errorf("%v", err)
		return
	}

	mon.status(mon.storage.Save(args[0], start, end))
}

func (mon *monitor) cmdWatch(args []string) {
	if len(args) == 0 {
		args = append(args, "list")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [0x####] [read|write|readwrite]"

		if len(args) != 2 {
			mon.errorf(usage)
			return
		}

		addr, err := encoding.DecodeHex(args[0])

		if err != nil {
			mon.errorf("%v", err)
			return
		}

		var wtype debugger.WatchpointType

		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			mon.errorf(usage)
			return
		}

		if mon.dbg.AddWatch(addr, wtype) {
			mon.infof("Watchpoint added [%#04x] (%s)", addr, wtype)
		}

	case "l", "ls", "list":
		var fmtstring string
		{
			digits := math.Floor(math.Log10(float64(len(mon.dbg.Watchpoints) + 1)))
			fmtstring = fmt.Sprintf("#%%0%dd: %%#04x (%%s)\n", int64(digits)+1)
		}

		for i, watchpoint := range mon.dbg.Watchpoints {
			fmt.Printf(fmtstring, i, watchpoint.Addr, watchpoint.Type)
		}

	case "r", "rm", "remove":
		if len(args) != 1 {
			mon.errorf("watch remove [#]")
			return
		}

		i, err := encoding.DecodeInt(args[0])

		if err != nil || !mon.dbg.RemoveWatch(int(i)) {
			mon.errorf("Invalid watchpoint number")
			return
		}

		mon.infof("Watchpoint removed [%d]", i)

	case "clear":
		mon.dbg.Watchpoints = nil
		mon.infof("Watchpoints reset")

	default:
		mon.errorf("watch: '%s' is not a valid command", cmd)
	}
}

func (mon *monitor) cmdExpansion(cmd string, args []string) {
	if !mon.board.Has(gpio.CapExpansion) {
		mon.errorf("No expansion port on this board")
		return
	}

	if cmd == "ring" {
		mon.board.Ring()
		return
	}

	hold := int16(1)

	if len(args) == 1 {
		var err error

		if hold, err = encoding.DecodeInt(args[0]); err != nil || hold <= 0 {
			mon.errorf("xreq [count]")
			return
		}
	}

	mon.board.RequestBus(int(hold))
}
