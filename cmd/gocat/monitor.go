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
	"log"
	"strings"

	"github.com/lassandro/gocat/pkg/board"
	"github.com/lassandro/gocat/pkg/debugger"
	"github.com/lassandro/gocat/pkg/fileio"
	"github.com/lassandro/gocat/pkg/machine"
)

type monitor struct {
	mc      *machine.Machine
	board   *board.Board
	dbg     *debugger.Debugger
	storage *fileio.Storage
	kb      *keyboard

	lastcmd []string
}

const help = `peek 0x#### [count]      dump memory
poke 0x#### ## [## ...]  write bytes
0x#### ## [## ...]       write an upload line, answers with its checksum
run | stop | reset       guest CPU control
mode [6502|z80]          select the guest CPU
fast [on|off]            select the guest clock
cls | test               clear the screen, run the memory sweep
load name [0x####]       load a file, by default at the code start
save name 0x#### 0x####  save memory to a new file
del name                 delete a file
watch [add|list|rm|clear]
console                  attach the terminal to the guest mailbox
ring | xreq [count]      simulate the expansion card doorbell or a bus request
quit`

func (mon *monitor) errorf(format string, v ...interface{}) {
	log.Println(styles.err.Render(fmt.Sprintf(format, v...)))
}

func (mon *monitor) infof(format string, v ...interface{}) {
	fmt.Println(styles.info.Render(fmt.Sprintf(format, v...)))
}

func (mon *monitor) repl() {
	mon.kb = newKeyboard()

	for {
		fmt.Print(styles.prompt.Render("*"), " ")

		line, ok := mon.kb.readLine()

		if !ok {
			fmt.Println()
			return
		}

		args := strings.Fields(line)

		if len(args) == 0 {
			if len(mon.lastcmd) == 0 {
				continue
			}
			args = mon.lastcmd
		} else {
			mon.lastcmd = make([]string, len(args))
			copy(mon.lastcmd, args)
		}

		if mon.dispatch(args[0], args[1:]) {
			return
		}

		mon.mc.Poll()
		mon.drainOutbox()
	}
}

// dispatch runs one command and reports whether the monitor should exit.
func (mon *monitor) dispatch(cmd string, args []string) bool {
	switch strings.ToLower(cmd) {
	case "m", "peek":
		mon.cmdPeek(args)

	case "poke":
		mon.cmdPoke(args)

	case "run":
		mon.mc.Run()

	case "stop":
		mon.mc.Stop()

	case "reset":
		mon.mc.HardReset()

	case "mode":
		mon.cmdMode(args)

	case "fast":
		mon.cmdFast(args)

	case "cls":
		mon.mc.Memory.ClearScreen()

	case "test":
		mon.mc.TestMemory()

	case "load":
		mon.cmdLoad(args)

	case "save":
		mon.cmdSave(args)

	case "del", "delete":
		if len(args) != 1 {
			mon.errorf("del name")
			return false
		}
		mon.status(mon.storage.Delete(args[0]))

	case "w", "watch":
		mon.cmdWatch(args)

	case "console":
		mon.console()

	case "ring", "xreq":
		mon.cmdExpansion(cmd, args)

	case "help", "?":
		fmt.Println(help)

	case "clear":
		fmt.Print("\033[H\033[2J")

	case "q", "quit", "exit":
		return true

	default:
		if strings.HasPrefix(strings.ToLower(cmd), "0x") {
			mon.cmdDataLine(append([]string{cmd}, args...))
			return false
		}

		mon.errorf("'%s' is not a valid command", cmd)
	}

	return false
}

func (mon *monitor) status(status fileio.Status) {
	if status == fileio.StatusReady {
		mon.infof("%s", status)
	} else {
		mon.errorf("%s", status)
	}
}

func (mon *monitor) drainOutbox() {
	for {
		value, ok := mon.mc.ReadOutbox()
		if !ok {
			return
		}

		fmt.Print(styles.guest.Render(string(rune(value))))
	}
}

func handleRead(addr uint16, value byte, dbg *debugger.Debugger) {
	fmt.Println(styles.watch.Render(fmt.Sprintf("read  [%#04x] %02x", addr, value)))
}

func handleWrite(addr uint16, value byte, dbg *debugger.Debugger) {
	fmt.Println(styles.watch.Render(fmt.Sprintf("write [%#04x] %02x", addr, value)))
}
