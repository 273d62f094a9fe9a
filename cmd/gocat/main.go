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
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lassandro/gocat/pkg/board"
	"github.com/lassandro/gocat/pkg/debugger"
	"github.com/lassandro/gocat/pkg/fileio"
	"github.com/lassandro/gocat/pkg/gpio"
	"github.com/lassandro/gocat/pkg/machine"
	"github.com/lassandro/gocat/pkg/settings"
)

var helpvar bool
var verbosevar bool
var boardvar int
var eepromvar string
var rootvar string

const usage = "gocat [-board 0|1] [-eeprom file] [-root dir] [-v]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&verbosevar, "v", false, "Logs machine lifecycle events")
	flag.IntVar(&boardvar, "board", 1, "Board revision, 0: Cerberus 2080, 1: Cerberus 2100")
	flag.StringVar(&eepromvar, "eeprom", "gocat.eeprom", "EEPROM image holding the settings")
	flag.StringVar(&rootvar, "root", ".", "Directory used by load, save and del")
}

func gocat() int {
	flag.Parse()

	if helpvar {
		fmt.Println(usage)
		return 0
	}

	if len(flag.Args()) != 0 {
		log.Println(usage)
		return 1
	}

	var caps gpio.Capability
	if boardvar >= 1 {
		caps |= gpio.CapExpansion
	}

	ee, err := settings.Open(eepromvar)

	if err != nil {
		log.Println(err)
		return 1
	}

	defer ee.Close()

	config := machine.DefaultConfig()
	if verbosevar {
		config.Logger = log.Default()
	}

	b := board.New(caps)
	mc := machine.New(b, ee, config)

	if err := mc.Initialise(); err != nil {
		log.Println(err)
		return 1
	}

	mc.HardReset()
	defer mc.Stop()

	dbg := &debugger.Debugger{
		Styles:      debugger.DefaultStyles(),
		HandleRead:  handleRead,
		HandleWrite: handleWrite,
	}
	mc.Memory.Debugger = dbg

	mon := &monitor{
		mc:      mc,
		board:   b,
		dbg:     dbg,
		storage: &fileio.Storage{Root: rootvar, Memory: mc.Memory},
	}

	mon.repl()

	return 0
}

func main() {
	os.Exit(gocat())
}
