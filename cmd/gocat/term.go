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
	"bufio"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// Detaches the console
const keyDetach = 0x1D

// keyboard owns stdin so the line REPL and the raw console can share it.
type keyboard struct {
	keys chan byte

	// The last line ended on '\r', so a following '\n' belongs to it
	afterCR bool
}

func newKeyboard() *keyboard {
	kb := &keyboard{keys: make(chan byte, 64)}

	go func() {
		defer close(kb.keys)

		reader := bufio.NewReader(os.Stdin)

		for {
			key, err := reader.ReadByte()

			if err != nil {
				return
			}

			kb.keys <- key
		}
	}()

	return kb
}

func (kb *keyboard) readLine() (string, bool) {
	var line []byte

	for key := range kb.keys {
		afterCR := kb.afterCR
		kb.afterCR = key == '\r'

		switch {
		case key == '\n' && afterCR && len(line) == 0:
			continue
		case key == '\n', key == '\r':
			return string(line), true
		}

		line = append(line, key)
	}

	return string(line), len(line) > 0
}

// console puts the terminal in raw mode and forwards keystrokes to the
// guest's inbox, printing whatever the guest posts to its outbox.
func (mon *monitor) console() {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		mon.errorf("console needs a terminal")
		return
	}

	state, err := term.MakeRaw(fd)

	if err != nil {
		mon.errorf("%v", err)
		return
	}

	defer term.Restore(fd, state)

	fmt.Print(styles.info.Render("Console attached, ^] detaches"), "\r\n")

	tick := time.NewTicker(time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case key, ok := <-mon.kb.keys:
			if !ok || key == keyDetach {
				fmt.Print("\r\n")
				mon.kb.afterCR = false
				return
			}

			mon.mc.PostInbox(uint16(key))

		case <-tick.C:
		}

		mon.mc.Poll()

		for {
			value, ok := mon.mc.ReadOutbox()
			if !ok {
				break
			}

			if value == '\n' {
				fmt.Print("\r\n")
			} else {
				fmt.Print(string(rune(value)))
			}
		}
	}
}
