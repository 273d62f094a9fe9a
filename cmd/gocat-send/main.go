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
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/term"

	"github.com/lassandro/gocat/pkg/encoding"
)

var helpvar bool
var portvar string
var addrvar string
var blockvar int
var waitvar time.Duration

const usage = "gocat-send [-port device] [-addr 0x####] filename"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.StringVar(&portvar, "port", "/dev/ttyUSB1", "Serial port the Cerberus is attached to")
	flag.StringVar(&addrvar, "addr", "0x0205", "Load address of the first byte")
	flag.IntVar(&blockvar, "block", 10, "Bytes sent per line")
	flag.DurationVar(&waitvar, "wait", 7*time.Second, "Time allowed for the Cerberus to reset")
}

// send uploads data as checksummed lines, stopping at the first line the
// receiver does not confirm.
func send(rw io.ReadWriter, addr uint16, data []byte, block int, out io.Writer) error {
	reader := bufio.NewReader(rw)

	for len(data) > 0 {
		n := block
		if n > len(data) {
			n = len(data)
		}

		line := encoding.FormatDataLine(addr, data[:n])
		checksum := fmt.Sprintf("%X", encoding.Checksum(data[:n]))

		if _, err := io.WriteString(rw, line+"\r"); err != nil {
			return err
		}

		response, err := reader.ReadString('\n')

		if err != nil {
			return fmt.Errorf("reading response to %#04x: %w", addr, err)
		}

		response = strings.TrimRight(response, "\r\n")
		fmt.Fprintf(out, "%s > %s : %s\n", line, response, checksum)

		if !strings.HasSuffix(response, checksum) {
			return fmt.Errorf("mismatched checksum at %#04x", addr)
		}

		addr += uint16(n)
		data = data[n:]
	}

	return nil
}

func gocatSend() int {
	flag.Parse()

	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) != 1 || blockvar <= 0 {
		log.Println(usage)
		return 1
	}

	addr, err := encoding.DecodeHex(addrvar)

	if err != nil {
		log.Println(err)
		return 1
	}

	data, err := os.ReadFile(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	port, err := term.Open(portvar, term.Speed(115200), term.RawMode)

	if err != nil {
		log.Println(err)
		return 1
	}

	defer port.Close()

	time.Sleep(waitvar)

	if err := send(port, addr, data, blockvar, os.Stdout); err != nil {
		log.Println(err)
		return 1
	}

	fmt.Println("End")

	return 0
}

func main() {
	os.Exit(gocatSend())
}
