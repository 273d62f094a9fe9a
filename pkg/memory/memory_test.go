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


package memory_test

import (
	"bytes"
	"testing"

	"github.com/lassandro/gocat/pkg/board"
	"github.com/lassandro/gocat/pkg/buslink"
	"github.com/lassandro/gocat/pkg/memory"
)

func newMemory() (*memory.Memory, *board.Board) {
	b := board.New(0)
	return &memory.Memory{Bus: buslink.New(b)}, b
}

func TestRoundTrip(t *testing.T) {
	mem, _ := newMemory()

	for a := 0; a <= 0xFFFF; a++ {
		addr := uint16(a)
		want := byte(a*7 + 3)

		mem.WriteByte(addr, want)

		if have := mem.ReadByte(addr); have != want {
			t.Fatalf(
				"Round trip mismatch\nwant:%#02x (%#04x)\nhave:%#02x",
				want,
				addr,
				have,
			)
		}
	}
}

func TestWordAndLong(t *testing.T) {
	type testCase struct {
		Name   string
		Write  func(*memory.Memory)
		Memory map[uint16]byte
	}

	tests := []testCase{
		{
			Name:   "Word",
			Write:  func(mem *memory.Memory) { mem.WriteWord(0x1000, 0xBEEF) },
			Memory: map[uint16]byte{0x1000: 0xEF, 0x1001: 0xBE},
		},
		{
			Name:   "Word wraps",
			Write:  func(mem *memory.Memory) { mem.WriteWord(0xFFFF, 0x1234) },
			Memory: map[uint16]byte{0xFFFF: 0x34, 0x0000: 0x12},
		},
		{
			Name:  "Long",
			Write: func(mem *memory.Memory) { mem.WriteLong(0x2000, 0xDEADBEEF) },
			Memory: map[uint16]byte{
				0x2000: 0xEF, 0x2001: 0xBE, 0x2002: 0xAD, 0x2003: 0xDE,
			},
		},
		{
			Name:  "Text",
			Write: func(mem *memory.Memory) { mem.WriteText(0x3000, "Hi!") },
			Memory: map[uint16]byte{
				0x3000: 'H', 0x3001: 'i', 0x3002: '!', 0x3003: 0x00,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			mem, b := newMemory()
			test.Write(mem)

			for addr, want := range test.Memory {
				if have := mem.ReadByte(addr); have != want {
					t.Errorf(
						"Memory value mismatch"+
							"\nwant:%#02x (test.Memory[%#04x])\nhave:%#02x",
						want,
						addr,
						have,
					)
				}
			}

			for i, value := range b.Memory {
				if _, ok := test.Memory[uint16(i)]; !ok && value != 0 {
					t.Fatalf("Memory unexpectedly changed at %#04x", i)
				}
			}
		})
	}
}

func TestReadWord(t *testing.T) {
	mem, b := newMemory()
	b.Poke(0x4000, 0x34)
	b.Poke(0x4001, 0x12)

	if have := mem.ReadWord(0x4000); have != 0x1234 {
		t.Errorf("Word mismatch\nwant:0x1234\nhave:%#04x", have)
	}
}

func TestReadString(t *testing.T) {
	type testCase struct {
		Name       string
		Image      []byte
		Max        int
		Want       []byte
		Terminated bool
	}

	tests := []testCase{
		{
			Name:       "Terminated",
			Image:      []byte("CAT\x00junk"),
			Max:        16,
			Want:       []byte("CAT\x00"),
			Terminated: true,
		},
		{
			Name:       "Terminator at limit",
			Image:      []byte("CAT\x00"),
			Max:        4,
			Want:       []byte("CAT\x00"),
			Terminated: true,
		},
		{
			Name:       "Truncated",
			Image:      []byte("CERBERUS\x00"),
			Max:        4,
			Want:       []byte("CERB"),
			Terminated: false,
		},
		{
			Name:       "Empty",
			Image:      []byte{0x00},
			Max:        8,
			Want:       []byte{0x00},
			Terminated: true,
		},
		{
			Name:       "Zero limit",
			Image:      []byte("CAT\x00"),
			Max:        0,
			Want:       nil,
			Terminated: false,
		},
		{
			Name:       "Negative limit",
			Image:      []byte("CAT\x00"),
			Max:        -1,
			Want:       nil,
			Terminated: false,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			mem, b := newMemory()

			// Nothing else in memory is zero
			for i := range b.Memory {
				b.Memory[i] = 0xFF
			}

			copy(b.Memory[0x5000:], test.Image)

			have, terminated := mem.ReadString(0x5000, test.Max)

			if !bytes.Equal(have, test.Want) {
				t.Errorf("String mismatch\nwant:%q\nhave:%q", test.Want, have)
			}

			if terminated != test.Terminated {
				t.Errorf(
					"Terminated mismatch\nwant:%v\nhave:%v",
					test.Terminated,
					terminated,
				)
			}
		})
	}
}

type recorder struct {
	reads, writes []uint16
}

func (r *recorder) Read(addr uint16, value byte)  { r.reads = append(r.reads, addr) }
func (r *recorder) Write(addr uint16, value byte) { r.writes = append(r.writes, addr) }

func TestDebuggerHook(t *testing.T) {
	mem, _ := newMemory()
	rec := &recorder{}
	mem.Debugger = rec

	mem.WriteWord(0xFFFF, 0x0102)
	mem.ReadByte(0x0000)

	if len(rec.writes) != 2 || rec.writes[0] != 0xFFFF || rec.writes[1] != 0x0000 {
		t.Errorf("Write notifications mismatch\nhave:%#04x", rec.writes)
	}

	if len(rec.reads) != 1 || rec.reads[0] != 0x0000 {
		t.Errorf("Read notifications mismatch\nhave:%#04x", rec.reads)
	}
}
