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


package debugger_test

import (
	"bytes"
	"testing"

	"github.com/lassandro/gocat/pkg/board"
	"github.com/lassandro/gocat/pkg/buslink"
	"github.com/lassandro/gocat/pkg/debugger"
	"github.com/lassandro/gocat/pkg/memory"
)

func TestWatchpoints(t *testing.T) {
	type hit struct {
		Addr  uint16
		Value byte
		Write bool
	}

	var hits []hit

	dbg := &debugger.Debugger{
		HandleRead: func(addr uint16, value byte, _ *debugger.Debugger) {
			hits = append(hits, hit{addr, value, false})
		},
		HandleWrite: func(addr uint16, value byte, _ *debugger.Debugger) {
			hits = append(hits, hit{addr, value, true})
		},
	}

	dbg.AddWatch(0xEFF0, debugger.WriteWatch)
	dbg.AddWatch(0xEFF1, debugger.ReadWatch)
	dbg.AddWatch(0xEFF2, debugger.ReadWriteWatch)

	if dbg.AddWatch(0xEFF2, debugger.ReadWriteWatch) {
		t.Error("Duplicate watchpoint added")
	}

	mem := &memory.Memory{Bus: buslink.New(board.New(0)), Debugger: dbg}

	mem.WriteByte(0xEFF0, 0x01)
	mem.ReadByte(0xEFF0)
	mem.WriteByte(0xEFF1, 0x02)
	mem.ReadByte(0xEFF1)
	mem.WriteByte(0xEFF2, 0x03)
	mem.ReadByte(0xEFF2)

	want := []hit{
		{0xEFF0, 0x01, true},
		{0xEFF1, 0x02, false},
		{0xEFF2, 0x03, true},
		{0xEFF2, 0x03, false},
	}

	if len(hits) != len(want) {
		t.Fatalf("Hit count mismatch\nwant:%d\nhave:%d", len(want), len(hits))
	}

	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("Hit mismatch\nwant:%+v\nhave:%+v", want[i], hits[i])
		}
	}

	if !dbg.RemoveWatch(0) || len(dbg.Watchpoints) != 2 {
		t.Error("Watchpoint not removed")
	}

	if dbg.RemoveWatch(5) {
		t.Error("Removed a watchpoint that does not exist")
	}
}

func TestPrintMem(t *testing.T) {
	b := board.New(0)
	copy(b.Memory[0x0200:], []byte{0xA9, 0x00, 0x8D})

	dbg := &debugger.Debugger{}
	mem := &memory.Memory{Bus: buslink.New(b)}

	var out bytes.Buffer
	dbg.PrintMem(&out, mem, 0x0200, 10)

	want := "[0x0200] a9 00 8d 00 00 00 00 00\n[0x0208] 00 00\n"

	if out.String() != want {
		t.Errorf("Dump mismatch\nwant:%q\nhave:%q", want, out.String())
	}
}
