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


package fileio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lassandro/gocat/pkg/board"
	"github.com/lassandro/gocat/pkg/buslink"
	"github.com/lassandro/gocat/pkg/fileio"
	"github.com/lassandro/gocat/pkg/memory"
)

func newStorage(t *testing.T) (*fileio.Storage, *board.Board) {
	b := board.New(0)

	return &fileio.Storage{
		Root:   t.TempDir(),
		Memory: &memory.Memory{Bus: buslink.New(b)},
	}, b
}

func TestLoad(t *testing.T) {
	st, b := newStorage(t)
	image := []byte{0xA9, 0x00, 0x8D, 0x00, 0xF8}

	if err := os.WriteFile(filepath.Join(st.Root, "prog.bin"), image, 0644); err != nil {
		t.Fatal(err)
	}

	if have := st.Load("prog.bin", 0x0200); have != fileio.StatusReady {
		t.Fatalf("Status mismatch\nwant:%s\nhave:%s", fileio.StatusReady, have)
	}

	if have := b.Memory[0x0200 : 0x0200+len(image)]; !bytes.Equal(have, image) {
		t.Errorf("Loaded image mismatch\nwant:% x\nhave:% x", image, have)
	}
}

func TestLoadWraps(t *testing.T) {
	st, b := newStorage(t)

	if err := os.WriteFile(filepath.Join(st.Root, "big.bin"), []byte{1, 2, 3, 4}, 0644); err != nil {
		t.Fatal(err)
	}

	if have := st.Load("big.bin", 0xFFFE); have != fileio.StatusReady {
		t.Fatalf("Status mismatch\nwant:%s\nhave:%s", fileio.StatusReady, have)
	}

	if b.Memory[0xFFFE] != 1 || b.Memory[0xFFFF] != 2 {
		t.Error("Image not loaded at the top of memory")
	}

	if b.Memory[0x0000] != 0 || b.Memory[0x0001] != 0 {
		t.Error("Load continued past the end of memory")
	}
}

func TestSaveDelete(t *testing.T) {
	st, b := newStorage(t)
	copy(b.Memory[0x1000:], "CERBERUS")

	if have := st.Save("dump.bin", 0x1000, 0x1007); have != fileio.StatusReady {
		t.Fatalf("Status mismatch\nwant:%s\nhave:%s", fileio.StatusReady, have)
	}

	data, err := os.ReadFile(filepath.Join(st.Root, "dump.bin"))

	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "CERBERUS" {
		t.Errorf("Saved data mismatch\nwant:CERBERUS\nhave:%q", data)
	}

	if have := st.Save("dump.bin", 0x1000, 0x1007); have != fileio.StatusFileExists {
		t.Errorf("Status mismatch\nwant:%s\nhave:%s", fileio.StatusFileExists, have)
	}

	if have := st.Delete("dump.bin"); have != fileio.StatusReady {
		t.Errorf("Status mismatch\nwant:%s\nhave:%s", fileio.StatusReady, have)
	}

	if have := st.Delete("dump.bin"); have != fileio.StatusNoFile {
		t.Errorf("Status mismatch\nwant:%s\nhave:%s", fileio.StatusNoFile, have)
	}
}

func TestSaveTopOfMemory(t *testing.T) {
	st, b := newStorage(t)
	b.Memory[0xFFFF] = 0x42

	if have := st.Save("top.bin", 0xFFFF, 0xFFFF); have != fileio.StatusReady {
		t.Fatalf("Status mismatch\nwant:%s\nhave:%s", fileio.StatusReady, have)
	}

	data, _ := os.ReadFile(filepath.Join(st.Root, "top.bin"))

	if !bytes.Equal(data, []byte{0x42}) {
		t.Errorf("Saved data mismatch\nwant:42\nhave:% x", data)
	}
}

func TestStatusErrors(t *testing.T) {
	type testCase struct {
		Name string
		Call func(*fileio.Storage) fileio.Status
		Want fileio.Status
	}

	tests := []testCase{
		{
			Name: "Load missing name",
			Call: func(st *fileio.Storage) fileio.Status { return st.Load("", 0) },
			Want: fileio.StatusMissingOperand,
		},
		{
			Name: "Load missing file",
			Call: func(st *fileio.Storage) fileio.Status { return st.Load("nope.bin", 0) },
			Want: fileio.StatusNoFile,
		},
		{
			Name: "Save reversed range",
			Call: func(st *fileio.Storage) fileio.Status { return st.Save("", 0x2000, 0x1000) },
			Want: fileio.StatusAddressError,
		},
		{
			Name: "Save missing name",
			Call: func(st *fileio.Storage) fileio.Status { return st.Save("", 0x1000, 0x2000) },
			Want: fileio.StatusMissingOperand,
		},
		{
			Name: "Delete missing file",
			Call: func(st *fileio.Storage) fileio.Status { return st.Delete("nope.bin") },
			Want: fileio.StatusNoFile,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			st, _ := newStorage(t)

			if have := test.Call(st); have != test.Want {
				t.Errorf("Status mismatch\nwant:%s\nhave:%s", test.Want, have)
			}
		})
	}
}
