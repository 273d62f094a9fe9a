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


// Package fileio moves binary images between a storage directory and guest
// memory one byte at a time.
package fileio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type Status int

const (
	StatusDefault Status = iota
	StatusReady
	StatusMissingOperand
	StatusNoFile
	StatusCannotOpen
	StatusFileExists
	StatusAddressError
)

// Memory is the byte access surface of the memory facade.
type Memory interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, value byte)
}

type Storage struct {
	Root   string
	Memory Memory
}

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusMissingOperand:
		return "Missing operand"
	case StatusNoFile:
		return "No such file"
	case StatusCannotOpen:
		return "Cannot open file"
	case StatusFileExists:
		return "File already exists"
	case StatusAddressError:
		return "Address error"
	}

	return "Unknown status"
}

func (st *Storage) path(name string) string {
	return filepath.Join(st.Root, filepath.Base(name))
}

func (st *Storage) exists(name string) bool {
	_, err := os.Stat(st.path(name))
	return !errors.Is(err, fs.ErrNotExist)
}

// Load copies the named file into memory from start. Loading stops if the
// address wraps past 0xFFFF.
func (st *Storage) Load(name string, start uint16) Status {
	if name == "" {
		return StatusMissingOperand
	}

	if !st.exists(name) {
		return StatusNoFile
	}

	file, err := os.Open(st.path(name))

	if err != nil {
		return StatusCannotOpen
	}

	defer file.Close()

	reader := bufio.NewReader(file)
	addr := start

	for {
		value, err := reader.ReadByte()

		if err == io.EOF {
			break
		} else if err != nil {
			return StatusCannotOpen
		}

		st.Memory.WriteByte(addr, value)

		if addr++; addr == 0 {
			break
		}
	}

	return StatusReady
}

// Save writes memory from start to end inclusive into a new file.
func (st *Storage) Save(name string, start, end uint16) Status {
	if end < start {
		return StatusAddressError
	}

	if name == "" {
		return StatusMissingOperand
	}

	if st.exists(name) {
		return StatusFileExists
	}

	file, err := os.OpenFile(st.path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)

	if err != nil {
		return StatusCannotOpen
	}

	writer := bufio.NewWriter(file)

	for addr := int(start); addr <= int(end); addr++ {
		writer.WriteByte(st.Memory.ReadByte(uint16(addr)))
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return StatusCannotOpen
	}

	if err := file.Close(); err != nil {
		return StatusCannotOpen
	}

	return StatusReady
}

func (st *Storage) Delete(name string) Status {
	if name == "" {
		return StatusMissingOperand
	}

	if !st.exists(name) {
		return StatusNoFile
	}

	if err := os.Remove(st.path(name)); err != nil {
		return StatusCannotOpen
	}

	return StatusReady
}
