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


package settings

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is an EEPROM backed by an image file mapped into memory. Writes are
// synced to disk before returning.
type File struct {
	file *os.File
	data []byte
}

// Open maps the EEPROM image at path, creating an erased one if needed.
func Open(path string) (*File, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)

	if err != nil {
		return nil, err
	}

	info, err := file.Stat()

	if err != nil {
		file.Close()
		return nil, err
	}

	if info.Size() != Size {
		if err := erase(file, info.Size()); err != nil {
			file.Close()
			return nil, fmt.Errorf("erasing %s: %w", path, err)
		}
	}

	data, err := unix.Mmap(
		int(file.Fd()), 0, Size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED,
	)

	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}

	return &File{file: file, data: data}, nil
}

// erase pads a short image with 0xFF and cuts a long one down to Size.
func erase(file *os.File, size int64) error {
	if size > Size {
		return file.Truncate(Size)
	}

	blank := make([]byte, Size-size)

	for i := range blank {
		blank[i] = 0xFF
	}

	_, err := file.WriteAt(blank, size)

	return err
}

func (ee *File) Read(idx int) (byte, error) {
	if idx < 0 || idx >= len(ee.data) {
		return 0, ErrAddress
	}

	return ee.data[idx], nil
}

func (ee *File) Write(idx int, value byte) error {
	if idx < 0 || idx >= len(ee.data) {
		return ErrAddress
	}

	ee.data[idx] = value

	return unix.Msync(ee.data, unix.MS_SYNC)
}

func (ee *File) Close() error {
	if err := unix.Munmap(ee.data); err != nil {
		ee.file.Close()
		return err
	}

	return ee.file.Close()
}
