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


// Package settings holds the CAT's persisted preferences in a small
// byte-addressed EEPROM.
package settings

import (
	"errors"
	"fmt"
)

const (
	AddrMode = 0
	AddrFast = 1

	// Size of an EEPROM image file
	Size = 1024
)

var ErrAddress = errors.New("settings: address out of range")

type EEPROM interface {
	Read(idx int) (byte, error)
	Write(idx int, value byte) error
}

// ReadSetting reads the byte at idx. A value outside [low, high] is treated
// as unset and replaced, in the EEPROM too, by def.
func ReadSetting(ee EEPROM, idx int, low, high, def byte) (byte, error) {
	b, err := ee.Read(idx)

	if err != nil {
		return def, fmt.Errorf("reading setting %d: %w", idx, err)
	}

	if b < low || b > high {
		b = def

		if err := ee.Write(idx, b); err != nil {
			return def, fmt.Errorf("restoring setting %d: %w", idx, err)
		}
	}

	return b, nil
}

// Mem is a volatile EEPROM. A fresh one reads back 0xFF like erased cells.
type Mem struct {
	Data   [Size]byte
	Writes int
}

func NewMem() *Mem {
	ee := &Mem{}

	for i := range ee.Data {
		ee.Data[i] = 0xFF
	}

	return ee
}

func (ee *Mem) Read(idx int) (byte, error) {
	if idx < 0 || idx >= len(ee.Data) {
		return 0, ErrAddress
	}

	return ee.Data[idx], nil
}

func (ee *Mem) Write(idx int, value byte) error {
	if idx < 0 || idx >= len(ee.Data) {
		return ErrAddress
	}

	ee.Data[idx] = value
	ee.Writes++

	return nil
}
