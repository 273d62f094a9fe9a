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


package encoding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decodes a hexidecimal string in the formats: 0xFFFF, xFFFF, 0xFF, xFF
func DecodeHex(s string) (uint16, error) {
	if i := strings.IndexAny(s, "xX"); i == 0 {
		s = "0" + s
	} else if i == -1 || i != 1 {
		return 0, errors.New("Invalid hex string")
	}

	result, err := strconv.ParseUint(s, 0, 16)

	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

// Decodes a two digit hexidecimal byte, with or without a 0x prefix
func DecodeByte(s string) (byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	result, err := strconv.ParseUint(s, 16, 8)

	if err != nil {
		return 0, err
	}

	return byte(result), nil
}

// Decodes a base-10 string in the formats: #123, 123
func DecodeInt(s string) (int16, error) {
	if i := strings.Index(s, "#"); i == 0 {
		s = s[1:]
	}

	result, err := strconv.ParseInt(s, 10, 16)

	if err != nil {
		return 0, err
	}

	return int16(result), nil
}

// Checksum is the running sum pair used by the line upload protocol. The
// first sum starts at 1, the second at 0, both modulo 256.
func Checksum(data []byte) uint16 {
	a, b := uint16(1), uint16(0)

	for _, value := range data {
		a = (a + uint16(value)) % 256
		b = (b + a) % 256
	}

	return a<<8 | b
}

// FormatDataLine renders an upload line: 0xAAAA bb bb ...
func FormatDataLine(addr uint16, data []byte) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "0x%04X", addr)

	for _, value := range data {
		fmt.Fprintf(&sb, " %02x", value)
	}

	return sb.String()
}

// ParseDataLine is the inverse of FormatDataLine.
func ParseDataLine(line string) (uint16, []byte, error) {
	fields := strings.Fields(line)

	if len(fields) < 2 {
		return 0, nil, errors.New("Data line needs an address and data")
	}

	addr, err := DecodeHex(fields[0])

	if err != nil {
		return 0, nil, err
	}

	data := make([]byte, 0, len(fields)-1)

	for _, field := range fields[1:] {
		value, err := DecodeByte(field)

		if err != nil {
			return 0, nil, err
		}

		data = append(data, value)
	}

	return addr, data, nil
}
