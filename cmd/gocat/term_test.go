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
	"testing"
)

func TestReadLine(t *testing.T) {
	type testCase struct {
		Name  string
		Input string
		Want  []string
	}

	tests := []testCase{
		{
			Name:  "Newline",
			Input: "peek 0x200\nrun\n",
			Want:  []string{"peek 0x200", "run"},
		},
		{
			Name:  "Carriage return",
			Input: "0x0205 a9 00\r0x020F 60\r",
			Want:  []string{"0x0205 a9 00", "0x020F 60"},
		},
		{
			Name:  "CRLF",
			Input: "stop\r\nreset\r\n",
			Want:  []string{"stop", "reset"},
		},
		{
			Name:  "Blank lines",
			Input: "\n\r\r\n",
			Want:  []string{"", "", ""},
		},
		{
			Name:  "Unterminated",
			Input: "run\rhel",
			Want:  []string{"run", "hel"},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			kb := &keyboard{keys: make(chan byte, len(test.Input))}

			for i := 0; i < len(test.Input); i++ {
				kb.keys <- test.Input[i]
			}

			close(kb.keys)

			var have []string

			for {
				line, ok := kb.readLine()
				if !ok {
					break
				}

				have = append(have, line)
			}

			if len(have) != len(test.Want) {
				t.Fatalf("Line count mismatch\nwant:%q\nhave:%q", test.Want, have)
			}

			for i := range test.Want {
				if have[i] != test.Want[i] {
					t.Errorf("Line %d mismatch\nwant:%q\nhave:%q", i, test.Want[i], have[i])
				}
			}
		})
	}
}
