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


package memory

const (
	VideoBase     uint16 = 0xF800
	VideoRowWidth uint16 = 38
	VideoBias     int    = 43

	// Visible cells cleared by ClearScreen
	VideoSize = 1200
)

// VideoTranslate maps a linear video address onto the padded physical
// layout, where each 38 column row is followed by a two byte gap.
//
// The row count is held in eight bits and row 0 is offset by -2, giving
// virtual+41. This matches the firmware the guests were written against.
// TODO: confirm with a board capture whether row 0 should map to virtual+43.
func VideoTranslate(virtual uint16) uint16 {
	rows := uint8((virtual - VideoBase) / VideoRowWidth)

	return uint16(int(virtual) + VideoBias + 2*(int(rows)-1))
}

// ClearScreen fills the visible video region with spaces.
func (mem *Memory) ClearScreen() {
	for x := uint16(0); x < VideoSize; x++ {
		mem.WriteByte(VideoBase+x, ' ')
	}
}
