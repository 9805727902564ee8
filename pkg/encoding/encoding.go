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
	"math/bits"
	"strconv"
	"strings"
)

// Offsets written to an image keep this many high bits clear for the loader.
const OffsetHeadroom = 7

var ErrEmpty = errors.New("Empty literal")

// Decodes an unsigned base-10 word in the format: 123
func DecodeWord(s string) (uint32, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}

	result, err := strconv.ParseUint(s, 10, 32)

	if err != nil {
		return 0, err
	}

	return uint32(result), nil
}

// Decodes a comma separated list of base-10 words in the format: 1, 2,3
// On failure the offending (trimmed) token is returned alongside the error.
func DecodeWordList(s string) ([]uint32, string, error) {
	parts := strings.Split(s, ",")
	result := make([]uint32, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)

		word, err := DecodeWord(part)

		if err != nil {
			return nil, part, err
		}

		result = append(result, word)
	}

	return result, "", nil
}

// Decodes an unsigned base-2 string in the format: 1010
func DecodeBinary(s string) (uint32, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}

	result, err := strconv.ParseUint(s, 2, 32)

	if err != nil {
		return 0, err
	}

	return uint32(result), nil
}

// Decodes an interrupt type in the format: 3
func DecodeIRQ(s string) (uint8, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}

	result, err := strconv.ParseUint(s, 10, 8)

	if err != nil {
		return 0, err
	}

	return uint8(result), nil
}

func FitsOffset(value uint32) bool {
	return bits.LeadingZeros32(value) >= OffsetHeadroom
}
