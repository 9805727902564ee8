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

package image

import (
	"fmt"
	"strconv"
	"strings"
)

type EntryType uint

const (
	ENTRY_EXTERN EntryType = iota
	ENTRY_TEXT
	ENTRY_WORDS
	ENTRY_OFFSET
)

func (t EntryType) String() string {
	switch t {
	case ENTRY_EXTERN:
		return "EXTERN"
	case ENTRY_TEXT:
		return "TEXT"
	case ENTRY_WORDS:
		return "WORDS"
	case ENTRY_OFFSET:
		return "OFFSET"
	}

	return "<invalid>"
}

// Entry is one header line. Only the field matching Type is meaningful.
type Entry struct {
	Type   EntryType
	Name   string
	Text   string
	Words  []uint32
	Offset uint32
}

func (e Entry) Value() string {
	switch e.Type {
	case ENTRY_TEXT:
		return `"` + e.Text + `"`
	case ENTRY_WORDS:
		words := make([]string, 0, len(e.Words))
		for _, word := range e.Words {
			words = append(words, strconv.FormatUint(uint64(word), 10))
		}
		return strings.Join(words, ",")
	case ENTRY_OFFSET:
		return strconv.FormatUint(uint64(e.Offset), 10)
	}

	return ""
}

func (e Entry) String() string {
	if e.Type == ENTRY_EXTERN {
		return e.Name
	}

	return e.Name + " " + e.Value()
}

type Instruction struct {
	Mnemonic string
	Args     []string
}

func (inst Instruction) String() string {
	if len(inst.Args) == 0 {
		return inst.Mnemonic
	}

	return inst.Mnemonic + " " + strings.Join(inst.Args, " ")
}

// Image is an assembled program: the header of symbols and constants in
// declaration order followed by the instruction body.
type Image struct {
	Header []Entry
	Body   []Instruction
}

func (img *Image) Lookup(name string) (Entry, bool) {
	for _, entry := range img.Header {
		if entry.Name == name {
			return entry, true
		}
	}

	return Entry{}, false
}

func (img *Image) String() string {
	return fmt.Sprintf(
		"Image{header: %d entries, body: %d instructions}",
		len(img.Header),
		len(img.Body),
	)
}
