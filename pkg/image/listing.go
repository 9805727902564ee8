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
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes a listing of the header and body tables. Plain output uses
// ASCII box characters so it survives being piped into files.
func (img *Image) Render(w io.Writer, plain bool) {
	style := table.StyleLight
	if plain {
		style = table.StyleDefault
	}

	header := table.NewWriter()
	header.SetOutputMirror(w)
	header.SetStyle(style)
	header.SetTitle("Header (%d entries)", len(img.Header))
	header.AppendHeader(table.Row{"#", "Kind", "Name", "Value"})

	for i, entry := range img.Header {
		header.AppendRow(table.Row{i, entry.Type, entry.Name, entry.Value()})
	}

	header.Render()

	body := table.NewWriter()
	body.SetOutputMirror(w)
	body.SetStyle(style)
	body.SetTitle("Body (%d instructions)", len(img.Body))
	body.AppendHeader(table.Row{"Offset", "Labels", "Instruction"})

	labels := make(map[uint32][]string)
	for _, entry := range img.Header {
		if entry.Type == ENTRY_OFFSET {
			labels[entry.Offset] = append(labels[entry.Offset], entry.Name)
		}
	}

	for i, inst := range img.Body {
		body.AppendRow(table.Row{
			i, strings.Join(labels[uint32(i)], " "), inst.String(),
		})
	}

	body.Render()
}
