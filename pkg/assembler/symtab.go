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

package assembler

import (
	"github.com/golang/glog"

	"github.com/lassandro/bdcasm/pkg/image"
)

// symbols is the header namespace. Entries keep declaration order; every
// kind of entry shares one set of names.
type symbols struct {
	index   map[string]int
	entries []image.Entry
}

func newSymbols() symbols {
	return symbols{index: make(map[string]int)}
}

func (s *symbols) defined(name string) bool {
	_, exists := s.index[name]
	return exists
}

func (s *symbols) define(entry image.Entry, position Cursor) error {
	if s.defined(entry.Name) {
		return &RedeclaredLabelError{position, entry.Name}
	}

	s.index[entry.Name] = len(s.entries)
	s.entries = append(s.entries, entry)

	glog.V(1).Infof(
		"%d: defining %s %q as %s", position.Line, entry.Type, entry.Name,
		entry.Value(),
	)

	return nil
}
