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
	"strings"
	"unicode"
	"unicode/utf8"
)

const commentMarker = "//"

// segment is a slice of a source line that remembers the 1-based column of
// its first byte.
type segment struct {
	text   string
	column int
}

func (s segment) trim() segment {
	left := strings.TrimLeftFunc(s.text, unicode.IsSpace)

	return segment{
		text:   strings.TrimRightFunc(left, unicode.IsSpace),
		column: s.column + len(s.text) - len(left),
	}
}

func (s segment) cut(sep string) (before, after segment, found bool) {
	i := strings.Index(s.text, sep)

	if i < 0 {
		return s, segment{"", s.column + len(s.text)}, false
	}

	before = segment{s.text[:i], s.column}
	after = segment{s.text[i+len(sep):], s.column + i + len(sep)}

	return before, after, true
}

func (s segment) end() int {
	return s.column + len(s.text)
}

func (s segment) fields() []Token {
	var tokens []Token

	start := -1

	for i, char := range s.text {
		if unicode.IsSpace(char) {
			if start >= 0 {
				tokens = append(tokens, Token{
					Position: Cursor{Column: s.column + start},
					Value:    s.text[start:i],
				})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		tokens = append(tokens, Token{
			Position: Cursor{Column: s.column + start},
			Value:    s.text[start:],
		})
	}

	return tokens
}

// classifyLine strips the comment and surrounding whitespace from a raw
// source line and picks its shape. The first matching pattern wins.
func classifyLine(raw string) (LineType, segment) {
	code, _, _ := segment{raw, 1}.cut(commentMarker)
	code = code.trim()

	switch {
	case len(code.text) == 0:
		return LINE_BLANK, code
	case strings.Contains(code.text, ".text"):
		return LINE_TEXT, code
	case strings.Contains(code.text, ".word"):
		return LINE_WORD, code
	case strings.Contains(code.text, ":"):
		return LINE_LABEL, code
	}

	return LINE_STATEMENT, code
}

func hasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func startsWithWhitespace(s string) bool {
	char, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(char)
}
