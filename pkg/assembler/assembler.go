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
	"bufio"
	"io"
	"math"

	"github.com/lassandro/bdcasm/pkg/encoding"
	"github.com/lassandro/bdcasm/pkg/image"
)

const maxLineSize = 1 << 20

// Assembler runs the single pass over a source, one line per Feed call.
// It moves through STAGE_PREBODY, STAGE_BODY and STAGE_ENDED; the first
// error is sticky and returned by every later call.
type Assembler struct {
	symtable *SymTable
	symbols  symbols
	body     []image.Instruction
	stage    Stage
	line     int
	err      error
}

func NewAssembler(symtable *SymTable) *Assembler {
	return &Assembler{symtable: symtable, symbols: newSymbols()}
}

func (asm *Assembler) Stage() Stage {
	return asm.stage
}

// Line is the number of lines fed so far.
func (asm *Assembler) Line() int {
	return asm.line
}

func (asm *Assembler) Feed(raw string) error {
	if asm.err != nil {
		return asm.err
	}

	asm.line++
	asm.err = asm.feed(raw)

	return asm.err
}

func (asm *Assembler) feed(raw string) error {
	lineType, code := classifyLine(raw)

	if lineType == LINE_BLANK {
		return nil
	}

	if asm.stage == STAGE_ENDED {
		return &TrailingContentError{asm.cursor(code.column), code.text}
	}

	switch lineType {
	case LINE_TEXT:
		return asm.text(code)
	case LINE_WORD:
		return asm.word(code)
	case LINE_LABEL:
		return asm.label(code)
	}

	return asm.statement(asm.tokens(code))
}

// Finish validates that the source was complete and returns the image.
func (asm *Assembler) Finish() (*image.Image, error) {
	if asm.err != nil {
		return nil, asm.err
	}

	if asm.stage != STAGE_ENDED {
		asm.err = &MissingEndError{}
		return nil, asm.err
	}

	return &image.Image{Header: asm.symbols.entries, Body: asm.body}, nil
}

func (asm *Assembler) cursor(column int) Cursor {
	return Cursor{Line: asm.line, Column: column}
}

func (asm *Assembler) tokens(code segment) []Token {
	tokens := code.fields()

	for i := range tokens {
		tokens[i].Position.Line = asm.line
	}

	return tokens
}

// directiveLabel validates the "label:" part in front of a .text or .word
// directive.
func (asm *Assembler) directiveLabel(
	label segment, directive string, at Cursor,
) (string, error) {
	label = label.trim()

	if len(label.text) == 0 || label.text[len(label.text)-1] != ':' {
		return "", &MissingLabelError{at, directive + " directive"}
	}

	label.text = label.text[:len(label.text)-1]
	label = label.trim()

	if len(label.text) == 0 {
		return "", &MissingLabelError{at, directive + " directive"}
	}

	if hasWhitespace(label.text) {
		return "", &LabelWhitespaceError{asm.cursor(label.column), label.text}
	}

	if asm.symbols.defined(label.text) {
		return "", &RedeclaredLabelError{asm.cursor(label.column), label.text}
	}

	return label.text, nil
}

// label: "name" .text "payload"
func (asm *Assembler) text(code segment) error {
	const directive = ".text"

	label, payload, _ := code.cut(directive)
	at := asm.cursor(label.end())

	if asm.stage != STAGE_PREBODY {
		return &DirectiveAfterBeginError{at, directive}
	}

	name, err := asm.directiveLabel(label, directive, at)

	if err != nil {
		return err
	}

	if !startsWithWhitespace(payload.text) {
		return &MissingWhitespaceError{at, directive}
	}

	payload = payload.trim()
	text := payload.text

	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return &InvalidStringError{asm.cursor(payload.column), text}
	}

	return asm.symbols.define(
		image.Entry{Type: image.ENTRY_TEXT, Name: name, Text: text[1 : len(text)-1]},
		at,
	)
}

// label: .word 1, 2, 3
func (asm *Assembler) word(code segment) error {
	const directive = ".word"

	label, payload, _ := code.cut(directive)
	at := asm.cursor(label.end())

	if asm.stage != STAGE_PREBODY {
		return &DirectiveAfterBeginError{at, directive}
	}

	name, err := asm.directiveLabel(label, directive, at)

	if err != nil {
		return err
	}

	if !startsWithWhitespace(payload.text) {
		return &MissingWhitespaceError{at, directive}
	}

	var words []uint32

	for rest, more := payload, true; more; {
		var item segment
		item, rest, more = rest.cut(",")
		item = item.trim()

		word, err := encoding.DecodeWord(item.text)

		if err != nil {
			return &InvalidLiteralError{
				asm.cursor(item.column), LITERAL_WORD, item.text,
			}
		}

		words = append(words, word)
	}

	return asm.symbols.define(
		image.Entry{Type: image.ENTRY_WORDS, Name: name, Words: words},
		at,
	)
}

// label: [statement]
func (asm *Assembler) label(code segment) error {
	label, rest, _ := code.cut(":")
	label = label.trim()
	at := asm.cursor(label.column)

	if asm.stage == STAGE_PREBODY {
		return &LabelBeforeBeginError{at, label.text}
	}

	if len(label.text) == 0 {
		return &MissingLabelError{at, "':'"}
	}

	if hasWhitespace(label.text) {
		return &LabelWhitespaceError{at, label.text}
	}

	offset := uint64(len(asm.body))

	if offset > math.MaxUint32 || !encoding.FitsOffset(uint32(offset)) {
		return &OversizedBinaryError{at, offset}
	}

	entry := image.Entry{
		Type: image.ENTRY_OFFSET, Name: label.text, Offset: uint32(offset),
	}

	if err := asm.symbols.define(entry, at); err != nil {
		return err
	}

	if asm.symtable != nil {
		asm.symtable.Labels[entry.Name] = entry.Offset
	}

	return asm.statement(asm.tokens(rest))
}

// Assemble reads a whole source and returns its image or the first error.
func Assemble(input io.Reader, symtable *SymTable) (*image.Image, error) {
	asm := NewAssembler(symtable)

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	for scanner.Scan() {
		if err := asm.Feed(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return asm.Finish()
}
