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
	"fmt"
)

type Cursor struct {
	Line   int
	Column int
}

type Token struct {
	Position Cursor
	Value    string
}

// SymTable is the optional debugging output of an assembly: the source line
// of every emitted instruction and the offset of every body label.
type SymTable struct {
	Source  string
	Symbols map[uint32]int
	Labels  map[string]uint32
}

func NewSymTable(source string) *SymTable {
	return &SymTable{
		Source:  source,
		Symbols: make(map[uint32]int),
		Labels:  make(map[string]uint32),
	}
}

type TokenError interface {
	GetPosition() Cursor
}

type RepeatedBeginError struct {
	Position Cursor
}

func (err *RepeatedBeginError) GetPosition() Cursor {
	return err.Position
}

func (err *RepeatedBeginError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Found repeated BEGIN statement",
		err.Position.Line,
		err.Position.Column,
	)
}

type MissingEndError struct{}

func (err *MissingEndError) Error() string {
	return "END statement missing"
}

type TrailingContentError struct {
	Position Cursor
	Received string
}

func (err *TrailingContentError) GetPosition() Cursor {
	return err.Position
}

func (err *TrailingContentError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: File continues after END\n\t%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type DirectiveAfterBeginError struct {
	Position Cursor
	Received string
}

func (err *DirectiveAfterBeginError) GetPosition() Cursor {
	return err.Position
}

func (err *DirectiveAfterBeginError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Found %s directive after BEGIN statement",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InstructionBeforeBeginError struct {
	Position Cursor
	Received string
}

func (err *InstructionBeforeBeginError) GetPosition() Cursor {
	return err.Position
}

func (err *InstructionBeforeBeginError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Found instruction before BEGIN statement\n\t%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type LabelBeforeBeginError struct {
	Position Cursor
	Received string
}

func (err *LabelBeforeBeginError) GetPosition() Cursor {
	return err.Position
}

func (err *LabelBeforeBeginError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Expected directive after label\n\t%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type ExpectedBeginError struct {
	Position Cursor
	Received string
}

func (err *ExpectedBeginError) GetPosition() Cursor {
	return err.Position
}

func (err *ExpectedBeginError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Expected BEGIN or EXTERN statement or label\n\t"+
			"found %s instead",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type MissingLabelError struct {
	Position Cursor
	Received string
}

func (err *MissingLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *MissingLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Expected label before %s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type LabelWhitespaceError struct {
	Position Cursor
	Received string
}

func (err *LabelWhitespaceError) GetPosition() Cursor {
	return err.Position
}

func (err *LabelWhitespaceError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Found whitespace in label\n\t%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type RedeclaredLabelError struct {
	Position Cursor
	Received string
}

func (err *RedeclaredLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *RedeclaredLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type MissingWhitespaceError struct {
	Position Cursor
	Received string
}

func (err *MissingWhitespaceError) GetPosition() Cursor {
	return err.Position
}

func (err *MissingWhitespaceError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Expected whitespace after %s directive",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidStringError struct {
	Position Cursor
	Received string
}

func (err *InvalidStringError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidStringError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid string literal\n\t%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidLiteralError struct {
	Position Cursor
	Required LiteralType
	Received string
}

func (err *InvalidLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidLiteralError) Error() string {
	var requiredString string

	switch err.Required {
	case LITERAL_WORD:
		requiredString = "32 bit unsigned word"
	case LITERAL_BINARY:
		requiredString = "binary number"
	case LITERAL_IRQ:
		requiredString = "interrupt type"
	default:
		requiredString = "<invalid>"
	}

	return fmt.Sprintf(
		"%02d:%02d: Invalid numeric literal\n\twant:%s\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		requiredString,
		err.Received,
	)
}

type MissingArgumentError struct {
	Position Cursor
	Required OperandType
}

func (err *MissingArgumentError) GetPosition() Cursor {
	return err.Position
}

func (err *MissingArgumentError) Error() string {
	var requiredString string

	switch err.Required {
	case OPERAND_LABEL:
		requiredString = "label"
	case OPERAND_BINARY:
		requiredString = "binary number"
	case OPERAND_IRQ:
		requiredString = "integer"
	default:
		requiredString = "<invalid>"
	}

	return fmt.Sprintf(
		"%02d:%02d: Expected %s",
		err.Position.Line,
		err.Position.Column,
		requiredString,
	)
}

type UnexpectedArgumentError struct {
	Position Cursor
	Received string
}

func (err *UnexpectedArgumentError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unexpected argument\n\t%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownIRQError struct {
	Position Cursor
	Received uint8
}

func (err *UnknownIRQError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownIRQError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown IRQ type\n\t%d",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownIdentifierError struct {
	Position Cursor
	Received string
}

func (err *UnknownIdentifierError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownIdentifierError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Expected instruction or label\n\tfound %s instead",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedBinaryError struct {
	Position Cursor
	Received uint64
}

func (err *OversizedBinaryError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedBinaryError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: File too big!\n\toffset %d",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}
