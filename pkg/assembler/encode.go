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
	"strconv"

	"github.com/golang/glog"

	"github.com/lassandro/bdcasm/pkg/encoding"
	"github.com/lassandro/bdcasm/pkg/image"
)

// statement handles an instruction, pseudo-instruction or structural
// directive. Every token must be consumed.
func (asm *Assembler) statement(tokens []Token) error {
	if len(tokens) == 0 {
		return nil
	}

	keyword := tokens[0]
	op, ok := parseMnemonic(keyword.Value)

	if !ok {
		return &UnknownIdentifierError{keyword.Position, keyword.Value}
	}

	var rest []Token
	var err error

	if asm.stage == STAGE_PREBODY {
		rest, err = asm.prologue(op, keyword, tokens[1:])
	} else {
		rest, err = asm.encode(op, keyword, tokens[1:])
	}

	if err != nil {
		return err
	}

	if len(rest) > 0 {
		return &UnexpectedArgumentError{rest[0].Position, rest[0].Value}
	}

	return nil
}

// prologue handles the statements legal before BEGIN.
func (asm *Assembler) prologue(
	op Mnemonic, keyword Token, args []Token,
) ([]Token, error) {
	switch op.Action {
	case ACTION_BEGIN:
		asm.stage = STAGE_BODY
		glog.V(1).Infof("%d: body begins", keyword.Position.Line)
		return args, nil

	case ACTION_EXTERN:
		name, rest, err := operand(keyword, args, OPERAND_LABEL)

		if err != nil {
			return nil, err
		}

		return rest, asm.symbols.define(
			image.Entry{Type: image.ENTRY_EXTERN, Name: name.Value},
			name.Position,
		)
	}

	if op.Type == MNEMONIC_OPCODE {
		return nil, &InstructionBeforeBeginError{keyword.Position, keyword.Value}
	}

	return nil, &ExpectedBeginError{keyword.Position, keyword.Value}
}

func (asm *Assembler) encode(
	op Mnemonic, keyword Token, args []Token,
) ([]Token, error) {
	switch op.Action {
	case ACTION_BEGIN:
		return nil, &RepeatedBeginError{keyword.Position}

	case ACTION_EXTERN:
		return nil, &DirectiveAfterBeginError{keyword.Position, op.Name}

	case ACTION_END:
		asm.stage = STAGE_ENDED
		glog.V(1).Infof("%d: body ends", keyword.Position.Line)
		return args, nil

	case ACTION_IRQ:
		return asm.encodeIRQ(keyword, args)

	case ACTION_EXPAND:
		vector := strconv.Itoa(int(op.Vector))

		if op.Operand == OPERAND_NONE {
			asm.emit(keyword, irqMnemonic, vector)
			return args, nil
		}

		arg, rest, err := operand(keyword, args, op.Operand)

		if err != nil {
			return nil, err
		}

		asm.emit(keyword, irqMnemonic, vector, arg.Value)
		return rest, nil
	}

	arg, rest, err := operand(keyword, args, op.Operand)

	if err != nil {
		return nil, err
	}

	asm.emit(keyword, op.Name, arg.Value)
	return rest, nil
}

// IRQ TYPE [ARG]
func (asm *Assembler) encodeIRQ(keyword Token, args []Token) ([]Token, error) {
	irq, rest, err := operand(keyword, args, OPERAND_IRQ)

	if err != nil {
		return nil, err
	}

	vector, _ := encoding.DecodeIRQ(irq.Value)
	required, known := irqOperands[vector]

	if !known {
		return nil, &UnknownIRQError{irq.Position, vector}
	}

	vectorString := strconv.Itoa(int(vector))

	if required == OPERAND_NONE {
		if len(rest) > 0 {
			return nil, &UnexpectedArgumentError{rest[0].Position, rest[0].Value}
		}

		asm.emit(keyword, irqMnemonic, vectorString)
		return rest, nil
	}

	arg, rest, err := operand(irq, rest, required)

	if err != nil {
		return nil, err
	}

	asm.emit(keyword, irqMnemonic, vectorString, arg.Value)
	return rest, nil
}

// operand takes the argument following prev and checks it against the
// required operand type.
func operand(
	prev Token, args []Token, required OperandType,
) (Token, []Token, error) {
	if len(args) == 0 {
		return Token{}, nil, &MissingArgumentError{
			Cursor{prev.Position.Line, prev.Position.Column + len(prev.Value)},
			required,
		}
	}

	arg := args[0]

	switch required {
	case OPERAND_BINARY:
		if _, err := encoding.DecodeBinary(arg.Value); err != nil {
			return Token{}, nil, &InvalidLiteralError{
				arg.Position, LITERAL_BINARY, arg.Value,
			}
		}
	case OPERAND_IRQ:
		if _, err := encoding.DecodeIRQ(arg.Value); err != nil {
			return Token{}, nil, &InvalidLiteralError{
				arg.Position, LITERAL_IRQ, arg.Value,
			}
		}
	}

	return arg, args[1:], nil
}

func (asm *Assembler) emit(keyword Token, mnemonic string, args ...string) {
	inst := image.Instruction{Mnemonic: mnemonic, Args: args}

	if asm.symtable != nil {
		asm.symtable.Symbols[uint32(len(asm.body))] = keyword.Position.Line
	}

	glog.V(2).Infof("%d: emit %s", keyword.Position.Line, inst)

	asm.body = append(asm.body, inst)
}
