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

type LiteralType uint
type LineType uint
type MnemonicType uint
type ActionType uint
type OperandType uint
type Stage uint

const (
	LITERAL_WORD LiteralType = iota
	LITERAL_BINARY
	LITERAL_IRQ
)

const (
	LINE_BLANK LineType = iota
	LINE_TEXT
	LINE_WORD
	LINE_LABEL
	LINE_STATEMENT
)

const (
	STAGE_PREBODY Stage = iota
	STAGE_BODY
	STAGE_ENDED
)

const (
	MNEMONIC_OPCODE MnemonicType = iota
	MNEMONIC_PSEUDO
)

const (
	ACTION_EMIT   ActionType = iota // MNEMONIC ARG
	ACTION_IRQ                      // IRQ TYPE [ARG], operand decided by TYPE
	ACTION_EXPAND                   // IRQ Vector [ARG]
	ACTION_BEGIN
	ACTION_END
	ACTION_EXTERN
)

const (
	OPERAND_NONE OperandType = iota
	OPERAND_LABEL
	OPERAND_BINARY
	OPERAND_IRQ
)

const (
	IRQ_HALT  uint8 = 0
	IRQ_PRINT uint8 = 1
	IRQ_READ  uint8 = 2
	IRQ_SET   uint8 = 3
	IRQ_CLEAR uint8 = 4
)

// Operand required by each interrupt type. Types not listed are invalid.
var irqOperands = map[uint8]OperandType{
	IRQ_HALT:  OPERAND_NONE,
	IRQ_PRINT: OPERAND_LABEL,
	IRQ_READ:  OPERAND_LABEL,
	IRQ_SET:   OPERAND_LABEL,
	IRQ_CLEAR: OPERAND_NONE,
}

const irqMnemonic = "IRQ"

type Mnemonic struct {
	Name    string
	Type    MnemonicType
	Code    uint8
	Action  ActionType
	Operand OperandType
	Vector  uint8
}

var opcodes = []Mnemonic{
	{Name: "IRQ", Code: 0, Action: ACTION_IRQ, Operand: OPERAND_IRQ},
	{Name: "LDA", Code: 1, Operand: OPERAND_LABEL},
	{Name: "STA", Code: 2, Operand: OPERAND_LABEL},
	{Name: "ADD", Code: 3, Operand: OPERAND_LABEL},
	{Name: "SUB", Code: 4, Operand: OPERAND_LABEL},
	{Name: "MUL", Code: 5, Operand: OPERAND_LABEL},
	{Name: "DIV", Code: 6, Operand: OPERAND_LABEL},
	{Name: "CMP", Code: 7, Operand: OPERAND_LABEL},
	{Name: "NEG", Code: 8, Operand: OPERAND_LABEL},
	{Name: "BEQ", Code: 9, Operand: OPERAND_LABEL},
	{Name: "BGT", Code: 10, Operand: OPERAND_LABEL},
	{Name: "BLT", Code: 11, Operand: OPERAND_LABEL},
	{Name: "BHS", Code: 12, Operand: OPERAND_LABEL},
	{Name: "BMI", Code: 13, Operand: OPERAND_LABEL},
	{Name: "BVS", Code: 14, Operand: OPERAND_LABEL},
	{Name: "BHI", Code: 15, Operand: OPERAND_LABEL},
	{Name: "PSH", Code: 16, Operand: OPERAND_LABEL},
	{Name: "POP", Code: 17, Operand: OPERAND_LABEL},
	{Name: "JAL", Code: 18, Operand: OPERAND_LABEL},
	{Name: "JMP", Code: 19, Operand: OPERAND_LABEL},
	{Name: "AND", Code: 20, Operand: OPERAND_LABEL},
	{Name: "ORR", Code: 21, Operand: OPERAND_LABEL},
	{Name: "NOT", Code: 22, Operand: OPERAND_LABEL},
	{Name: "XOR", Code: 23, Operand: OPERAND_LABEL},
	{Name: "LSL", Code: 24, Operand: OPERAND_LABEL},
	{Name: "LSR", Code: 25, Operand: OPERAND_LABEL},
	{Name: "ASL", Code: 26, Operand: OPERAND_LABEL},
	{Name: "ASR", Code: 27, Operand: OPERAND_LABEL},
	{Name: "ROR", Code: 28, Operand: OPERAND_LABEL},
	{Name: "RCR", Code: 29, Operand: OPERAND_LABEL},
	{Name: "CLZ", Code: 30, Operand: OPERAND_LABEL},
	{Name: "RET", Code: 31, Operand: OPERAND_LABEL},
	{Name: "REM", Code: 32, Operand: OPERAND_LABEL},
}

var pseudoOps = []Mnemonic{
	{Name: "HALT", Code: 0, Action: ACTION_EXPAND, Vector: IRQ_HALT},
	{Name: "PRINT", Code: 1, Action: ACTION_EXPAND, Operand: OPERAND_LABEL, Vector: IRQ_PRINT},
	{Name: "READ", Code: 2, Action: ACTION_EXPAND, Operand: OPERAND_LABEL, Vector: IRQ_READ},
	{Name: "SET", Code: 3, Action: ACTION_EXPAND, Operand: OPERAND_BINARY, Vector: IRQ_SET},
	{Name: "CLEAR", Code: 4, Action: ACTION_EXPAND, Vector: IRQ_CLEAR},
	{Name: "BEGIN", Code: 5, Action: ACTION_BEGIN},
	{Name: "END", Code: 6, Action: ACTION_END},
	{Name: "EXTERN", Code: 7, Action: ACTION_EXTERN, Operand: OPERAND_LABEL},
}

var mnemonics = make(map[string]Mnemonic, len(opcodes)+len(pseudoOps))

func init() {
	for _, op := range opcodes {
		op.Type = MNEMONIC_OPCODE
		mnemonics[op.Name] = op
	}

	for _, op := range pseudoOps {
		op.Type = MNEMONIC_PSEUDO
		if _, exists := mnemonics[op.Name]; !exists {
			mnemonics[op.Name] = op
		}
	}
}

func parseMnemonic(ident string) (Mnemonic, bool) {
	op, ok := mnemonics[ident]
	return op, ok
}
