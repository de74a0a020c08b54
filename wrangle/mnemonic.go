package main

import (
	"strings"
)

// Disassembly renders the instruction the way it appears in the generated
// tables: the mnemonic, one space, then the operands separated by commas
// with no padding. Operands that refer to memory rather than to the named
// value itself are bracketed. The separating space is written even when
// there are no operands.
//
// Auto-increment and auto-decrement addressing is folded into the mnemonic
// as an I or D suffix, so that "LD (HL-),A" becomes "LDD [HL],A". Only the
// first operand carrying either flag contributes a suffix.
func (inst *Instruction) Disassembly() string {
	mnemonic := inst.Mnemonic
	suffixed := false

	operands := make([]string, len(inst.Operands))
	for i, op := range inst.Operands {
		operands[i] = op.token()

		if suffixed {
			continue
		}
		switch {
		case op.Decrement:
			mnemonic += "D"
			suffixed = true
		case op.Increment:
			mnemonic += "I"
			suffixed = true
		}
	}

	return mnemonic + " " + strings.Join(operands, ",")
}

func (op Operand) token() string {
	if !op.Immediate {
		return "[" + op.Name + "]"
	}
	return op.Name
}
