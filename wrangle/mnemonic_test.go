package main

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestDisassembly(t *testing.T) {
	tests := []struct {
		name string
		inst Instruction
		want string
	}{
		{
			"no operands",
			Instruction{Mnemonic: "NOP"},
			"NOP ",
		},
		{
			"registers",
			Instruction{Mnemonic: "LD", Operands: []Operand{
				{Name: "A", Immediate: true},
				{Name: "B", Immediate: true},
			}},
			"LD A,B",
		},
		{
			"memory operand",
			Instruction{Mnemonic: "LD", Operands: []Operand{
				{Name: "A", Immediate: true},
				{Name: "HL"},
			}},
			"LD A,[HL]",
		},
		{
			"decrement",
			Instruction{Mnemonic: "LD", Operands: []Operand{
				{Name: "HL", Decrement: true},
				{Name: "A", Immediate: true},
			}},
			"LDD [HL],A",
		},
		{
			"increment on second operand",
			Instruction{Mnemonic: "LD", Operands: []Operand{
				{Name: "A", Immediate: true},
				{Name: "HL", Increment: true},
			}},
			"LDI A,[HL]",
		},
		{
			"both flags on one operand",
			Instruction{Mnemonic: "LD", Operands: []Operand{
				{Name: "HL", Increment: true, Decrement: true},
			}},
			"LDD [HL]",
		},
		{
			"first flagged operand wins",
			Instruction{Mnemonic: "LD", Operands: []Operand{
				{Name: "HL", Increment: true},
				{Name: "DE", Decrement: true},
			}},
			"LDI [HL],[DE]",
		},
		{
			"only one suffix",
			Instruction{Mnemonic: "LD", Operands: []Operand{
				{Name: "HL", Decrement: true},
				{Name: "DE", Decrement: true},
			}},
			"LDD [HL],[DE]",
		},
		{
			"immediate data",
			Instruction{Mnemonic: "JP", Operands: []Operand{
				{Name: "NZ", Immediate: true},
				{Name: "a16", Immediate: true, Bytes: 2},
			}},
			"JP NZ,a16",
		},
		{
			"nil operands",
			Instruction{Mnemonic: "RETI", Operands: nil},
			"RETI ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.inst.Disassembly()
			if got != test.want {
				t.Errorf("wrong disassembly\ngot:  %q\nwant: %q\ninstruction: %s", got, test.want, spew.Sdump(test.inst))
			}
		})
	}
}

func TestDisassemblyBrackets(t *testing.T) {
	for _, immediate := range []bool{true, false} {
		inst := Instruction{Mnemonic: "INC", Operands: []Operand{{Name: "BC", Immediate: immediate}}}
		got := inst.Disassembly()
		operand := strings.TrimPrefix(got, "INC ")

		opens := strings.Count(operand, "[")
		closes := strings.Count(operand, "]")
		switch {
		case immediate && (opens != 0 || closes != 0):
			t.Errorf("immediate operand is bracketed: %q", got)
		case !immediate && (opens != 1 || closes != 1 || operand != "[BC]"):
			t.Errorf("memory operand not bracketed exactly once: %q", got)
		}
	}
}

func TestDisassemblySuffix(t *testing.T) {
	// Whichever operand carries the flag, the mnemonic gains exactly one
	// suffix letter and the operands are unaffected.
	for pos := 0; pos < 3; pos++ {
		for _, suffix := range []string{"D", "I"} {
			ops := []Operand{
				{Name: "A", Immediate: true},
				{Name: "HL"},
				{Name: "n8", Immediate: true},
			}
			if suffix == "D" {
				ops[pos].Decrement = true
			} else {
				ops[pos].Increment = true
			}
			inst := Instruction{Mnemonic: "LD", Operands: ops}

			got := inst.Disassembly()
			want := "LD" + suffix + " A,[HL],n8"
			if got != want {
				t.Errorf("flag %s on operand %d: got %q, want %q", suffix, pos, got, want)
			}
		}
	}
}
