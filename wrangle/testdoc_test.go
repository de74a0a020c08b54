package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
)

// synthInstruction invents a deterministic instruction for an opcode, with
// a few real SM83 encodings at their real positions so the tables can be
// checked against known values.
func synthInstruction(ns Namespace, op int) rawInstruction {
	if ns == Unprefixed {
		switch op {
		case 0x00:
			return rawInstruction{Mnemonic: "NOP", Bytes: 1, Cycles: []int{4}, Immediate: true}
		case 0x22:
			return rawInstruction{
				Mnemonic: "LD", Bytes: 1, Cycles: []int{8},
				Operands: []rawOperand{
					{Name: "HL", Increment: true},
					{Name: "A", Immediate: true},
				},
			}
		case 0x32:
			return rawInstruction{
				Mnemonic: "LD", Bytes: 1, Cycles: []int{8},
				Operands: []rawOperand{
					{Name: "HL", Decrement: true},
					{Name: "A", Immediate: true},
				},
			}
		case 0x78:
			return rawInstruction{
				Mnemonic: "LD", Bytes: 1, Cycles: []int{4}, Immediate: true,
				Operands: []rawOperand{
					{Name: "A", Immediate: true},
					{Name: "B", Immediate: true},
				},
			}
		case 0xC2:
			return rawInstruction{
				Mnemonic: "JP", Bytes: 3, Cycles: []int{16, 12}, Immediate: true,
				Operands: []rawOperand{
					{Name: "NZ", Immediate: true},
					{Name: "a16", Immediate: true, Bytes: 2},
				},
			}
		}
	}

	raw := rawInstruction{
		Mnemonic: fmt.Sprintf("OP%02X", op),
		Bytes:    uint8(1 + op%3),
		Cycles:   []int{4 * (1 + op%4)},
	}
	if ns == CBPrefixed {
		raw.Mnemonic = fmt.Sprintf("CB%02X", op)
		raw.Bytes = 2
	}
	if op%2 == 1 {
		raw.Operands = []rawOperand{{Name: "HL"}, {Name: "n8", Immediate: true, Bytes: 1}}
	}
	return raw
}

// wantLength and wantCycles give the values synthInstruction produces.
func wantLength(op int) uint8 {
	return synthInstruction(Unprefixed, op).Bytes
}

func wantCycles(ns Namespace, op int) uint8 {
	raw := synthInstruction(ns, op)
	return raw.instruction().MachineCycles()
}

func ascending() []int {
	ret := make([]int, 256)
	for i := range ret {
		ret[i] = i
	}
	return ret
}

func descending() []int {
	ret := make([]int, 256)
	for i := range ret {
		ret[i] = 255 - i
	}
	return ret
}

// buildDocument writes an opcode document whose namespaces list the given
// opcodes in the given order. edit, if not nil, may adjust each entry
// before it is written; returning false leaves the entry out.
func buildDocument(t *testing.T, order []int, edit func(ns Namespace, op int, raw *rawInstruction) bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, ns := range Namespaces {
		if i > 0 {
			buf.WriteString(",\n")
		}
		fmt.Fprintf(&buf, "  %q: {", ns)
		first := true
		for _, op := range order {
			raw := synthInstruction(ns, op)
			if edit != nil && !edit(ns, op, &raw) {
				continue
			}
			enc, err := json.Marshal(raw)
			if err != nil {
				t.Fatalf("encoding %s 0x%02X: %s", ns, op, err)
			}
			if !first {
				buf.WriteString(",")
			}
			first = false
			fmt.Fprintf(&buf, "\n    \"0x%02X\": %s", op, enc)
		}
		buf.WriteString("\n  }")
	}
	buf.WriteString("\n}\n")
	return buf.Bytes()
}

func decodeTestISA(t *testing.T, doc []byte) *ISA {
	t.Helper()
	isa, err := decodeISA(bytes.NewReader(doc), false)
	if err != nil {
		t.Fatalf("decoding document: %s", err)
	}
	return isa
}
