package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"golang.org/x/xerrors"
)

const defaultHandler = "func(cpu *CPU)"

// renderStubs writes an active nil entry for each opcode followed by a
// commented-out handler skeleton, ready to be uncommented and filled in.
func renderStubs(buf *bytes.Buffer, t StubTable, handler string) {
	for _, rec := range t.Records {
		fmt.Fprintf(buf, "%s: nil,\n", rec.Opcode)
		buf.WriteString("/*\n")
		fmt.Fprintf(buf, "%s: %s {\n", rec.Opcode, handler)
		fmt.Fprintf(buf, "    // %s\n", rec.Disassembly)
		buf.WriteString("},\n")
		buf.WriteString("*/\n")
	}
}

func renderLookup(buf *bytes.Buffer, t LookupTable) {
	for _, ent := range t.Entries {
		fmt.Fprintf(buf, "%s: %q,\n", ent.Opcode, ent.Disassembly)
	}
}

// renderLengths writes the length table as a complete array declaration,
// starting a new row every sixteen opcodes.
func renderLengths(buf *bytes.Buffer, t LengthTable, name string) {
	fmt.Fprintf(buf, "var %s = [0x100]byte{", name)
	for i, n := range t {
		if i > 0 && i%16 == 0 {
			buf.WriteString("\n\t")
		}
		fmt.Fprintf(buf, "%d, ", n)
	}
	buf.WriteString("\n}\n")
}

// renderCycles writes one row per high nibble, labelled with that nibble,
// and labels the columns under the closing brace.
func renderCycles(buf *bytes.Buffer, t CycleTable, name string) {
	fmt.Fprintf(buf, "var %s = [0x100]uint8{\n", name)
	for row := 0; row < 16; row++ {
		buf.WriteString("\t")
		for col := 0; col < 16; col++ {
			fmt.Fprintf(buf, "%d, ", t.Cycles[row*16+col])
		}
		fmt.Fprintf(buf, "// %x\n", row)
	}
	buf.WriteString("} //")
	for col := 0; col < 16; col++ {
		if col > 0 {
			buf.WriteString("  ")
		}
		fmt.Fprintf(buf, "%x", col)
	}
	buf.WriteString("\n")
}

// wrapArray turns a list of keyed elements into a variable declaration.
func wrapArray(name, elemType string, elems []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "var %s = [0x100]%s{\n", name, elemType)
	buf.Write(elems)
	buf.WriteString("}\n")
	return buf.Bytes()
}

// goSource prefixes a declaration with a generated-code header and package
// clause and runs the result through gofmt. The stub table refers to
// types it doesn't declare, which is fine since formatting only parses.
func goSource(pkg string, decl []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by wrangle from the opcode document; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.Write(decl)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// handlerIsFunc reports whether a stub handler signature can be used as an
// array element type in generated Go source.
func handlerIsFunc(handler string) bool {
	return strings.HasPrefix(strings.TrimSpace(handler), "func(")
}
