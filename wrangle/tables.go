package main

// Listing pairs an opcode with its rendered disassembly.
type Listing struct {
	Opcode      Opcode
	Disassembly string
}

// StubTable holds one placeholder handler per opcode, in declaration order.
type StubTable struct {
	Namespace Namespace
	Records   []Listing
}

// LookupTable maps each opcode to its disassembly, in declaration order.
type LookupTable struct {
	Namespace Namespace
	Entries   []Listing
}

// LengthTable is indexed by opcode and holds the encoded length in bytes.
type LengthTable [256]uint8

// CycleTable is indexed by opcode and holds the machine cycles taken on the
// instruction's shortest path.
type CycleTable struct {
	Namespace Namespace
	Cycles    [256]uint8
}

// buildListings formats every instruction in the table once and shares the
// result between the stub and lookup tables, so the two can never render
// a different mnemonic for the same opcode.
func buildListings(t *Table) (StubTable, LookupTable) {
	listings := make([]Listing, 0, t.Len())
	for _, op := range t.Order {
		listings = append(listings, Listing{
			Opcode:      op,
			Disassembly: t.Insts[op].Disassembly(),
		})
	}
	return StubTable{Namespace: t.Namespace, Records: listings},
		LookupTable{Namespace: t.Namespace, Entries: listings}
}

func buildLengthTable(t *Table) LengthTable {
	var ret LengthTable
	for _, op := range t.Sorted() {
		ret[op] = t.Insts[op].Bytes
	}
	return ret
}

func buildCycleTable(t *Table) CycleTable {
	ret := CycleTable{Namespace: t.Namespace}
	for _, op := range t.Sorted() {
		ret.Cycles[op] = t.Insts[op].MachineCycles()
	}
	return ret
}
