package main

import (
	"sort"
)

type Namespace string

const (
	Unprefixed Namespace = "unprefixed"
	CBPrefixed Namespace = "cbprefixed"
)

// Namespaces lists the opcode spaces in the order they appear in the
// source document.
var Namespaces = []Namespace{Unprefixed, CBPrefixed}

type Operand struct {
	Name      string
	Immediate bool
	Increment bool
	Decrement bool
	Bytes     uint8
}

type Instruction struct {
	Mnemonic  string
	Bytes     uint8
	Cycles    []int
	Immediate bool
	Operands  []Operand
}

// Table is the set of instructions reachable within one namespace. Order
// records the keys in the order they were declared, which is the order the
// stub and lookup tables are emitted in.
type Table struct {
	Namespace Namespace
	Order     []Opcode
	Insts     map[Opcode]*Instruction
}

type ISA struct {
	Unprefixed *Table
	CBPrefixed *Table
}

func newTable(ns Namespace) *Table {
	return &Table{
		Namespace: ns,
		Insts:     make(map[Opcode]*Instruction, 256),
	}
}

// Table returns the table for the given namespace, or nil if the namespace
// is not one we know about.
func (isa *ISA) Table(ns Namespace) *Table {
	switch ns {
	case Unprefixed:
		return isa.Unprefixed
	case CBPrefixed:
		return isa.CBPrefixed
	default:
		return nil
	}
}

func (t *Table) Len() int {
	return len(t.Order)
}

// Sorted returns the opcodes of the table in ascending numeric order,
// regardless of the order they were declared in.
func (t *Table) Sorted() []Opcode {
	ret := make([]Opcode, len(t.Order))
	copy(ret, t.Order)
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

// MachineCycles returns the number of machine cycles the instruction takes
// on its shortest path. Conditional instructions list both the taken and
// not-taken timings in T-states, and there are four T-states per machine
// cycle.
func (inst *Instruction) MachineCycles() uint8 {
	if len(inst.Cycles) == 0 {
		return 0
	}
	least := inst.Cycles[0]
	for _, c := range inst.Cycles[1:] {
		if c < least {
			least = c
		}
	}
	return uint8(least / 4)
}
