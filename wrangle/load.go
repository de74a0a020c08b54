package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// rawOperand and rawInstruction mirror the JSON structure of the opcode
// document. Fields we don't use, such as the flag effects, are ignored.
type rawOperand struct {
	Name      string `json:"name"`
	Immediate bool   `json:"immediate"`
	Increment bool   `json:"increment"`
	Decrement bool   `json:"decrement"`
	Bytes     uint8  `json:"bytes"`
}

type rawInstruction struct {
	Mnemonic  string       `json:"mnemonic"`
	Bytes     uint8        `json:"bytes"`
	Cycles    []int        `json:"cycles"`
	Immediate bool         `json:"immediate"`
	Operands  []rawOperand `json:"operands"`
}

// SchemaError reports a document that parses as JSON but does not have the
// shape the generator relies on.
type SchemaError struct {
	Namespace Namespace
	Key       string
	Problem   string
}

func (e *SchemaError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s", e.Namespace, e.Problem)
	}
	return fmt.Sprintf("%s %s: %s", e.Namespace, e.Key, e.Problem)
}

func loadISAMeta(filename string, lenient bool) (*ISA, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("failed to load opcode document: %w", err)
	}
	defer r.Close()

	isa, err := decodeISA(r, lenient)
	if err != nil {
		return nil, xerrors.Errorf("failed to load %s: %w", filename, err)
	}
	return isa, nil
}

// decodeISA reads the document token by token rather than into a map so
// that each namespace remembers the order its opcodes were written in and
// so that repeated keys can be reported instead of silently overwritten.
func decodeISA(r io.Reader, lenient bool) (*ISA, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	isa := &ISA{}
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, err
		}

		ns := Namespace(key)
		var dst **Table
		switch ns {
		case Unprefixed:
			dst = &isa.Unprefixed
		case CBPrefixed:
			dst = &isa.CBPrefixed
		default:
			// Anything else at the top level is metadata we have no use for.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, xerrors.Errorf("skipping %q: %w", key, err)
			}
			continue
		}
		if *dst != nil {
			return nil, &SchemaError{Namespace: ns, Problem: "namespace declared more than once"}
		}

		t, err := decodeTable(dec, ns)
		if err != nil {
			return nil, err
		}
		*dst = t

		logrus.WithFields(logrus.Fields{
			"namespace": ns,
			"opcodes":   t.Len(),
		}).Debug("Decoded namespace")
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	if err := isa.validate(lenient); err != nil {
		return nil, err
	}
	return isa, nil
}

func decodeTable(dec *json.Decoder, ns Namespace) (*Table, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, xerrors.Errorf("%s: %w", ns, err)
	}

	t := newTable(ns)
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, xerrors.Errorf("%s: %w", ns, err)
		}
		op, ok := ParseOpcode(key)
		if !ok {
			return nil, &SchemaError{Namespace: ns, Key: key, Problem: "not a two-hex-digit opcode"}
		}

		var raw rawInstruction
		if err := dec.Decode(&raw); err != nil {
			return nil, xerrors.Errorf("%s %s: %w", ns, key, err)
		}

		// Keys differing only in case still name the same opcode.
		if _, exists := t.Insts[op]; exists {
			return nil, &SchemaError{Namespace: ns, Key: key, Problem: "duplicate opcode " + op.String()}
		}
		t.Insts[op] = raw.instruction()
		t.Order = append(t.Order, op)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, xerrors.Errorf("%s: %w", ns, err)
	}

	return t, nil
}

func (raw *rawInstruction) instruction() *Instruction {
	inst := &Instruction{
		Mnemonic:  raw.Mnemonic,
		Bytes:     raw.Bytes,
		Cycles:    raw.Cycles,
		Immediate: raw.Immediate,
		Operands:  make([]Operand, len(raw.Operands)),
	}
	for i, op := range raw.Operands {
		inst.Operands[i] = Operand{
			Name:      op.Name,
			Immediate: op.Immediate,
			Increment: op.Increment,
			Decrement: op.Decrement,
			Bytes:     op.Bytes,
		}
	}
	return inst
}

// validate checks the assumptions the emitters make about the document.
// In lenient mode a missing namespace becomes an empty table and partial
// namespaces are allowed through; their absent slots render as zero.
func (isa *ISA) validate(lenient bool) error {
	for _, ns := range Namespaces {
		t := isa.Table(ns)
		if t == nil {
			if !lenient {
				return &SchemaError{Namespace: ns, Problem: "namespace is missing"}
			}
			t = newTable(ns)
			switch ns {
			case Unprefixed:
				isa.Unprefixed = t
			case CBPrefixed:
				isa.CBPrefixed = t
			}
		}
		if lenient {
			continue
		}

		if t.Len() != 256 {
			return &SchemaError{Namespace: ns, Problem: fmt.Sprintf("has %d opcodes, want 256", t.Len())}
		}
		for _, op := range t.Order {
			if t.Insts[op].Mnemonic == "" {
				return &SchemaError{Namespace: ns, Key: op.String(), Problem: "missing mnemonic"}
			}
		}
	}
	return nil
}

func nextKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", xerrors.Errorf("expected object key, found %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return xerrors.Errorf("expected %q, found %v", want.String(), tok)
	}
	return nil
}
