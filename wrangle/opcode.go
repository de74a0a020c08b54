package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode identifies one instruction encoding within a namespace.
type Opcode uint8

func (op Opcode) String() string {
	return fmt.Sprintf("0x%02X", uint8(op))
}

// ParseOpcode accepts the two-hex-digit keys used in the opcode document,
// such as "0x3E" or "0x3e".
func ParseOpcode(raw string) (Opcode, bool) {
	if len(raw) != 4 || !strings.HasPrefix(strings.ToLower(raw), "0x") {
		return 0, false
	}
	v, err := strconv.ParseUint(raw[2:], 16, 8)
	if err != nil {
		return 0, false
	}
	return Opcode(v), true
}
