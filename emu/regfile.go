// Package emu provides functional emulation of the register VM.
package emu

import (
	"fmt"
	"strings"
)

// NumRegs is the number of general-purpose registers.
const NumRegs = 4

// RegFile represents the register file: four signed 32-bit
// general-purpose registers (r0-r3). Arithmetic on register values is
// 32-bit signed with native wraparound.
type RegFile struct {
	// R holds general-purpose registers r0-r3.
	R [NumRegs]int32
}

// Read reads a register value. Operand fields are 4 bits wide, so
// encodings can name registers the file does not have; indices outside
// r0-r3 fail with ErrInvalidRegister rather than silently wrapping.
func (r *RegFile) Read(reg uint8) (int32, error) {
	if reg >= NumRegs {
		return 0, fmt.Errorf("%w: r%d", ErrInvalidRegister, reg)
	}
	return r.R[reg], nil
}

// Write writes a value to a register. Indices outside r0-r3 fail with
// ErrInvalidRegister.
func (r *RegFile) Write(reg uint8, value int32) error {
	if reg >= NumRegs {
		return fmt.Errorf("%w: r%d", ErrInvalidRegister, reg)
	}
	r.R[reg] = value
	return nil
}

// Snapshot renders the register values as 4-digit uppercase zero-padded
// hexadecimal, space-separated, in register order r0-r3.
func (r *RegFile) Snapshot() string {
	parts := make([]string, NumRegs)
	for i, v := range r.R {
		parts[i] = fmt.Sprintf("%04X", v)
	}
	return strings.Join(parts, " ")
}
