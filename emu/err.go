package emu

import "errors"

var (
	// ErrProgramOutOfBounds reports a fetch past the end of the program
	// without an executed halt. Fatal, not retried.
	ErrProgramOutOfBounds = errors.New("program counter out of bounds")

	// ErrInvalidRegister reports an operand field naming a register
	// outside r0-r3.
	ErrInvalidRegister = errors.New("invalid register")

	// ErrInvalidOpcode reports an unrecognized opcode when the machine
	// runs with strict opcodes.
	ErrInvalidOpcode = errors.New("invalid opcode")
)
