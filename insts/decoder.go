// Package insts provides instruction definitions, decoding, and encoding
// for the register VM.
package insts

// Op represents a 4-bit opcode.
type Op uint8

// Opcodes. The numeric values are part of the wire encoding.
const (
	OpHalt  Op = 0
	OpLoadI Op = 1
	OpAdd   Op = 2
)

// Known reports whether the opcode is in the implemented set. The field
// is 4 bits wide, so words can carry opcodes the machine does not
// recognize.
func (o Op) Known() bool {
	return o <= OpAdd
}

// String returns the mnemonic, or "oops" for an unrecognized opcode.
func (o Op) String() string {
	switch o {
	case OpHalt:
		return "halt"
	case OpLoadI:
		return "loadi"
	case OpAdd:
		return "add"
	default:
		return "oops"
	}
}

// Instruction represents a decoded instruction word.
//
// Decoding always populates every field regardless of which ones the
// opcode uses; the evaluator picks the semantically relevant ones. This
// keeps the evaluator free of per-opcode field extraction.
type Instruction struct {
	Op  Op    // bits [15:12], operation code
	Rd  uint8 // bits [11:8], destination register
	Rs1 uint8 // bits [7:4], first source register, or high nibble of Imm
	Rs2 uint8 // bits [3:0], second source register, or low nibble of Imm
	Imm uint8 // bits [7:0], Rs1 and Rs2 concatenated as an unsigned value
}

// Decoder decodes 16-bit instruction words.
type Decoder struct{}

// NewDecoder creates a new instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 16-bit instruction word. It is pure and total: every
// word decodes to some field tuple, even when the opcode is
// unrecognized.
func (d *Decoder) Decode(word uint16) Instruction {
	return Instruction{
		Op:  Op((word >> 12) & 0xF),
		Rd:  uint8((word >> 8) & 0xF),
		Rs1: uint8((word >> 4) & 0xF),
		Rs2: uint8(word & 0xF),
		Imm: uint8(word & 0xFF),
	}
}
