package insts

import "fmt"

// Encode re-produces the 16-bit word for the instruction. For
// immediate-taking opcodes the low byte comes from Imm; otherwise it
// comes from the Rs1 and Rs2 nibbles.
func (i Instruction) Encode() uint16 {
	w := uint16(i.Op&0xF)<<12 | uint16(i.Rd&0xF)<<8
	if i.Op == OpLoadI {
		return w | uint16(i.Imm)
	}
	return w | uint16(i.Rs1&0xF)<<4 | uint16(i.Rs2&0xF)
}

// EncodeHalt builds a halt word.
func EncodeHalt() uint16 {
	return uint16(OpHalt) << 12
}

// EncodeLoadI builds a loadi word: registers[rd] = imm.
func EncodeLoadI(rd, imm uint8) uint16 {
	return uint16(OpLoadI)<<12 | uint16(rd&0xF)<<8 | uint16(imm)
}

// EncodeAdd builds an add word:
// registers[rd] = registers[rs1] + registers[rs2].
func EncodeAdd(rd, rs1, rs2 uint8) uint16 {
	return uint16(OpAdd)<<12 | uint16(rd&0xF)<<8 |
		uint16(rs1&0xF)<<4 | uint16(rs2&0xF)
}

// String renders the instruction in assembly syntax, e.g.
// "loadi r0 #100" or "add r2 r0 r1". Unrecognized opcodes render as
// "oops".
func (i Instruction) String() string {
	switch i.Op {
	case OpHalt:
		return "halt"
	case OpLoadI:
		return fmt.Sprintf("loadi r%d #%d", i.Rd, i.Imm)
	case OpAdd:
		return fmt.Sprintf("add r%d r%d r%d", i.Rd, i.Rs1, i.Rs2)
	default:
		return "oops"
	}
}
