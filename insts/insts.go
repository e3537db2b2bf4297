// Package insts provides instruction definitions, decoding, and encoding
// for the register VM.
//
// Every instruction is a single 16-bit word. The top nibble selects the
// opcode and the remaining three nibbles carry the operand fields; the
// low byte doubles as an 8-bit immediate for immediate-taking opcodes.
// The instruction set is closed:
//   - halt: stop execution
//   - loadi: load an 8-bit immediate into a register
//   - add: add two registers into a third
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x1064) // loadi r0 #100
//	fmt.Printf("Op: %v, Rd: %d, Imm: %d\n", inst.Op, inst.Rd, inst.Imm)
package insts
