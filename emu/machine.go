package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/brianhill/register-vm/insts"
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if the machine has processed the halt instruction.
	Halted bool

	// Err is set if a fatal condition occurred during the cycle.
	Err error
}

// Machine executes a program on the register VM. It owns the program
// counter, register file, and running flag for one run, so any number
// of machines can exist and run independently.
type Machine struct {
	program *Program
	regFile *RegFile
	decoder *insts.Decoder

	pc      int
	running bool

	out           io.Writer
	strictOpcodes bool

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// MachineOption is a functional option for configuring the Machine.
type MachineOption func(*Machine)

// WithOutput sets the writer that receives trace and snapshot lines.
func WithOutput(w io.Writer) MachineOption {
	return func(m *Machine) {
		m.out = w
	}
}

// WithStrictOpcodes makes unrecognized opcodes fatal. By default the
// machine traces "oops" and keeps running; strict mode changes that
// observable behavior into an ErrInvalidOpcode failure.
func WithStrictOpcodes() MachineOption {
	return func(m *Machine) {
		m.strictOpcodes = true
	}
}

// WithMaxInstructions sets the maximum number of instructions to
// execute. A value of 0 means no limit.
func WithMaxInstructions(max uint64) MachineOption {
	return func(m *Machine) {
		m.maxInstructions = max
	}
}

// NewMachine creates a machine ready to run the given program, with the
// program counter at 0 and all registers cleared.
func NewMachine(program *Program, opts ...MachineOption) *Machine {
	m := &Machine{
		program: program,
		regFile: &RegFile{},
		decoder: insts.NewDecoder(),
		running: true,
		out:     os.Stdout,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegFile returns the machine's register file.
func (m *Machine) RegFile() *RegFile {
	return m.regFile
}

// PC returns the current program counter.
func (m *Machine) PC() int {
	return m.pc
}

// Running reports whether the machine can execute further cycles.
func (m *Machine) Running() bool {
	return m.running
}

// InstructionCount returns the number of instructions executed.
func (m *Machine) InstructionCount() uint64 {
	return m.instructionCount
}

// Fetch returns the word at the program counter, then advances the
// counter by one. The increment is a separate, visible step: the
// returned word is the one at the counter's value before incrementing.
// Fetching past the end of the program fails with
// ErrProgramOutOfBounds.
func (m *Machine) Fetch() (uint16, error) {
	if m.pc >= m.program.Len() {
		return 0, fmt.Errorf("%w: pc=%d, program length %d",
			ErrProgramOutOfBounds, m.pc, m.program.Len())
	}

	word := m.program.Word(m.pc)
	m.pc++

	return word, nil
}

// Step executes a single fetch/decode/evaluate cycle and emits the
// description line of the executed instruction. Halting is terminal:
// once the machine has halted, Step performs no further cycles.
func (m *Machine) Step() StepResult {
	if !m.running {
		return StepResult{Halted: true}
	}
	if m.maxInstructions > 0 && m.instructionCount >= m.maxInstructions {
		return StepResult{Err: fmt.Errorf("max instructions reached")}
	}

	word, err := m.Fetch()
	if err != nil {
		return StepResult{Err: err}
	}

	inst := m.decoder.Decode(word)

	if err := m.evaluate(inst); err != nil {
		return StepResult{Err: err}
	}

	m.instructionCount++

	return StepResult{Halted: !m.running}
}

// Run executes cycles until the machine halts or a fatal condition
// occurs. The register snapshot line is emitted before the first cycle
// and after every cycle.
func (m *Machine) Run() error {
	m.emitSnapshot()

	for m.running {
		result := m.Step()
		if result.Err != nil {
			return result.Err
		}
		m.emitSnapshot()
	}

	return nil
}

// evaluate performs the semantic action for one decoded instruction.
// Every field of inst is populated regardless of opcode; evaluate picks
// the ones each opcode uses.
func (m *Machine) evaluate(inst insts.Instruction) error {
	switch inst.Op {
	case insts.OpHalt:
		m.running = false

	case insts.OpLoadI:
		if err := m.regFile.Write(inst.Rd, int32(inst.Imm)); err != nil {
			return err
		}

	case insts.OpAdd:
		a, err := m.regFile.Read(inst.Rs1)
		if err != nil {
			return err
		}
		b, err := m.regFile.Read(inst.Rs2)
		if err != nil {
			return err
		}
		if err := m.regFile.Write(inst.Rd, a+b); err != nil {
			return err
		}

	default:
		// Unrecognized opcodes are a traced no-op. This leniency is
		// intentional and load-bearing for the reference trace.
		if m.strictOpcodes {
			return fmt.Errorf("%w: 0x%X at pc=%d",
				ErrInvalidOpcode, uint8(inst.Op), m.pc-1)
		}
	}

	_, _ = fmt.Fprintln(m.out, inst.String())

	return nil
}

func (m *Machine) emitSnapshot() {
	_, _ = fmt.Fprintf(m.out, "regs = %s\n", m.regFile.Snapshot())
}
