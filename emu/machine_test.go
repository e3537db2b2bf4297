package emu_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brianhill/register-vm/emu"
	"github.com/brianhill/register-vm/insts"
)

// demoWords is the worked example: loadi r0 #100, loadi r1 #200,
// add r2 r0 r1, halt.
var demoWords = []uint16{0x1064, 0x11C8, 0x2201, 0x0000}

var _ = Describe("Machine", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	newMachine := func(words []uint16, opts ...emu.MachineOption) *emu.Machine {
		opts = append([]emu.MachineOption{emu.WithOutput(out)}, opts...)
		return emu.NewMachine(emu.NewProgram(words), opts...)
	}

	Describe("Run", func() {
		It("should emit the exact demo trace", func() {
			m := newMachine(demoWords)

			Expect(m.Run()).To(Succeed())

			Expect(out.String()).To(Equal(strings.Join([]string{
				"regs = 0000 0000 0000 0000",
				"loadi r0 #100",
				"regs = 0064 0000 0000 0000",
				"loadi r1 #200",
				"regs = 0064 00C8 0000 0000",
				"add r2 r0 r1",
				"regs = 0064 00C8 012C 0000",
				"halt",
				"regs = 0064 00C8 012C 0000",
				"",
			}, "\n")))
		})

		It("should leave the machine halted with the demo results", func() {
			m := newMachine(demoWords)

			Expect(m.Run()).To(Succeed())

			Expect(m.Running()).To(BeFalse())
			Expect(m.InstructionCount()).To(Equal(uint64(4)))
			Expect(m.RegFile().R).To(Equal([4]int32{100, 200, 300, 0}))
		})

		It("should fail when the program runs off the end without halting", func() {
			m := newMachine([]uint16{0x1064, 0x11C8})

			err := m.Run()

			Expect(err).To(MatchError(emu.ErrProgramOutOfBounds))
		})

		It("should fail on an out-of-range destination register", func() {
			// loadi r9 #100: representable, but the file has 4 registers.
			m := newMachine([]uint16{0x1964, 0x0000})

			Expect(m.Run()).To(MatchError(emu.ErrInvalidRegister))
		})

		It("should fail on an out-of-range source register", func() {
			// add r3 r10 r1
			m := newMachine([]uint16{0x23A1, 0x0000})

			Expect(m.Run()).To(MatchError(emu.ErrInvalidRegister))
		})
	})

	Describe("Fetch", func() {
		It("should return the words in order and advance the counter", func() {
			m := newMachine(demoWords)

			for i, want := range demoWords {
				Expect(m.PC()).To(Equal(i))

				word, err := m.Fetch()
				Expect(err).To(BeNil())
				Expect(word).To(Equal(want))
			}

			Expect(m.PC()).To(Equal(len(demoWords)))
		})

		It("should fail past the end of the program", func() {
			m := newMachine([]uint16{0x0000})

			_, err := m.Fetch()
			Expect(err).To(BeNil())

			_, err = m.Fetch()
			Expect(err).To(MatchError(emu.ErrProgramOutOfBounds))
		})
	})

	Describe("Step", func() {
		It("should make loadi idempotent", func() {
			m := newMachine([]uint16{
				insts.EncodeLoadI(1, 42),
				insts.EncodeLoadI(1, 42),
				insts.EncodeHalt(),
			})

			Expect(m.Step().Err).To(BeNil())
			Expect(m.RegFile().R).To(Equal([4]int32{0, 42, 0, 0}))

			Expect(m.Step().Err).To(BeNil())
			Expect(m.RegFile().R).To(Equal([4]int32{0, 42, 0, 0}))
		})

		It("should keep add pure with respect to other registers", func() {
			m := newMachine([]uint16{insts.EncodeAdd(3, 0, 1)})
			Expect(m.RegFile().Write(0, 7)).To(Succeed())
			Expect(m.RegFile().Write(1, 8)).To(Succeed())
			Expect(m.RegFile().Write(2, 9)).To(Succeed())

			Expect(m.Step().Err).To(BeNil())

			Expect(m.RegFile().R).To(Equal([4]int32{7, 8, 9, 15}))
		})

		It("should handle add when the destination is a source", func() {
			m := newMachine([]uint16{insts.EncodeAdd(0, 0, 1)})
			Expect(m.RegFile().Write(0, 5)).To(Succeed())
			Expect(m.RegFile().Write(1, 6)).To(Succeed())

			Expect(m.Step().Err).To(BeNil())

			Expect(m.RegFile().R).To(Equal([4]int32{11, 6, 0, 0}))
		})

		It("should handle add when the destination is both sources", func() {
			m := newMachine([]uint16{insts.EncodeAdd(2, 2, 2)})
			Expect(m.RegFile().Write(2, 21)).To(Succeed())

			Expect(m.Step().Err).To(BeNil())

			v, err := m.RegFile().Read(2)
			Expect(err).To(BeNil())
			Expect(v).To(Equal(int32(42)))
		})

		It("should make halting terminal", func() {
			m := newMachine([]uint16{insts.EncodeHalt(), insts.EncodeLoadI(0, 1)})

			result := m.Step()
			Expect(result.Halted).To(BeTrue())
			Expect(m.Running()).To(BeFalse())

			// No further fetch/decode/evaluate cycles.
			result = m.Step()
			Expect(result.Halted).To(BeTrue())
			Expect(result.Err).To(BeNil())
			Expect(m.PC()).To(Equal(1))
			Expect(m.InstructionCount()).To(Equal(uint64(1)))
			Expect(m.RegFile().R).To(Equal([4]int32{0, 0, 0, 0}))
		})
	})

	Describe("unrecognized opcodes", func() {
		It("should trace oops and continue by default", func() {
			m := newMachine([]uint16{0xF123, insts.EncodeHalt()})

			Expect(m.Run()).To(Succeed())

			Expect(out.String()).To(ContainSubstring("oops\n"))
			Expect(m.Running()).To(BeFalse())
			Expect(m.RegFile().R).To(Equal([4]int32{0, 0, 0, 0}))
		})

		It("should fail in strict mode", func() {
			m := newMachine(
				[]uint16{0xF123, insts.EncodeHalt()},
				emu.WithStrictOpcodes(),
			)

			Expect(m.Run()).To(MatchError(emu.ErrInvalidOpcode))
		})
	})

	Describe("WithMaxInstructions", func() {
		It("should stop runaway programs", func() {
			words := make([]uint16, 8)
			for i := range words {
				words[i] = insts.EncodeLoadI(0, uint8(i))
			}

			m := newMachine(words, emu.WithMaxInstructions(3))

			err := m.Run()

			Expect(err).To(HaveOccurred())
			Expect(m.InstructionCount()).To(Equal(uint64(3)))
		})
	})

	It("should keep machines independent", func() {
		m1 := newMachine(demoWords)
		m2 := newMachine([]uint16{insts.EncodeLoadI(0, 1), insts.EncodeHalt()})

		Expect(m1.Step().Err).To(BeNil())
		Expect(m2.Step().Err).To(BeNil())
		Expect(m1.Step().Err).To(BeNil())

		Expect(m1.RegFile().R).To(Equal([4]int32{100, 200, 0, 0}))
		Expect(m2.RegFile().R).To(Equal([4]int32{1, 0, 0, 0}))
		Expect(m1.PC()).To(Equal(2))
		Expect(m2.PC()).To(Equal(1))
	})
})
