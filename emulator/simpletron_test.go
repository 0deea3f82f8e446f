package emulator_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/simpletron/cpu"
	"github.com/ezrec/simpletron/emulator"
)

var _ = Describe("Simpletron", func() {
	var (
		emu    *emulator.Emulator
		output *bytes.Buffer
	)

	load := func(lines ...string) {
		asm := &cpu.Assembler{}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}

		prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
		Expect(err).NotTo(HaveOccurred())

		emu.Program = prog
		Expect(emu.Reset()).To(Succeed())
	}

	BeforeEach(func() {
		emu = emulator.NewEmulator(0)
		output = &bytes.Buffer{}
		emu.Console.Output = output
	})

	It("should print the sum of an immediate add", func() {
		load("LOADI 7", "ADDI 5", "WRITEA", "HALT")

		Expect(emu.Run()).To(Succeed())
		Expect(output.String()).To(Equal("12\n"))
	})

	It("should skip the branch not taken", func() {
		load(
			"LOADI 0",
			"JZ taken",
			"WRITE 99",
			"taken:",
			"WRITEA",
			"HALT",
		)

		Expect(emu.Run()).To(Succeed())
		Expect(output.String()).To(Equal("0\n"))
	})

	DescribeTable("division by zero",
		func(source string) {
			load(source)

			err := emu.Run()
			Expect(err).To(MatchError(cpu.ErrDivisionByZero))
			Expect(output.String()).To(BeEmpty())
			Expect(emu.Halted).To(BeFalse())
		},
		Entry("DIVI", "LOADI 9\nDIVI 0\nWRITEA\nHALT"),
		Entry("MODI", "LOADI 9\nMODI 0\nWRITEA\nHALT"),
		Entry("DIVM", "LOADI 9\nDIVM zero\nWRITEA\nHALT\nVAR zero"),
		Entry("MODM", "LOADI 9\nMODM zero\nWRITEA\nHALT\nVAR zero"),
	)

	Context("with a small memory", func() {
		BeforeEach(func() {
			emu = emulator.NewEmulator(10)
			emu.Console.Input = strings.NewReader("5\n")
			emu.Console.Output = output
		})

		DescribeTable("out of bounds access",
			func(line string) {
				load("LOADI 3", line, "HALT")
				before := emu.Snapshot().Memory

				err := emu.Run()
				Expect(err).To(MatchError(cpu.ErrAddress(10)))
				Expect(emu.Snapshot().Memory).To(Equal(before))
				Expect(emu.ProgramCounter).To(Equal(1))
				Expect(output.String()).To(BeEmpty())
			},
			Entry("load", "LOADM 10"),
			Entry("store", "STORE 10"),
			Entry("add", "ADDM 10"),
			Entry("read", "READ 10"),
			Entry("write", "WRITE 10"),
		)
	})

	It("should execute nothing after HALT", func() {
		load("LOADI 1", "HALT", "WRITEA", "HALT")

		Expect(emu.Run()).To(Succeed())
		Expect(emu.ProgramCounter).To(Equal(1))
		Expect(emu.Ticks).To(Equal(2))

		_, err := emu.Tick()
		Expect(err).To(MatchError(cpu.ErrHalted))
		Expect(emu.Ticks).To(Equal(2))
		Expect(output.String()).To(BeEmpty())
	})

	It("should place variables after the last instruction", func() {
		load(
			"VAR first",
			"top:",
			"LOADM first",
			"STORE second",
			"JMP top",
			"VAR second",
			"VAR third",
		)

		Expect(emu.Program.Symbols.Label).To(Equal(map[string]int{"top": 0}))
		Expect(emu.Program.Symbols.Variable).To(Equal(map[string]int{
			"first":  3,
			"second": 4,
			"third":  5,
		}))
	})

	It("should reject malformed console input", func() {
		emu.Console.Input = strings.NewReader("twelve\n")
		load("READ 50", "HALT")

		err := emu.Run()
		Expect(err).To(MatchError(cpu.ErrReadInput("twelve")))

		var runtime *emulator.ErrRuntime
		Expect(err).To(BeAssignableToTypeOf(runtime))
	})
})
