package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// wordMemory is a minimal slice backed Memory.
type wordMemory []Word

func (mem wordMemory) Len() int {
	return len(mem)
}

func (mem wordMemory) Read(address int) (value Word, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}
	value = mem[address]
	return
}

func (mem wordMemory) Store(address int, value Word) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}
	mem[address] = value
	return
}

// newTestCpu assembles source into a memory of the given size.
func newTestCpu(t *testing.T, source string, size int, console Console) (cpu *Cpu, mem wordMemory) {
	words, err := Assemble(source)
	if err != nil {
		t.Fatal(err)
	}

	mem = make(wordMemory, size)
	copy(mem, words)

	cpu = NewCpu(mem, console)
	return
}

// runCpu ticks until halted or an error, with an upper bound.
func runCpu(cpu *Cpu) (err error) {
	for range 1000 {
		if cpu.Halted {
			return
		}
		err = cpu.Tick()
		if err != nil {
			return
		}
	}
	return
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(make(wordMemory, 10), nil)
	cpu.Accumulator = 12
	cpu.ProgramCounter = 3
	cpu.Halted = true
	cpu.Ticks = 7

	cpu.Reset()
	assert.Equal(Registers{}, cpu.Registers)
	assert.False(cpu.Halted)
	assert.Equal(0, cpu.Ticks)

	defines := map[string]string{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}
	assert.Equal("100", defines["OPERAND_LIMIT"])
}

func TestCpuArithmetic(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	console := NewMockConsole(ctrl)
	console.EXPECT().WriteLine("12").Return(nil)

	cpu, _ := newTestCpu(t, "LOADI 7\nADDI 5\nWRITEA\nHALT\n", 100, console)

	assert.NoError(runCpu(cpu))
	assert.True(cpu.Halted)
	assert.Equal(int32(12), cpu.Accumulator)
	assert.Equal(3, cpu.ProgramCounter)
	assert.Equal(4, cpu.Ticks)
	assert.Equal(OP_HALT, cpu.Opcode)
	assert.Equal(Word(4300), cpu.InstructionRegister)
}

func TestCpuAlu(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		op     Opcode
		input  int32
		value  int32
		output int32
	}{
		{OP_ADDI, 7, 5, 12},
		{OP_ADDM, -7, 5, -2},
		{OP_SUBI, 7, 5, 2},
		{OP_SUBM, 5, 7, -2},
		{OP_MULI, -3, 4, -12},
		{OP_MULM, 3, 4, 12},
		{OP_DIVI, 7, 2, 3},
		{OP_DIVM, -7, 2, -3},
		{OP_MODI, 7, 3, 1},
		{OP_MODM, -7, 3, -1},
	}

	for _, entry := range table {
		output, err := doAlu(entry.op, entry.input, entry.value)
		assert.NoError(err, entry.op)
		assert.Equal(entry.output, output, entry.op)
	}
}

func TestCpuMemory(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"LOADI 42",
		"STORE x",
		"LOADI 0",
		"ADDM x",
		"ADDM x",
		"STORE y",
		"HALT",
		"VAR x",
		"VAR y",
	}

	cpu, mem := newTestCpu(t, strings.Join(program, "\n"), 20, nil)

	assert.NoError(runCpu(cpu))
	assert.Equal(Word(42), mem[7])
	assert.Equal(Word(84), mem[8])
	assert.Equal(int32(84), cpu.Accumulator)
}

func TestCpuDivisionByZero(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No output is expected from either program.
	console := NewMockConsole(ctrl)

	for _, source := range []string{
		"LOADI 7\nDIVI 0\nWRITEA\nHALT\n",
		"LOADI 7\nMODI 0\nWRITEA\nHALT\n",
		"LOADI 7\nDIVM zero\nWRITEA\nHALT\nVAR zero\n",
		"LOADI 7\nMODM zero\nWRITEA\nHALT\nVAR zero\n",
	} {
		cpu, _ := newTestCpu(t, source, 10, console)

		err := runCpu(cpu)
		assert.ErrorIs(err, ErrDivisionByZero, source)
		assert.Equal(int32(7), cpu.Accumulator, source)
		assert.Equal(1, cpu.ProgramCounter, source)
		assert.False(cpu.Halted, source)
	}
}

func TestCpuBranch(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		op    Opcode
		acc   int32
		taken bool
	}{
		{OP_JMP, 0, true},
		{OP_JMP, -5, true},
		{OP_JN, -1, true},
		{OP_JN, 0, false},
		{OP_JN, 1, false},
		{OP_JZ, 0, true},
		{OP_JZ, 1, false},
		{OP_JZ, -1, false},
		{OP_JNZ, 0, false},
		{OP_JNZ, 3, true},
		{OP_JNZ, -3, true},
		{OP_JGZ, 1, true},
		{OP_JGZ, 0, false},
		{OP_JGZ, -1, false},
	}

	for _, entry := range table {
		cpu := NewCpu(make(wordMemory, 100), nil)
		cpu.ProgramCounter = 10
		cpu.Accumulator = entry.acc

		err := cpu.Execute(MakeWord(entry.op, 50))
		assert.NoError(err)

		expected := 11
		if entry.taken {
			expected = 50
		}
		assert.Equal(expected, cpu.ProgramCounter, "%v %v", entry.op, entry.acc)
		assert.Equal(entry.acc, cpu.Accumulator)
	}
}

func TestCpuBranchProgram(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	console := NewMockConsole(ctrl)
	console.EXPECT().WriteLine("0").Return(nil).Times(1)

	program := []string{
		"LOADI 0",
		"JZ skip",
		"WRITE 99",
		"skip:",
		"WRITEA",
		"HALT",
	}

	cpu, _ := newTestCpu(t, strings.Join(program, "\n"), 100, console)
	assert.NoError(runCpu(cpu))
	assert.True(cpu.Halted)
}

func TestCpuHalt(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(t, "LOADI 5\nHALT\n", 10, nil)

	assert.NoError(runCpu(cpu))
	assert.True(cpu.Halted)

	before := cpu.Registers
	ticks := cpu.Ticks
	snapshot := append(wordMemory{}, mem...)

	for range 3 {
		assert.ErrorIs(cpu.Tick(), ErrHalted)
	}

	assert.Equal(before, cpu.Registers)
	assert.Equal(ticks, cpu.Ticks)
	assert.Equal(snapshot, mem)
}

func TestCpuBounds(t *testing.T) {
	assert := assert.New(t)

	// Data access outside of memory.
	for _, source := range []string{
		"LOADM 50\nHALT\n",
		"STORE 50\nHALT\n",
		"ADDM 50\nHALT\n",
		"WRITE 50\nHALT\n",
	} {
		cpu, mem := newTestCpu(t, source, 10, nil)
		snapshot := append(wordMemory{}, mem...)

		err := cpu.Tick()
		assert.ErrorIs(err, ErrAddress(50), source)
		assert.Equal(0, cpu.ProgramCounter, source)
		assert.Equal(snapshot, mem, source)
	}

	// Running off the end of memory.
	cpu, _ := newTestCpu(t, "JMP 4\n", 4, nil)
	assert.NoError(cpu.Tick())
	assert.Equal(4, cpu.ProgramCounter)
	assert.ErrorIs(cpu.Tick(), ErrAddress(4))
}

func TestCpuInvalidOpcode(t *testing.T) {
	assert := assert.New(t)

	mem := wordMemory{0, 9999, -4300}
	cpu := NewCpu(mem, nil)

	for pc := range mem {
		cpu.ProgramCounter = pc
		err := cpu.Tick()
		assert.ErrorIs(err, ErrOpcode(mem[pc]))
		assert.Equal(pc, cpu.ProgramCounter)
		assert.Equal(mem[pc], cpu.InstructionRegister)
	}
}

func TestCpuRead(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	console := NewMockConsole(ctrl)
	gomock.InOrder(
		console.EXPECT().ReadLine().Return(" 42 ", nil),
		console.EXPECT().ReadLine().Return("-17", nil),
		console.EXPECT().WriteLine("42").Return(nil),
		console.EXPECT().WriteLine("-17").Return(nil),
	)

	program := []string{
		"READ a",
		"READI 0",
		"WRITE a",
		"WRITEA",
		"HALT",
		"VAR a",
	}

	cpu, mem := newTestCpu(t, strings.Join(program, "\n"), 10, console)
	assert.NoError(runCpu(cpu))
	assert.Equal(Word(42), mem[5])
	assert.Equal(int32(-17), cpu.Accumulator)
}

func TestCpuReadInvalid(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	console := NewMockConsole(ctrl)
	console.EXPECT().ReadLine().Return("forty-two", nil)
	console.EXPECT().ReadLine().Return("", errors.New("closed"))

	cpu, mem := newTestCpu(t, "READ 9\nHALT\n", 10, console)

	err := cpu.Tick()
	assert.ErrorIs(err, ErrReadInput("forty-two"))
	assert.Equal(0, cpu.ProgramCounter)
	assert.Equal(Word(0), mem[9])

	err = cpu.Tick()
	assert.ErrorIs(err, ErrConsole)
	assert.Equal(0, cpu.ProgramCounter)

	// No console attached at all.
	cpu.Console = nil
	assert.ErrorIs(cpu.Tick(), ErrConsole)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(make(wordMemory, 10), nil)
	assert.NoError(cpu.Execute(MakeWord(OP_LOADI, 7)))

	expected := "  acc: +0007\n" +
		"   pc: 01\n" +
		"   ir: +2207\n" +
		"   op: 22 LOADI\n" +
		"  arg: 07\n"
	assert.Equal(expected, cpu.String())
}
