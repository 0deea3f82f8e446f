package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strconv"
	"strings"
)

// Memory is the word store the CPU fetches from and operates on.
// Every access is bounds checked, returning ErrAddress when out of range.
type Memory interface {
	// Len returns the number of words in the memory.
	Len() int
	// Read returns the word at an address.
	Read(address int) (value Word, err error)
	// Store writes a word to an address.
	Store(address int, value Word) (err error)
}

// Console is the blocking, line based operator console.
//
//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_console_test.go github.com/ezrec/simpletron/cpu Console
type Console interface {
	// ReadLine blocks until a line of input is available.
	ReadLine() (line string, err error)
	// WriteLine writes a single line of output.
	WriteLine(line string) (err error)
}

// Registers is the processor register file.
type Registers struct {
	Accumulator         int32  // Accumulator.
	ProgramCounter      int    // Address of the next instruction.
	InstructionRegister Word   // Last fetched instruction word.
	Opcode              Opcode // Opcode of the last fetched instruction.
	Operand             int    // Operand of the last fetched instruction.
}

// Cpu is the simulation context for the Simpletron accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers

	Halted bool // Set once HALT has executed.
	Ticks  int  // Executed instruction counter.

	Memory  Memory  // Program and data memory.
	Console Console // Operator console for READ and WRITE.
}

var _cpu_defines = map[string]string{
	"OPERAND_LIMIT": fmt.Sprintf("%v", OPERAND_LIMIT),
}

// NewCpu creates a new CPU attached to a memory and console.
func NewCpu(memory Memory, console Console) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:  memory,
		Console: console,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %+05d\n", "acc", cpu.Accumulator)
	text += fmt.Sprintf("% 5s: %02d\n", "pc", cpu.ProgramCounter)
	text += fmt.Sprintf("% 5s: %+05d\n", "ir", int32(cpu.InstructionRegister))
	text += fmt.Sprintf("% 5s: %02d %v\n", "op", int(cpu.Opcode), cpu.Opcode)
	text += fmt.Sprintf("% 5s: %02d\n", "arg", cpu.Operand)

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Zeros the tick counter.
// - Leaves the halted state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers = Registers{}
	cpu.Halted = false
	cpu.Ticks = 0
}

// FetchCode fetches the word at the program counter.
func (cpu *Cpu) FetchCode() (code Word, err error) {
	code, err = cpu.Memory.Read(cpu.ProgramCounter)
	return
}

// Tick executes a single fetch, decode, and execute cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	return
}

// Execute decodes and executes a single instruction word.
//
// On error the accumulator and program counter are left unchanged.
func (cpu *Cpu) Execute(code Word) (err error) {
	op, operand := code.Decode()

	cpu.InstructionRegister = code
	cpu.Opcode = op
	cpu.Operand = operand

	if !op.Valid() {
		err = ErrOpcode(code)
		return
	}

	if cpu.Verbose {
		log.Printf("%02d: %04d %v %02d", cpu.ProgramCounter, int32(code), op, operand)
	}

	next_pc := cpu.ProgramCounter + 1
	acc := cpu.Accumulator

	switch op {
	case OP_READ:
		var value int32
		value, err = cpu.readInput()
		if err != nil {
			return
		}
		err = cpu.Memory.Store(operand, Word(value))
	case OP_READI:
		acc, err = cpu.readInput()
	case OP_WRITE:
		var value Word
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			return
		}
		err = cpu.writeOutput(int32(value))
	case OP_WRITEA:
		err = cpu.writeOutput(acc)
	case OP_LOADM:
		var value Word
		value, err = cpu.Memory.Read(operand)
		acc = int32(value)
	case OP_STORE:
		err = cpu.Memory.Store(operand, Word(acc))
	case OP_LOADI:
		acc = int32(operand)
	case OP_ADDM, OP_SUBM, OP_DIVM, OP_MODM, OP_MULM:
		var value Word
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			return
		}
		acc, err = doAlu(op, acc, int32(value))
	case OP_ADDI, OP_SUBI, OP_DIVI, OP_MODI, OP_MULI:
		acc, err = doAlu(op, acc, int32(operand))
	case OP_JMP:
		next_pc = operand
	case OP_JN:
		if acc < 0 {
			next_pc = operand
		}
	case OP_JZ:
		if acc == 0 {
			next_pc = operand
		}
	case OP_JNZ:
		if acc != 0 {
			next_pc = operand
		}
	case OP_JGZ:
		if acc > 0 {
			next_pc = operand
		}
	case OP_HALT:
		// The program counter stays on the HALT.
		next_pc = cpu.ProgramCounter
		cpu.Halted = true
	}

	if err != nil {
		return
	}

	cpu.Accumulator = acc
	cpu.ProgramCounter = next_pc
	cpu.Ticks += 1

	return
}

// readInput reads an integer from the console.
func (cpu *Cpu) readInput() (value int32, err error) {
	if cpu.Console == nil {
		err = ErrConsole
		return
	}

	line, err := cpu.Console.ReadLine()
	if err != nil {
		err = errors.Join(ErrConsole, err)
		return
	}

	line = strings.TrimSpace(line)
	v64, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		err = ErrReadInput(line)
		return
	}

	value = int32(v64)
	return
}

// writeOutput writes an integer to the console.
func (cpu *Cpu) writeOutput(value int32) (err error) {
	if cpu.Console == nil {
		err = ErrConsole
		return
	}

	err = cpu.Console.WriteLine(strconv.FormatInt(int64(value), 10))
	if err != nil {
		err = errors.Join(ErrConsole, err)
	}

	return
}

// doAlu performs the requested arithmetic, and returns the output value.
// Division and remainder truncate toward zero.
func doAlu(op Opcode, input int32, value int32) (output int32, err error) {
	switch op {
	case OP_ADDM, OP_ADDI:
		output = input + value
	case OP_SUBM, OP_SUBI:
		output = input - value
	case OP_MULM, OP_MULI:
		output = input * value
	case OP_DIVM, OP_DIVI:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input / value
	case OP_MODM, OP_MODI:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input % value
	}

	return
}
