// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"

	"github.com/ezrec/simpletron/cpu"
	"github.com/ezrec/simpletron/internal"
	"github.com/ezrec/simpletron/io"
	"github.com/ezrec/simpletron/memory"
)

// Emulator state. CPU + memory + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Memory  *memory.Memory // Program and data memory.
	Console io.Console     // Operator console.
}

// Snapshot is a copy of the machine state, for display.
type Snapshot struct {
	cpu.Registers
	Memory []cpu.Word
	Halted bool
	Ticks  int
}

// NewEmulator creates a new emulator with a memory of size words.
func NewEmulator(size uint) (emu *Emulator) {
	if size == 0 {
		size = memory.DEFAULT_SIZE
	}

	emu = &Emulator{
		Memory:  memory.NewMemory(size),
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(emu.Memory, &emu.Console)

	return
}

// Defines returns an iterator over the assembler predefines for this machine.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(emu.Cpu.Defines(), emu.Memory.Defines())
}

// reset clears the memory and registers.
func (emu *Emulator) reset() {
	emu.Memory.Verbose = emu.Verbose
	emu.Memory.Reset()
	emu.Console.Rewind()
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Reset the machine, and load the current program at address 0.
func (emu *Emulator) Reset() (err error) {
	emu.reset()

	err = emu.Memory.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d words", emu.Program.Len())
	}

	return
}

// Load resets the machine, and loads a raw memory image at address 0.
// The program listing is cleared.
func (emu *Emulator) Load(words []cpu.Word) (err error) {
	emu.Program = &cpu.Program{}
	emu.reset()

	err = emu.Memory.Load(words)
	return
}

// LoadImage resets the machine, and loads a memory image file.
// The program listing is cleared.
func (emu *Emulator) LoadImage(img *io.Image) (err error) {
	emu.Program = &cpu.Program{}
	emu.reset()

	err = img.Load(emu.Memory)
	return
}

// LineNo returns the source line number for the instruction at the program
// counter, or 0 if unknown.
func (emu *Emulator) LineNo() int {
	stmt := emu.Program.Debug(emu.Cpu.ProgramCounter)
	if stmt == nil {
		return 0
	}

	return stmt.LineNo
}

// Tick performs a single instruction of the emulator.
// done is set once HALT has executed.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	address := emu.Cpu.ProgramCounter
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted
	if done && emu.Verbose {
		log.Printf("emulator: halt after %d instructions", emu.Cpu.Ticks)
	}

	return
}

// Run ticks the emulator until HALT, or an error.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Snapshot returns a copy of the registers and memory.
func (emu *Emulator) Snapshot() Snapshot {
	return Snapshot{
		Registers: emu.Cpu.Registers,
		Memory:    emu.Memory.Snapshot(),
		Halted:    emu.Cpu.Halted,
		Ticks:     emu.Cpu.Ticks,
	}
}
