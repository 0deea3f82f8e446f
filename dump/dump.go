// Package dump formats emulator snapshots for the operator.
package dump

import (
	"fmt"
	"io"

	"github.com/ezrec/simpletron/cpu"
	"github.com/ezrec/simpletron/emulator"
)

// COLUMNS is the number of memory words per row.
const COLUMNS = 10

// NO_POINTER disables the program counter marker in the memory grid.
const NO_POINTER = -1

// Registers writes the register block.
func Registers(w io.Writer, regs cpu.Registers) (err error) {
	_, err = fmt.Fprintf(w, "REGISTERS:\n"+
		"accumulator:          %+05d\n"+
		"program counter:      %02d\n"+
		"instruction register: %+05d\n"+
		"operation code:       %02d\n"+
		"operand:              %02d\n",
		regs.Accumulator,
		regs.ProgramCounter,
		int32(regs.InstructionRegister),
		int(regs.Opcode),
		regs.Operand)
	return
}

// Memory writes the memory grid. The word at pointer is marked with '->'.
func Memory(w io.Writer, cells []cpu.Word, pointer int) (err error) {
	_, err = fmt.Fprint(w, "MEMORY:\n    ")
	if err != nil {
		return
	}
	for n := range COLUMNS {
		_, err = fmt.Fprintf(w, "%8d", n)
		if err != nil {
			return
		}
	}

	for n, cell := range cells {
		if n%COLUMNS == 0 {
			_, err = fmt.Fprintf(w, "\n%4d", n)
			if err != nil {
				return
			}
		}
		text := fmt.Sprintf("%+05d", int32(cell))
		if n == pointer {
			text = "->" + text
		}
		_, err = fmt.Fprintf(w, "%8s", text)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintln(w)
	return
}

// Snapshot writes the registers, followed by the memory grid.
func Snapshot(w io.Writer, snap emulator.Snapshot, pointer int) (err error) {
	err = Registers(w, snap.Registers)
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w)
	if err != nil {
		return
	}

	err = Memory(w, snap.Memory, pointer)
	return
}
