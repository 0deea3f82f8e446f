package cpu

import (
	"iter"
)

// Statement is an assembled instruction with its source location.
type Statement struct {
	LineNo      int            // Source line number.
	Address     int            // Memory address of the instruction.
	Words       []string       // Source words.
	Instruction AsmInstruction // Resolved instruction.
	Code        Word           // Encoded instruction word.
}

// Program is the output of the assembler.
type Program struct {
	Statements []Statement
	Symbols    *SymbolTable
}

// Debug returns the statement at an address, or nil if no instruction was
// assembled there.
func (prog *Program) Debug(address int) (stmt *Statement) {
	for n := range prog.Statements {
		if prog.Statements[n].Address == address {
			stmt = &prog.Statements[n]
			break
		}
	}

	return
}

// Binary returns the memory image of the program, loadable at address 0.
func (prog *Program) Binary() (bins []Word) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Codes iterates over the address and word of every instruction.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(address int, code Word) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.Code) {
				return
			}
		}
	}
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Statements)
}
