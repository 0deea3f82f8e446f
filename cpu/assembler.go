// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Assembler is a two pass assembler for the Simpletron system.
//
// The first pass assigns addresses to labels, then to variables following
// the last instruction. The second pass resolves every operand and encodes
// the instructions.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines visible to $(...) expressions.
}

// Predefine defines a new constant or redefines an existing constant for
// $(...) expressions.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// sourceLine is a parsed, non-empty line of source.
type sourceLine struct {
	LineNo int
	Text   string
	Line   Line
}

// syntaxError attaches the source location to an error.
func (sl *sourceLine) syntaxError(err error) error {
	return &ErrSyntax{LineNo: sl.LineNo, Line: sl.Text, Err: err}
}

// Assemble assembles source text into a memory image.
func Assemble(source string) (words []Word, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	words = prog.Binary()
	return
}

// Parse parses an input stream into a Program.
// Assembly stops at the first error.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := asm.scan(input)
	if err != nil {
		return
	}

	symbols, err := asm.firstPass(lines)
	if err != nil {
		return
	}

	statements, err := asm.secondPass(lines, symbols)
	if err != nil {
		return
	}

	prog = &Program{
		Statements: statements,
		Symbols:    symbols,
	}

	return
}

// scan parses every line of the input.
func (asm *Assembler) scan(input io.Reader) (lines []sourceLine, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		code, _, _ := strings.Cut(text, ";")
		code = strings.TrimSpace(code)

		var line Line
		line, err = ParseLine(code)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: code, Err: err}
			return
		}
		if line == nil {
			continue
		}

		lines = append(lines, sourceLine{LineNo: lineno, Text: code, Line: line})
	}

	err = scanner.Err()
	return
}

// firstPass assigns an address to every label and variable.
func (asm *Assembler) firstPass(lines []sourceLine) (symbols *SymbolTable, err error) {
	symbols = NewSymbolTable()

	ip := 0
	for n := range lines {
		sl := &lines[n]
		switch line := sl.Line.(type) {
		case *LabelLine:
			err = symbols.DefineLabel(line.Name, ip)
			if err != nil {
				err = sl.syntaxError(err)
				return
			}
		case *InstructionLine:
			ip++
		}
	}

	// Variables follow the last instruction.
	for n := range lines {
		sl := &lines[n]
		line, ok := sl.Line.(*VariableLine)
		if !ok {
			continue
		}
		err = symbols.DefineVariable(line.Name, ip)
		if err != nil {
			err = sl.syntaxError(err)
			return
		}
		if asm.Verbose {
			log.Printf("asm: VAR %v @ %v", line.Name, ip)
		}
		ip++
	}

	return
}

// resolve replaces a symbolic operand with its address or value.
func (asm *Assembler) resolve(operand *Operand, symbols *SymbolTable) (resolved *Operand, err error) {
	var value int

	switch operand.Kind {
	case OPERAND_IMMEDIATE:
		resolved = operand
		return
	case OPERAND_LABEL:
		value, err = symbols.LookupLabel(operand.Name)
	case OPERAND_VARIABLE:
		value, err = symbols.LookupVariable(operand.Name)
	case OPERAND_EXPRESSION:
		value, err = asm.evalExpression(operand.Name, symbols)
	}
	if err != nil {
		return
	}

	resolved = Immediate(value)
	return
}

// secondPass resolves operands and encodes the instructions in program order.
func (asm *Assembler) secondPass(lines []sourceLine, symbols *SymbolTable) (statements []Statement, err error) {
	for n := range lines {
		sl := &lines[n]
		line, ok := sl.Line.(*InstructionLine)
		if !ok {
			continue
		}

		inst := line.AsmInstruction
		if inst.Operand != nil {
			inst.Operand, err = asm.resolve(inst.Operand, symbols)
			if err != nil {
				err = sl.syntaxError(err)
				return
			}
		}

		var code Word
		code, err = Encode(inst)
		if err != nil {
			err = sl.syntaxError(err)
			return
		}

		stmt := Statement{
			LineNo:      sl.LineNo,
			Address:     len(statements),
			Words:       strings.Fields(sl.Text),
			Instruction: inst,
			Code:        code,
		}
		if asm.Verbose {
			log.Printf("asm: %02d: %04d %v", stmt.Address, int(code), inst)
		}
		statements = append(statements, stmt)
	}

	return
}
