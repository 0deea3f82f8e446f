package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// VARIABLE_KEYWORD introduces a variable declaration.
const VARIABLE_KEYWORD = "VAR"

// OperandKind is the kind of an assembly-time operand.
type OperandKind int

const (
	OPERAND_IMMEDIATE  = OperandKind(0) // Literal value.
	OPERAND_LABEL      = OperandKind(1) // Reference to a label.
	OPERAND_VARIABLE   = OperandKind(2) // Reference to a variable.
	OPERAND_EXPRESSION = OperandKind(3) // Compile-time $(...) expression.
)

// Operand is an assembly-time operand, before or after resolution.
type Operand struct {
	Kind  OperandKind
	Value int    // Value, if OPERAND_IMMEDIATE
	Name  string // Name or expression text, otherwise.
}

// Immediate returns a resolved operand.
func Immediate(value int) *Operand {
	return &Operand{Kind: OPERAND_IMMEDIATE, Value: value}
}

// String returns the operand in assembly syntax.
func (operand Operand) String() string {
	switch operand.Kind {
	case OPERAND_IMMEDIATE:
		return strconv.Itoa(operand.Value)
	case OPERAND_EXPRESSION:
		return "$(" + operand.Name + ")"
	default:
		return operand.Name
	}
}

// AsmInstruction is a mnemonic with its optional operand.
type AsmInstruction struct {
	Mnemonic Opcode
	Operand  *Operand
}

// String returns the instruction in assembly syntax.
func (inst AsmInstruction) String() string {
	if inst.Operand == nil {
		return inst.Mnemonic.String()
	}
	return fmt.Sprintf("%v %v", inst.Mnemonic, inst.Operand)
}

// Line is a single parsed line of assembly; one of
// *LabelLine, *VariableLine, or *InstructionLine.
type Line interface {
	isLine()
}

// LabelLine defines a jump label at the current instruction address.
type LabelLine struct {
	Name string
}

// VariableLine declares a variable in the data area.
type VariableLine struct {
	Name string
}

// InstructionLine is an instruction to be encoded.
type InstructionLine struct {
	AsmInstruction
}

func (*LabelLine) isLine()       {}
func (*VariableLine) isLine()    {}
func (*InstructionLine) isLine() {}

// isDecimal returns true if the word is entirely decimal digits.
func isDecimal(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// validName checks a label or variable name.
func validName(name string) bool {
	return len(name) != 0 && !isDecimal(name) && len(strings.Fields(name)) == 1 &&
		!strings.ContainsAny(name, ":$()")
}

// ParseLine parses a single line of source text.
//
// A nil Line with a nil error is returned for blank and comment-only lines.
func ParseLine(text string) (line Line, err error) {
	code, _, _ := strings.Cut(text, ";")
	code = strings.TrimSpace(code)
	if len(code) == 0 {
		return
	}

	// NAME:
	if strings.HasSuffix(code, ":") {
		name := code[:len(code)-1]
		if !validName(name) {
			err = ErrLabelInvalid
			return
		}
		line = &LabelLine{Name: name}
		return
	}

	words := strings.Fields(code)

	// VAR NAME
	if len(words) == 2 && words[0] == VARIABLE_KEYWORD {
		if !validName(words[1]) {
			err = ErrVariableInvalid
			return
		}
		line = &VariableLine{Name: words[1]}
		return
	}

	op, ok := LookupMnemonic(words[0])
	if !ok {
		err = ErrInstructionInvalid(words[0])
		return
	}

	inst := AsmInstruction{Mnemonic: op}

	args := words[1:]
	rest := strings.TrimSpace(code[len(words[0]):])

	if !op.HasOperand() {
		if len(args) != 0 {
			err = ErrInstructionLine
			return
		}
		line = &InstructionLine{inst}
		return
	}

	// $(...) may contain whitespace.
	if strings.HasPrefix(rest, "$(") {
		if !strings.HasSuffix(rest, ")") {
			err = ErrParseExpression(rest)
			return
		}
		expr := strings.TrimSpace(rest[2 : len(rest)-1])
		if len(expr) == 0 {
			err = ErrParseExpression(expr)
			return
		}
		inst.Operand = &Operand{Kind: OPERAND_EXPRESSION, Name: expr}
		line = &InstructionLine{inst}
		return
	}

	if len(args) != 1 {
		err = ErrInstructionLine
		return
	}

	inst.Operand, err = parseOperand(op, args[0])
	if err != nil {
		return
	}

	line = &InstructionLine{inst}
	return
}

// parseOperand classifies a single operand word for an opcode.
func parseOperand(op Opcode, word string) (operand *Operand, err error) {
	if isDecimal(word) {
		var value int
		value, err = strconv.Atoi(word)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		operand = Immediate(value)
		return
	}

	if !validName(word) {
		err = ErrParseNumber(word)
		return
	}

	switch op.Class() {
	case OPERAND_CLASS_LABEL:
		operand = &Operand{Kind: OPERAND_LABEL, Name: word}
	case OPERAND_CLASS_DATA:
		operand = &Operand{Kind: OPERAND_VARIABLE, Name: word}
	default:
		err = ErrParseNumber(word)
	}

	return
}
