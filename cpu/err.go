package cpu

import (
	"errors"

	"github.com/ezrec/simpletron/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("cpu halted"))
	ErrDivisionByZero = errors.New(f("division by zero"))
	ErrConsole        = errors.New(f("console unavailable"))

	// Assembler errors
	ErrInstructionLine = errors.New(f("invalid operand count"))
	ErrLabelInvalid    = errors.New(f("label name invalid"))
	ErrVariableInvalid = errors.New(f("variable name invalid"))

	// Encoder consistency errors. These indicate an assembler defect.
	ErrLabelUnresolved      = errors.New(f("unresolved label"))
	ErrVariableUnresolved   = errors.New(f("unresolved variable"))
	ErrExpressionUnresolved = errors.New(f("unresolved expression"))
)

type ErrInstructionInvalid string

func (err ErrInstructionInvalid) Error() string {
	return f("'%v' is an invalid instruction", string(err))
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

type ErrVariableDuplicate string

func (err ErrVariableDuplicate) Error() string {
	return f("variable %v duplicated", string(err))
}

type ErrVariableMissing string

func (err ErrVariableMissing) Error() string {
	return f("variable %v missing", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOperandRange is returned when an operand does not fit the two decimal
// digit operand field.
type ErrOperandRange int

func (err ErrOperandRange) Error() string {
	return f("operand %v out of range 0..%v", int(err), OPERAND_LIMIT-1)
}

// ErrOpcode is returned when a fetched word does not decode to a valid opcode.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	op, _ := Word(eo).Decode()
	return f("word %v has invalid opcode %v", int32(eo), int(op))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is returned on any out of bounds memory access.
type ErrAddress int

func (err ErrAddress) Error() string {
	return f("%v is an invalid address", int(err))
}

func (err ErrAddress) Is(target error) (ok bool) {
	_, ok = target.(ErrAddress)
	return
}

// ErrReadInput is returned when console input is not an integer.
type ErrReadInput string

func (err ErrReadInput) Error() string {
	return f("'%v' is an invalid input", string(err))
}

func (err ErrReadInput) Is(target error) (ok bool) {
	_, ok = target.(ErrReadInput)
	return
}

// ErrMemoryData is returned when a memory image cell is not an integer.
type ErrMemoryData string

func (err ErrMemoryData) Error() string {
	return f("'%v' is invalid memory data", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
