package cpu

// Encode maps a fully resolved instruction to its machine word.
//
// Label, variable, and expression operands must have been resolved to
// immediates by the assembler before encoding.
func Encode(inst AsmInstruction) (code Word, err error) {
	op := inst.Mnemonic
	if !op.Valid() {
		err = ErrInstructionInvalid(op.String())
		return
	}

	if inst.Operand == nil {
		code = MakeWord(op, 0)
		return
	}

	switch inst.Operand.Kind {
	case OPERAND_IMMEDIATE:
		value := inst.Operand.Value
		if value < 0 || value >= OPERAND_LIMIT {
			err = ErrOperandRange(value)
			return
		}
		code = MakeWord(op, value)
	case OPERAND_LABEL:
		err = ErrLabelUnresolved
	case OPERAND_VARIABLE:
		err = ErrVariableUnresolved
	default:
		err = ErrExpressionUnresolved
	}

	return
}
