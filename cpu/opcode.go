package cpu

// Word is the content of a single memory cell.
//
// Instruction words are always in the range 0..9999, decoded as
// opcode*100 + operand. Data words hold any signed 32-bit value.
type Word int32

const (
	WORD_OPCODE_SCALE = 100 // Decimal scale of the opcode field.
	OPERAND_LIMIT     = 100 // Exclusive upper bound of an encoded operand.
)

// Opcode is a decoded instruction opcode.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	// I/O
	OP_READ   = Opcode(10) // READ
	OP_WRITE  = Opcode(11) // WRITE
	OP_WRITEA = Opcode(12) // WRITEA
	OP_READI  = Opcode(13) // READI

	// Memory
	OP_LOADM = Opcode(20) // LOADM
	OP_STORE = Opcode(21) // STORE
	OP_LOADI = Opcode(22) // LOADI

	// Arithmetic (memory)
	OP_ADDM = Opcode(30) // ADDM
	OP_SUBM = Opcode(31) // SUBM
	OP_DIVM = Opcode(32) // DIVM
	OP_MODM = Opcode(33) // MODM
	OP_MULM = Opcode(34) // MULM

	// Arithmetic (immediate)
	OP_ADDI = Opcode(35) // ADDI
	OP_SUBI = Opcode(36) // SUBI
	OP_DIVI = Opcode(37) // DIVI
	OP_MODI = Opcode(38) // MODI
	OP_MULI = Opcode(39) // MULI

	// Control flow
	OP_JMP  = Opcode(40) // JMP
	OP_JN   = Opcode(41) // JN
	OP_JZ   = Opcode(42) // JZ
	OP_HALT = Opcode(43) // HALT
	OP_JNZ  = Opcode(44) // JNZ
	OP_JGZ  = Opcode(45) // JGZ
)

// OperandClass describes what kind of operand a mnemonic takes.
type OperandClass int

const (
	OPERAND_CLASS_NONE      = OperandClass(0) // No operand.
	OPERAND_CLASS_DATA      = OperandClass(1) // Memory address, or a variable.
	OPERAND_CLASS_IMMEDIATE = OperandClass(2) // Literal value.
	OPERAND_CLASS_LABEL     = OperandClass(3) // Jump target, or a label.
)

// opcodeClass maps every valid opcode to its operand class.
var opcodeClass = map[Opcode]OperandClass{
	OP_READ:   OPERAND_CLASS_DATA,
	OP_WRITE:  OPERAND_CLASS_DATA,
	OP_WRITEA: OPERAND_CLASS_NONE,
	OP_READI:  OPERAND_CLASS_DATA,

	OP_LOADM: OPERAND_CLASS_DATA,
	OP_STORE: OPERAND_CLASS_DATA,
	OP_LOADI: OPERAND_CLASS_IMMEDIATE,

	OP_ADDM: OPERAND_CLASS_DATA,
	OP_SUBM: OPERAND_CLASS_DATA,
	OP_DIVM: OPERAND_CLASS_DATA,
	OP_MODM: OPERAND_CLASS_DATA,
	OP_MULM: OPERAND_CLASS_DATA,

	OP_ADDI: OPERAND_CLASS_IMMEDIATE,
	OP_SUBI: OPERAND_CLASS_IMMEDIATE,
	OP_DIVI: OPERAND_CLASS_IMMEDIATE,
	OP_MODI: OPERAND_CLASS_IMMEDIATE,
	OP_MULI: OPERAND_CLASS_IMMEDIATE,

	OP_JMP:  OPERAND_CLASS_LABEL,
	OP_JN:   OPERAND_CLASS_LABEL,
	OP_JZ:   OPERAND_CLASS_LABEL,
	OP_HALT: OPERAND_CLASS_NONE,
	OP_JNZ:  OPERAND_CLASS_LABEL,
	OP_JGZ:  OPERAND_CLASS_LABEL,
}

// mnemonicMap maps mnemonic text to opcodes.
var mnemonicMap = func() map[string]Opcode {
	mnemonics := make(map[string]Opcode, len(opcodeClass))
	for op := range opcodeClass {
		mnemonics[op.String()] = op
	}
	return mnemonics
}()

// LookupMnemonic returns the opcode for a mnemonic.
func LookupMnemonic(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[mnemonic]
	return
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodeClass[op]
	return ok
}

// Class returns the operand class of the opcode.
func (op Opcode) Class() OperandClass {
	return opcodeClass[op]
}

// HasOperand returns true if the opcode's mnemonic requires an operand.
func (op Opcode) HasOperand() bool {
	return op.Class() != OPERAND_CLASS_NONE
}

// MakeWord creates an instruction word from an opcode and operand.
func MakeWord(op Opcode, operand int) Word {
	return Word(int(op)*WORD_OPCODE_SCALE + operand)
}

// Decode splits a word into its opcode and operand fields.
// The opcode is not validated.
func (word Word) Decode() (op Opcode, operand int) {
	op = Opcode(int(word) / WORD_OPCODE_SCALE)
	operand = int(word) % WORD_OPCODE_SCALE
	return
}
