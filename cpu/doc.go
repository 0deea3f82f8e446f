// Package cpu implements the accumulator machine and the assembler for the
// Simpletron system.
//
// The processor consists of a signed accumulator, a program counter, and a
// decoded instruction register snapshot (instruction word, opcode, operand).
// Instructions are decimal words of the form opcode*100 + operand, fetched
// from a flat, bounds-checked word memory.
//
// The assembler is a two-pass assembler for the Simpletron mnemonic language,
// supporting labels, VAR storage declarations, and compile-time $(...)
// operand expressions.
package cpu
