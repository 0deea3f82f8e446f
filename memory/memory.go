// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the flat word memory of the Simpletron system.
package memory

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/simpletron/cpu"
)

// DEFAULT_SIZE is the number of words in a default memory.
const DEFAULT_SIZE = 100

// Memory is a fixed length, bounds checked word store.
type Memory struct {
	Cell    []cpu.Word
	Verbose bool

	Reads  int // Read access counter.
	Writes int // Store access counter.
}

var _ cpu.Memory = (*Memory)(nil)

// NewMemory creates a new memory of count words.
func NewMemory(count uint) (mem *Memory) {
	mem = &Memory{
		Cell: make([]cpu.Word, count),
	}

	return
}

// Defines returns an iter of defines for the memory.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%v", len(mem.Cell)),
	})
}

// Reset zeros every cell and the access counters.
func (mem *Memory) Reset() {
	clear(mem.Cell)
	mem.Reads = 0
	mem.Writes = 0
}

// Len returns the number of words in the memory.
func (mem *Memory) Len() int {
	return len(mem.Cell)
}

// valid checks an address against the memory bounds.
func (mem *Memory) valid(address int) (err error) {
	if address < 0 || address >= len(mem.Cell) {
		err = cpu.ErrAddress(address)
	}
	return
}

// Read returns the word at an address.
func (mem *Memory) Read(address int) (value cpu.Word, err error) {
	err = mem.valid(address)
	if err != nil {
		return
	}

	mem.Reads++
	value = mem.Cell[address]
	return
}

// Store writes a word to an address.
func (mem *Memory) Store(address int, value cpu.Word) (err error) {
	err = mem.valid(address)
	if err != nil {
		return
	}

	if mem.Verbose {
		log.Printf("memory: [%02d] %+05d -> %+05d", address, int32(mem.Cell[address]), int32(value))
	}

	mem.Writes++
	mem.Cell[address] = value
	return
}

// Load stores a memory image at consecutive addresses, starting at 0.
func (mem *Memory) Load(words []cpu.Word) (err error) {
	for address, word := range words {
		err = mem.Store(address, word)
		if err != nil {
			return
		}
	}

	return
}

// Snapshot returns a copy of every cell.
func (mem *Memory) Snapshot() []cpu.Word {
	return slices.Clone(mem.Cell)
}
