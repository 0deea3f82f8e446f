package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/simpletron/cpu"
)

// Cell is a single initialized memory word.
type Cell struct {
	Address int
	Value   cpu.Word
}

// Image is a memory image, stored as text with one 'ADDRESS VALUE' cell per
// line. Text following a ';' is a comment.
type Image struct {
	Cells []Cell
}

// NewImage creates an image of words placed at consecutive addresses from 0.
func NewImage(words []cpu.Word) (img *Image) {
	img = &Image{}
	for address, word := range words {
		img.Cells = append(img.Cells, Cell{Address: address, Value: word})
	}

	return
}

// parseCell parses a single image line.
func parseCell(line string) (cell Cell, err error) {
	words := strings.Fields(line)
	if len(words) != 2 {
		err = ErrImageLine
		return
	}

	address, err := strconv.Atoi(words[0])
	if err != nil || address < 0 {
		err = cpu.ErrParseNumber(words[0])
		return
	}

	value, err := strconv.ParseInt(words[1], 10, 32)
	if err != nil {
		err = cpu.ErrMemoryData(words[1])
		return
	}

	cell = Cell{Address: address, Value: cpu.Word(value)}
	return
}

// Unmarshal loads image cells from a reader, replacing any existing cells.
func (img *Image) Unmarshal(file io.Reader) (err error) {
	scanner := bufio.NewScanner(file)

	img.Cells = img.Cells[:0]

	var lineno int
	for scanner.Scan() {
		lineno++
		line, _, _ := strings.Cut(scanner.Text(), ";")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var cell Cell
		cell, err = parseCell(line)
		if err != nil {
			err = errors.WithStack(&cpu.ErrSyntax{LineNo: lineno, Line: line, Err: err})
			return
		}
		img.Cells = append(img.Cells, cell)
	}

	err = errors.Wrap(scanner.Err(), "image: read")
	return
}

// Marshal writes the image cells to a writer.
func (img *Image) Marshal(file io.Writer) (err error) {
	for _, cell := range img.Cells {
		_, err = fmt.Fprintf(file, "%02d %+05d\n", cell.Address, int32(cell.Value))
		if err != nil {
			err = errors.Wrapf(err, "image: write address %d", cell.Address)
			return
		}
	}

	return
}

// Load stores every image cell into a memory.
func (img *Image) Load(mem cpu.Memory) (err error) {
	for _, cell := range img.Cells {
		err = mem.Store(cell.Address, cell.Value)
		if err != nil {
			err = errors.Wrapf(err, "image: load")
			return
		}
	}

	return
}
