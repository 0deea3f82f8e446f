// Package io provides the operator console and the memory image file format
// for the Simpletron emulator.
package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/simpletron/cpu"
)

// Console provides line oriented operator I/O.
// It wraps an io.Reader for input and io.Writer for output.
type Console struct {
	Input  io.Reader
	Output io.Writer
	Prompt string // If set, written to Output before every read.

	source io.Reader
	reader *bufio.Reader
}

var _ cpu.Console = (*Console)(nil)

// Rewind discards any buffered input.
func (con *Console) Rewind() {
	con.source = nil
	con.reader = nil
}

// ReadLine blocks until a line is read from the input stream.
// The line terminator is not included.
func (con *Console) ReadLine() (line string, err error) {
	if con.Input == nil {
		err = io.EOF
		return
	}

	if con.reader == nil || con.source != con.Input {
		con.source = con.Input
		con.reader = bufio.NewReader(con.Input)
	}

	if len(con.Prompt) != 0 && con.Output != nil {
		_, err = fmt.Fprint(con.Output, con.Prompt)
		if err != nil {
			return
		}
	}

	line, err = con.reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		// Final unterminated line.
		err = nil
	}
	line = strings.TrimRight(line, "\r\n")

	return
}

// WriteLine writes a line to the output stream.
func (con *Console) WriteLine(line string) (err error) {
	if con.Output == nil {
		err = ErrConsoleClosed
		return
	}

	_, err = fmt.Fprintln(con.Output, line)
	return
}
