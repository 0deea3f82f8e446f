// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/simpletron/cpu"
	"github.com/ezrec/simpletron/dump"
	"github.com/ezrec/simpletron/emulator"
	"github.com/ezrec/simpletron/io"
)

func main() {
	config := &Config{}

	root := &cobra.Command{
		Use:           "simpletron",
		Short:         "Simpletron assembler and virtual machine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.addFlags(root)

	runCmd := &cobra.Command{
		Use:   "run sourceFile",
		Short: "Assemble and execute a program, or execute a " + IMAGE_EXT + " memory image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(config, args[0])
		},
	}
	runCmd.Flags().BoolVarP(&config.Dump, "dump", "d", true, "Print registers and memory after HALT.")
	runCmd.Flags().BoolVarP(&config.Step, "step", "s", false, "Print state and wait for Enter before every instruction.")

	asmCmd := &cobra.Command{
		Use:   "asm sourceFile",
		Short: "Assemble a program into a " + IMAGE_EXT + " memory image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return assemble(config, args[0])
		},
	}
	asmCmd.Flags().StringVarP(&config.Output, "out", "o", "-", "Output file.")

	astCmd := &cobra.Command{
		Use:   "ast sourceFile",
		Short: "Print the parsed lines of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return parse(args[0])
		},
	}

	root.AddCommand(runCmd, asmCmd, astCmd)

	err := root.Execute()
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	atexit.Exit(0)
}

// newEmulator creates an emulator attached to the process console.
func newEmulator(c *Config) (emu *emulator.Emulator) {
	emu = emulator.NewEmulator(c.MemorySize)
	emu.Verbose = c.Verbose
	emu.Console.Input = os.Stdin
	emu.Console.Output = os.Stdout
	emu.Console.Prompt = "Enter a number: "

	return
}

// compile assembles a source file, with the emulator's predefines.
func compile(c *Config, emu *emulator.Emulator, path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: c.Verbose}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
	for name, value := range c.predefines() {
		asm.Predefine(name, value)
	}

	prog, err = asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// load loads a source file or memory image into the emulator.
func load(c *Config, emu *emulator.Emulator, path string) (err error) {
	if !isImage(path) {
		var prog *cpu.Program
		prog, err = compile(c, emu, path)
		if err != nil {
			return
		}
		emu.Program = prog
		err = emu.Reset()
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	img := &io.Image{}
	err = img.Unmarshal(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	err = emu.LoadImage(img)
	return
}

// run executes a program until HALT.
func run(c *Config, path string) (err error) {
	emu := newEmulator(c)

	err = load(c, emu, path)
	if err != nil {
		return
	}

	fmt.Fprintln(os.Stderr, "*** Welcome to Simpletron ***")
	fmt.Fprintln(os.Stderr, "*** Program loaded successfully ***")

	for done := false; !done; {
		if c.Step {
			err = step(emu)
			if err != nil {
				return
			}
		}

		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if c.Dump {
		fmt.Println()
		err = dump.Snapshot(os.Stdout, emu.Snapshot(), dump.NO_POINTER)
	}

	return
}

// step shows the machine state, and waits for the operator.
func step(emu *emulator.Emulator) (err error) {
	err = dump.Snapshot(os.Stdout, emu.Snapshot(), emu.Cpu.ProgramCounter)
	if err != nil {
		return
	}

	prompt := emu.Console.Prompt
	emu.Console.Prompt = "\nPress Enter to continue..."
	defer func() { emu.Console.Prompt = prompt }()

	_, err = emu.Console.ReadLine()
	return
}

// assemble writes the memory image of a source file.
func assemble(c *Config, path string) (err error) {
	emu := newEmulator(c)

	prog, err := compile(c, emu, path)
	if err != nil {
		return
	}

	out := os.Stdout
	if c.Output != "-" {
		out, err = os.Create(c.Output)
		if err != nil {
			return
		}
		atexit.Register(func() { out.Close() })
	}

	img := io.NewImage(prog.Binary())
	err = img.Marshal(out)
	return
}

// parse pretty prints every parsed line of a source file.
func parse(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	scanner := bufio.NewScanner(inf)
	var lineno int
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())

		var line cpu.Line
		line, err = cpu.ParseLine(text)
		if err != nil {
			err = &cpu.ErrSyntax{LineNo: lineno, Line: text, Err: err}
			return
		}
		if line == nil {
			continue
		}

		fmt.Printf("%d: ", lineno)
		pp.Println(line)
	}

	err = scanner.Err()
	return
}
