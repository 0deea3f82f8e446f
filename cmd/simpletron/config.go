package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/simpletron/memory"
)

// IMAGE_EXT is the file extension of memory image files.
const IMAGE_EXT = ".sml"

// Config defines program configuration.
type Config struct {
	Output     string   // Path to store output in, or "-" for stdout.
	MemorySize uint     // Number of memory words.
	Verbose    bool     // Log assembler and cpu activity.
	Dump       bool     // Print registers and memory after HALT.
	Step       bool     // Print state and wait for Enter before every instruction.
	Defines    []string // NAME=VALUE predefines for $(...) expressions.
}

// addFlags installs the flags shared by all commands.
func (c *Config) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.UintVarP(&c.MemorySize, "memory", "m", memory.DEFAULT_SIZE, "Memory size, in words.")
	flags.BoolVarP(&c.Verbose, "verbose", "v", false, "Verbose mode.")
	flags.StringArrayVarP(&c.Defines, "define", "D", nil, "Predefine NAME=VALUE for $(...) expressions.")
}

// predefines returns the NAME=VALUE defines as pairs.
func (c *Config) predefines() (defs map[string]string) {
	defs = make(map[string]string, len(c.Defines))
	for _, def := range c.Defines {
		name, value, _ := strings.Cut(def, "=")
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			continue
		}
		defs[name] = strings.TrimSpace(value)
	}

	return
}

// isImage returns true if the path names a memory image file.
func isImage(path string) bool {
	return strings.EqualFold(filepath.Ext(path), IMAGE_EXT)
}
