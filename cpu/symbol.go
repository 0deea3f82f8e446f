package cpu

import (
	"iter"
	"maps"

	"github.com/ezrec/simpletron/internal"
)

// SymbolTable holds the addresses of labels and variables.
// Labels and variables are separate namespaces; each name may only be
// defined once within its namespace.
type SymbolTable struct {
	Label    map[string]int // Map of jump labels to instruction addresses.
	Variable map[string]int // Map of variables to data addresses.
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Label:    make(map[string]int, 16),
		Variable: make(map[string]int, 16),
	}
}

// DefineLabel binds a label to an address.
func (st *SymbolTable) DefineLabel(name string, address int) (err error) {
	if _, ok := st.Label[name]; ok {
		err = ErrLabelDuplicate(name)
		return
	}
	st.Label[name] = address
	return
}

// DefineVariable binds a variable to an address.
func (st *SymbolTable) DefineVariable(name string, address int) (err error) {
	if _, ok := st.Variable[name]; ok {
		err = ErrVariableDuplicate(name)
		return
	}
	st.Variable[name] = address
	return
}

// LookupLabel returns the address of a label.
func (st *SymbolTable) LookupLabel(name string) (address int, err error) {
	address, ok := st.Label[name]
	if !ok {
		err = ErrLabelMissing(name)
	}
	return
}

// LookupVariable returns the address of a variable.
func (st *SymbolTable) LookupVariable(name string) (address int, err error) {
	address, ok := st.Variable[name]
	if !ok {
		err = ErrVariableMissing(name)
	}
	return
}

// All returns every symbol and its address, labels first.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return internal.Concat2(maps.All(st.Label), maps.All(st.Variable))
}
