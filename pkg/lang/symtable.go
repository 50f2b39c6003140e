package lang

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

type SymbolKind int

const (
	SymType SymbolKind = iota // type definition
	SymVar                    // variable bound to its declared type
)

func (k SymbolKind) String() string {
	if k == SymType {
		return "type"
	}
	return "var"
}

type Symbol struct {
	Kind SymbolKind
	Name string
	Type Type
}

// SymbolTable maps names to symbols. It is one flat namespace: nested
// blocks share it, and a declaration overwrites any earlier binding of the
// same name for the rest of the session.
type SymbolTable struct {
	symbols map[string]Symbol
}

// NewSymbolTable returns a table seeded with the built-in types.
func NewSymbolTable() *SymbolTable {
	s := &SymbolTable{symbols: make(map[string]Symbol)}
	for _, t := range []Type{IntType, FloatType, NullType} {
		s.Define(Symbol{Kind: SymType, Name: t.Name, Type: t})
	}
	return s
}

// Define binds sym.Name, replacing any previous symbol of that name.
func (s *SymbolTable) Define(sym Symbol) {
	s.symbols[sym.Name] = sym
}

// Lookup returns the symbol and whether it was found.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Clone returns an independent copy of the table.
func (s *SymbolTable) Clone() *SymbolTable {
	return &SymbolTable{symbols: maps.Clone(s.symbols)}
}

// Vars returns the variable symbols sorted by name.
func (s *SymbolTable) Vars() []Symbol {
	var vars []Symbol
	for _, sym := range s.symbols {
		if sym.Kind == SymVar {
			vars = append(vars, sym)
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Symbols:\n")
	for _, name := range names {
		sym := s.symbols[name]
		fmt.Fprintf(&sb, "  %-20s  %s %s\n", name, sym.Kind, sym.Type)
	}
	return sb.String()
}
