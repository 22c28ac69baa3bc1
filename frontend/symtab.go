package frontend

import (
	"strings"
)

// EntryKind tells what introduced a name into the symbol table
type EntryKind int

const (
	// VariableName entries are created by the first assignment to a name
	VariableName EntryKind = iota

	// ProgramName is the single entry created by the PROGRAM header
	ProgramName
)

func (k EntryKind) String() string {
	if k == ProgramName {
		return "program"
	}

	return "variable"
}

// SymtabEntry is the record shared by every VARIABLE node naming the same
// identifier. Name is the canonical lowercase spelling, Line is where the name
// was first entered
type SymtabEntry struct {
	Name string
	Kind EntryKind
	Line int
}

// Symtab is the flat, single scope registry of names in a compilation. Names
// are compared without regard to case. A Symtab must not be shared between
// compilations running at the same time
type Symtab struct {
	entries map[string]*SymtabEntry
	order   []*SymtabEntry
}

// NewSymtab returns an empty symbol table
func NewSymtab() *Symtab {
	return &Symtab{
		entries: make(map[string]*SymtabEntry),
	}
}

func canonicalName(name string) string {
	return strings.ToLower(name)
}

// Lookup returns the entry for a name or nil if the name was never entered
func (s *Symtab) Lookup(name string) *SymtabEntry {
	if entry, ok := s.entries[canonicalName(name)]; ok {
		return entry
	}

	return nil
}

// Enter returns the entry for a name, creating a VariableName entry first if
// the name is new
func (s *Symtab) Enter(name string) *SymtabEntry {
	if entry := s.Lookup(name); entry != nil {
		return entry
	}

	entry := &SymtabEntry{
		Name: canonicalName(name),
		Kind: VariableName,
	}

	s.entries[entry.Name] = entry
	s.order = append(s.order, entry)
	return entry
}

// Entries returns every entry in the order the names were first entered
func (s *Symtab) Entries() []*SymtabEntry {
	return s.order
}

// Len returns the number of entries
func (s *Symtab) Len() int {
	return len(s.order)
}
