// Package symtab implements the assembler's symbol table: predefined machine
// bindings, label bindings collected in the first pass, and variables
// allocated on first reference in the second.
package symtab

import (
	"fmt"

	"github.com/hacktools/hackasm/profile"
)

// AlreadyBoundError reports an attempt to bind a name that already has a
// binding, predefined ones included.
type AlreadyBoundError struct {
	Name string
}

func (e *AlreadyBoundError) Error() string {
	return fmt.Sprintf("symbol already bound: %s", e.Name)
}

// BindingExhaustedError reports that the variable allocator ran out of
// addresses in the 16-bit space.
type BindingExhaustedError struct {
	Base uint16
}

func (e *BindingExhaustedError) Error() string {
	return fmt.Sprintf("no free variable addresses left (allocation started at %d)", e.Base)
}

// Table maps case-sensitive symbol names to 16-bit addresses. A Table is
// built fresh per translation run and is not safe for concurrent use.
type Table struct {
	entries    map[string]uint16
	predefined map[string]struct{}
	base       uint16
	next       uint32 // next free variable address; uint32 so 65535 can be exhausted
}

// New returns a table seeded with the profile's predefined bindings. A nil
// profile seeds the standard Hack bindings.
func New(prof *profile.MachineProfile) *Table {
	if prof == nil {
		prof = profile.Default()
	}
	entries := make(map[string]uint16, len(prof.PredefinedSymbols))
	predefined := make(map[string]struct{}, len(prof.PredefinedSymbols))
	for name, addr := range prof.PredefinedSymbols {
		entries[name] = addr
		predefined[name] = struct{}{}
	}
	return &Table{
		entries:    entries,
		predefined: predefined,
		base:       prof.VariableBase,
		next:       uint32(prof.VariableBase),
	}
}

// Bind inserts a new binding. Rebinding any existing name fails with
// AlreadyBoundError.
func (t *Table) Bind(name string, address uint16) error {
	if _, ok := t.entries[name]; ok {
		return &AlreadyBoundError{Name: name}
	}
	t.entries[name] = address
	return nil
}

// Resolve looks up a name without mutating the table.
func (t *Table) Resolve(name string) (uint16, bool) {
	addr, ok := t.entries[name]
	return addr, ok
}

// ResolveOrBind returns the existing binding for name, or allocates the next
// free variable address and binds it. Allocation fails with
// BindingExhaustedError once the 16-bit address space is spent.
func (t *Table) ResolveOrBind(name string) (uint16, error) {
	if addr, ok := t.entries[name]; ok {
		return addr, nil
	}
	if t.next > 0xFFFF {
		return 0, &BindingExhaustedError{Base: t.base}
	}
	addr := uint16(t.next)
	t.entries[name] = addr
	t.next++
	return addr, nil
}

// Len returns the number of bindings in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// UserBindings returns the bindings added after seeding: labels and
// auto-allocated variables.
func (t *Table) UserBindings() map[string]uint16 {
	out := make(map[string]uint16, len(t.entries)-len(t.predefined))
	for name, addr := range t.entries {
		if _, ok := t.predefined[name]; ok {
			continue
		}
		out[name] = addr
	}
	return out
}
