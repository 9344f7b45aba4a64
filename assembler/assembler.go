// Package assembler runs the full translation pipeline: normalize the source,
// collect labels, then parse and encode every instruction line.
package assembler

import (
	"fmt"

	"github.com/hacktools/hackasm/asmparser/hack"
	"github.com/hacktools/hackasm/codegen"
	"github.com/hacktools/hackasm/profile"
	"github.com/hacktools/hackasm/symtab"
)

// Result holds the outcome of one translation run.
type Result struct {
	// Words are the encoded instructions, one per non-label source line,
	// in source order.
	Words []uint16
	// Symbols are the labels and variables the program bound, with their
	// resolved addresses. Predefined machine symbols are excluded.
	Symbols map[string]uint16
}

// Assembler translates Hack assembly source into machine words. Each Run
// builds a fresh symbol table; an Assembler may be reused across inputs.
type Assembler struct {
	prof *profile.MachineProfile
}

// New returns an assembler targeting prof. A nil profile targets the
// standard Hack machine.
func New(prof *profile.MachineProfile) *Assembler {
	if prof == nil {
		prof = profile.Default()
	}
	return &Assembler{prof: prof}
}

// Run translates source and reports the encoded words plus the symbols the
// program bound. Translation stops at the first error; no partial output is
// returned.
func (a *Assembler) Run(source string) (*Result, error) {
	table := symtab.New(a.prof)
	lines := hack.Normalize(source)

	if err := hack.CollectLabels(lines, table); err != nil {
		return nil, fmt.Errorf("collecting labels: %w", err)
	}

	parser := hack.NewParser(table, a.prof)
	words := make([]uint16, 0, len(lines))
	for _, line := range lines {
		if _, ok := hack.LabelName(line); ok {
			continue
		}
		inst, err := parser.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line, err)
		}
		word, err := codegen.Encode(inst)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line, err)
		}
		words = append(words, word)
	}
	return &Result{Words: words, Symbols: table.UserBindings()}, nil
}

// Assemble translates source and returns only the encoded words.
func (a *Assembler) Assemble(source string) ([]uint16, error) {
	res, err := a.Run(source)
	if err != nil {
		return nil, err
	}
	return res.Words, nil
}
