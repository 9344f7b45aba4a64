package hack

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/hacktools/hackasm/asmparser"
	"github.com/hacktools/hackasm/profile"
	"github.com/hacktools/hackasm/symtab"
)

var (
	// Regular expressions for the three line shapes produced by Normalize.
	// Whitespace is already stripped, so none of them allow spaces.
	labelRegex   = regexp.MustCompile(`^\(([a-zA-Z][a-zA-Z0-9_.$]*)\)$`)
	addressRegex = regexp.MustCompile(`^@(?:([0-9]+)|([a-zA-Z][a-zA-Z0-9_.$]*))$`)
	computeRegex = regexp.MustCompile(`^(?:([AMD]{1,3})=)?([-+|&!01ADM]+)(?:;([A-Z]{3}))?$`)
)

// InvalidAddressError reports an address-load literal that does not parse as
// an unsigned decimal or does not fit the 15-bit address range.
type InvalidAddressError struct {
	Literal string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address literal: %s", e.Literal)
}

// UnknownInstructionError reports a normalized line matching neither the
// address-load nor the compute grammar. Line is an owned copy of the text.
type UnknownInstructionError struct {
	Line string
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction: %s", e.Line)
}

// ProgramTooLargeError reports a program with more instruction lines than the
// 16-bit instruction address space can hold.
type ProgramTooLargeError struct {
	Limit int
}

func (e *ProgramTooLargeError) Error() string {
	return fmt.Sprintf("program exceeds %d instructions", e.Limit)
}

// LabelName reports whether line is a label declaration of the form "(name)"
// and returns the bare name. Anything besides the parenthesized identifier
// disqualifies the line.
func LabelName(line string) (string, bool) {
	matches := labelRegex.FindStringSubmatch(line)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// maxInstructionAddress is the last slot of the 16-bit instruction address
// space; the counter in CollectLabels may not pass it.
const maxInstructionAddress = 0xFFFF

// CollectLabels runs the first pass: it walks the normalized lines tracking
// the instruction address counter from 0, binds every label to the counter's
// current value, and increments the counter only for non-label lines. A label
// colliding with any existing binding fails with symtab.AlreadyBoundError; a
// line landing past the 16-bit address space fails with ProgramTooLargeError.
func CollectLabels(lines []string, table *symtab.Table) error {
	var address uint32
	for _, line := range lines {
		if address > maxInstructionAddress {
			return &ProgramTooLargeError{Limit: maxInstructionAddress + 1}
		}
		name, ok := LabelName(line)
		if !ok {
			address++
			continue
		}
		if err := table.Bind(name, uint16(address)); err != nil {
			return err
		}
	}
	return nil
}

// parserImpl implements the asmparser.Parser interface for Hack assembly.
type parserImpl struct {
	table *symtab.Table
	// maxAddress is the largest value an address-load literal may carry,
	// derived from the profile's address width; bit 15 of the word is the
	// instruction-type tag, so it never exceeds 0x7FFF.
	maxAddress uint64
}

// NewParser returns a parser for the second pass. Symbolic address loads are
// resolved through table, allocating variables on first reference. Literal
// address loads are range-checked against prof's address width; a nil
// profile means the standard Hack machine.
func NewParser(table *symtab.Table, prof *profile.MachineProfile) asmparser.Parser {
	if prof == nil {
		prof = profile.Default()
	}
	return &parserImpl{
		table:      table,
		maxAddress: 1<<prof.AddressWidth - 1,
	}
}

// ParseLine classifies one normalized non-label line and extracts its fields.
func (p *parserImpl) ParseLine(line string) (asmparser.Instruction, error) {
	if matches := addressRegex.FindStringSubmatch(line); matches != nil {
		return p.parseAddressLoad(matches[1], matches[2])
	}
	if matches := computeRegex.FindStringSubmatch(line); matches != nil {
		return asmparser.Compute{
			Dest: matches[1],
			Comp: matches[2],
			Jump: matches[3],
		}, nil
	}
	return nil, &UnknownInstructionError{Line: line}
}

func (p *parserImpl) parseAddressLoad(literal, symbol string) (asmparser.Instruction, error) {
	if symbol != "" {
		addr, err := p.table.ResolveOrBind(symbol)
		if err != nil {
			return nil, fmt.Errorf("resolving symbol %s: %w", symbol, err)
		}
		return asmparser.AddressLoad{Address: addr}, nil
	}
	addr, err := strconv.ParseUint(literal, 10, 16)
	if err != nil || addr > p.maxAddress {
		return nil, &InvalidAddressError{Literal: literal}
	}
	return asmparser.AddressLoad{Address: uint16(addr)}, nil
}
