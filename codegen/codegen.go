// Package codegen encodes parsed instructions into 16-bit machine words.
package codegen

import (
	"fmt"

	"github.com/hacktools/hackasm/asmparser"
)

// Lookup tables from mnemonic to bit field. compTable values carry the "a"
// bit plus c1..c6 as a single 7-bit field; destTable and jumpTable are the
// 3-bit dest and jump fields. Never mutated after initialization.
var (
	compTable = map[string]uint16{
		"0":   0b0101010,
		"1":   0b0111111,
		"-1":  0b0111010,
		"D":   0b0001100,
		"A":   0b0110000,
		"!D":  0b0001101,
		"!A":  0b0110001,
		"-D":  0b0001111,
		"-A":  0b0110011,
		"D+1": 0b0011111,
		"A+1": 0b0110111,
		"D-1": 0b0001110,
		"A-1": 0b0110010,
		"D+A": 0b0000010,
		"D-A": 0b0010011,
		"A-D": 0b0000111,
		"D&A": 0b0000000,
		"D|A": 0b0010101,
		"M":   0b1110000,
		"!M":  0b1110001,
		"-M":  0b1110011,
		"M+1": 0b1110111,
		"M-1": 0b1110010,
		"D+M": 0b1000010,
		"D-M": 0b1010011,
		"M-D": 0b1000111,
		"D&M": 0b1000000,
		"D|M": 0b1010101,
	}

	destTable = map[string]uint16{
		"M":   0b001,
		"D":   0b010,
		"MD":  0b011,
		"A":   0b100,
		"AM":  0b101,
		"AD":  0b110,
		"AMD": 0b111,
	}

	jumpTable = map[string]uint16{
		"JGT": 0b001,
		"JEQ": 0b010,
		"JGE": 0b011,
		"JLT": 0b100,
		"JNE": 0b101,
		"JLE": 0b110,
		"JMP": 0b111,
	}
)

// Field names a compute instruction field in LookupMissError.
type Field string

const (
	FieldComp Field = "computation"
	FieldDest Field = "destination"
	FieldJump Field = "jump"
)

// LookupMissError reports a mnemonic that passed the parser's grammar but has
// no bit-pattern entry in its table.
type LookupMissError struct {
	Field    Field
	Mnemonic string
}

func (e *LookupMissError) Error() string {
	return fmt.Sprintf("lookup table miss: %s %q", e.Field, e.Mnemonic)
}

// Encode transforms a parsed instruction into its 16-bit machine word.
// Encoding is pure; the tables are shared read-only across all calls.
func Encode(inst asmparser.Instruction) (uint16, error) {
	switch in := inst.(type) {
	case asmparser.AddressLoad:
		// Bit 15 is the type tag and stays 0; the mask is applied even
		// though the parser already constrains the range.
		return in.Address & 0x7FFF, nil
	case asmparser.Compute:
		c, ok := compTable[in.Comp]
		if !ok {
			return 0, &LookupMissError{Field: FieldComp, Mnemonic: in.Comp}
		}
		var d uint16
		if in.Dest != "" {
			if d, ok = destTable[in.Dest]; !ok {
				return 0, &LookupMissError{Field: FieldDest, Mnemonic: in.Dest}
			}
		}
		var j uint16
		if in.Jump != "" {
			if j, ok = jumpTable[in.Jump]; !ok {
				return 0, &LookupMissError{Field: FieldJump, Mnemonic: in.Jump}
			}
		}
		return 0xE000 | c<<6 | d<<3 | j, nil
	default:
		return 0, fmt.Errorf("unsupported instruction type: %s", inst.Type())
	}
}
