package asmparser

// Parser holds the interface for turning one normalized source line into an
// instruction. Implementations may mutate a symbol table to allocate
// variables while parsing.
type Parser interface {
	ParseLine(line string) (Instruction, error)
}

// InstructionType defines Hack instruction categories.
type InstructionType string

const (
	TypeA InstructionType = "A-Type" // address load
	TypeC InstructionType = "C-Type" // compute / jump
)

// Instruction is a decoded source line. The set of implementations is closed:
// AddressLoad and Compute.
type Instruction interface {
	Type() InstructionType
}

// AddressLoad sets the address register to a 15-bit value. Bit 15 of the
// encoded word is the type tag, so Address never uses the top bit.
type AddressLoad struct {
	Address uint16
}

func (AddressLoad) Type() InstructionType { return TypeA }

// Compute performs an ALU operation, optionally storing the result and
// optionally jumping. Empty Dest or Jump means the clause was absent.
type Compute struct {
	Comp string
	Dest string
	Jump string
}

func (Compute) Type() InstructionType { return TypeC }
