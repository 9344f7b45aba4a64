package hack

import (
	"errors"
	"testing"

	"github.com/hacktools/hackasm/asmparser"
	"github.com/hacktools/hackasm/profile"
	"github.com/hacktools/hackasm/symtab"
	"github.com/stretchr/testify/assert"
)

func TestLabelName(t *testing.T) {
	name, ok := LabelName("(LOOP)")
	assert.True(t, ok)
	assert.Equal(t, "LOOP", name)

	name, ok = LabelName("(ball.setdestination$if_true0)")
	assert.True(t, ok)
	assert.Equal(t, "ball.setdestination$if_true0", name)

	for _, line := range []string{
		"not-a-label",
		"(LOOP)extra",
		"x(LOOP)",
		"(2LOOP)", // identifiers start with a letter
		"()",
		"(LO OP)",
		"@LOOP",
	} {
		_, ok := LabelName(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestCollectLabels(t *testing.T) {
	table := symtab.New(nil)
	lines := Normalize("(a)\nb\nc\n\n(d)\ne")

	assert.NoError(t, CollectLabels(lines, table))

	addr, ok := table.Resolve("a")
	assert.True(t, ok)
	assert.Equal(t, uint16(0), addr)

	// Labels consume no address and blank lines are gone before counting.
	addr, ok = table.Resolve("d")
	assert.True(t, ok)
	assert.Equal(t, uint16(2), addr)
}

func TestCollectLabelsRejectsDuplicates(t *testing.T) {
	table := symtab.New(nil)
	lines := Normalize("(LOOP)\nD=A\n(LOOP)")

	err := CollectLabels(lines, table)
	var bound *symtab.AlreadyBoundError
	assert.True(t, errors.As(err, &bound))
	assert.Equal(t, "LOOP", bound.Name)
}

func TestCollectLabelsRejectsPredefinedNames(t *testing.T) {
	table := symtab.New(nil)

	err := CollectLabels([]string{"(SP)"}, table)
	var bound *symtab.AlreadyBoundError
	assert.True(t, errors.As(err, &bound))
	assert.Equal(t, "SP", bound.Name)
}

func TestCollectLabelsRejectsOversizedProgram(t *testing.T) {
	table := symtab.New(nil)

	// Addresses 0..65535 fill the instruction space; the trailing label
	// would land at 65536.
	lines := make([]string, 0, 65537)
	for i := 0; i <= maxInstructionAddress; i++ {
		lines = append(lines, "D=A")
	}
	assert.NoError(t, CollectLabels(lines, table))

	lines = append(lines, "(OVERFLOW)")
	err := CollectLabels(lines, symtab.New(nil))
	var tooLarge *ProgramTooLargeError
	assert.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, 65536, tooLarge.Limit)

	_, ok := table.Resolve("OVERFLOW")
	assert.False(t, ok)
}

func TestParseAddressLiteral(t *testing.T) {
	parser := NewParser(symtab.New(nil), nil)

	inst, err := parser.ParseLine("@42")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 42}, inst)

	inst, err = parser.ParseLine("@0")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 0}, inst)

	inst, err = parser.ParseLine("@32767")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 32767}, inst)
}

func TestParseAddressLiteralOutOfRange(t *testing.T) {
	parser := NewParser(symtab.New(nil), nil)

	for _, line := range []string{"@32768", "@70000", "@99999999999999999999"} {
		_, err := parser.ParseLine(line)
		var invalid *InvalidAddressError
		assert.True(t, errors.As(err, &invalid), "line %q", line)
	}
}

func TestParseAddressLiteralHonorsProfileWidth(t *testing.T) {
	prof := profile.Default()
	prof.AddressWidth = 10
	parser := NewParser(symtab.New(prof), prof)

	inst, err := parser.ParseLine("@1023")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 1023}, inst)

	for _, line := range []string{"@1024", "@32767"} {
		_, err := parser.ParseLine(line)
		var invalid *InvalidAddressError
		assert.True(t, errors.As(err, &invalid), "line %q", line)
	}
}

func TestParseAddressSymbolAllocatesVariables(t *testing.T) {
	table := symtab.New(nil)
	parser := NewParser(table, nil)

	inst, err := parser.ParseLine("@X")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 16}, inst)

	inst, err = parser.ParseLine("@Y")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 17}, inst)

	inst, err = parser.ParseLine("@X")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 16}, inst)
}

func TestParseAddressSymbolResolvesBindings(t *testing.T) {
	table := symtab.New(nil)
	assert.NoError(t, table.Bind("END", 12))
	parser := NewParser(table, nil)

	inst, err := parser.ParseLine("@END")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 12}, inst)

	inst, err = parser.ParseLine("@KBD")
	assert.NoError(t, err)
	assert.Equal(t, asmparser.AddressLoad{Address: 24576}, inst)
}

func TestParseCompute(t *testing.T) {
	parser := NewParser(symtab.New(nil), nil)

	cases := []struct {
		line string
		want asmparser.Compute
	}{
		{"A", asmparser.Compute{Comp: "A"}},
		{"M=1", asmparser.Compute{Dest: "M", Comp: "1"}},
		{"D;JMP", asmparser.Compute{Comp: "D", Jump: "JMP"}},
		{"AMD=D+1", asmparser.Compute{Dest: "AMD", Comp: "D+1"}},
		{"AM=M-1;JLE", asmparser.Compute{Dest: "AM", Comp: "M-1", Jump: "JLE"}},
		{"0;JMP", asmparser.Compute{Comp: "0", Jump: "JMP"}},
		{"D=D|M", asmparser.Compute{Dest: "D", Comp: "D|M"}},
		{"!D", asmparser.Compute{Comp: "!D"}},
		{"-1", asmparser.Compute{Comp: "-1"}},
	}
	for _, tc := range cases {
		inst, err := parser.ParseLine(tc.line)
		assert.NoError(t, err, "line %q", tc.line)
		assert.Equal(t, tc.want, inst, "line %q", tc.line)
	}
}

func TestParseUnknownInstruction(t *testing.T) {
	parser := NewParser(symtab.New(nil), nil)

	for _, line := range []string{";=;=", "@", "hello", "=D", "D=", "(LOOP)"} {
		_, err := parser.ParseLine(line)
		var unknown *UnknownInstructionError
		assert.True(t, errors.As(err, &unknown), "line %q", line)
	}
}
