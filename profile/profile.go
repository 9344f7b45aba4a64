// Package profile defines the machine configuration the assembler targets.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MachineProfile represents the configuration for a specific target machine:
// how wide direct addresses may be, where variable allocation starts, and
// which symbols are bound before the program is read.
type MachineProfile struct {
	Machine           string            `yaml:"machine"`
	AddressWidth      int               `yaml:"address_width"`
	VariableBase      uint16            `yaml:"variable_base"`
	PredefinedSymbols map[string]uint16 `yaml:"predefined_symbols"`
}

// Default returns the standard Hack machine profile. Each call builds a fresh
// value so callers may not share mutable state across runs.
func Default() *MachineProfile {
	return &MachineProfile{
		Machine:      "hack",
		AddressWidth: 15,
		VariableBase: 16,
		PredefinedSymbols: map[string]uint16{
			"R0": 0, "R1": 1, "R2": 2, "R3": 3,
			"R4": 4, "R5": 5, "R6": 6, "R7": 7,
			"R8": 8, "R9": 9, "R10": 10, "R11": 11,
			"R12": 12, "R13": 13, "R14": 14, "R15": 15,
			"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
			"SCREEN": 16384, "KBD": 24576,
		},
	}
}

// LoadProfile loads a machine profile from a YAML file.
func LoadProfile(filename string) (*MachineProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}

	var prof MachineProfile
	if err := yaml.Unmarshal(data, &prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := prof.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return &prof, nil
}

func (p *MachineProfile) validate() error {
	if p.Machine == "" {
		return fmt.Errorf("machine name is required")
	}
	if p.AddressWidth <= 0 || p.AddressWidth > 15 {
		return fmt.Errorf("address_width must be between 1 and 15, got %d", p.AddressWidth)
	}
	return nil
}
