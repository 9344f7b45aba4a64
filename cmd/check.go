package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hacktools/hackasm/assembler"
	"github.com/urfave/cli/v2"
)

func CreateCheckCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "check",
		Usage:       "Checks a Hack assembly program without emitting machine code",
		Description: "Checks a Hack assembly program without emitting machine code",
		ArgsUsage:   "[input file, stdin when absent]",
		Action:      action,
		Flags: []cli.Flag{
			MachineProfileFlag,
		},
	}
}

var CheckCommand = CreateCheckCommand(Check)

func Check(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	source, err := readSource(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("error reading source: %w", err)
	}

	result, err := assembler.New(prof).Run(source)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	_, err = os.Stdout.WriteString(formatReport(result))
	return err
}

func formatReport(result *assembler.Result) string {
	names := make([]string, 0, len(result.Symbols))
	for name := range result.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var report strings.Builder
	fmt.Fprintf(&report, "instructions: %d\n", len(result.Words))
	fmt.Fprintf(&report, "symbols: %d\n", len(names))
	for _, name := range names {
		fmt.Fprintf(&report, "  %s = %d\n", name, result.Symbols[name])
	}
	return report.String()
}
