// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hacktools/hackasm/assembler"
	"github.com/hacktools/hackasm/profile"
	"github.com/hacktools/hackasm/renderer"
	"github.com/urfave/cli/v2"
)

var (
	MachineProfileFlag = &cli.PathFlag{
		Name:     "machine-profile",
		Usage:    "Path to a machine profile YAML file. Default: built-in Hack profile",
		Required: false,
	}
	OutputFlag = &cli.PathFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Output file path. Default: stdout",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: json, text",
		Required:    false,
		DefaultText: "text",
	}
)

func CreateAssembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "assemble",
		Usage:       "Translates a Hack assembly program into machine code",
		Description: "Translates a Hack assembly program into machine code",
		ArgsUsage:   "[input file, stdin when absent]",
		Action:      action,
		Flags: []cli.Flag{
			MachineProfileFlag,
			OutputFlag,
			FormatFlag,
		},
	}
}

var AssembleCommand = CreateAssembleCommand(Assemble)

func Assemble(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	source, err := readSource(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("error reading source: %w", err)
	}

	words, err := assembler.New(prof).Assemble(source)
	if err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}

	format := ctx.String(FormatFlag.Name)
	outputPath := ctx.Path(OutputFlag.Name)
	if err := writeWords(words, format, outputPath); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

func loadProfile(ctx *cli.Context) (*profile.MachineProfile, error) {
	profilePath := ctx.Path(MachineProfileFlag.Name)
	if profilePath == "" {
		return profile.Default(), nil
	}
	prof, err := profile.LoadProfile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return prof, nil
}

// readSource reads the whole program from path, or from stdin when path is
// empty.
func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("unable to determine absolute path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeWords outputs the encoded words in the specified format.
func writeWords(words []uint16, format, outputPath string) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "text", "":
		rendererInstance = renderer.NewTextRenderer()
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(words, output)
}
