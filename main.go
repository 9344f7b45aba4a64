package main

import (
	"context"
	"log"
	"os"

	"github.com/hacktools/hackasm/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Hack Assembler"
	app.Description = "Translates Hack assembly programs into 16-bit machine code"
	app.Commands = []*cli.Command{
		cmd.AssembleCommand,
		cmd.CheckCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
