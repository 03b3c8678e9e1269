package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	cmd := Command()
	app := &cli.App{
		Name:        cmd.Name,
		Usage:       cmd.Usage,
		ArgsUsage:   cmd.ArgsUsage,
		Flags:       cmd.Flags,
		Action:      cmd.Action,
		HideVersion: true,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
