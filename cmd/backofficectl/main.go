package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "backofficectl",
		Usage: "operate the shop back office",
		Commands: []*cli.Command{
			migrateCommand(),
			stockCommand(),
		},
	}
}
