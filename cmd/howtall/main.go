// Package main is the howtall command itself.
package main

import (
	"fmt"
	"os"

	"github.com/facenskin/howtall/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "howtall: %v\n", err)
		os.Exit(1)
	}
}
