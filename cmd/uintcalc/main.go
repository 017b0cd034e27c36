package main

import (
	"context"
	"os"

	"github.com/agbru/uintcalc/internal/app"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if app.HasVersionFlag(args[1:]) {
		app.PrintVersion(os.Stdout)
		return 0
	}

	a, err := app.New(args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return 0
		}
		return 1
	}

	return a.Run(context.Background(), os.Stdout)
}
