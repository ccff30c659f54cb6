package main

import (
	"os"

	"rational/src/cmd/ratcalc/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
