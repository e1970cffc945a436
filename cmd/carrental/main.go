package main

import (
	"os"
	_ "time/tzdata"

	"carrental/cmd/carrental/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
