package main

import (
	"os"

	"horsemanager/cmd/horsemanager/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
