package main

import (
	"os"

	"tvm-api/cmd/tvmcli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
