package main

import (
	"os"

	"winpick/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewRangeCommand()))
}
