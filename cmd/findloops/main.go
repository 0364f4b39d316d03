package main

import (
	"os"

	"github.com/dl/findloops/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
