package main

import (
	"os"

	"github.com/testgen-ai/testgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
