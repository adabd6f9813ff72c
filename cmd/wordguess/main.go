package main

import (
	"os"

	"github.com/mcoot/wordguess/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
