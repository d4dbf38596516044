package main

import (
	"os"

	"github.com/andreamaggetto40/Patent2SDG/internal/adapters/driving/cli"
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0"

func main() {
	if err := cli.Execute(Version); err != nil {
		os.Exit(1)
	}
}
