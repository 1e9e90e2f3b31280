package main

import (
	"os"

	"github.com/sturdy-barnacle/sparkle-sign/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
