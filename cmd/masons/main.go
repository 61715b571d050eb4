package main

import (
	"os"

	"github.com/swhalen98/MasonsDBCC/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
