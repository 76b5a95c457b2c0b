package main

import (
	"os"

	"github.com/PolarWolf314/pageseal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
