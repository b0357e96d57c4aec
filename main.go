package main

import (
	"os"

	"github.com/sproutfi/sprout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
