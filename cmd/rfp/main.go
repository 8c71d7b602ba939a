package main

import (
	"os"

	"github.com/bnema/random-folder-picker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
