package main

import (
	"os"

	"github.com/parselmouth/parselmouth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
