package main

import (
	"os"

	"github.com/monthlies/bulletin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
