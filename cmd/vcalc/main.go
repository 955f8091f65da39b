package main

import (
	"os"

	"github.com/bnema/vcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
