package main

import (
	"os"

	"github.com/priyankdesai/smartshop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
