package main

import (
	"os"

	"github.com/weldgen/weld/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
