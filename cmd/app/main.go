package main

import (
	"os"

	"github.com/ACBRI/veritas.ia/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
