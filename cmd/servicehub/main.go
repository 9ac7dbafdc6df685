package main

import (
	"os"

	"github.com/umesh576/servicehub-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
