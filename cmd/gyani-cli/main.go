package main

import (
	"fmt"
	"os"

	"github.com/mithrel/gyani/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gyani-cli:", err)
		os.Exit(1)
	}
}
