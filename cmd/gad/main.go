// main is the entry point for the gad CLI.
package main

import (
	"os"

	"github.com/huangsam/gad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
