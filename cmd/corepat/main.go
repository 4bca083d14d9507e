// Package main provides the entry point for the corepat CLI.
package main

import (
	"os"

	"github.com/coregx/corepat/cmd/corepat/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
