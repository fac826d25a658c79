// Package main is the entry point for the parse-electriflex-gloves-skus CLI.
package main

import (
	"os"

	"electriflex-sku/cmd/cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
