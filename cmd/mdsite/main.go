// Command mdsite generates a static site from a directory of Markdown files.
package main

import (
	"fmt"
	"os"

	"github.com/roboco-io/mdsite/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
