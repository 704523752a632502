// Command arbor inspects arbor widget trees from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/arbor/cmd/arbor/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
