package cmd

import (
	"fmt"
	"runtime"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the arbor CLI version, build time and Go toolchain.",
		Usage: "arbor version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	fmt.Fprintf(stdout, "arbor CLI version %s (built %s, %s %s/%s)\n",
		Version, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
